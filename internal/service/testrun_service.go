package service

import (
	"errors"

	"github.com/hoangnln/testtrack/internal/dto"
	"github.com/hoangnln/testtrack/internal/model"
	"github.com/hoangnln/testtrack/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type TestRunService interface {
	Create(req dto.CreateTestRunRequest, executedBy string) (*dto.TestRunResponse, error)
	Get(id string) (*dto.TestRunResponse, error)
	List(filter repository.TestRunFilter) ([]dto.TestRunResponse, int64, error)
	Update(id string, req dto.UpdateTestRunRequest) (*dto.TestRunResponse, error)
	Delete(id string) error
}

type testRunService struct {
	testRunRepo  repository.TestRunRepository
	testCaseRepo repository.TestCaseRepository
}

func NewTestRunService(testRunRepo repository.TestRunRepository, testCaseRepo repository.TestCaseRepository) TestRunService {
	return &testRunService{testRunRepo: testRunRepo, testCaseRepo: testCaseRepo}
}

func (s *testRunService) Create(req dto.CreateTestRunRequest, executedBy string) (*dto.TestRunResponse, error) {
	if _, err := s.testCaseRepo.FindByID(req.TestCaseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	result := req.Result
	if result == "" {
		result = model.ResultPending
	}

	run := model.TestRun{
		TestCaseID:   req.TestCaseID,
		ExecutedBy:   executedBy,
		Result:       result,
		Duration:     req.Duration,
		Environment:  req.Environment,
		BuildVersion: req.BuildVersion,
		Notes:        req.Notes,
		ActualResult: req.ActualResult,
	}
	for _, sr := range req.StepResults {
		run.StepResults = append(run.StepResults, model.TestStepResult{
			StepNumber:   sr.StepNumber,
			Result:       sr.Result,
			ActualResult: sr.ActualResult,
			Notes:        sr.Notes,
			Screenshot:   sr.Screenshot,
		})
	}

	if err := s.testRunRepo.Create(&run); err != nil {
		log.Error().Err(err).Str("testCaseId", req.TestCaseID).Msg("CreateTestRun: insert failed")
		return nil, err
	}
	return s.Get(run.ID)
}

func (s *testRunService) Get(id string) (*dto.TestRunResponse, error) {
	run, err := s.testRunRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var resp dto.TestRunResponse
	copier.Copy(&resp, run)
	return &resp, nil
}

func (s *testRunService) List(filter repository.TestRunFilter) ([]dto.TestRunResponse, int64, error) {
	runs, total, err := s.testRunRepo.FindAll(filter)
	if err != nil {
		return nil, 0, err
	}
	resp := make([]dto.TestRunResponse, len(runs))
	for i := range runs {
		copier.Copy(&resp[i], &runs[i].TestRun)
		resp[i].TestCaseTitle = runs[i].TestCaseTitle
	}
	return resp, total, nil
}

// Update touches only the mutable fields; executed_at and step results stay
// exactly as written at creation.
func (s *testRunService) Update(id string, req dto.UpdateTestRunRequest) (*dto.TestRunResponse, error) {
	if _, err := s.testRunRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Result != nil {
		fields["result"] = *req.Result
	}
	if req.Duration != nil {
		fields["duration"] = *req.Duration
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if req.ActualResult != nil {
		fields["actual_result"] = *req.ActualResult
	}

	if err := s.testRunRepo.UpdateFields(id, fields); err != nil {
		log.Error().Err(err).Str("testRunId", id).Msg("UpdateTestRun: save failed")
		return nil, err
	}
	return s.Get(id)
}

func (s *testRunService) Delete(id string) error {
	if _, err := s.testRunRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.testRunRepo.Delete(id)
}
