package service

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/hoangnln/testtrack/internal/dto"
	"github.com/hoangnln/testtrack/internal/model"
	"github.com/hoangnln/testtrack/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type TestCaseService interface {
	Create(req dto.CreateTestCaseRequest, createdBy string) (*dto.TestCaseResponse, error)
	Get(id string) (*dto.TestCaseResponse, error)
	List(filter repository.TestCaseFilter) ([]dto.TestCaseResponse, int64, error)
	Update(id string, req dto.UpdateTestCaseRequest) (*dto.TestCaseResponse, error)
	Delete(id string) error
	Stats() (*dto.TestCaseStatsResponse, error)
}

type testCaseService struct {
	testCaseRepo repository.TestCaseRepository
	projectRepo  repository.ProjectRepository
}

func NewTestCaseService(testCaseRepo repository.TestCaseRepository, projectRepo repository.ProjectRepository) TestCaseService {
	return &testCaseService{testCaseRepo: testCaseRepo, projectRepo: projectRepo}
}

func (s *testCaseService) Create(req dto.CreateTestCaseRequest, createdBy string) (*dto.TestCaseResponse, error) {
	if req.ProjectID != nil {
		if _, err := s.projectRepo.FindByID(*req.ProjectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}

	priority := req.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	status := req.Status
	if status == "" {
		status = model.StatusTodo
	}

	tc := model.TestCase{
		ProjectID:      req.ProjectID,
		Title:          req.Title,
		Description:    req.Description,
		Priority:       priority,
		Status:         status,
		Module:         req.Module,
		ExpectedResult: req.ExpectedResult,
		Preconditions:  req.Preconditions,
		Postconditions: req.Postconditions,
		TestData:       marshalJSONField(req.TestData),
		Tags:           marshalTags(req.Tags),
		EstimatedTime:  req.EstimatedTime,
		AssignedTo:     req.AssignedTo,
		CreatedBy:      &createdBy,
		Steps:          buildSteps(req.Steps),
	}

	if err := s.testCaseRepo.Create(&tc); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateTestCase: insert failed")
		return nil, err
	}
	return s.Get(tc.ID)
}

func (s *testCaseService) Get(id string) (*dto.TestCaseResponse, error) {
	tc, err := s.testCaseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toTestCaseResponse(tc), nil
}

func (s *testCaseService) List(filter repository.TestCaseFilter) ([]dto.TestCaseResponse, int64, error) {
	cases, total, err := s.testCaseRepo.FindAll(filter)
	if err != nil {
		return nil, 0, err
	}
	resp := make([]dto.TestCaseResponse, len(cases))
	for i := range cases {
		resp[i] = *toTestCaseResponse(&cases[i])
	}
	return resp, total, nil
}

func (s *testCaseService) Update(id string, req dto.UpdateTestCaseRequest) (*dto.TestCaseResponse, error) {
	tc, err := s.testCaseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		tc.Title = *req.Title
	}
	if req.Description != nil {
		tc.Description = *req.Description
	}
	if req.Priority != nil {
		tc.Priority = *req.Priority
	}
	if req.Status != nil {
		tc.Status = *req.Status
	}
	if req.Module != nil {
		tc.Module = *req.Module
	}
	if req.ExpectedResult != nil {
		tc.ExpectedResult = *req.ExpectedResult
	}
	if req.Preconditions != nil {
		tc.Preconditions = req.Preconditions
	}
	if req.Postconditions != nil {
		tc.Postconditions = req.Postconditions
	}
	if req.TestData != nil {
		tc.TestData = marshalJSONField(req.TestData)
	}
	if req.Tags != nil {
		tc.Tags = marshalTags(req.Tags)
	}
	if req.EstimatedTime != nil {
		tc.EstimatedTime = req.EstimatedTime
	}
	if req.AssignedTo != nil {
		tc.AssignedTo = req.AssignedTo
	}

	// A non-nil steps slice replaces the existing steps wholesale; an empty
	// slice means "remove them all", not "leave them alone".
	var steps *[]model.TestStep
	if req.Steps != nil {
		built := buildSteps(*req.Steps)
		steps = &built
	}

	if err := s.testCaseRepo.Update(tc, steps); err != nil {
		log.Error().Err(err).Str("testCaseId", id).Msg("UpdateTestCase: save failed")
		return nil, err
	}
	return s.Get(id)
}

func (s *testCaseService) Delete(id string) error {
	if _, err := s.testCaseRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.testCaseRepo.Delete(id)
}

func (s *testCaseService) Stats() (*dto.TestCaseStatsResponse, error) {
	total, byStatus, byPriority, byModule, err := s.testCaseRepo.Stats()
	if err != nil {
		return nil, err
	}
	return &dto.TestCaseStatsResponse{
		Total:      total,
		ByStatus:   byStatus,
		ByPriority: byPriority,
		ByModule:   byModule,
	}, nil
}

// buildSteps renumbers steps 1..n when the client left step numbers unset and
// drops steps whose action is blank, mirroring how the update form submits.
func buildSteps(reqs []dto.TestStepRequest) []model.TestStep {
	steps := make([]model.TestStep, 0, len(reqs))
	next := 1
	for _, r := range reqs {
		action := strings.TrimSpace(r.Action)
		if action == "" {
			continue
		}
		number := r.StepNumber
		if number <= 0 {
			number = next
		}
		steps = append(steps, model.TestStep{
			StepNumber:     number,
			Action:         action,
			ExpectedResult: strings.TrimSpace(r.ExpectedResult),
		})
		next++
	}
	return steps
}

func marshalJSONField(v interface{}) *string {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	s := string(raw)
	return &s
}

func marshalTags(tags []string) *string {
	if tags == nil {
		return nil
	}
	raw, _ := json.Marshal(tags)
	s := string(raw)
	return &s
}

func toTestCaseResponse(tc *model.TestCase) *dto.TestCaseResponse {
	var resp dto.TestCaseResponse
	copier.Copy(&resp, tc)

	// JSON text columns come back as strings; decode them for the client.
	resp.TestData = nil
	if tc.TestData != nil {
		var data interface{}
		if err := json.Unmarshal([]byte(*tc.TestData), &data); err == nil {
			resp.TestData = data
		}
	}
	resp.Tags = nil
	if tc.Tags != nil {
		var tags []string
		if err := json.Unmarshal([]byte(*tc.Tags), &tags); err == nil {
			resp.Tags = tags
		}
	}
	return &resp
}
