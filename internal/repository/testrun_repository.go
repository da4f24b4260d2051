package repository

import (
	"github.com/hoangnln/testtrack/internal/model"
	"gorm.io/gorm"
)

type TestRunFilter struct {
	Result      string
	TestCaseID  string
	Environment string
	ExecutedBy  string
	ProjectID   string
	Page        int
	Limit       int
}

// TestRunWithCase annotates a run with its test case title for list views.
type TestRunWithCase struct {
	model.TestRun
	TestCaseTitle string
}

type TestRunRepository interface {
	// Create persists the run and its step results in one transaction; step
	// results are write-once and have no update path.
	Create(run *model.TestRun) error
	FindByID(id string) (*model.TestRun, error)
	FindAll(filter TestRunFilter) ([]TestRunWithCase, int64, error)
	// UpdateFields applies the mutable subset of a run. ExecutedAt and the
	// step results are deliberately not reachable from here.
	UpdateFields(id string, fields map[string]interface{}) error
	Delete(id string) error
}

type testRunRepository struct {
	db *gorm.DB
}

func NewTestRunRepository(db *gorm.DB) TestRunRepository {
	return &testRunRepository{db: db}
}

func (r *testRunRepository) Create(run *model.TestRun) error {
	// gorm creates the associated StepResults rows with the run.
	return r.db.Create(run).Error
}

func (r *testRunRepository) FindByID(id string) (*model.TestRun, error) {
	var run model.TestRun
	err := r.db.Preload("StepResults", func(db *gorm.DB) *gorm.DB {
		return db.Order("test_step_results.step_number ASC")
	}).First(&run, "id = ?", id).Error
	return &run, err
}

func (r *testRunRepository) FindAll(filter TestRunFilter) ([]TestRunWithCase, int64, error) {
	query := r.db.Model(&model.TestRun{}).
		Joins("LEFT JOIN test_cases ON test_cases.id = test_runs.test_case_id")
	if filter.Result != "" {
		query = query.Where("test_runs.result = ?", filter.Result)
	}
	if filter.TestCaseID != "" {
		query = query.Where("test_runs.test_case_id = ?", filter.TestCaseID)
	}
	if filter.Environment != "" {
		query = query.Where("test_runs.environment = ?", filter.Environment)
	}
	if filter.ExecutedBy != "" {
		query = query.Where("test_runs.executed_by = ?", filter.ExecutedBy)
	}
	if filter.ProjectID != "" {
		query = query.Where("test_cases.project_id = ?", filter.ProjectID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var runs []TestRunWithCase
	err := query.
		Select("test_runs.*, test_cases.title AS test_case_title").
		Order("test_runs.executed_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Scan(&runs).Error
	return runs, total, err
}

func (r *testRunRepository) UpdateFields(id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&model.TestRun{}).Where("id = ?", id).Updates(fields).Error
}

func (r *testRunRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("test_run_id = ?", id).Delete(&model.TestStepResult{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.TestRun{}, "id = ?", id).Error
	})
}
