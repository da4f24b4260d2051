package repository

import (
	"github.com/hoangnln/testtrack/internal/model"
	"gorm.io/gorm"
)

type ProjectFilter struct {
	IsActive *bool
	Page     int
	Limit    int
}

// ProjectWithCount carries the test-case count annotation the list and detail
// endpoints expose alongside each project.
type ProjectWithCount struct {
	model.Project
	TestCaseCount int
}

type ProjectRepository interface {
	Create(project *model.Project) error
	FindByID(id string) (*ProjectWithCount, error)
	FindByCode(code string) (*model.Project, error)
	FindAll(filter ProjectFilter) ([]ProjectWithCount, int64, error)
	Update(project *model.Project) error
	DeleteCascade(id string) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(project *model.Project) error {
	return r.db.Create(project).Error
}

func (r *projectRepository) FindByID(id string) (*ProjectWithCount, error) {
	var result ProjectWithCount
	err := r.db.Model(&model.Project{}).
		Select("projects.*, (SELECT COUNT(*) FROM test_cases WHERE test_cases.project_id = projects.id) AS test_case_count").
		Where("projects.id = ?", id).
		First(&result).Error
	return &result, err
}

func (r *projectRepository) FindByCode(code string) (*model.Project, error) {
	var project model.Project
	err := r.db.First(&project, "code = ?", code).Error
	return &project, err
}

func (r *projectRepository) FindAll(filter ProjectFilter) ([]ProjectWithCount, int64, error) {
	query := r.db.Model(&model.Project{})
	if filter.IsActive != nil {
		query = query.Where("projects.is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var results []ProjectWithCount
	err := query.
		Select("projects.*, (SELECT COUNT(*) FROM test_cases WHERE test_cases.project_id = projects.id) AS test_case_count").
		Order("projects.created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Scan(&results).Error
	return results, total, err
}

func (r *projectRepository) Update(project *model.Project) error {
	return r.db.Save(project).Error
}

// DeleteCascade removes a project and every row reachable from it in one
// transaction. Any step failing rolls the whole thing back; callers never
// observe a partially deleted project.
//
// Step results and bugs hang off runs, not cases, so they go first, resolved
// through a run-id subquery.
func (r *projectRepository) DeleteCascade(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Fresh subqueries per statement; gorm query builders are not safely
		// reusable across statements.
		caseIDs := func() *gorm.DB {
			return tx.Session(&gorm.Session{NewDB: true}).Model(&model.TestCase{}).Select("id").Where("project_id = ?", id)
		}
		runIDs := func() *gorm.DB {
			return tx.Session(&gorm.Session{NewDB: true}).Model(&model.TestRun{}).Select("id").Where("test_case_id IN (?)", caseIDs())
		}

		bugIDs := func() *gorm.DB {
			return tx.Session(&gorm.Session{NewDB: true}).Model(&model.Bug{}).Select("id").Where("test_run_id IN (?)", runIDs())
		}

		if err := tx.Where("test_run_id IN (?)", runIDs()).Delete(&model.TestStepResult{}).Error; err != nil {
			return err
		}
		if err := tx.Where("bug_id IN (?)", bugIDs()).Delete(&model.BugComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("test_run_id IN (?)", runIDs()).Delete(&model.Bug{}).Error; err != nil {
			return err
		}
		if err := tx.Where("test_case_id IN (?)", caseIDs()).Delete(&model.TestStep{}).Error; err != nil {
			return err
		}
		if err := tx.Where("test_case_id IN (?)", caseIDs()).Delete(&model.TestRun{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.TestCase{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.Module{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.Version{}).Error; err != nil {
			return err
		}
		// The project's code counter scope dies with it.
		if err := tx.Where("scope = ?", id).Delete(&model.CaseCodeCounter{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Project{}, "id = ?", id).Error
	})
}
