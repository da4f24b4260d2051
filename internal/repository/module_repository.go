package repository

import (
	"github.com/hoangnln/testtrack/internal/model"
	"gorm.io/gorm"
)

type ModuleFilter struct {
	ProjectID string
	IsActive  *bool
	Page      int
	Limit     int
}

// ModuleWithCount annotates a module with how many test cases name it,
// matched by module name within the owning project.
type ModuleWithCount struct {
	model.Module
	TestCaseCount int
}

type ModuleRepository interface {
	Create(module *model.Module) error
	FindByID(id string) (*model.Module, error)
	FindAll(filter ModuleFilter) ([]ModuleWithCount, int64, error)
	Update(module *model.Module) error
	Delete(id string) error
}

type moduleRepository struct {
	db *gorm.DB
}

func NewModuleRepository(db *gorm.DB) ModuleRepository {
	return &moduleRepository{db: db}
}

func (r *moduleRepository) Create(module *model.Module) error {
	return r.db.Create(module).Error
}

func (r *moduleRepository) FindByID(id string) (*model.Module, error) {
	var module model.Module
	err := r.db.First(&module, "id = ?", id).Error
	return &module, err
}

func (r *moduleRepository) FindAll(filter ModuleFilter) ([]ModuleWithCount, int64, error) {
	query := r.db.Model(&model.Module{})
	if filter.ProjectID != "" {
		query = query.Where("modules.project_id = ?", filter.ProjectID)
	}
	if filter.IsActive != nil {
		query = query.Where("modules.is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var results []ModuleWithCount
	err := query.
		Select("modules.*, (SELECT COUNT(*) FROM test_cases WHERE test_cases.module = modules.name AND test_cases.project_id = modules.project_id) AS test_case_count").
		Order("modules.created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Scan(&results).Error
	return results, total, err
}

func (r *moduleRepository) Update(module *model.Module) error {
	return r.db.Save(module).Error
}

func (r *moduleRepository) Delete(id string) error {
	return r.db.Delete(&model.Module{}, "id = ?", id).Error
}
