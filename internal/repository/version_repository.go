package repository

import (
	"github.com/hoangnln/testtrack/internal/model"
	"gorm.io/gorm"
)

type VersionFilter struct {
	ProjectID string
	IsActive  *bool
	Page      int
	Limit     int
}

type VersionRepository interface {
	Create(version *model.Version) error
	FindByID(id string) (*model.Version, error)
	FindAll(filter VersionFilter) ([]model.Version, int64, error)
	Update(version *model.Version) error
	Delete(id string) error
}

type versionRepository struct {
	db *gorm.DB
}

func NewVersionRepository(db *gorm.DB) VersionRepository {
	return &versionRepository{db: db}
}

func (r *versionRepository) Create(version *model.Version) error {
	return r.db.Create(version).Error
}

func (r *versionRepository) FindByID(id string) (*model.Version, error) {
	var version model.Version
	err := r.db.First(&version, "id = ?", id).Error
	return &version, err
}

func (r *versionRepository) FindAll(filter VersionFilter) ([]model.Version, int64, error) {
	query := r.db.Model(&model.Version{})
	if filter.ProjectID != "" {
		query = query.Where("project_id = ?", filter.ProjectID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var versions []model.Version
	err := query.Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&versions).Error
	return versions, total, err
}

func (r *versionRepository) Update(version *model.Version) error {
	return r.db.Save(version).Error
}

func (r *versionRepository) Delete(id string) error {
	return r.db.Delete(&model.Version{}, "id = ?", id).Error
}
