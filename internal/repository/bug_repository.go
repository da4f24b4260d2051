package repository

import (
	"github.com/hoangnln/testtrack/internal/model"
	"gorm.io/gorm"
)

type BugFilter struct {
	Status     string
	Severity   string
	Priority   string
	AssignedTo string
	Page       int
	Limit      int
}

type BugRepository interface {
	Create(bug *model.Bug) error
	FindByID(id string) (*model.Bug, error)
	FindAll(filter BugFilter) ([]model.Bug, int64, error)
	Update(bug *model.Bug) error
	Delete(id string) error
	AddComment(comment *model.BugComment) error
}

type bugRepository struct {
	db *gorm.DB
}

func NewBugRepository(db *gorm.DB) BugRepository {
	return &bugRepository{db: db}
}

func (r *bugRepository) Create(bug *model.Bug) error {
	return r.db.Create(bug).Error
}

func (r *bugRepository) FindByID(id string) (*model.Bug, error) {
	var bug model.Bug
	err := r.db.Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("bug_comments.created_at ASC")
	}).
		Preload("Comments.User").
		First(&bug, "id = ?", id).Error
	return &bug, err
}

func (r *bugRepository) FindAll(filter BugFilter) ([]model.Bug, int64, error) {
	query := r.db.Model(&model.Bug{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Severity != "" {
		query = query.Where("severity = ?", filter.Severity)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.AssignedTo != "" {
		query = query.Where("assigned_to = ?", filter.AssignedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bugs []model.Bug
	err := query.Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&bugs).Error
	return bugs, total, err
}

func (r *bugRepository) Update(bug *model.Bug) error {
	return r.db.Omit("Comments", "created_at").Save(bug).Error
}

func (r *bugRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bug_id = ?", id).Delete(&model.BugComment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Bug{}, "id = ?", id).Error
	})
}

func (r *bugRepository) AddComment(comment *model.BugComment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return err
	}
	return r.db.Preload("User").First(comment, "id = ?", comment.ID).Error
}
