package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Version struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID   string    `json:"project_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null"` // e.g. "v2.4.0"
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedBy   *string   `json:"created_by,omitempty" gorm:"type:uuid"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (v *Version) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
