package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
	Code        string     `json:"code" gorm:"uniqueIndex;not null"` // short upper-cased tag, e.g. "WEBSITE-REDESIGN"
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description,omitempty" gorm:"type:text"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	CreatedBy   *string    `json:"created_by,omitempty" gorm:"type:uuid;index"`
	TestCases   []TestCase `json:"test_cases,omitempty" gorm:"foreignKey:ProjectID"`
	Modules     []Module   `json:"modules,omitempty" gorm:"foreignKey:ProjectID"`
	Versions    []Version  `json:"versions,omitempty" gorm:"foreignKey:ProjectID"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
