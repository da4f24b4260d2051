package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BugStatusOpen       = "OPEN"
	BugStatusInProgress = "IN_PROGRESS"
	BugStatusResolved   = "RESOLVED"
	BugStatusClosed     = "CLOSED"
)

const (
	BugTypeFunctional  = "FUNCTIONAL"
	BugTypeUI          = "UI"
	BugTypePerformance = "PERFORMANCE"
	BugTypeSecurity    = "SECURITY"
)

type Bug struct {
	ID               string       `gorm:"type:uuid;primaryKey" json:"id"`
	TestRunID        *string      `json:"test_run_id,omitempty" gorm:"type:uuid;index"`
	Title            string       `json:"title" gorm:"not null"`
	Description      string       `json:"description,omitempty" gorm:"type:text"`
	Severity         string       `json:"severity" gorm:"default:'MEDIUM'"`
	Priority         string       `json:"priority" gorm:"default:'MEDIUM'"`
	Status           string       `json:"status" gorm:"default:'OPEN'"`
	Type             string       `json:"type" gorm:"default:'FUNCTIONAL'"`
	StepsToReproduce *string      `json:"steps_to_reproduce,omitempty" gorm:"type:text"`
	Environment      *string      `json:"environment,omitempty"`
	BuildVersion     *string      `json:"build_version,omitempty"`
	CreatedBy        string       `json:"created_by" gorm:"type:uuid;not null;index"`
	AssignedTo       *string      `json:"assigned_to,omitempty" gorm:"type:uuid;index"`
	ResolvedAt       *time.Time   `json:"resolved_at,omitempty"`
	ClosedAt         *time.Time   `json:"closed_at,omitempty"`
	Comments         []BugComment `json:"comments,omitempty" gorm:"foreignKey:BugID"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

func (b *Bug) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
