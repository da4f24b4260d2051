package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PriorityLow      = "LOW"
	PriorityMedium   = "MEDIUM"
	PriorityHigh     = "HIGH"
	PriorityCritical = "CRITICAL"
)

const (
	StatusTodo       = "TODO"
	StatusInProgress = "IN_PROGRESS"
	StatusResolved   = "RESOLVED"
)

// TestCase is the central entity. CaseCode is assigned once at creation by the
// allocator in the test case repository and is never recomputed; the composite
// unique index backs the allocator's insert-and-retry loop.
type TestCase struct {
	ID             string     `gorm:"type:uuid;primaryKey" json:"id"`
	CaseCode       *string    `json:"case_code,omitempty" gorm:"uniqueIndex:idx_test_cases_scope_code"`
	ProjectID      *string    `json:"project_id,omitempty" gorm:"type:uuid;index;uniqueIndex:idx_test_cases_scope_code"`
	Title          string     `json:"title" gorm:"not null"`
	Description    string     `json:"description,omitempty" gorm:"type:text"`
	Priority       string     `json:"priority" gorm:"default:'MEDIUM'"`
	Status         string     `json:"status" gorm:"default:'TODO'"`
	Module         string     `json:"module,omitempty"`
	ExpectedResult string     `json:"expected_result,omitempty" gorm:"type:text"`
	Preconditions  *string    `json:"preconditions,omitempty" gorm:"type:text"`
	Postconditions *string    `json:"postconditions,omitempty" gorm:"type:text"`
	TestData       *string    `json:"test_data,omitempty" gorm:"type:text"` // JSON blob
	Tags           *string    `json:"tags,omitempty" gorm:"type:text"`      // JSON array
	EstimatedTime  *int       `json:"estimated_time,omitempty"`             // minutes
	AssignedTo     *string    `json:"assigned_to,omitempty" gorm:"type:uuid;index"`
	CreatedBy      *string    `json:"created_by,omitempty" gorm:"type:uuid;index"`
	Steps          []TestStep `json:"steps,omitempty" gorm:"foreignKey:TestCaseID"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (tc *TestCase) BeforeCreate(tx *gorm.DB) error {
	if tc.ID == "" {
		tc.ID = uuid.NewString()
	}
	return nil
}
