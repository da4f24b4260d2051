package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ResultPending = "PENDING"
	ResultPassed  = "PASSED"
	ResultFailed  = "FAILED"
	ResultBlocked = "BLOCKED"
	ResultSkipped = "SKIPPED"
)

// TestRun records one execution of a test case. ExecutedAt is set at creation
// and is excluded from every update path.
type TestRun struct {
	ID           string           `gorm:"type:uuid;primaryKey" json:"id"`
	TestCaseID   string           `json:"test_case_id" gorm:"type:uuid;not null;index"`
	ExecutedBy   string           `json:"executed_by" gorm:"type:uuid;not null;index"`
	Result       string           `json:"result" gorm:"default:'PENDING'"`
	Duration     *int             `json:"duration,omitempty"` // seconds
	Environment  string           `json:"environment,omitempty"`
	BuildVersion *string          `json:"build_version,omitempty"`
	Notes        *string          `json:"notes,omitempty" gorm:"type:text"`
	ActualResult *string          `json:"actual_result,omitempty" gorm:"type:text"`
	StepResults  []TestStepResult `json:"step_results,omitempty" gorm:"foreignKey:TestRunID"`
	ExecutedAt   time.Time        `json:"executed_at" gorm:"autoCreateTime"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func (tr *TestRun) BeforeCreate(tx *gorm.DB) error {
	if tr.ID == "" {
		tr.ID = uuid.NewString()
	}
	return nil
}
