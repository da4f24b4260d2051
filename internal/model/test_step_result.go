package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestStepResult is write-once: rows are inserted with their run and never
// updated afterwards.
type TestStepResult struct {
	ID           string  `gorm:"type:uuid;primaryKey" json:"id"`
	TestRunID    string  `json:"test_run_id" gorm:"type:uuid;not null;index"`
	StepNumber   int     `json:"step_number" gorm:"not null"`
	Result       string  `json:"result" gorm:"not null"`
	ActualResult *string `json:"actual_result,omitempty" gorm:"type:text"`
	Notes        *string `json:"notes,omitempty" gorm:"type:text"`
	Screenshot   *string `json:"screenshot,omitempty"`
}

func (sr *TestStepResult) BeforeCreate(tx *gorm.DB) error {
	if sr.ID == "" {
		sr.ID = uuid.NewString()
	}
	return nil
}
