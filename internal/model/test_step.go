package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestStep rows are replaced wholesale when a test case's steps are updated,
// never diffed in place.
type TestStep struct {
	ID             string `gorm:"type:uuid;primaryKey" json:"id"`
	TestCaseID     string `json:"test_case_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_test_steps_case_number"`
	StepNumber     int    `json:"step_number" gorm:"not null;uniqueIndex:idx_test_steps_case_number"`
	Action         string `json:"action" gorm:"type:text;not null"`
	ExpectedResult string `json:"expected_result,omitempty" gorm:"type:text"`
}

func (ts *TestStep) BeforeCreate(tx *gorm.DB) error {
	if ts.ID == "" {
		ts.ID = uuid.NewString()
	}
	return nil
}
