package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/hoangnln/testtrack/internal/dto"
	"github.com/hoangnln/testtrack/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestCaseService(t *testing.T) (TestCaseService, *gorm.DB) {
	db := setupTestDB(t)
	svc := NewTestCaseService(repository.NewTestCaseRepository(db), repository.NewProjectRepository(db))
	return svc, db
}

func TestTestCaseService_CreateAppliesDefaultsAndSteps(t *testing.T) {
	svc, db := newTestCaseService(t)
	project := createTestProject(t, db, "WEB")
	creator := createTestUser(t, db, "alice", "pw-not-used", true)

	result, err := svc.Create(dto.CreateTestCaseRequest{
		Title:     "Login works",
		ProjectID: &project.ID,
		TestData:  map[string]interface{}{"username": "demo"},
		Tags:      []string{"smoke", "auth"},
		Steps: []dto.TestStepRequest{
			{Action: "Open login page"},
			{Action: "   "}, // blank actions are dropped
			{Action: "Submit credentials", ExpectedResult: "Dashboard shown"},
		},
	}, creator.ID)
	require.NoError(t, err)

	assert.Equal(t, "MEDIUM", result.Priority)
	assert.Equal(t, "TODO", result.Status)
	assert.Equal(t, "WEB-001", *result.CaseCode)
	assert.Equal(t, []string{"smoke", "auth"}, result.Tags)

	data, ok := result.TestData.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "demo", data["username"])

	require.Len(t, result.Steps, 2)
	assert.Equal(t, 1, result.Steps[0].StepNumber)
	assert.Equal(t, 2, result.Steps[1].StepNumber)
	assert.Equal(t, "Submit credentials", result.Steps[1].Action)
}

func TestTestCaseService_CreateUnknownProject(t *testing.T) {
	svc, db := newTestCaseService(t)
	creator := createTestUser(t, db, "alice", "pw-not-used", true)

	missing := uuid.NewString()
	_, err := svc.Create(dto.CreateTestCaseRequest{Title: "Nope", ProjectID: &missing}, creator.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTestCaseService_UpdateStepSemantics(t *testing.T) {
	svc, db := newTestCaseService(t)
	project := createTestProject(t, db, "WEB")
	creator := createTestUser(t, db, "alice", "pw-not-used", true)

	created, err := svc.Create(dto.CreateTestCaseRequest{
		Title:     "Checkout",
		ProjectID: &project.ID,
		Steps: []dto.TestStepRequest{
			{Action: "Open cart"},
			{Action: "Pay"},
		},
	}, creator.ID)
	require.NoError(t, err)

	// Absent steps leave the existing ones untouched.
	newTitle := "Checkout v2"
	updated, err := svc.Update(created.ID, dto.UpdateTestCaseRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Checkout v2", updated.Title)
	assert.Len(t, updated.Steps, 2)

	// A present-but-empty list removes them all.
	empty := []dto.TestStepRequest{}
	updated, err = svc.Update(created.ID, dto.UpdateTestCaseRequest{Steps: &empty})
	require.NoError(t, err)
	assert.Empty(t, updated.Steps)

	// And the case code never changes across updates.
	assert.Equal(t, *created.CaseCode, *updated.CaseCode)
}

func TestTestCaseService_DeleteMissing(t *testing.T) {
	svc, _ := newTestCaseService(t)
	assert.ErrorIs(t, svc.Delete(uuid.NewString()), ErrNotFound)
}
