package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/hoangnln/testtrack/internal/dto"
	"github.com/hoangnln/testtrack/internal/model"
	"github.com/hoangnln/testtrack/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRunService(t *testing.T) (TestRunService, TestCaseService, *gorm.DB) {
	db := setupTestDB(t)
	tcRepo := repository.NewTestCaseRepository(db)
	runSvc := NewTestRunService(repository.NewTestRunRepository(db), tcRepo)
	caseSvc := NewTestCaseService(tcRepo, repository.NewProjectRepository(db))
	return runSvc, caseSvc, db
}

func TestTestRunService_CreateWithStepResults(t *testing.T) {
	runSvc, caseSvc, db := newTestRunService(t)
	project := createTestProject(t, db, "WEB")
	tester := createTestUser(t, db, "alice", "pw-not-used", true)

	tc, err := caseSvc.Create(dto.CreateTestCaseRequest{Title: "Login", ProjectID: &project.ID}, tester.ID)
	require.NoError(t, err)

	run, err := runSvc.Create(dto.CreateTestRunRequest{
		TestCaseID: tc.ID,
		Result:     model.ResultFailed,
		StepResults: []dto.StepResultRequest{
			{StepNumber: 1, Result: model.ResultPassed},
			{StepNumber: 2, Result: model.ResultFailed},
		},
	}, tester.ID)
	require.NoError(t, err)

	assert.Equal(t, tester.ID, run.ExecutedBy)
	assert.Equal(t, model.ResultFailed, run.Result)
	require.Len(t, run.StepResults, 2)
	assert.False(t, run.ExecutedAt.IsZero())
}

func TestTestRunService_CreateDefaultsToPending(t *testing.T) {
	runSvc, caseSvc, db := newTestRunService(t)
	project := createTestProject(t, db, "WEB")
	tester := createTestUser(t, db, "alice", "pw-not-used", true)

	tc, err := caseSvc.Create(dto.CreateTestCaseRequest{Title: "Login", ProjectID: &project.ID}, tester.ID)
	require.NoError(t, err)

	run, err := runSvc.Create(dto.CreateTestRunRequest{TestCaseID: tc.ID}, tester.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ResultPending, run.Result)
}

func TestTestRunService_CreateUnknownCase(t *testing.T) {
	runSvc, _, db := newTestRunService(t)
	tester := createTestUser(t, db, "alice", "pw-not-used", true)

	_, err := runSvc.Create(dto.CreateTestRunRequest{TestCaseID: uuid.NewString()}, tester.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTestRunService_UpdateKeepsExecutedAt(t *testing.T) {
	runSvc, caseSvc, db := newTestRunService(t)
	project := createTestProject(t, db, "WEB")
	tester := createTestUser(t, db, "alice", "pw-not-used", true)

	tc, err := caseSvc.Create(dto.CreateTestCaseRequest{Title: "Login", ProjectID: &project.ID}, tester.ID)
	require.NoError(t, err)
	run, err := runSvc.Create(dto.CreateTestRunRequest{TestCaseID: tc.ID}, tester.ID)
	require.NoError(t, err)

	passed := model.ResultPassed
	notes := "green after retry"
	updated, err := runSvc.Update(run.ID, dto.UpdateTestRunRequest{Result: &passed, Notes: &notes})
	require.NoError(t, err)

	assert.Equal(t, model.ResultPassed, updated.Result)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, notes, *updated.Notes)
	assert.True(t, updated.ExecutedAt.Equal(run.ExecutedAt))
}
