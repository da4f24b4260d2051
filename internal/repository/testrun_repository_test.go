package repository

import (
	"testing"
	"time"

	"github.com/hoangnln/testtrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestRunRepository_CreateWithStepResults(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTestRunRepository(db)
	project := createProject(t, db, "WEB", "Website")
	user := createUser(t, db, "tester")

	tc := &model.TestCase{ProjectID: &project.ID, Title: "Login"}
	require.NoError(t, NewTestCaseRepository(db).Create(tc))

	run := &model.TestRun{
		TestCaseID: tc.ID,
		ExecutedBy: user.ID,
		Result:     model.ResultFailed,
		StepResults: []model.TestStepResult{
			{StepNumber: 1, Result: model.ResultPassed},
			{StepNumber: 2, Result: model.ResultFailed},
		},
	}
	require.NoError(t, repo.Create(run))

	reloaded, err := repo.FindByID(run.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.StepResults, 2)
	assert.Equal(t, model.ResultPassed, reloaded.StepResults[0].Result)
	assert.Equal(t, model.ResultFailed, reloaded.StepResults[1].Result)
	assert.False(t, reloaded.ExecutedAt.IsZero())
}

func TestTestRunRepository_UpdateFieldsLeavesExecutedAtAlone(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTestRunRepository(db)
	project := createProject(t, db, "WEB", "Website")
	user := createUser(t, db, "tester")

	tc := &model.TestCase{ProjectID: &project.ID, Title: "Login"}
	require.NoError(t, NewTestCaseRepository(db).Create(tc))

	run := &model.TestRun{TestCaseID: tc.ID, ExecutedBy: user.ID, Result: model.ResultPending}
	require.NoError(t, repo.Create(run))

	before, err := repo.FindByID(run.ID)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.UpdateFields(run.ID, map[string]interface{}{
		"result": model.ResultPassed,
		"notes":  "works now",
	}))

	after, err := repo.FindByID(run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ResultPassed, after.Result)
	require.NotNil(t, after.Notes)
	assert.Equal(t, "works now", *after.Notes)
	assert.True(t, after.ExecutedAt.Equal(before.ExecutedAt))
}

func TestTestRunRepository_DeleteRemovesStepResults(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTestRunRepository(db)
	project := createProject(t, db, "WEB", "Website")
	user := createUser(t, db, "tester")

	tc := &model.TestCase{ProjectID: &project.ID, Title: "Login"}
	require.NoError(t, NewTestCaseRepository(db).Create(tc))

	run := &model.TestRun{
		TestCaseID:  tc.ID,
		ExecutedBy:  user.ID,
		Result:      model.ResultPassed,
		StepResults: []model.TestStepResult{{StepNumber: 1, Result: model.ResultPassed}},
	}
	require.NoError(t, repo.Create(run))

	require.NoError(t, repo.Delete(run.ID))

	var runs, results int64
	require.NoError(t, db.Model(&model.TestRun{}).Count(&runs).Error)
	require.NoError(t, db.Model(&model.TestStepResult{}).Count(&results).Error)
	assert.Zero(t, runs)
	assert.Zero(t, results)
}

func TestTestRunRepository_FindAllJoinsCaseTitle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTestRunRepository(db)
	project := createProject(t, db, "WEB", "Website")
	other := createProject(t, db, "MOB", "Mobile")
	user := createUser(t, db, "tester")
	tcRepo := NewTestCaseRepository(db)

	webCase := &model.TestCase{ProjectID: &project.ID, Title: "Web login"}
	require.NoError(t, tcRepo.Create(webCase))
	mobCase := &model.TestCase{ProjectID: &other.ID, Title: "Mobile login"}
	require.NoError(t, tcRepo.Create(mobCase))

	require.NoError(t, repo.Create(&model.TestRun{TestCaseID: webCase.ID, ExecutedBy: user.ID, Result: model.ResultPassed}))
	require.NoError(t, repo.Create(&model.TestRun{TestCaseID: mobCase.ID, ExecutedBy: user.ID, Result: model.ResultFailed}))

	runs, total, err := repo.FindAll(TestRunFilter{ProjectID: project.ID, Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, runs, 1)
	assert.Equal(t, "Web login", runs[0].TestCaseTitle)
}
