package repository

import (
	"testing"

	"github.com/hoangnln/testtrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// seedProjectTree creates a project with a module, a version, a test case with
// steps, a run with step results, and a bug with a comment.
func seedProjectTree(t *testing.T, db *gorm.DB, code string) *model.Project {
	project := createProject(t, db, code, code+" project")
	user := createUser(t, db, code+"-tester")

	require.NoError(t, db.Create(&model.Module{ProjectID: project.ID, Name: "auth", IsActive: true}).Error)
	require.NoError(t, db.Create(&model.Version{ProjectID: project.ID, Name: "v1.0.0", IsActive: true}).Error)

	tc := &model.TestCase{ProjectID: &project.ID, Title: "Case under " + code}
	require.NoError(t, NewTestCaseRepository(db).Create(tc))
	require.NoError(t, db.Create(&model.TestStep{TestCaseID: tc.ID, StepNumber: 1, Action: "Do the thing"}).Error)

	run := &model.TestRun{TestCaseID: tc.ID, ExecutedBy: user.ID, Result: model.ResultFailed}
	require.NoError(t, db.Create(run).Error)
	require.NoError(t, db.Create(&model.TestStepResult{TestRunID: run.ID, StepNumber: 1, Result: model.ResultFailed}).Error)

	bug := &model.Bug{TestRunID: &run.ID, Title: "Bug under " + code, CreatedBy: user.ID}
	require.NoError(t, db.Create(bug).Error)
	require.NoError(t, db.Create(&model.BugComment{BugID: bug.ID, UserID: user.ID, Comment: "still broken"}).Error)

	return project
}

func TestProjectRepository_DeleteCascadeRemovesEverything(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)

	doomed := seedProjectTree(t, db, "WEB")
	survivor := seedProjectTree(t, db, "MOB")

	require.NoError(t, repo.DeleteCascade(doomed.ID))

	// Every table keeps exactly the survivor's rows.
	counts := map[string]interface{}{
		"projects":          &model.Project{},
		"modules":           &model.Module{},
		"versions":          &model.Version{},
		"test_cases":        &model.TestCase{},
		"test_steps":        &model.TestStep{},
		"test_runs":         &model.TestRun{},
		"test_step_results": &model.TestStepResult{},
		"bugs":              &model.Bug{},
		"bug_comments":      &model.BugComment{},
	}
	for table, mdl := range counts {
		var n int64
		require.NoError(t, db.Model(mdl).Count(&n).Error)
		assert.Equal(t, int64(1), n, "table %s", table)
	}

	// The deleted project's counter scope goes too; only the survivor's stays.
	var counters []model.CaseCodeCounter
	require.NoError(t, db.Find(&counters).Error)
	require.Len(t, counters, 1)
	assert.Equal(t, survivor.ID, counters[0].Scope)

	_, err := repo.FindByID(doomed.ID)
	assert.Error(t, err)
	reloaded, err := repo.FindByID(survivor.ID)
	require.NoError(t, err)
	assert.Equal(t, survivor.ID, reloaded.ID)
}

func TestProjectRepository_DeleteCascadeRollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)

	project := seedProjectTree(t, db, "WEB")

	// Dropping a table mid-way makes one of the cascade's deletes fail; the
	// earlier deletes must roll back with it.
	require.NoError(t, db.Migrator().DropTable(&model.Version{}))

	err := repo.DeleteCascade(project.ID)
	require.Error(t, err)

	var cases, steps, results int64
	require.NoError(t, db.Model(&model.TestCase{}).Count(&cases).Error)
	require.NoError(t, db.Model(&model.TestStep{}).Count(&steps).Error)
	require.NoError(t, db.Model(&model.TestStepResult{}).Count(&results).Error)
	assert.Equal(t, int64(1), cases)
	assert.Equal(t, int64(1), steps)
	assert.Equal(t, int64(1), results)

	reloaded, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, project.ID, reloaded.ID)
}

func TestProjectRepository_FindByIDCountsTestCases(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	project := createProject(t, db, "WEB", "Website")
	tcRepo := NewTestCaseRepository(db)

	for _, title := range []string{"one", "two", "three"} {
		require.NoError(t, tcRepo.Create(&model.TestCase{ProjectID: &project.ID, Title: title}))
	}

	result, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, result.TestCaseCount)
}
