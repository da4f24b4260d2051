package repository

import (
	"testing"

	"github.com/hoangnln/testtrack/internal/dto"
	"github.com/hoangnln/testtrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedReportData(t *testing.T, db *gorm.DB) (*model.Project, *model.User) {
	project := createProject(t, db, "WEB", "Website")
	user := createUser(t, db, "tester")
	tcRepo := NewTestCaseRepository(db)

	authCase := &model.TestCase{ProjectID: &project.ID, Title: "Login", Module: "auth", AssignedTo: &user.ID, Status: model.StatusTodo}
	require.NoError(t, tcRepo.Create(authCase))
	cartCase := &model.TestCase{ProjectID: &project.ID, Title: "Checkout", Module: "cart", Status: model.StatusResolved}
	require.NoError(t, tcRepo.Create(cartCase))

	results := []string{model.ResultPassed, model.ResultPassed, model.ResultPassed, model.ResultFailed}
	var lastRun *model.TestRun
	for _, result := range results {
		lastRun = &model.TestRun{TestCaseID: authCase.ID, ExecutedBy: user.ID, Result: result}
		require.NoError(t, db.Create(lastRun).Error)
	}

	bugs := []*model.Bug{
		{TestRunID: &lastRun.ID, Title: "Crash on login", Severity: model.PriorityCritical, Status: model.BugStatusOpen, Type: model.BugTypeFunctional, CreatedBy: user.ID},
		{Title: "Misaligned button", Severity: model.PriorityLow, Status: model.BugStatusResolved, Type: model.BugTypeUI, CreatedBy: user.ID},
	}
	for _, bug := range bugs {
		require.NoError(t, db.Create(bug).Error)
	}

	return project, user
}

func TestReportRepository_Dashboard(t *testing.T) {
	db := setupTestDB(t)
	seedReportData(t, db)
	repo := NewReportRepository(db)

	report, err := repo.Dashboard()
	require.NoError(t, err)

	assert.Equal(t, 2, report.Overview.TotalTestCases)
	assert.Equal(t, 4, report.Overview.TotalTestRuns)
	assert.Equal(t, 75.0, report.Overview.PassRate)
	assert.Equal(t, 1, report.Overview.OpenBugs)
	assert.Equal(t, 1, report.Overview.CriticalBugs)

	assert.Equal(t, 3, report.TestResults.Passed)
	assert.Equal(t, 1, report.TestResults.Failed)
	assert.Zero(t, report.TestResults.Blocked)

	assert.Equal(t, 1, report.BugsBySeverity[model.PriorityCritical])
	require.Len(t, report.RecentActivity, 4)
	assert.Equal(t, "TEST_RUN", report.RecentActivity[0].Type)
	assert.Contains(t, report.RecentActivity[0].Message, "Login")
}

func TestReportRepository_Coverage(t *testing.T) {
	db := setupTestDB(t)
	seedReportData(t, db)
	repo := NewReportRepository(db)

	report, err := repo.Coverage()
	require.NoError(t, err)
	require.Len(t, report.ByModule, 2)

	byModule := make(map[string]int)
	for _, row := range report.ByModule {
		byModule[row.Module] = row.TestCases
	}
	assert.Equal(t, 1, byModule["auth"])
	assert.Equal(t, 1, byModule["cart"])
}

func TestReportRepository_BugAnalytics(t *testing.T) {
	db := setupTestDB(t)
	seedReportData(t, db)
	repo := NewReportRepository(db)

	report, err := repo.BugAnalytics()
	require.NoError(t, err)

	assert.Equal(t, 2, report.Summary.TotalBugs)
	assert.Equal(t, 1, report.Summary.OpenBugs)
	assert.Equal(t, 1, report.Summary.ResolvedBugs)
	assert.Zero(t, report.Summary.ClosedBugs)

	assert.Equal(t, 1, report.BySeverity[model.PriorityCritical])
	assert.Equal(t, 1, report.ByType[model.BugTypeUI])
}

func TestReportRepository_UserActivity(t *testing.T) {
	db := setupTestDB(t)
	project, user := seedReportData(t, db)
	repo := NewReportRepository(db)

	report, err := repo.UserActivity(dto.UserActivityFilter{ProjectID: project.ID})
	require.NoError(t, err)

	require.Len(t, report.TestRuns, 4)
	assert.Equal(t, user.Username, report.TestRuns[0].Username)

	require.Len(t, report.UserStats, 1)
	stats := report.UserStats[0]
	assert.Equal(t, 4, stats.TotalTests)
	assert.Equal(t, 3, stats.PassedTests)
	assert.Equal(t, 1, stats.FailedTests)

	require.Len(t, report.AssignedStats, 1)
	assert.Equal(t, 1, report.AssignedStats[0].AssignedCount)
	assert.Equal(t, 1, report.AssignedStats[0].TodoCount)

	// Filtering on a user with no runs empties the run and stat lists.
	other := createUser(t, db, "idle")
	report, err = repo.UserActivity(dto.UserActivityFilter{ProjectID: project.ID, UserID: other.ID})
	require.NoError(t, err)
	assert.Empty(t, report.TestRuns)
	assert.Empty(t, report.UserStats)
}
