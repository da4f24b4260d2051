package repository

import (
	"math"
	"strings"
	"time"

	"github.com/hoangnln/testtrack/internal/dto"
	"github.com/hoangnln/testtrack/internal/model"
	"gorm.io/gorm"
)

// ReportRepository runs the aggregation queries behind the reporting
// endpoints. It reads across tables, so it works on the bare *gorm.DB rather
// than going through the per-entity repositories.
type ReportRepository interface {
	Dashboard() (*dto.DashboardReport, error)
	Coverage() (*dto.CoverageReport, error)
	BugAnalytics() (*dto.BugAnalyticsReport, error)
	UserActivity(filter dto.UserActivityFilter) (*dto.UserActivityReport, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Dashboard() (*dto.DashboardReport, error) {
	var totalCases, totalRuns int64
	if err := r.db.Model(&model.TestCase{}).Count(&totalCases).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.TestRun{}).Count(&totalRuns).Error; err != nil {
		return nil, err
	}

	results := dto.DashboardResults{}
	counts := map[string]*int{
		model.ResultPassed:  &results.Passed,
		model.ResultFailed:  &results.Failed,
		model.ResultBlocked: &results.Blocked,
		model.ResultSkipped: &results.Skipped,
	}
	for result, dest := range counts {
		var n int64
		if err := r.db.Model(&model.TestRun{}).Where("result = ?", result).Count(&n).Error; err != nil {
			return nil, err
		}
		*dest = int(n)
	}

	passRate := 0.0
	if totalRuns > 0 {
		passRate = math.Round(float64(results.Passed)/float64(totalRuns)*10000) / 100
	}

	var openBugs, criticalBugs int64
	openStatuses := []string{model.BugStatusOpen, model.BugStatusInProgress}
	if err := r.db.Model(&model.Bug{}).Where("status IN ?", openStatuses).Count(&openBugs).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Bug{}).
		Where("severity = ? AND status IN ?", model.PriorityCritical, openStatuses).
		Count(&criticalBugs).Error; err != nil {
		return nil, err
	}

	var severityRows []struct {
		Severity string
		Count    int
	}
	if err := r.db.Model(&model.Bug{}).
		Select("severity, COUNT(*) AS count").
		Where("status IN ?", openStatuses).
		Group("severity").
		Scan(&severityRows).Error; err != nil {
		return nil, err
	}
	bySeverity := make(map[string]int, len(severityRows))
	for _, row := range severityRows {
		bySeverity[row.Severity] = row.Count
	}

	var activityRows []struct {
		Title      string
		Result     string
		ExecutedAt time.Time
	}
	if err := r.db.Model(&model.TestRun{}).
		Select("test_cases.title AS title, test_runs.result AS result, test_runs.executed_at AS executed_at").
		Joins("LEFT JOIN test_cases ON test_cases.id = test_runs.test_case_id").
		Order("test_runs.executed_at DESC").
		Limit(10).
		Scan(&activityRows).Error; err != nil {
		return nil, err
	}
	activity := make([]dto.ActivityEntry, 0, len(activityRows))
	for _, row := range activityRows {
		activity = append(activity, dto.ActivityEntry{
			Type:      "TEST_RUN",
			Message:   "Test \"" + row.Title + "\" " + strings.ToLower(row.Result),
			Timestamp: row.ExecutedAt,
		})
	}

	return &dto.DashboardReport{
		Overview: dto.DashboardOverview{
			TotalTestCases: int(totalCases),
			TotalTestRuns:  int(totalRuns),
			PassRate:       passRate,
			OpenBugs:       int(openBugs),
			CriticalBugs:   int(criticalBugs),
		},
		TestResults:    results,
		BugsBySeverity: bySeverity,
		RecentActivity: activity,
	}, nil
}

func (r *reportRepository) Coverage() (*dto.CoverageReport, error) {
	var rows []dto.ModuleCoverage
	err := r.db.Model(&model.TestCase{}).
		Select("module, COUNT(*) AS test_cases").
		Where("module <> ''").
		Group("module").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return &dto.CoverageReport{ByModule: rows}, nil
}

func (r *reportRepository) BugAnalytics() (*dto.BugAnalyticsReport, error) {
	summary := dto.BugSummary{}
	var total int64
	if err := r.db.Model(&model.Bug{}).Count(&total).Error; err != nil {
		return nil, err
	}
	summary.TotalBugs = int(total)

	statusCounts := map[string]*int{
		model.BugStatusOpen:     &summary.OpenBugs,
		model.BugStatusResolved: &summary.ResolvedBugs,
		model.BugStatusClosed:   &summary.ClosedBugs,
	}
	for status, dest := range statusCounts {
		var n int64
		if err := r.db.Model(&model.Bug{}).Where("status = ?", status).Count(&n).Error; err != nil {
			return nil, err
		}
		*dest = int(n)
	}

	bySeverity, err := r.bugGroupCount("severity")
	if err != nil {
		return nil, err
	}
	byType, err := r.bugGroupCount("type")
	if err != nil {
		return nil, err
	}

	return &dto.BugAnalyticsReport{Summary: summary, BySeverity: bySeverity, ByType: byType}, nil
}

func (r *reportRepository) bugGroupCount(column string) (map[string]int, error) {
	var rows []struct {
		Key   string
		Count int
	}
	err := r.db.Model(&model.Bug{}).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make(map[string]int, len(rows))
	for _, row := range rows {
		result[row.Key] = row.Count
	}
	return result, nil
}

func (r *reportRepository) UserActivity(filter dto.UserActivityFilter) (*dto.UserActivityReport, error) {
	runQuery := r.db.Model(&model.TestRun{}).
		Joins("INNER JOIN users ON users.id = test_runs.executed_by").
		Joins("INNER JOIN test_cases ON test_cases.id = test_runs.test_case_id").
		Joins("LEFT JOIN projects ON projects.id = test_cases.project_id")
	runQuery = applyActivityFilter(runQuery, filter)

	var runs []dto.UserActivityRun
	err := runQuery.
		Select(`users.id AS user_id, users.username AS username,
			test_runs.id AS test_run_id, test_runs.test_case_id AS test_case_id,
			test_cases.case_code AS case_code, test_cases.title AS test_case_title,
			test_cases.module AS module, test_runs.result AS result,
			test_runs.duration AS duration, test_runs.environment AS environment,
			test_runs.executed_at AS executed_at,
			projects.name AS project_name, projects.code AS project_code`).
		Order("test_runs.executed_at DESC").
		Scan(&runs).Error
	if err != nil {
		return nil, err
	}

	statsQuery := r.db.Model(&model.TestRun{}).
		Joins("INNER JOIN users ON users.id = test_runs.executed_by").
		Joins("INNER JOIN test_cases ON test_cases.id = test_runs.test_case_id")
	statsQuery = applyActivityFilter(statsQuery, filter)

	var stats []dto.UserActivityStats
	err = statsQuery.
		Select(`users.id AS user_id, users.username AS username, users.email AS email, users.role AS role,
			COUNT(test_runs.id) AS total_tests,
			SUM(CASE WHEN test_runs.result = 'PASSED' THEN 1 ELSE 0 END) AS passed_tests,
			SUM(CASE WHEN test_runs.result = 'FAILED' THEN 1 ELSE 0 END) AS failed_tests,
			SUM(CASE WHEN test_runs.result = 'BLOCKED' THEN 1 ELSE 0 END) AS blocked_tests,
			SUM(CASE WHEN test_runs.result = 'SKIPPED' THEN 1 ELSE 0 END) AS skipped_tests,
			AVG(test_runs.duration) AS avg_duration,
			MIN(test_runs.executed_at) AS first_test_date,
			MAX(test_runs.executed_at) AS last_test_date`).
		Group("users.id, users.username, users.email, users.role").
		Order("total_tests DESC").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}

	assignedQuery := r.db.Model(&model.TestCase{}).
		Joins("INNER JOIN users ON users.id = test_cases.assigned_to")
	if filter.ProjectID != "" {
		assignedQuery = assignedQuery.Where("test_cases.project_id = ?", filter.ProjectID)
	}

	var assigned []dto.UserAssignedStats
	err = assignedQuery.
		Select(`users.id AS user_id, users.username AS username,
			COUNT(test_cases.id) AS assigned_count,
			SUM(CASE WHEN test_cases.status = 'TODO' THEN 1 ELSE 0 END) AS todo_count,
			SUM(CASE WHEN test_cases.status = 'IN_PROGRESS' THEN 1 ELSE 0 END) AS in_progress_count,
			SUM(CASE WHEN test_cases.status = 'RESOLVED' THEN 1 ELSE 0 END) AS resolved_count`).
		Group("users.id, users.username").
		Scan(&assigned).Error
	if err != nil {
		return nil, err
	}

	return &dto.UserActivityReport{TestRuns: runs, UserStats: stats, AssignedStats: assigned}, nil
}

func applyActivityFilter(query *gorm.DB, filter dto.UserActivityFilter) *gorm.DB {
	if filter.ProjectID != "" {
		query = query.Where("test_cases.project_id = ?", filter.ProjectID)
	}
	if filter.UserID != "" {
		query = query.Where("test_runs.executed_by = ?", filter.UserID)
	}
	if filter.StartDate != nil {
		query = query.Where("test_runs.executed_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("test_runs.executed_at <= ?", *filter.EndDate)
	}
	return query
}
