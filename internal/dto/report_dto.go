package dto

import "time"

type DashboardOverview struct {
	TotalTestCases int     `json:"total_test_cases"`
	TotalTestRuns  int     `json:"total_test_runs"`
	PassRate       float64 `json:"pass_rate"`
	OpenBugs       int     `json:"open_bugs"`
	CriticalBugs   int     `json:"critical_bugs"`
}

type DashboardResults struct {
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Blocked int `json:"blocked"`
	Skipped int `json:"skipped"`
}

type ActivityEntry struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type DashboardReport struct {
	Overview       DashboardOverview `json:"overview"`
	TestResults    DashboardResults  `json:"test_results"`
	BugsBySeverity map[string]int    `json:"bugs_by_severity"`
	RecentActivity []ActivityEntry   `json:"recent_activity"`
}

type ModuleCoverage struct {
	Module    string `json:"module"`
	TestCases int    `json:"test_cases"`
}

type CoverageReport struct {
	ByModule []ModuleCoverage `json:"by_module"`
}

type BugSummary struct {
	TotalBugs    int `json:"total_bugs"`
	OpenBugs     int `json:"open_bugs"`
	ResolvedBugs int `json:"resolved_bugs"`
	ClosedBugs   int `json:"closed_bugs"`
}

type BugAnalyticsReport struct {
	Summary    BugSummary     `json:"summary"`
	BySeverity map[string]int `json:"by_severity"`
	ByType     map[string]int `json:"by_type"`
}

// UserActivityRun is one executed run joined with its tester, case and project.
type UserActivityRun struct {
	UserID        string    `json:"user_id"`
	Username      string    `json:"username"`
	TestRunID     string    `json:"test_run_id"`
	TestCaseID    string    `json:"test_case_id"`
	CaseCode      *string   `json:"case_code,omitempty"`
	TestCaseTitle string    `json:"test_case_title"`
	Module        string    `json:"module,omitempty"`
	Result        string    `json:"result"`
	Duration      *int      `json:"duration,omitempty"`
	Environment   string    `json:"environment,omitempty"`
	ExecutedAt    time.Time `json:"executed_at"`
	ProjectName   *string   `json:"project_name,omitempty"`
	ProjectCode   *string   `json:"project_code,omitempty"`
}

type UserActivityStats struct {
	UserID        string     `json:"user_id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	Role          string     `json:"role"`
	TotalTests    int        `json:"total_tests"`
	PassedTests   int        `json:"passed_tests"`
	FailedTests   int        `json:"failed_tests"`
	BlockedTests  int        `json:"blocked_tests"`
	SkippedTests  int        `json:"skipped_tests"`
	AvgDuration   *float64   `json:"avg_duration,omitempty"`
	FirstTestDate *time.Time `json:"first_test_date,omitempty"`
	LastTestDate  *time.Time `json:"last_test_date,omitempty"`
}

type UserAssignedStats struct {
	UserID          string `json:"user_id"`
	Username        string `json:"username"`
	AssignedCount   int    `json:"assigned_count"`
	TodoCount       int    `json:"todo_count"`
	InProgressCount int    `json:"in_progress_count"`
	ResolvedCount   int    `json:"resolved_count"`
}

type UserActivityReport struct {
	TestRuns      []UserActivityRun   `json:"test_runs"`
	UserStats     []UserActivityStats `json:"user_stats"`
	AssignedStats []UserAssignedStats `json:"assigned_stats"`
}

// UserActivityFilter narrows the activity report; zero values mean no filter.
type UserActivityFilter struct {
	ProjectID string
	UserID    string
	StartDate *time.Time
	EndDate   *time.Time
}
