package dto

import "time"

type UserResponse struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FirstName   *string    `json:"first_name,omitempty"`
	LastName    *string    `json:"last_name,omitempty"`
	Role        string     `json:"role"`
	Avatar      *string    `json:"avatar,omitempty"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // seconds
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

type ProjectResponse struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedBy     *string   `json:"created_by,omitempty"`
	TestCaseCount int       `json:"test_case_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ModuleResponse struct {
	ID            string    `json:"id"`
	ProjectID     string    `json:"project_id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedBy     *string   `json:"created_by,omitempty"`
	TestCaseCount int       `json:"test_case_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type VersionResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedBy   *string   `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TestStepResponse struct {
	ID             string `json:"id"`
	StepNumber     int    `json:"step_number"`
	Action         string `json:"action"`
	ExpectedResult string `json:"expected_result,omitempty"`
}

type TestCaseResponse struct {
	ID             string             `json:"id"`
	CaseCode       *string            `json:"case_code,omitempty"`
	ProjectID      *string            `json:"project_id,omitempty"`
	Title          string             `json:"title"`
	Description    string             `json:"description,omitempty"`
	Priority       string             `json:"priority"`
	Status         string             `json:"status"`
	Module         string             `json:"module,omitempty"`
	ExpectedResult string             `json:"expected_result,omitempty"`
	Preconditions  *string            `json:"preconditions,omitempty"`
	Postconditions *string            `json:"postconditions,omitempty"`
	TestData       interface{}        `json:"test_data,omitempty"`
	Tags           []string           `json:"tags,omitempty"`
	EstimatedTime  *int               `json:"estimated_time,omitempty"`
	AssignedTo     *string            `json:"assigned_to,omitempty"`
	CreatedBy      *string            `json:"created_by,omitempty"`
	Steps          []TestStepResponse `json:"steps,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

type TestCaseStatsResponse struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"by_status"`
	ByPriority map[string]int `json:"by_priority"`
	ByModule   map[string]int `json:"by_module"`
}

type StepResultResponse struct {
	ID           string  `json:"id"`
	StepNumber   int     `json:"step_number"`
	Result       string  `json:"result"`
	ActualResult *string `json:"actual_result,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	Screenshot   *string `json:"screenshot,omitempty"`
}

type TestRunResponse struct {
	ID            string               `json:"id"`
	TestCaseID    string               `json:"test_case_id"`
	TestCaseTitle string               `json:"test_case_title,omitempty"`
	ExecutedBy    string               `json:"executed_by"`
	Result        string               `json:"result"`
	Duration      *int                 `json:"duration,omitempty"`
	Environment   string               `json:"environment,omitempty"`
	BuildVersion  *string              `json:"build_version,omitempty"`
	Notes         *string              `json:"notes,omitempty"`
	ActualResult  *string              `json:"actual_result,omitempty"`
	StepResults   []StepResultResponse `json:"step_results,omitempty"`
	ExecutedAt    time.Time            `json:"executed_at"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

type BugCommentResponse struct {
	ID        string    `json:"id"`
	BugID     string    `json:"bug_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username,omitempty"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type BugResponse struct {
	ID               string               `json:"id"`
	TestRunID        *string              `json:"test_run_id,omitempty"`
	Title            string               `json:"title"`
	Description      string               `json:"description,omitempty"`
	Severity         string               `json:"severity"`
	Priority         string               `json:"priority"`
	Status           string               `json:"status"`
	Type             string               `json:"type"`
	StepsToReproduce *string              `json:"steps_to_reproduce,omitempty"`
	Environment      *string              `json:"environment,omitempty"`
	BuildVersion     *string              `json:"build_version,omitempty"`
	CreatedBy        string               `json:"created_by"`
	AssignedTo       *string              `json:"assigned_to,omitempty"`
	ResolvedAt       *time.Time           `json:"resolved_at,omitempty"`
	ClosedAt         *time.Time           `json:"closed_at,omitempty"`
	Comments         []BugCommentResponse `json:"comments,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}
