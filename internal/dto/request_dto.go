package dto

// --- Auth ---

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// --- Users ---

type CreateUserRequest struct {
	Username  string  `json:"username" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=8"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Role      string  `json:"role" binding:"omitempty,oneof=ADMIN TESTER VIEWER"`
}

type UpdateUserRequest struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password" binding:"omitempty,min=8"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Avatar    *string `json:"avatar"`
	Role      *string `json:"role" binding:"omitempty,oneof=ADMIN TESTER VIEWER"`
	IsActive  *bool   `json:"is_active"`
}

// --- Projects ---

type CreateProjectRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

type UpdateProjectRequest struct {
	Code        *string `json:"code"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// --- Modules / Versions ---

type CreateModuleRequest struct {
	ProjectID   string  `json:"project_id" binding:"required,uuid"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type UpdateModuleRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type CreateVersionRequest struct {
	ProjectID   string  `json:"project_id" binding:"required,uuid"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type UpdateVersionRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// --- Test cases ---

type TestStepRequest struct {
	StepNumber     int    `json:"step_number"`
	Action         string `json:"action" binding:"required"`
	ExpectedResult string `json:"expected_result"`
}

type CreateTestCaseRequest struct {
	Title          string            `json:"title" binding:"required"`
	Description    string            `json:"description"`
	Priority       string            `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Status         string            `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS RESOLVED"`
	Module         string            `json:"module"`
	ExpectedResult string            `json:"expected_result"`
	Preconditions  *string           `json:"preconditions"`
	Postconditions *string           `json:"postconditions"`
	TestData       interface{}       `json:"test_data"`
	Tags           []string          `json:"tags"`
	EstimatedTime  *int              `json:"estimated_time"`
	ProjectID      *string           `json:"project_id" binding:"omitempty,uuid"`
	AssignedTo     *string           `json:"assigned_to" binding:"omitempty,uuid"`
	Steps          []TestStepRequest `json:"steps" binding:"omitempty,dive"`
}

// UpdateTestCaseRequest distinguishes "steps absent" (leave them untouched)
// from "steps present but empty" (delete them all) via the pointer.
type UpdateTestCaseRequest struct {
	Title          *string            `json:"title"`
	Description    *string            `json:"description"`
	Priority       *string            `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Status         *string            `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS RESOLVED"`
	Module         *string            `json:"module"`
	ExpectedResult *string            `json:"expected_result"`
	Preconditions  *string            `json:"preconditions"`
	Postconditions *string            `json:"postconditions"`
	TestData       interface{}        `json:"test_data"`
	Tags           []string           `json:"tags"`
	EstimatedTime  *int               `json:"estimated_time"`
	AssignedTo     *string            `json:"assigned_to" binding:"omitempty,uuid"`
	Steps          *[]TestStepRequest `json:"steps" binding:"omitempty,dive"`
}

// --- Test runs ---

type StepResultRequest struct {
	StepNumber   int     `json:"step_number" binding:"required,min=1"`
	Result       string  `json:"result" binding:"required,oneof=PENDING PASSED FAILED BLOCKED SKIPPED"`
	ActualResult *string `json:"actual_result"`
	Notes        *string `json:"notes"`
	Screenshot   *string `json:"screenshot"`
}

type CreateTestRunRequest struct {
	TestCaseID   string              `json:"test_case_id" binding:"required,uuid"`
	Result       string              `json:"result" binding:"omitempty,oneof=PENDING PASSED FAILED BLOCKED SKIPPED"`
	Duration     *int                `json:"duration"`
	Environment  string              `json:"environment"`
	BuildVersion *string             `json:"build_version"`
	Notes        *string             `json:"notes"`
	ActualResult *string             `json:"actual_result"`
	StepResults  []StepResultRequest `json:"step_results" binding:"omitempty,dive"`
}

type UpdateTestRunRequest struct {
	Result       *string `json:"result" binding:"omitempty,oneof=PENDING PASSED FAILED BLOCKED SKIPPED"`
	Duration     *int    `json:"duration"`
	Notes        *string `json:"notes"`
	ActualResult *string `json:"actual_result"`
}

// --- Bugs ---

type CreateBugRequest struct {
	TestRunID        *string `json:"test_run_id" binding:"omitempty,uuid"`
	Title            string  `json:"title" binding:"required"`
	Description      string  `json:"description"`
	Severity         string  `json:"severity" binding:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Priority         string  `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Status           string  `json:"status" binding:"omitempty,oneof=OPEN IN_PROGRESS RESOLVED CLOSED"`
	Type             string  `json:"type" binding:"omitempty,oneof=FUNCTIONAL UI PERFORMANCE SECURITY"`
	StepsToReproduce *string `json:"steps_to_reproduce"`
	Environment      *string `json:"environment"`
	BuildVersion     *string `json:"build_version"`
	AssignedTo       *string `json:"assigned_to" binding:"omitempty,uuid"`
}

type UpdateBugRequest struct {
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	Severity         *string `json:"severity" binding:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Priority         *string `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Status           *string `json:"status" binding:"omitempty,oneof=OPEN IN_PROGRESS RESOLVED CLOSED"`
	Type             *string `json:"type" binding:"omitempty,oneof=FUNCTIONAL UI PERFORMANCE SECURITY"`
	StepsToReproduce *string `json:"steps_to_reproduce"`
	AssignedTo       *string `json:"assigned_to" binding:"omitempty,uuid"`
}

type AddBugCommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}
