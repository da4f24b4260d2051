package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/hoangnln/testtrack/internal/dto"
	"github.com/hoangnln/testtrack/internal/middleware"
	"github.com/hoangnln/testtrack/internal/repository"
	"github.com/hoangnln/testtrack/internal/response"
	"github.com/hoangnln/testtrack/internal/service"
	"github.com/rs/zerolog/log"
)

type TestRunController struct {
	testRunService service.TestRunService
}

func NewTestRunController(testRunService service.TestRunService) *TestRunController {
	return &TestRunController{testRunService: testRunService}
}

// Create godoc
// @Summary Record a test run
// @Description Records an execution of a test case, optionally with per-step results.
// @Tags Test Runs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test_run body dto.CreateTestRunRequest true "New test run"
// @Success 201 {object} response.Envelope{data=dto.TestRunResponse}
// @Failure 404 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /test-runs [post]
func (c *TestRunController) Create(ctx *gin.Context) {
	var req dto.CreateTestRunRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(ctx, "Invalid request body", err.Error())
		return
	}

	result, err := c.testRunService.Create(req, ctx.GetString(middleware.ContextUserID))
	if err != nil {
		log.Warn().Err(err).Str("testCaseId", req.TestCaseID).Msg("CreateTestRun failed")
		respondServiceError(ctx, err, "Test case not found")
		return
	}
	response.Created(ctx, result)
}

// List godoc
// @Summary List test runs
// @Tags Test Runs
// @Produce json
// @Security BearerAuth
// @Param result query string false "Filter by result"
// @Param test_case_id query string false "Filter by test case"
// @Param environment query string false "Filter by environment"
// @Param executed_by query string false "Filter by executing user"
// @Param project_id query string false "Filter by project"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope{data=[]dto.TestRunResponse}
// @Router /test-runs [get]
func (c *TestRunController) List(ctx *gin.Context) {
	page, limit := parsePagination(ctx, 20)
	filter := repository.TestRunFilter{
		Result:      ctx.Query("result"),
		TestCaseID:  ctx.Query("test_case_id"),
		Environment: ctx.Query("environment"),
		ExecutedBy:  ctx.Query("executed_by"),
		ProjectID:   ctx.Query("project_id"),
		Page:        page,
		Limit:       limit,
	}

	runs, total, err := c.testRunService.List(filter)
	if err != nil {
		log.Error().Err(err).Msg("ListTestRuns failed")
		response.ServerError(ctx, "Internal server error")
		return
	}
	response.Paginated(ctx, runs, page, limit, total)
}

// Get godoc
// @Summary Get a test run with its step results
// @Tags Test Runs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Test Run ID"
// @Success 200 {object} response.Envelope{data=dto.TestRunResponse}
// @Failure 404 {object} response.Envelope
// @Router /test-runs/{id} [get]
func (c *TestRunController) Get(ctx *gin.Context) {
	result, err := c.testRunService.Get(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err, "Test run not found")
		return
	}
	response.Success(ctx, result)
}

// Update godoc
// @Summary Update a test run
// @Description Only result, duration, notes and actual result can change; the execution timestamp is immutable.
// @Tags Test Runs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Test Run ID"
// @Param test_run body dto.UpdateTestRunRequest true "Fields to update"
// @Success 200 {object} response.Envelope{data=dto.TestRunResponse}
// @Failure 404 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /test-runs/{id} [put]
func (c *TestRunController) Update(ctx *gin.Context) {
	var req dto.UpdateTestRunRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(ctx, "Invalid request body", err.Error())
		return
	}

	result, err := c.testRunService.Update(ctx.Param("id"), req)
	if err != nil {
		respondServiceError(ctx, err, "Test run not found")
		return
	}
	response.Success(ctx, result)
}

// Delete godoc
// @Summary Delete a test run and its step results
// @Tags Test Runs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Test Run ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /test-runs/{id} [delete]
func (c *TestRunController) Delete(ctx *gin.Context) {
	if err := c.testRunService.Delete(ctx.Param("id")); err != nil {
		respondServiceError(ctx, err, "Test run not found")
		return
	}
	response.SuccessWithMessage(ctx, nil, "Test run deleted")
}
