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

type TestCaseController struct {
	testCaseService service.TestCaseService
}

func NewTestCaseController(testCaseService service.TestCaseService) *TestCaseController {
	return &TestCaseController{testCaseService: testCaseService}
}

// Create godoc
// @Summary Create a test case
// @Description Creates the case with its steps and allocates a sequential case code scoped to the owning project.
// @Tags Test Cases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test_case body dto.CreateTestCaseRequest true "New test case"
// @Success 201 {object} response.Envelope{data=dto.TestCaseResponse}
// @Failure 404 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /test-cases [post]
func (c *TestCaseController) Create(ctx *gin.Context) {
	var req dto.CreateTestCaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(ctx, "Invalid request body", err.Error())
		return
	}

	result, err := c.testCaseService.Create(req, ctx.GetString(middleware.ContextUserID))
	if err != nil {
		log.Warn().Err(err).Str("title", req.Title).Msg("CreateTestCase failed")
		respondServiceError(ctx, err, "Project not found")
		return
	}
	response.Created(ctx, result)
}

// List godoc
// @Summary List test cases
// @Tags Test Cases
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param priority query string false "Filter by priority"
// @Param module query string false "Filter by module name"
// @Param search query string false "Search in title and case code"
// @Param project_id query string false "Filter by project"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope{data=[]dto.TestCaseResponse}
// @Router /test-cases [get]
func (c *TestCaseController) List(ctx *gin.Context) {
	page, limit := parsePagination(ctx, 20)
	filter := repository.TestCaseFilter{
		Status:    ctx.Query("status"),
		Priority:  ctx.Query("priority"),
		Module:    ctx.Query("module"),
		Search:    ctx.Query("search"),
		ProjectID: ctx.Query("project_id"),
		Page:      page,
		Limit:     limit,
	}

	cases, total, err := c.testCaseService.List(filter)
	if err != nil {
		log.Error().Err(err).Msg("ListTestCases failed")
		response.ServerError(ctx, "Internal server error")
		return
	}
	response.Paginated(ctx, cases, page, limit, total)
}

// Stats godoc
// @Summary Aggregate test case counts by status, priority and module
// @Tags Test Cases
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=dto.TestCaseStatsResponse}
// @Router /test-cases/stats [get]
func (c *TestCaseController) Stats(ctx *gin.Context) {
	result, err := c.testCaseService.Stats()
	if err != nil {
		log.Error().Err(err).Msg("TestCaseStats failed")
		response.ServerError(ctx, "Internal server error")
		return
	}
	response.Success(ctx, result)
}

// Get godoc
// @Summary Get a test case with its steps
// @Tags Test Cases
// @Produce json
// @Security BearerAuth
// @Param id path string true "Test Case ID"
// @Success 200 {object} response.Envelope{data=dto.TestCaseResponse}
// @Failure 404 {object} response.Envelope
// @Router /test-cases/{id} [get]
func (c *TestCaseController) Get(ctx *gin.Context) {
	result, err := c.testCaseService.Get(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err, "Test case not found")
		return
	}
	response.Success(ctx, result)
}

// Update godoc
// @Summary Update a test case
// @Description Updates scalar fields; when steps are supplied they replace the existing step list. The case code is immutable.
// @Tags Test Cases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Test Case ID"
// @Param test_case body dto.UpdateTestCaseRequest true "Fields to update"
// @Success 200 {object} response.Envelope{data=dto.TestCaseResponse}
// @Failure 404 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /test-cases/{id} [put]
func (c *TestCaseController) Update(ctx *gin.Context) {
	var req dto.UpdateTestCaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(ctx, "Invalid request body", err.Error())
		return
	}

	result, err := c.testCaseService.Update(ctx.Param("id"), req)
	if err != nil {
		respondServiceError(ctx, err, "Test case not found")
		return
	}
	response.Success(ctx, result)
}

// Delete godoc
// @Summary Delete a test case and its steps
// @Tags Test Cases
// @Produce json
// @Security BearerAuth
// @Param id path string true "Test Case ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /test-cases/{id} [delete]
func (c *TestCaseController) Delete(ctx *gin.Context) {
	if err := c.testCaseService.Delete(ctx.Param("id")); err != nil {
		respondServiceError(ctx, err, "Test case not found")
		return
	}
	response.SuccessWithMessage(ctx, nil, "Test case deleted")
}
