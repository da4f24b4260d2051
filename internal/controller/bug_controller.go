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

type BugController struct {
	bugService service.BugService
}

func NewBugController(bugService service.BugService) *BugController {
	return &BugController{bugService: bugService}
}

// Create godoc
// @Summary Report a bug
// @Tags Bugs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bug body dto.CreateBugRequest true "New bug"
// @Success 201 {object} response.Envelope{data=dto.BugResponse}
// @Failure 422 {object} response.Envelope
// @Router /bugs [post]
func (c *BugController) Create(ctx *gin.Context) {
	var req dto.CreateBugRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(ctx, "Invalid request body", err.Error())
		return
	}

	result, err := c.bugService.Create(req, ctx.GetString(middleware.ContextUserID))
	if err != nil {
		log.Warn().Err(err).Str("title", req.Title).Msg("CreateBug failed")
		respondServiceError(ctx, err, "Bug not found")
		return
	}
	response.Created(ctx, result)
}

// List godoc
// @Summary List bugs
// @Tags Bugs
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param severity query string false "Filter by severity"
// @Param priority query string false "Filter by priority"
// @Param assigned_to query string false "Filter by assignee"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope{data=[]dto.BugResponse}
// @Router /bugs [get]
func (c *BugController) List(ctx *gin.Context) {
	page, limit := parsePagination(ctx, 20)
	filter := repository.BugFilter{
		Status:     ctx.Query("status"),
		Severity:   ctx.Query("severity"),
		Priority:   ctx.Query("priority"),
		AssignedTo: ctx.Query("assigned_to"),
		Page:       page,
		Limit:      limit,
	}

	bugs, total, err := c.bugService.List(filter)
	if err != nil {
		log.Error().Err(err).Msg("ListBugs failed")
		response.ServerError(ctx, "Internal server error")
		return
	}
	response.Paginated(ctx, bugs, page, limit, total)
}

// Get godoc
// @Summary Get a bug with its comments
// @Tags Bugs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bug ID"
// @Success 200 {object} response.Envelope{data=dto.BugResponse}
// @Failure 404 {object} response.Envelope
// @Router /bugs/{id} [get]
func (c *BugController) Get(ctx *gin.Context) {
	result, err := c.bugService.Get(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err, "Bug not found")
		return
	}
	response.Success(ctx, result)
}

// Update godoc
// @Summary Update a bug
// @Description Transitions to RESOLVED or CLOSED stamp resolvedAt/closedAt the first time they happen.
// @Tags Bugs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bug ID"
// @Param bug body dto.UpdateBugRequest true "Fields to update"
// @Success 200 {object} response.Envelope{data=dto.BugResponse}
// @Failure 404 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /bugs/{id} [put]
func (c *BugController) Update(ctx *gin.Context) {
	var req dto.UpdateBugRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(ctx, "Invalid request body", err.Error())
		return
	}

	result, err := c.bugService.Update(ctx.Param("id"), req)
	if err != nil {
		respondServiceError(ctx, err, "Bug not found")
		return
	}
	response.Success(ctx, result)
}

// Delete godoc
// @Summary Delete a bug and its comments
// @Tags Bugs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bug ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /bugs/{id} [delete]
func (c *BugController) Delete(ctx *gin.Context) {
	if err := c.bugService.Delete(ctx.Param("id")); err != nil {
		respondServiceError(ctx, err, "Bug not found")
		return
	}
	response.SuccessWithMessage(ctx, nil, "Bug deleted")
}

// AddComment godoc
// @Summary Comment on a bug
// @Tags Bugs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bug ID"
// @Param comment body dto.AddBugCommentRequest true "Comment"
// @Success 201 {object} response.Envelope{data=dto.BugCommentResponse}
// @Failure 404 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /bugs/{id}/comments [post]
func (c *BugController) AddComment(ctx *gin.Context) {
	var req dto.AddBugCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(ctx, "Invalid request body", err.Error())
		return
	}

	result, err := c.bugService.AddComment(ctx.Param("id"), ctx.GetString(middleware.ContextUserID), req)
	if err != nil {
		respondServiceError(ctx, err, "Bug not found")
		return
	}
	response.Created(ctx, result)
}
