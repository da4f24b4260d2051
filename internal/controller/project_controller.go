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

type ProjectController struct {
	projectService service.ProjectService
}

func NewProjectController(projectService service.ProjectService) *ProjectController {
	return &ProjectController{projectService: projectService}
}

// Create godoc
// @Summary Create a project
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param project body dto.CreateProjectRequest true "New project"
// @Success 201 {object} response.Envelope{data=dto.ProjectResponse}
// @Failure 422 {object} response.Envelope
// @Router /projects [post]
func (c *ProjectController) Create(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(ctx, "Invalid request body", err.Error())
		return
	}

	result, err := c.projectService.Create(req, ctx.GetString(middleware.ContextUserID))
	if err != nil {
		log.Warn().Err(err).Str("code", req.Code).Msg("CreateProject failed")
		respondServiceError(ctx, err, "Project not found")
		return
	}
	response.Created(ctx, result)
}

// List godoc
// @Summary List projects
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Param is_active query bool false "Filter by active flag"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope{data=[]dto.ProjectResponse}
// @Router /projects [get]
func (c *ProjectController) List(ctx *gin.Context) {
	page, limit := parsePagination(ctx, 20)
	filter := repository.ProjectFilter{
		IsActive: parseBoolQuery(ctx, "is_active"),
		Page:     page,
		Limit:    limit,
	}

	projects, total, err := c.projectService.List(filter)
	if err != nil {
		log.Error().Err(err).Msg("ListProjects failed")
		response.ServerError(ctx, "Internal server error")
		return
	}
	response.Paginated(ctx, projects, page, limit, total)
}

// Get godoc
// @Summary Get a project by id
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} response.Envelope{data=dto.ProjectResponse}
// @Failure 404 {object} response.Envelope
// @Router /projects/{id} [get]
func (c *ProjectController) Get(ctx *gin.Context) {
	result, err := c.projectService.Get(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err, "Project not found")
		return
	}
	response.Success(ctx, result)
}

// Update godoc
// @Summary Update a project
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param project body dto.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} response.Envelope{data=dto.ProjectResponse}
// @Failure 404 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /projects/{id} [put]
func (c *ProjectController) Update(ctx *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(ctx, "Invalid request body", err.Error())
		return
	}

	result, err := c.projectService.Update(ctx.Param("id"), req)
	if err != nil {
		respondServiceError(ctx, err, "Project not found")
		return
	}
	response.Success(ctx, result)
}

// Delete godoc
// @Summary Delete a project and everything in it
// @Description Removes the project together with its modules, versions, test cases, steps, runs, step results, bugs and bug comments in a single transaction.
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /projects/{id} [delete]
func (c *ProjectController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.projectService.Delete(id); err != nil {
		log.Error().Err(err).Str("projectId", id).Msg("DeleteProject failed")
		respondServiceError(ctx, err, "Project not found")
		return
	}
	response.SuccessWithMessage(ctx, nil, "Project deleted")
}
