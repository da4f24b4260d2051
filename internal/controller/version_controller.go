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

type VersionController struct {
	versionService service.VersionService
}

func NewVersionController(versionService service.VersionService) *VersionController {
	return &VersionController{versionService: versionService}
}

// Create godoc
// @Summary Create a version
// @Tags Versions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param version body dto.CreateVersionRequest true "New version"
// @Success 201 {object} response.Envelope{data=dto.VersionResponse}
// @Failure 404 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /versions [post]
func (c *VersionController) Create(ctx *gin.Context) {
	var req dto.CreateVersionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(ctx, "Invalid request body", err.Error())
		return
	}

	result, err := c.versionService.Create(req, ctx.GetString(middleware.ContextUserID))
	if err != nil {
		log.Warn().Err(err).Str("name", req.Name).Msg("CreateVersion failed")
		respondServiceError(ctx, err, "Project not found")
		return
	}
	response.Created(ctx, result)
}

// List godoc
// @Summary List versions
// @Tags Versions
// @Produce json
// @Security BearerAuth
// @Param project_id query string false "Filter by project"
// @Param is_active query bool false "Filter by active flag"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope{data=[]dto.VersionResponse}
// @Router /versions [get]
func (c *VersionController) List(ctx *gin.Context) {
	page, limit := parsePagination(ctx, 100)
	filter := repository.VersionFilter{
		ProjectID: ctx.Query("project_id"),
		IsActive:  parseBoolQuery(ctx, "is_active"),
		Page:      page,
		Limit:     limit,
	}

	versions, total, err := c.versionService.List(filter)
	if err != nil {
		log.Error().Err(err).Msg("ListVersions failed")
		response.ServerError(ctx, "Internal server error")
		return
	}
	response.Paginated(ctx, versions, page, limit, total)
}

// Get godoc
// @Summary Get a version by id
// @Tags Versions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Version ID"
// @Success 200 {object} response.Envelope{data=dto.VersionResponse}
// @Failure 404 {object} response.Envelope
// @Router /versions/{id} [get]
func (c *VersionController) Get(ctx *gin.Context) {
	result, err := c.versionService.Get(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err, "Version not found")
		return
	}
	response.Success(ctx, result)
}

// Update godoc
// @Summary Update a version
// @Tags Versions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Version ID"
// @Param version body dto.UpdateVersionRequest true "Fields to update"
// @Success 200 {object} response.Envelope{data=dto.VersionResponse}
// @Failure 404 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /versions/{id} [put]
func (c *VersionController) Update(ctx *gin.Context) {
	var req dto.UpdateVersionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(ctx, "Invalid request body", err.Error())
		return
	}

	result, err := c.versionService.Update(ctx.Param("id"), req)
	if err != nil {
		respondServiceError(ctx, err, "Version not found")
		return
	}
	response.Success(ctx, result)
}

// Delete godoc
// @Summary Delete a version
// @Tags Versions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Version ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /versions/{id} [delete]
func (c *VersionController) Delete(ctx *gin.Context) {
	if err := c.versionService.Delete(ctx.Param("id")); err != nil {
		respondServiceError(ctx, err, "Version not found")
		return
	}
	response.SuccessWithMessage(ctx, nil, "Version deleted")
}
