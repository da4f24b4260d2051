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

type ModuleController struct {
	moduleService service.ModuleService
}

func NewModuleController(moduleService service.ModuleService) *ModuleController {
	return &ModuleController{moduleService: moduleService}
}

// Create godoc
// @Summary Create a module
// @Tags Modules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param module body dto.CreateModuleRequest true "New module"
// @Success 201 {object} response.Envelope{data=dto.ModuleResponse}
// @Failure 404 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /modules [post]
func (c *ModuleController) Create(ctx *gin.Context) {
	var req dto.CreateModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(ctx, "Invalid request body", err.Error())
		return
	}

	result, err := c.moduleService.Create(req, ctx.GetString(middleware.ContextUserID))
	if err != nil {
		log.Warn().Err(err).Str("name", req.Name).Msg("CreateModule failed")
		respondServiceError(ctx, err, "Project not found")
		return
	}
	response.Created(ctx, result)
}

// List godoc
// @Summary List modules
// @Tags Modules
// @Produce json
// @Security BearerAuth
// @Param project_id query string false "Filter by project"
// @Param is_active query bool false "Filter by active flag"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope{data=[]dto.ModuleResponse}
// @Router /modules [get]
func (c *ModuleController) List(ctx *gin.Context) {
	page, limit := parsePagination(ctx, 100)
	filter := repository.ModuleFilter{
		ProjectID: ctx.Query("project_id"),
		IsActive:  parseBoolQuery(ctx, "is_active"),
		Page:      page,
		Limit:     limit,
	}

	modules, total, err := c.moduleService.List(filter)
	if err != nil {
		log.Error().Err(err).Msg("ListModules failed")
		response.ServerError(ctx, "Internal server error")
		return
	}
	response.Paginated(ctx, modules, page, limit, total)
}

// Get godoc
// @Summary Get a module by id
// @Tags Modules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Module ID"
// @Success 200 {object} response.Envelope{data=dto.ModuleResponse}
// @Failure 404 {object} response.Envelope
// @Router /modules/{id} [get]
func (c *ModuleController) Get(ctx *gin.Context) {
	result, err := c.moduleService.Get(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err, "Module not found")
		return
	}
	response.Success(ctx, result)
}

// Update godoc
// @Summary Update a module
// @Tags Modules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Module ID"
// @Param module body dto.UpdateModuleRequest true "Fields to update"
// @Success 200 {object} response.Envelope{data=dto.ModuleResponse}
// @Failure 404 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /modules/{id} [put]
func (c *ModuleController) Update(ctx *gin.Context) {
	var req dto.UpdateModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(ctx, "Invalid request body", err.Error())
		return
	}

	result, err := c.moduleService.Update(ctx.Param("id"), req)
	if err != nil {
		respondServiceError(ctx, err, "Module not found")
		return
	}
	response.Success(ctx, result)
}

// Delete godoc
// @Summary Delete a module
// @Tags Modules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Module ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /modules/{id} [delete]
func (c *ModuleController) Delete(ctx *gin.Context) {
	if err := c.moduleService.Delete(ctx.Param("id")); err != nil {
		respondServiceError(ctx, err, "Module not found")
		return
	}
	response.SuccessWithMessage(ctx, nil, "Module deleted")
}
