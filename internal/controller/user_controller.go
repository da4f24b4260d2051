package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/hoangnln/testtrack/internal/dto"
	"github.com/hoangnln/testtrack/internal/repository"
	"github.com/hoangnln/testtrack/internal/response"
	"github.com/hoangnln/testtrack/internal/service"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// Create godoc
// @Summary Create a user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body dto.CreateUserRequest true "New user"
// @Success 201 {object} response.Envelope{data=dto.UserResponse}
// @Failure 422 {object} response.Envelope
// @Router /users [post]
func (c *UserController) Create(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(ctx, "Invalid request body", err.Error())
		return
	}

	result, err := c.userService.Create(req)
	if err != nil {
		log.Warn().Err(err).Str("username", req.Username).Msg("CreateUser failed")
		respondServiceError(ctx, err, "User not found")
		return
	}
	response.Created(ctx, result)
}

// List godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param role query string false "Filter by role"
// @Param is_active query bool false "Filter by active flag"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope{data=[]dto.UserResponse}
// @Router /users [get]
func (c *UserController) List(ctx *gin.Context) {
	page, limit := parsePagination(ctx, 20)
	filter := repository.UserFilter{
		Role:     ctx.Query("role"),
		IsActive: parseBoolQuery(ctx, "is_active"),
		Page:     page,
		Limit:    limit,
	}

	users, total, err := c.userService.List(filter)
	if err != nil {
		log.Error().Err(err).Msg("ListUsers failed")
		response.ServerError(ctx, "Internal server error")
		return
	}
	response.Paginated(ctx, users, page, limit, total)
}

// Get godoc
// @Summary Get a user by id
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope{data=dto.UserResponse}
// @Failure 404 {object} response.Envelope
// @Router /users/{id} [get]
func (c *UserController) Get(ctx *gin.Context) {
	result, err := c.userService.Get(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err, "User not found")
		return
	}
	response.Success(ctx, result)
}

// Update godoc
// @Summary Update a user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param user body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} response.Envelope{data=dto.UserResponse}
// @Failure 404 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /users/{id} [put]
func (c *UserController) Update(ctx *gin.Context) {
	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(ctx, "Invalid request body", err.Error())
		return
	}

	result, err := c.userService.Update(ctx.Param("id"), req)
	if err != nil {
		respondServiceError(ctx, err, "User not found")
		return
	}
	response.Success(ctx, result)
}

// Delete godoc
// @Summary Delete a user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{id} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	if err := c.userService.Delete(ctx.Param("id")); err != nil {
		respondServiceError(ctx, err, "User not found")
		return
	}
	response.SuccessWithMessage(ctx, nil, "User deleted")
}

// parseBoolQuery returns nil when the param is absent or malformed, so the
// filter treats it as "no filter".
func parseBoolQuery(ctx *gin.Context, name string) *bool {
	raw := ctx.Query(name)
	switch raw {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}
