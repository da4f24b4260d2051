package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/hoangnln/testtrack/internal/dto"
	"github.com/hoangnln/testtrack/internal/middleware"
	"github.com/hoangnln/testtrack/internal/response"
	"github.com/hoangnln/testtrack/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login godoc
// @Summary Log in with username and password
// @Description Exchanges credentials for an access/refresh token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} response.Envelope{data=dto.AuthResponse}
// @Failure 401 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(ctx, "Invalid request body", err.Error())
		return
	}

	result, err := c.authService.Login(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrAccountInactive) {
			response.Unauthorized(ctx, "Invalid username or password")
			return
		}
		log.Error().Err(err).Str("username", req.Username).Msg("Login failed")
		response.ServerError(ctx, "Internal server error")
		return
	}
	response.Success(ctx, result)
}

// Refresh godoc
// @Summary Exchange a refresh token for a new token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param token body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} response.Envelope{data=dto.TokenPairResponse}
// @Failure 401 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /auth/refresh [post]
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.RefreshRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(ctx, "Invalid request body", err.Error())
		return
	}

	result, err := c.authService.Refresh(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRefreshToken) {
			response.Unauthorized(ctx, "Invalid or expired refresh token")
			return
		}
		log.Error().Err(err).Msg("Token refresh failed")
		response.ServerError(ctx, "Internal server error")
		return
	}
	response.Success(ctx, result)
}

// Logout godoc
// @Summary Log out
// @Description Tokens are stateless, so logout only acknowledges; clients discard their tokens.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	response.SuccessWithMessage(ctx, nil, "Logged out successfully")
}

// Me godoc
// @Summary Get the authenticated user's profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=dto.UserResponse}
// @Failure 401 {object} response.Envelope
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)
	result, err := c.authService.Me(userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Unauthorized(ctx, "Account no longer exists")
			return
		}
		log.Error().Err(err).Str("userId", userID).Msg("Me failed")
		response.ServerError(ctx, "Internal server error")
		return
	}
	response.Success(ctx, result)
}
