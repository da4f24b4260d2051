package controller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hoangnln/testtrack/internal/response"
	"github.com/hoangnln/testtrack/internal/service"
)

// parsePagination reads page/limit query params, falling back to page 1 and
// the handler's default page size. Limit is capped at 100.
func parsePagination(ctx *gin.Context, defaultLimit int) (int, int) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// respondServiceError maps service sentinel errors onto the response
// envelope. Anything unrecognized becomes a 500 with a generic message.
func respondServiceError(ctx *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(ctx, notFoundMessage)
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrProjectCodeTaken):
		response.ValidationError(ctx, err.Error(), nil)
	default:
		response.ServerError(ctx, "Internal server error")
	}
}
