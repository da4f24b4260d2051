package controller

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hoangnln/testtrack/internal/response"
)

// Health godoc
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /health [get]
func Health(ctx *gin.Context) {
	response.Success(ctx, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   "1.0.0",
	})
}
