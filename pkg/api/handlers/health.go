package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/api/types"
)

// HealthHandler handles health check endpoints
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Status:    "ok",
		Service:   "smartthings-mcp",
		Version:   "1.0.0",
		Timestamp: time.Now().UTC(),
	})
}
