package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// GetHealth reports service liveness.
// GET /api/health
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
