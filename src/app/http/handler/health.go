package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"assetregistry/src/core/usecase"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	healthService *usecase.HealthService
}

func NewHealthHandler(healthService *usecase.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// Health is a lightweight liveness probe.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DetailedHealth reports the health of each component, including the store.
func (h *HealthHandler) DetailedHealth(c *gin.Context) {
	status := h.healthService.Check(c.Request.Context())
	code := http.StatusOK
	if status.Status != "ok" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
