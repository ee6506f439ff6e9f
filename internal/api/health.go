package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/findata/internal/domain/dto"
)

// ServiceName is reported by the liveness probe.
const ServiceName = "financial-data"

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /health: liveness probe (always returns 200 OK).
//   - /readyz: readiness probe reporting optional dependencies.
type HealthHandler struct {
	indicatorsConfigured func() bool
}

// NewHealthHandler constructs a HealthHandler. indicatorsConfigured may be nil.
func NewHealthHandler(indicatorsConfigured func() bool) *HealthHandler {
	return &HealthHandler{indicatorsConfigured: indicatorsConfigured}
}

// Register mounts the health and readiness endpoints into the provided Gin router.
func (h *HealthHandler) Register(r *gin.Engine) {
	// @Summary      Liveness probe
	// @Description  Always returns healthy if the service is running
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  dto.HealthResponse
	// @Router       /health [get]
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "healthy", Service: ServiceName})
	})

	// @Summary      Readiness probe
	// @Description  Reports whether optional upstream credentials are configured
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /readyz [get]
	r.GET("/readyz", func(c *gin.Context) {
		indicators := "unconfigured"
		if h.indicatorsConfigured != nil && h.indicatorsConfigured() {
			indicators = "configured"
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "indicators": indicators})
	})
}
