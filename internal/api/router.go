package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/findata/internal/middleware"
)

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, CORS, Recovery, ErrorHandler, Timeout).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures the market data routes.
//
// Note:
//   - Health and readiness endpoints (/health, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler, requestTimeout time.Duration) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		cors.New(corsConfig()),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.Timeout(requestTimeout),
	)

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── Market data ──────────────────────────────
	router.GET("/stock/:ticker", handler.GetStock)
	router.GET("/economic-indicators", handler.GetEconomicIndicators)
	router.GET("/market-summary", handler.GetMarketSummary)

	router.NoRoute(func(c *gin.Context) {
		middleware.AbortWithError(c, http.StatusNotFound, "not found", nil)
	})

	return router
}

// corsConfig allows browser clients from any origin; every endpoint is a
// read-only GET without credentials.
func corsConfig() cors.Config {
	return cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Accept", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:   []string{middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}
}
