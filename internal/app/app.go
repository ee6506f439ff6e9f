package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/findata/config"
	"github.com/guttosm/findata/internal/api"
	"github.com/guttosm/findata/internal/logger"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Selects the Gin mode from the DEBUG setting.
//   - Builds the upstream clients and the MarketService.
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	if cfg.Server.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// indirection for unit testing
	svc, err := serviceFactory(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize market service: %w", err)
	}

	if !svc.IndicatorsConfigured() {
		logger.L().Warn().Msg("FRED_API_KEY not set; /economic-indicators will return 503")
	}

	// Initialize HTTP handler layer (service to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler, cfg.Server.RequestTimeout)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(svc.IndicatorsConfigured)
	healthHandler.Register(router)

	// Upstream clients hold no resources beyond pooled connections.
	cleanup := func() {
		logger.L().Debug().Msg("app cleanup complete")
	}

	return router, cleanup, nil
}

var serviceFactory = InitMarketService
