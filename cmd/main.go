package main

//
//  @title           findata API
//  @version         1.0
//  @description     Read-only financial data aggregation: live quotes, economic indicators and market indices.
//  @termsOfService  https://github.com/guttosm/findata
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/findata
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:5001
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        market
//  @tag.description Quotes, economic indicators and index summaries
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/findata/config"
	_ "github.com/guttosm/findata/docs" // swagger docs
	"github.com/guttosm/findata/internal/app"
	"github.com/guttosm/findata/internal/domain/dto"
	"github.com/guttosm/findata/internal/logger"
	"github.com/guttosm/findata/internal/service"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources held by the app.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// snapshot is the document printed by --mode snapshot.
type snapshot struct {
	MarketSummary      dto.MarketSummaryResponse `json:"market_summary"`
	EconomicIndicators *dto.IndicatorsResponse   `json:"economic_indicators,omitempty"`
}

// runSnapshot fetches the multi-item endpoints once and writes them to w as JSON.
// Indicators are included only when the series provider is configured.
func runSnapshot(ctx context.Context, svc service.MarketService, w io.Writer) error {
	summary, err := svc.GetMarketSummary(ctx)
	if err != nil {
		return fmt.Errorf("market summary: %w", err)
	}
	out := snapshot{MarketSummary: dto.NewMarketSummaryResponse(*summary)}

	if svc.IndicatorsConfigured() {
		indicators, err := svc.GetEconomicIndicators(ctx)
		if err != nil {
			return fmt.Errorf("economic indicators: %w", err)
		}
		resp := dto.NewIndicatorsResponse(*indicators)
		out.EconomicIndicators = &resp
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// main is the entry point of the findata application.
//
// Modes (selected via --mode flag):
//   - api:      Starts the REST API (default).
//   - snapshot: Fetches market summary and economic indicators once and prints them as JSON.
//
// Flags:
//   - --mode: Execution mode ("api" or "snapshot"). Default: "api".
//   - --port: Port for the API server. Defaults to value from config (PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Configure(logger.Options{Debug: config.AppConfig.Server.Debug})

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or snapshot")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "snapshot":
		logger.L().Info().Msg("running snapshot")

		svc, err := app.InitMarketService(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("service init error")
		}

		snapCtx, cancel := context.WithTimeout(ctx, config.AppConfig.Server.RequestTimeout)
		defer cancel()

		if err := runSnapshot(snapCtx, svc, os.Stdout); err != nil {
			logger.L().Fatal().Err(err).Msg("snapshot failed")
		}

	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
