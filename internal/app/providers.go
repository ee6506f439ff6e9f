package app

import (
	"fmt"

	"github.com/guttosm/findata/config"
	"github.com/guttosm/findata/internal/provider"
	"github.com/guttosm/findata/internal/provider/fred"
	"github.com/guttosm/findata/internal/provider/yahoo"
	"github.com/guttosm/findata/internal/service"
)

// InitMarketService builds the upstream clients and the aggregation service
// from the provided configuration.
//
// Behavior:
//   - The quote provider (Yahoo Finance) is always constructed; its crumb
//     handshake starts at cfg.Upstream.YahooCookieURL.
//   - The series provider (FRED) is constructed only when FRED_API_KEY is set;
//     otherwise it stays nil and the indicators operation reports 503.
//   - Every upstream call is bounded by cfg.Upstream.Timeout.
//
// Example usage:
//
//	svc, err := app.InitMarketService(config.AppConfig)
//	if err != nil {
//	    log.Fatal(err)
//	}
func InitMarketService(cfg config.Config) (service.MarketService, error) {
	quotes := yahoo.New(cfg.Upstream.YahooBaseURL, cfg.Upstream.Timeout)
	quotes.CookieURL = cfg.Upstream.YahooCookieURL

	var series provider.SeriesProvider
	if cfg.Upstream.FredConfigured() {
		c, err := fred.New(cfg.Upstream.FredBaseURL, cfg.Upstream.FredAPIKey, cfg.Upstream.Timeout)
		if err != nil {
			return nil, fmt.Errorf("fred client: %w", err)
		}
		series = c
	}

	return service.NewMarketService(quotes, series, service.Options{
		Parallelism:  cfg.Upstream.Parallelism,
		ItemTimeout:  cfg.Upstream.Timeout,
		QuoteSource:  yahoo.Source,
		SeriesSource: fred.Source,
	}), nil
}
