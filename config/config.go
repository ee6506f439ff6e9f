package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	PORT=5001
//	DEBUG=false
//	FRED_API_KEY=abcdef0123456789
//	UPSTREAM_TIMEOUT=10s
//	REQUEST_TIMEOUT=25s
//	AGGREGATE_PARALLELISM=4
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Upstream UpstreamConfig // Market data provider settings
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string        // The TCP port the HTTP server will listen on (e.g., "5001")
	Debug          bool          // Verbose logging and gin debug mode
	RequestTimeout time.Duration // Deadline applied to every inbound request
}

// UpstreamConfig defines how the service talks to its data providers.
//
// Fields:
//   - YahooBaseURL: base URL of the Yahoo Finance query API.
//   - YahooCookieURL: page visited for the session cookie before the crumb handshake; empty skips it.
//   - FredBaseURL: base URL of the FRED API.
//   - FredAPIKey: optional credential; when empty the indicators endpoint reports 503.
//   - Timeout: per upstream call timeout.
//   - Parallelism: max concurrent per-item fetches within one request.
type UpstreamConfig struct {
	YahooBaseURL   string
	YahooCookieURL string
	FredBaseURL    string
	FredAPIKey     string
	Timeout        time.Duration
	Parallelism    int
}

// FredConfigured reports whether the series provider can be constructed.
func (u UpstreamConfig) FredConfigured() bool {
	return strings.TrimSpace(u.FredAPIKey) != ""
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// FLASK_DEBUG is accepted as a legacy alias of DEBUG.
func LoadConfig() {
	viper.SetDefault("PORT", "5001")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("FLASK_DEBUG", false)
	viper.SetDefault("REQUEST_TIMEOUT", "25s")

	viper.SetDefault("FRED_API_KEY", "")
	viper.SetDefault("YAHOO_BASE_URL", "https://query1.finance.yahoo.com")
	viper.SetDefault("YAHOO_COOKIE_URL", "https://fc.yahoo.com")
	viper.SetDefault("FRED_BASE_URL", "https://api.stlouisfed.org")
	viper.SetDefault("UPSTREAM_TIMEOUT", "10s")
	viper.SetDefault("AGGREGATE_PARALLELISM", 4)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:           viper.GetString("PORT"),
			Debug:          viper.GetBool("DEBUG") || viper.GetBool("FLASK_DEBUG"),
			RequestTimeout: viper.GetDuration("REQUEST_TIMEOUT"),
		},
		Upstream: UpstreamConfig{
			YahooBaseURL:   strings.TrimRight(viper.GetString("YAHOO_BASE_URL"), "/"),
			YahooCookieURL: viper.GetString("YAHOO_COOKIE_URL"),
			FredBaseURL:    strings.TrimRight(viper.GetString("FRED_BASE_URL"), "/"),
			FredAPIKey:     viper.GetString("FRED_API_KEY"),
			Timeout:        viper.GetDuration("UPSTREAM_TIMEOUT"),
			Parallelism:    viper.GetInt("AGGREGATE_PARALLELISM"),
		},
	}

	if errs := validate(AppConfig); len(errs) > 0 {
		log.Fatalf("invalid configuration: %v\n", errs)
	}
}

// validate collects every invalid or missing setting so they can be reported at once.
func validate(cfg Config) []string {
	var problems []string

	if cfg.Server.Port == "" {
		problems = append(problems, "PORT")
	}
	if cfg.Server.RequestTimeout <= 0 {
		problems = append(problems, "REQUEST_TIMEOUT")
	}
	if cfg.Upstream.YahooBaseURL == "" {
		problems = append(problems, "YAHOO_BASE_URL")
	}
	if cfg.Upstream.FredBaseURL == "" {
		problems = append(problems, "FRED_BASE_URL")
	}
	if cfg.Upstream.Timeout <= 0 {
		problems = append(problems, "UPSTREAM_TIMEOUT")
	}
	if cfg.Upstream.Parallelism < 1 {
		problems = append(problems, "AGGREGATE_PARALLELISM")
	}

	return problems
}
