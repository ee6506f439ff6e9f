package service

import "github.com/guttosm/findata/internal/domain/models"

// DefaultIndicators is the economic-indicator catalog served by /economic-indicators.
var DefaultIndicators = []models.IndicatorDef{
	{Key: "inflation_rate", SeriesID: "CPIAUCSL", Name: "Consumer Price Index (Inflation)"},
	{Key: "fed_funds_rate", SeriesID: "FEDFUNDS", Name: "Federal Funds Rate"},
	{Key: "unemployment_rate", SeriesID: "UNRATE", Name: "Unemployment Rate"},
	{Key: "gdp_growth", SeriesID: "GDP", Name: "GDP"},
	{Key: "10y_treasury", SeriesID: "DGS10", Name: "10-Year Treasury Rate"},
}

// DefaultIndices is the index catalog served by /market-summary.
var DefaultIndices = []models.IndexDef{
	{Symbol: "^GSPC", Name: "S&P 500"},
	{Symbol: "^DJI", Name: "Dow Jones"},
	{Symbol: "^IXIC", Name: "NASDAQ"},
	{Symbol: "^VIX", Name: "Volatility Index"},
}
