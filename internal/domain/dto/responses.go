package dto

import "github.com/shopspring/decimal"

func init() {
	// Prices are numbers in the public contract, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// TimestampLayout is the fetched_at format: ISO-8601 in UTC with microseconds.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// DateLayout renders calendar dates.
const DateLayout = "2006-01-02"

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Service string `json:"service" example:"financial-data"`
}

// RecentPrices is the columnar trailing history of a quote.
type RecentPrices struct {
	Dates  []string          `json:"dates"`
	Close  []decimal.Decimal `json:"close" swaggertype:"array,number"`
	Volume []int64           `json:"volume"`
}

// StockMetadata describes where and when a quote was fetched.
type StockMetadata struct {
	FetchedAt string `json:"fetched_at" example:"2024-05-01T12:00:00.000000Z"`
	Source    string `json:"source" example:"Yahoo Finance"`
}

// StockResponse is returned by GET /stock/{ticker}.
// Absent upstream values render as null, never 0.
type StockResponse struct {
	Ticker           string              `json:"ticker" example:"AAPL"`
	CurrentPrice     decimal.NullDecimal `json:"current_price" swaggertype:"number"`
	MarketCap        decimal.NullDecimal `json:"market_cap" swaggertype:"number"`
	PERatio          decimal.NullDecimal `json:"pe_ratio" swaggertype:"number"`
	DividendYield    decimal.NullDecimal `json:"dividend_yield" swaggertype:"number"`
	FiftyTwoWeekHigh decimal.NullDecimal `json:"52_week_high" swaggertype:"number"`
	FiftyTwoWeekLow  decimal.NullDecimal `json:"52_week_low" swaggertype:"number"`
	Sector           *string             `json:"sector" example:"Technology"`
	Industry         *string             `json:"industry" example:"Consumer Electronics"`
	RecentPrices     RecentPrices        `json:"recent_prices"`
	Metadata         StockMetadata       `json:"metadata"`
}

// IndicatorResponse is one entry of the indicators mapping.
type IndicatorResponse struct {
	Name          string          `json:"name" example:"Unemployment Rate"`
	CurrentValue  decimal.Decimal `json:"current_value" swaggertype:"number"`
	PreviousValue decimal.Decimal `json:"previous_value" swaggertype:"number"`
	Change        decimal.Decimal `json:"change" swaggertype:"number"`
	Date          string          `json:"date" example:"2024-04-01"`
	Source        string          `json:"source" example:"Federal Reserve Economic Data (FRED)"`
}

// AggregateMetadata accompanies every multi-item response.
// Skipped counts keys that failed or lacked data; it is omitted when zero.
type AggregateMetadata struct {
	FetchedAt string `json:"fetched_at" example:"2024-05-01T12:00:00.000000Z"`
	Skipped   int    `json:"skipped,omitempty" example:"1"`
}

// IndicatorsResponse is returned by GET /economic-indicators.
type IndicatorsResponse struct {
	Indicators map[string]IndicatorResponse `json:"indicators"`
	Metadata   AggregateMetadata            `json:"metadata"`
}

// IndexResponse is one entry of the indices mapping.
type IndexResponse struct {
	Name          string              `json:"name" example:"S&P 500"`
	Current       decimal.NullDecimal `json:"current" swaggertype:"number"`
	PreviousClose decimal.NullDecimal `json:"previous_close" swaggertype:"number"`
	ChangePercent decimal.Decimal     `json:"change_percent" swaggertype:"number"`
	RecentTrend   []decimal.Decimal   `json:"recent_trend" swaggertype:"array,number"`
}

// MarketSummaryResponse is returned by GET /market-summary.
type MarketSummaryResponse struct {
	Indices  map[string]IndexResponse `json:"indices"`
	Metadata AggregateMetadata        `json:"metadata"`
}
