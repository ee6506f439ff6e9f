package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Observation is one dated value of an economic series.
type Observation struct {
	Date  time.Time
	Value decimal.Decimal
}

// RawSeries is an upstream series ordered oldest to newest.
type RawSeries []Observation

// IndicatorSeries summarizes the two most recent observations of a series.
// It is only ever built from a series with at least two observations.
type IndicatorSeries struct {
	SeriesID      string
	DisplayName   string
	LatestValue   decimal.Decimal
	PreviousValue decimal.Decimal
	Change        decimal.Decimal // LatestValue - PreviousValue
	AsOfDate      time.Time       // Date of LatestValue, no time component
	Source        string
}

// IndicatorDef names one entry of the indicator catalog.
type IndicatorDef struct {
	Key      string // Response key, e.g. "inflation_rate"
	SeriesID string // Upstream series id, e.g. "CPIAUCSL"
	Name     string // Display name
}
