// Package calc holds the pure derived-metric functions used to normalize
// upstream market data. Nothing here performs I/O.
package calc

import (
	"github.com/shopspring/decimal"

	"github.com/guttosm/findata/internal/domain/models"
)

// PercentPlaces is the number of decimal places kept by ChangePercent.
const PercentPlaces = 2

var hundred = decimal.NewFromInt(100)

// ResolveCurrent walks a fallback chain and returns the first valid candidate.
// The result is invalid when every candidate is.
func ResolveCurrent(candidates ...decimal.NullDecimal) decimal.NullDecimal {
	for _, c := range candidates {
		if c.Valid {
			return c
		}
	}
	return decimal.NullDecimal{}
}

// ChangePercent returns (current - previousClose) / previousClose * 100 rounded
// to two places, half away from zero (0.125 -> 0.13, -0.125 -> -0.13).
//
// It returns exactly zero when either operand is absent or previousClose is zero.
func ChangePercent(current, previousClose decimal.NullDecimal) decimal.Decimal {
	if !current.Valid || !previousClose.Valid || previousClose.Decimal.IsZero() {
		return decimal.Zero
	}
	diff := current.Decimal.Sub(previousClose.Decimal)
	return diff.Mul(hundred).Div(previousClose.Decimal).Round(PercentPlaces)
}

// SeriesChange builds an IndicatorSeries from the last two observations of raw.
// ok is false when raw holds fewer than two observations.
func SeriesChange(def models.IndicatorDef, source string, raw models.RawSeries) (models.IndicatorSeries, bool) {
	if len(raw) < 2 {
		return models.IndicatorSeries{}, false
	}
	latest := raw[len(raw)-1]
	prev := raw[len(raw)-2]

	return models.IndicatorSeries{
		SeriesID:      def.SeriesID,
		DisplayName:   def.Name,
		LatestValue:   latest.Value,
		PreviousValue: prev.Value,
		Change:        latest.Value.Sub(prev.Value),
		AsOfDate:      latest.Date,
		Source:        source,
	}, true
}

// PreviousClose resolves the prior session close for an index: the reported
// previous close, else the second to last close in history, else current.
func PreviousClose(q models.Quote, current decimal.NullDecimal) decimal.NullDecimal {
	var fromHistory decimal.NullDecimal
	if n := len(q.History); n >= 2 {
		fromHistory = decimal.NewNullDecimal(q.History[n-2].Close)
	}
	return ResolveCurrent(q.PreviousClose, fromHistory, current)
}

// Summarize derives the market-summary view of an index quote.
// The regular market price is preferred over the live price here.
func Summarize(def models.IndexDef, q models.Quote) models.IndexSummary {
	current := ResolveCurrent(q.RegularMarketPrice, q.CurrentPrice)
	prev := PreviousClose(q, current)

	return models.IndexSummary{
		Symbol:        def.Symbol,
		DisplayName:   def.Name,
		Current:       current,
		PreviousClose: prev,
		ChangePercent: ChangePercent(current, prev),
		RecentTrend:   q.Closes(),
	}
}
