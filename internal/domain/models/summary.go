package models

import "github.com/shopspring/decimal"

// IndexSummary is the market-summary view of one index.
//
// Current and PreviousClose stay invalid when no upstream value could be
// resolved. ChangePercent is zero in that case.
type IndexSummary struct {
	Symbol        string
	DisplayName   string
	Current       decimal.NullDecimal
	PreviousClose decimal.NullDecimal
	ChangePercent decimal.Decimal
	RecentTrend   []decimal.Decimal
}

// IndexDef names one entry of the index catalog.
type IndexDef struct {
	Symbol string
	Name   string
}
