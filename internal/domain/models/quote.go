package models

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// PricePoint is one daily bar of a symbol's trailing history.
type PricePoint struct {
	Date   time.Time       // Trading day, time component is zero in the exchange's offset
	Close  decimal.Decimal // Closing price
	Volume int64           // Shares traded that day
}

// Quote is a point-in-time price/valuation snapshot plus trailing history for one symbol.
//
// Every price field is a NullDecimal: an upstream omission stays invalid
// rather than becoming zero, since zero is a legitimate price.
//
// Fields:
//   - CurrentPrice: live price, falling back to the regular market price.
//   - RegularMarketPrice: the upstream regular-session price as reported.
//   - History: ordered oldest to newest, de-duplicated by date.
type Quote struct {
	Symbol             string
	CurrentPrice       decimal.NullDecimal
	RegularMarketPrice decimal.NullDecimal
	PreviousClose      decimal.NullDecimal
	MarketCap          decimal.NullDecimal
	PERatio            decimal.NullDecimal
	DividendYield      decimal.NullDecimal
	FiftyTwoWeekHigh   decimal.NullDecimal
	FiftyTwoWeekLow    decimal.NullDecimal
	Sector             *string
	Industry           *string
	History            []PricePoint
}

// Closes returns the closing prices of the history, oldest first.
func (q Quote) Closes() []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(q.History))
	for _, p := range q.History {
		out = append(out, p.Close)
	}
	return out
}

// StockSnapshot is a single-symbol quote together with its fetch metadata.
type StockSnapshot struct {
	Quote     Quote
	FetchedAt time.Time
	Source    string
}

// NormalizeHistory orders points oldest first and keeps one point per date.
// When two points share a date the later one in the input wins.
func NormalizeHistory(points []PricePoint) []PricePoint {
	byDate := make(map[time.Time]int, len(points))
	out := make([]PricePoint, 0, len(points))
	for _, p := range points {
		if i, ok := byDate[p.Date]; ok {
			out[i] = p
			continue
		}
		byDate[p.Date] = len(out)
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
