package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/findata/internal/domain/models"
)

// FormatTimestamp renders t in the fetched_at layout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// NewStockResponse shapes a single quote into the stock contract.
// Empty history yields empty (not null) arrays.
func NewStockResponse(snap models.StockSnapshot) StockResponse {
	q := snap.Quote
	recent := RecentPrices{
		Dates:  make([]string, 0, len(q.History)),
		Close:  make([]decimal.Decimal, 0, len(q.History)),
		Volume: make([]int64, 0, len(q.History)),
	}
	for _, p := range q.History {
		recent.Dates = append(recent.Dates, p.Date.Format(DateLayout))
		recent.Close = append(recent.Close, p.Close)
		recent.Volume = append(recent.Volume, p.Volume)
	}

	return StockResponse{
		Ticker:           q.Symbol,
		CurrentPrice:     q.CurrentPrice,
		MarketCap:        q.MarketCap,
		PERatio:          q.PERatio,
		DividendYield:    q.DividendYield,
		FiftyTwoWeekHigh: q.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  q.FiftyTwoWeekLow,
		Sector:           q.Sector,
		Industry:         q.Industry,
		RecentPrices:     recent,
		Metadata: StockMetadata{
			FetchedAt: FormatTimestamp(snap.FetchedAt),
			Source:    snap.Source,
		},
	}
}

// NewIndicatorsResponse shapes an aggregated indicator result.
func NewIndicatorsResponse(res models.AggregateResult[models.IndicatorSeries]) IndicatorsResponse {
	out := IndicatorsResponse{
		Indicators: make(map[string]IndicatorResponse, len(res.Items)),
		Metadata:   AggregateMetadata{FetchedAt: FormatTimestamp(res.FetchedAt), Skipped: res.Skipped},
	}
	for key, s := range res.Items {
		out.Indicators[key] = IndicatorResponse{
			Name:          s.DisplayName,
			CurrentValue:  s.LatestValue,
			PreviousValue: s.PreviousValue,
			Change:        s.Change,
			Date:          s.AsOfDate.Format(DateLayout),
			Source:        s.Source,
		}
	}
	return out
}

// NewMarketSummaryResponse shapes an aggregated index result.
func NewMarketSummaryResponse(res models.AggregateResult[models.IndexSummary]) MarketSummaryResponse {
	out := MarketSummaryResponse{
		Indices:  make(map[string]IndexResponse, len(res.Items)),
		Metadata: AggregateMetadata{FetchedAt: FormatTimestamp(res.FetchedAt), Skipped: res.Skipped},
	}
	for symbol, s := range res.Items {
		trend := s.RecentTrend
		if trend == nil {
			trend = []decimal.Decimal{}
		}
		out.Indices[symbol] = IndexResponse{
			Name:          s.DisplayName,
			Current:       s.Current,
			PreviousClose: s.PreviousClose,
			ChangePercent: s.ChangePercent,
			RecentTrend:   trend,
		}
	}
	return out
}
