package provider

import (
	"context"
	"fmt"

	"github.com/guttosm/findata/internal/domain/models"
)

//go:generate mockgen -source=provider.go -destination=mocks/mock_provider.go -package=mocks

// HistoryWindow selects how much trailing daily history a quote carries.
type HistoryWindow string

const (
	WindowMonth HistoryWindow = "1mo" // Stock endpoint
	WindowWeek  HistoryWindow = "5d"  // Market summary
)

// QuoteProvider fetches a quote for one symbol from one upstream.
type QuoteProvider interface {
	Name() string
	FetchQuote(ctx context.Context, symbol string, window HistoryWindow) (models.Quote, error)
}

// SeriesProvider fetches an economic series from one upstream.
// The returned series is ordered oldest to newest.
type SeriesProvider interface {
	Name() string
	FetchSeries(ctx context.Context, seriesID string) (models.RawSeries, error)
}

// Failure is the single opaque error an adapter reports for transport,
// decoding, or upstream-reported problems.
type Failure struct {
	Provider string // e.g. "yahoo"
	Op       string // e.g. "quoteSummary"
	Key      string // symbol or series id
	Err      error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s %s %s: %v", f.Provider, f.Op, f.Key, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// Fail wraps err as a *Failure. A nil err returns nil.
func Fail(provider, op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &Failure{Provider: provider, Op: op, Key: key, Err: err}
}
