package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/findata/internal/aggregate"
	"github.com/guttosm/findata/internal/calc"
	"github.com/guttosm/findata/internal/domain/models"
	"github.com/guttosm/findata/internal/provider"
)

// ErrIndicatorsUnconfigured is returned when no series provider was configured.
// It is detected before any network call.
var ErrIndicatorsUnconfigured = errors.New("FRED_API_KEY not set. Get a free key at https://fred.stlouisfed.org/docs/api/api_key.html")

// MarketService defines the aggregation core behind the HTTP endpoints.
// This decouples HTTP handlers from upstream providers.
type MarketService interface {
	GetStock(ctx context.Context, ticker string) (*models.StockSnapshot, error)
	GetEconomicIndicators(ctx context.Context) (*models.AggregateResult[models.IndicatorSeries], error)
	GetMarketSummary(ctx context.Context) (*models.AggregateResult[models.IndexSummary], error)
	IndicatorsConfigured() bool
}

// Options configures a MarketService. Zero values fall back to the defaults.
//
// Fields:
//   - Parallelism / ItemTimeout: passed through to the aggregator.
//   - Now: clock used for fetched_at.
//   - QuoteSource / SeriesSource: labels reported in responses.
//   - Indicators / Indices: catalogs; DefaultIndicators / DefaultIndices when nil.
type Options struct {
	Parallelism  int
	ItemTimeout  time.Duration
	Now          func() time.Time
	QuoteSource  string
	SeriesSource string
	Indicators   []models.IndicatorDef
	Indices      []models.IndexDef
}

type marketService struct {
	quotes provider.QuoteProvider
	series provider.SeriesProvider // nil when unconfigured
	opts   Options
}

// NewMarketService wires the providers. series may be nil, in which case the
// indicators operation reports ErrIndicatorsUnconfigured.
func NewMarketService(quotes provider.QuoteProvider, series provider.SeriesProvider, opts Options) MarketService {
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	if opts.Indicators == nil {
		opts.Indicators = DefaultIndicators
	}
	if opts.Indices == nil {
		opts.Indices = DefaultIndices
	}
	return &marketService{quotes: quotes, series: series, opts: opts}
}

func (s *marketService) IndicatorsConfigured() bool {
	return s.series != nil
}

// GetStock fetches one quote; any upstream failure is returned as is since a
// single item has no partial result.
func (s *marketService) GetStock(ctx context.Context, ticker string) (*models.StockSnapshot, error) {
	symbol := strings.ToUpper(strings.TrimSpace(ticker))

	q, err := s.quotes.FetchQuote(ctx, symbol, provider.WindowMonth)
	if err != nil {
		return nil, err
	}
	return &models.StockSnapshot{Quote: q, FetchedAt: s.opts.Now(), Source: s.opts.QuoteSource}, nil
}

func (s *marketService) GetEconomicIndicators(ctx context.Context) (*models.AggregateResult[models.IndicatorSeries], error) {
	if s.series == nil {
		return nil, ErrIndicatorsUnconfigured
	}

	defs := make(map[string]models.IndicatorDef, len(s.opts.Indicators))
	keys := make([]string, 0, len(s.opts.Indicators))
	for _, d := range s.opts.Indicators {
		defs[d.Key] = d
		keys = append(keys, d.Key)
	}

	fetch := func(ctx context.Context, key string) (models.IndicatorSeries, error) {
		def := defs[key]
		raw, err := s.series.FetchSeries(ctx, def.SeriesID)
		if err != nil {
			return models.IndicatorSeries{}, err
		}
		out, ok := calc.SeriesChange(def, s.opts.SeriesSource, raw)
		if !ok {
			return models.IndicatorSeries{}, fmt.Errorf("%s has %d observations: %w", def.SeriesID, len(raw), aggregate.ErrSkipped)
		}
		return out, nil
	}

	res, err := aggregate.Collect(ctx, keys, fetch, s.aggregateOptions("economic_indicators"))
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *marketService) GetMarketSummary(ctx context.Context) (*models.AggregateResult[models.IndexSummary], error) {
	defs := make(map[string]models.IndexDef, len(s.opts.Indices))
	keys := make([]string, 0, len(s.opts.Indices))
	for _, d := range s.opts.Indices {
		defs[d.Symbol] = d
		keys = append(keys, d.Symbol)
	}

	fetch := func(ctx context.Context, symbol string) (models.IndexSummary, error) {
		q, err := s.quotes.FetchQuote(ctx, symbol, provider.WindowWeek)
		if err != nil {
			return models.IndexSummary{}, err
		}
		return calc.Summarize(defs[symbol], q), nil
	}

	res, err := aggregate.Collect(ctx, keys, fetch, s.aggregateOptions("market_summary"))
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *marketService) aggregateOptions(name string) aggregate.Options {
	return aggregate.Options{
		Parallelism: s.opts.Parallelism,
		ItemTimeout: s.opts.ItemTimeout,
		Now:         s.opts.Now,
		Name:        name,
	}
}
