package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/guttosm/findata/internal/domain/models"
	"github.com/guttosm/findata/internal/provider"
	"github.com/guttosm/findata/internal/provider/mocks"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testOptions() Options {
	return Options{
		Parallelism:  4,
		Now:          func() time.Time { return now },
		QuoteSource:  "Yahoo Finance",
		SeriesSource: "FRED",
	}
}

func nd(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func obs(values ...string) models.RawSeries {
	out := models.RawSeries{}
	for i, v := range values {
		out = append(out, models.Observation{
			Date:  time.Date(2024, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC),
			Value: decimal.RequireFromString(v),
		})
	}
	return out
}

func TestGetStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	quotes := mocks.NewMockQuoteProvider(ctrl)

	quotes.EXPECT().
		FetchQuote(gomock.Any(), "AAPL", provider.WindowMonth).
		Return(models.Quote{Symbol: "AAPL", CurrentPrice: nd("170.5")}, nil)

	svc := NewMarketService(quotes, nil, testOptions())
	snap, err := svc.GetStock(context.Background(), " aapl ")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", snap.Quote.Symbol)
	assert.Equal(t, now, snap.FetchedAt)
	assert.Equal(t, "Yahoo Finance", snap.Source)
}

func TestGetStock_FailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	quotes := mocks.NewMockQuoteProvider(ctrl)

	upstream := provider.Fail("yahoo", "quoteSummary", "INVALID", errors.New("Quote not found for ticker symbol: INVALID"))
	quotes.EXPECT().FetchQuote(gomock.Any(), "INVALID", provider.WindowMonth).Return(models.Quote{}, upstream)

	svc := NewMarketService(quotes, nil, testOptions())
	snap, err := svc.GetStock(context.Background(), "invalid")
	assert.Nil(t, snap)
	assert.ErrorIs(t, err, upstream)
}

func TestGetEconomicIndicators_Unconfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	quotes := mocks.NewMockQuoteProvider(ctrl) // no expectations: any call fails the test

	svc := NewMarketService(quotes, nil, testOptions())
	assert.False(t, svc.IndicatorsConfigured())

	res, err := svc.GetEconomicIndicators(context.Background())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrIndicatorsUnconfigured)
}

func TestGetEconomicIndicators_PartialAndInsufficient(t *testing.T) {
	ctrl := gomock.NewController(t)
	quotes := mocks.NewMockQuoteProvider(ctrl)
	series := mocks.NewMockSeriesProvider(ctrl)

	series.EXPECT().FetchSeries(gomock.Any(), "CPIAUCSL").Return(obs("310.3", "312.2"), nil)
	series.EXPECT().FetchSeries(gomock.Any(), "FEDFUNDS").Return(obs("5.33"), nil)
	series.EXPECT().FetchSeries(gomock.Any(), "UNRATE").Return(obs("3.7", "3.8", "3.9"), nil)
	series.EXPECT().FetchSeries(gomock.Any(), "GDP").Return(models.RawSeries{}, nil)
	series.EXPECT().FetchSeries(gomock.Any(), "DGS10").Return(nil, errors.New("timeout"))

	svc := NewMarketService(quotes, series, testOptions())
	assert.True(t, svc.IndicatorsConfigured())

	res, err := svc.GetEconomicIndicators(context.Background())
	require.NoError(t, err)

	assert.Len(t, res.Items, 2)
	assert.Equal(t, 3, res.Skipped)
	assert.Equal(t, now, res.FetchedAt)
	assert.NotContains(t, res.Items, "fed_funds_rate")
	assert.NotContains(t, res.Items, "gdp_growth")
	assert.NotContains(t, res.Items, "10y_treasury")

	un := res.Items["unemployment_rate"]
	assert.Equal(t, "Unemployment Rate", un.DisplayName)
	assert.Equal(t, "FRED", un.Source)
	assert.True(t, un.Change.Equal(decimal.RequireFromString("0.1")))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), un.AsOfDate)
}

func TestGetMarketSummary_VIXFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	quotes := mocks.NewMockQuoteProvider(ctrl)

	ok := models.Quote{RegularMarketPrice: nd("110"), PreviousClose: nd("100")}
	quotes.EXPECT().FetchQuote(gomock.Any(), "^GSPC", provider.WindowWeek).Return(ok, nil)
	quotes.EXPECT().FetchQuote(gomock.Any(), "^DJI", provider.WindowWeek).Return(ok, nil)
	quotes.EXPECT().FetchQuote(gomock.Any(), "^IXIC", provider.WindowWeek).Return(ok, nil)
	quotes.EXPECT().FetchQuote(gomock.Any(), "^VIX", provider.WindowWeek).Return(models.Quote{}, errors.New("boom"))

	svc := NewMarketService(quotes, nil, testOptions())
	res, err := svc.GetMarketSummary(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Items, 3)
	assert.NotContains(t, res.Items, "^VIX")
	assert.Equal(t, 1, res.Skipped)

	gspc := res.Items["^GSPC"]
	assert.Equal(t, "S&P 500", gspc.DisplayName)
	assert.True(t, gspc.ChangePercent.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "Dow Jones", res.Items["^DJI"].DisplayName)
}

func TestGetMarketSummary_AllFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	quotes := mocks.NewMockQuoteProvider(ctrl)
	quotes.EXPECT().FetchQuote(gomock.Any(), gomock.Any(), provider.WindowWeek).Return(models.Quote{}, errors.New("down")).Times(len(DefaultIndices))

	svc := NewMarketService(quotes, nil, testOptions())
	res, err := svc.GetMarketSummary(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, len(DefaultIndices), res.Skipped)
}

func TestGetMarketSummary_CustomCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	quotes := mocks.NewMockQuoteProvider(ctrl)
	quotes.EXPECT().FetchQuote(gomock.Any(), "^FTSE", provider.WindowWeek).Return(models.Quote{CurrentPrice: nd("8000")}, nil)

	opts := testOptions()
	opts.Indices = []models.IndexDef{{Symbol: "^FTSE", Name: "FTSE 100"}}

	res, err := NewMarketService(quotes, nil, opts).GetMarketSummary(context.Background())
	require.NoError(t, err)
	require.Contains(t, res.Items, "^FTSE")
	assert.True(t, res.Items["^FTSE"].ChangePercent.IsZero())
}

func TestGetMarketSummary_CanceledRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	quotes := mocks.NewMockQuoteProvider(ctrl)
	quotes.EXPECT().FetchQuote(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ provider.HistoryWindow) (models.Quote, error) {
			return models.Quote{}, ctx.Err()
		}).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := NewMarketService(quotes, nil, testOptions()).GetMarketSummary(ctx)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
}
