package calc

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/findata/internal/domain/models"
)

func nd(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func TestResolveCurrent(t *testing.T) {
	cases := []struct {
		name string
		in   []decimal.NullDecimal
		want decimal.NullDecimal
	}{
		{name: "primary wins", in: []decimal.NullDecimal{nd("1.5"), nd("2")}, want: nd("1.5")},
		{name: "secondary when primary absent", in: []decimal.NullDecimal{{}, nd("2")}, want: nd("2")},
		{name: "zero primary is kept", in: []decimal.NullDecimal{nd("0"), nd("2")}, want: nd("0")},
		{name: "all absent", in: []decimal.NullDecimal{{}, {}}, want: decimal.NullDecimal{}},
		{name: "no candidates", in: nil, want: decimal.NullDecimal{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveCurrent(tc.in...)
			assert.Equal(t, tc.want.Valid, got.Valid)
			if tc.want.Valid {
				assert.True(t, tc.want.Decimal.Equal(got.Decimal), "got %s", got.Decimal)
			}
		})
	}
}

func TestChangePercent(t *testing.T) {
	cases := []struct {
		name    string
		current decimal.NullDecimal
		prev    decimal.NullDecimal
		want    string
	}{
		{name: "ten percent up", current: nd("110"), prev: nd("100"), want: "10.00"},
		{name: "ten percent down", current: nd("90"), prev: nd("100"), want: "-10.00"},
		{name: "zero previous close", current: nd("110"), prev: nd("0"), want: "0"},
		{name: "absent previous close", current: nd("110"), prev: decimal.NullDecimal{}, want: "0"},
		{name: "absent current", current: decimal.NullDecimal{}, prev: nd("100"), want: "0"},
		{name: "both absent", want: "0"},
		{name: "tie rounds away from zero", current: nd("100.125"), prev: nd("100"), want: "0.13"},
		{name: ".005 tie rounds up", current: nd("101.005"), prev: nd("100"), want: "1.01"},
		{name: "negative .005 tie rounds down", current: nd("98.995"), prev: nd("100"), want: "-1.01"},
		{name: "negative tie rounds away from zero", current: nd("99.875"), prev: nd("100"), want: "-0.13"},
		{name: "below tie rounds down", current: nd("100.1249"), prev: nd("100"), want: "0.12"},
		{name: "repeating fraction", current: nd("4"), prev: nd("3"), want: "33.33"},
		{name: "unchanged", current: nd("5021.84"), prev: nd("5021.84"), want: "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ChangePercent(tc.current, tc.prev)
			want := decimal.RequireFromString(tc.want)
			assert.True(t, want.Equal(got), "want %s got %s", want, got)
		})
	}
}

func TestChangePercent_ZeroPreviousIsExactlyZero(t *testing.T) {
	for _, c := range []string{"-5", "0", "0.0001", "123456.789"} {
		got := ChangePercent(nd(c), nd("0"))
		require.True(t, got.IsZero(), "current=%s got %s", c, got)
	}
}

func series(values ...string) models.RawSeries {
	out := make(models.RawSeries, 0, len(values))
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, v := range values {
		out = append(out, models.Observation{Date: start.AddDate(0, i, 0), Value: decimal.RequireFromString(v)})
	}
	return out
}

func TestSeriesChange(t *testing.T) {
	def := models.IndicatorDef{Key: "unemployment_rate", SeriesID: "UNRATE", Name: "Unemployment Rate"}

	_, ok := SeriesChange(def, "FRED", series())
	assert.False(t, ok, "empty series must be skipped")

	_, ok = SeriesChange(def, "FRED", series("3.7"))
	assert.False(t, ok, "single observation must be skipped")

	got, ok := SeriesChange(def, "FRED", series("3.5", "3.7", "3.9"))
	require.True(t, ok)
	assert.Equal(t, "UNRATE", got.SeriesID)
	assert.Equal(t, "Unemployment Rate", got.DisplayName)
	assert.Equal(t, "FRED", got.Source)
	assert.True(t, got.LatestValue.Equal(decimal.RequireFromString("3.9")))
	assert.True(t, got.PreviousValue.Equal(decimal.RequireFromString("3.7")))
	assert.True(t, got.Change.Equal(decimal.RequireFromString("0.2")), "change=%s", got.Change)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got.AsOfDate)
}

func TestSeriesChange_NegativeChange(t *testing.T) {
	got, ok := SeriesChange(models.IndicatorDef{SeriesID: "FEDFUNDS"}, "", series("5.33", "5.08"))
	require.True(t, ok)
	assert.True(t, got.Change.Equal(decimal.RequireFromString("-0.25")), "change=%s", got.Change)
}

func history(closes ...string) []models.PricePoint {
	out := make([]models.PricePoint, 0, len(closes))
	start := time.Date(2024, 4, 22, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		out = append(out, models.PricePoint{Date: start.AddDate(0, 0, i), Close: decimal.RequireFromString(c)})
	}
	return out
}

func TestSummarize(t *testing.T) {
	def := models.IndexDef{Symbol: "^GSPC", Name: "S&P 500"}

	t.Run("regular price preferred, previous close reported", func(t *testing.T) {
		q := models.Quote{
			RegularMarketPrice: nd("110"),
			CurrentPrice:       nd("999"),
			PreviousClose:      nd("100"),
			History:            history("98", "100", "110"),
		}
		s := Summarize(def, q)
		assert.Equal(t, "S&P 500", s.DisplayName)
		assert.True(t, s.Current.Decimal.Equal(decimal.NewFromInt(110)))
		assert.True(t, s.ChangePercent.Equal(decimal.NewFromInt(10)))
		assert.Len(t, s.RecentTrend, 3)
	})

	t.Run("previous close from history", func(t *testing.T) {
		q := models.Quote{CurrentPrice: nd("110"), History: history("90", "100", "110")}
		s := Summarize(def, q)
		require.True(t, s.PreviousClose.Valid)
		assert.True(t, s.PreviousClose.Decimal.Equal(decimal.NewFromInt(100)))
		assert.True(t, s.ChangePercent.Equal(decimal.NewFromInt(10)))
	})

	t.Run("previous close falls back to current", func(t *testing.T) {
		q := models.Quote{RegularMarketPrice: nd("110"), History: history("110")}
		s := Summarize(def, q)
		assert.True(t, s.PreviousClose.Decimal.Equal(decimal.NewFromInt(110)))
		assert.True(t, s.ChangePercent.IsZero())
	})

	t.Run("nothing resolvable", func(t *testing.T) {
		s := Summarize(def, models.Quote{})
		assert.False(t, s.Current.Valid)
		assert.False(t, s.PreviousClose.Valid)
		assert.True(t, s.ChangePercent.IsZero())
		assert.Empty(t, s.RecentTrend)
	})

	t.Run("zero previous close is not replaced", func(t *testing.T) {
		q := models.Quote{RegularMarketPrice: nd("5"), PreviousClose: nd("0"), History: history("1", "2")}
		s := Summarize(def, q)
		assert.True(t, s.PreviousClose.Decimal.IsZero())
		assert.True(t, s.ChangePercent.IsZero())
	})
}
