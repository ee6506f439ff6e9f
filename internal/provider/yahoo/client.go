package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/findata/internal/calc"
	"github.com/guttosm/findata/internal/domain/models"
	"github.com/guttosm/findata/internal/provider"
	"github.com/guttosm/findata/internal/provider/httpx"
)

const (
	// DefaultBaseURL is the public Yahoo Finance query host.
	DefaultBaseURL = "https://query1.finance.yahoo.com"
	// DefaultCookieURL hands out the session cookie the crumb is bound to.
	DefaultCookieURL = "https://fc.yahoo.com"
	// Source is the label reported in response metadata.
	Source = "Yahoo Finance"

	name           = "yahoo"
	summaryModules = "price,summaryDetail,financialData,assetProfile"
)

var _ provider.QuoteProvider = (*Client)(nil)

// Client fetches quotes from Yahoo Finance: valuation fields from quoteSummary
// and the trailing daily history from chart.
//
// quoteSummary only answers requests carrying a crumb bound to a session
// cookie. The crumb is obtained once, shared by all requests, and refreshed
// when Yahoo rejects it.
type Client struct {
	BaseURL string
	// CookieURL is visited before asking for a crumb; empty skips the visit.
	CookieURL string
	HTTP      *httpx.Client

	mu    sync.Mutex
	crumb string
}

// New returns a Client whose upstream calls are bounded by timeout.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		CookieURL: DefaultCookieURL,
		HTTP:      httpx.New(timeout),
	}
}

func (c *Client) Name() string { return name }

// FetchQuote fetches the summary and the chart concurrently; either failing
// fails the quote. An empty history window is not an error.
func (c *Client) FetchQuote(ctx context.Context, symbol string, window provider.HistoryWindow) (models.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	var (
		summary summaryResult
		bars    chartResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = c.quoteSummary(gctx, symbol)
		return provider.Fail(name, "quoteSummary", symbol, err)
	})
	g.Go(func() error {
		var err error
		bars, err = c.chart(gctx, symbol, window)
		return provider.Fail(name, "chart", symbol, err)
	})
	if err := g.Wait(); err != nil {
		return models.Quote{}, err
	}

	return summary.toQuote(symbol, bars), nil
}

func (c *Client) quoteSummary(ctx context.Context, symbol string) (summaryResult, error) {
	crumb, err := c.sessionCrumb(ctx, "")
	if err != nil {
		return summaryResult{}, err
	}

	body, status, err := c.fetchSummary(ctx, symbol, crumb)
	if err == nil && status == http.StatusUnauthorized {
		if crumb, err = c.sessionCrumb(ctx, crumb); err != nil {
			return summaryResult{}, err
		}
		body, status, err = c.fetchSummary(ctx, symbol, crumb)
	}
	if err != nil {
		return summaryResult{}, err
	}
	if e := firstError(body.QuoteSummary.Error, body.Finance.Error); e != nil {
		return summaryResult{}, e
	}
	if status != http.StatusOK {
		return summaryResult{}, fmt.Errorf("unexpected status %d", status)
	}
	if len(body.QuoteSummary.Result) == 0 {
		return summaryResult{}, fmt.Errorf("no quote data for %s", symbol)
	}
	return body.QuoteSummary.Result[0], nil
}

func (c *Client) fetchSummary(ctx context.Context, symbol, crumb string) (summaryResponse, int, error) {
	q := url.Values{}
	q.Set("modules", summaryModules)
	q.Set("crumb", crumb)
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?%s", c.BaseURL, url.PathEscape(symbol), q.Encode())

	var body summaryResponse
	status, err := c.HTTP.GetJSON(ctx, u, &body)
	return body, status, err
}

// sessionCrumb returns the cached crumb, or performs the cookie and crumb
// handshake when there is none yet or when stale is the cached value.
func (c *Client) sessionCrumb(ctx context.Context, stale string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.crumb != "" && c.crumb != stale {
		return c.crumb, nil
	}

	if c.CookieURL != "" {
		// fc.yahoo.com answers 404 but still sets the cookie.
		if _, _, err := c.HTTP.GetText(ctx, c.CookieURL); err != nil {
			return "", fmt.Errorf("session cookie: %w", err)
		}
	}

	status, crumb, err := c.HTTP.GetText(ctx, c.BaseURL+"/v1/test/getcrumb")
	if err != nil {
		return "", fmt.Errorf("crumb: %w", err)
	}
	if status != http.StatusOK || crumb == "" || strings.ContainsAny(crumb, "<{ ") {
		return "", fmt.Errorf("crumb: unexpected status %d", status)
	}

	c.crumb = crumb
	return crumb, nil
}

func (c *Client) chart(ctx context.Context, symbol string, window provider.HistoryWindow) (chartResult, error) {
	q := url.Values{}
	q.Set("range", string(window))
	q.Set("interval", "1d")
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", c.BaseURL, url.PathEscape(symbol), q.Encode())

	var body chartResponse
	status, err := c.HTTP.GetJSON(ctx, u, &body)
	if err != nil {
		return chartResult{}, err
	}
	if e := firstError(body.Chart.Error, body.Finance.Error); e != nil {
		return chartResult{}, e
	}
	if status != http.StatusOK {
		return chartResult{}, fmt.Errorf("unexpected status %d", status)
	}
	if len(body.Chart.Result) == 0 {
		return chartResult{}, nil
	}
	return body.Chart.Result[0], nil
}

// ─── Wire types ───────────────────────────────────────────

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// firstError returns the first non-nil upstream error. Auth and rate-limit
// rejections arrive in the "finance" envelope instead of the endpoint's own.
func firstError(errs ...*apiError) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

func (e *apiError) Error() string {
	if e.Description != "" {
		return e.Description
	}
	if e.Code != "" {
		return e.Code
	}
	return "unknown upstream error"
}

// rawValue is Yahoo's {"raw": 1.23, "fmt": "1.23"} number wrapper. A missing
// wrapper, a null raw, or a non-numeric raw ("Infinity") all stay invalid.
type rawValue struct {
	Value decimal.NullDecimal
}

func (r *rawValue) UnmarshalJSON(b []byte) error {
	var w struct {
		Raw json.RawMessage `json:"raw"`
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if len(w.Raw) == 0 {
		return nil
	}
	var d decimal.NullDecimal
	if err := d.UnmarshalJSON(w.Raw); err != nil {
		r.Value = decimal.NullDecimal{}
		return nil
	}
	r.Value = d
	return nil
}

type summaryResponse struct {
	QuoteSummary struct {
		Result []summaryResult `json:"result"`
		Error  *apiError       `json:"error"`
	} `json:"quoteSummary"`
	Finance struct {
		Error *apiError `json:"error"`
	} `json:"finance"`
}

type summaryResult struct {
	Price struct {
		RegularMarketPrice         rawValue `json:"regularMarketPrice"`
		RegularMarketPreviousClose rawValue `json:"regularMarketPreviousClose"`
		MarketCap                  rawValue `json:"marketCap"`
	} `json:"price"`
	SummaryDetail struct {
		PreviousClose    rawValue `json:"previousClose"`
		TrailingPE       rawValue `json:"trailingPE"`
		DividendYield    rawValue `json:"dividendYield"`
		FiftyTwoWeekHigh rawValue `json:"fiftyTwoWeekHigh"`
		FiftyTwoWeekLow  rawValue `json:"fiftyTwoWeekLow"`
		MarketCap        rawValue `json:"marketCap"`
	} `json:"summaryDetail"`
	FinancialData struct {
		CurrentPrice rawValue `json:"currentPrice"`
	} `json:"financialData"`
	AssetProfile struct {
		Sector   string `json:"sector"`
		Industry string `json:"industry"`
	} `json:"assetProfile"`
}

// toQuote merges the summary with the chart. The chart's meta price backs up a
// summary that lacks one.
func (s summaryResult) toQuote(symbol string, bars chartResult) models.Quote {
	regular := calc.ResolveCurrent(s.Price.RegularMarketPrice.Value, bars.Meta.RegularMarketPrice)
	return models.Quote{
		Symbol:             symbol,
		CurrentPrice:       calc.ResolveCurrent(s.FinancialData.CurrentPrice.Value, regular),
		RegularMarketPrice: regular,
		PreviousClose:      calc.ResolveCurrent(s.SummaryDetail.PreviousClose.Value, s.Price.RegularMarketPreviousClose.Value),
		MarketCap:          calc.ResolveCurrent(s.Price.MarketCap.Value, s.SummaryDetail.MarketCap.Value),
		PERatio:            s.SummaryDetail.TrailingPE.Value,
		DividendYield:      s.SummaryDetail.DividendYield.Value,
		FiftyTwoWeekHigh:   s.SummaryDetail.FiftyTwoWeekHigh.Value,
		FiftyTwoWeekLow:    s.SummaryDetail.FiftyTwoWeekLow.Value,
		Sector:             optional(s.AssetProfile.Sector),
		Industry:           optional(s.AssetProfile.Industry),
		History:            bars.points(),
	}
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *apiError     `json:"error"`
	} `json:"chart"`
	Finance struct {
		Error *apiError `json:"error"`
	} `json:"finance"`
}

type chartResult struct {
	Meta struct {
		GMTOffset          int                 `json:"gmtoffset"`
		RegularMarketPrice decimal.NullDecimal `json:"regularMarketPrice"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Close  []decimal.NullDecimal `json:"close"`
			Volume []*int64              `json:"volume"`
		} `json:"quote"`
	} `json:"indicators"`
}

// points aligns timestamps with closes and volumes, drops bars without a
// close, and dates each bar in the exchange's offset.
func (r chartResult) points() []models.PricePoint {
	if len(r.Indicators.Quote) == 0 {
		return []models.PricePoint{}
	}
	bars := r.Indicators.Quote[0]
	loc := time.FixedZone("exchange", r.Meta.GMTOffset)

	out := make([]models.PricePoint, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		if i >= len(bars.Close) || !bars.Close[i].Valid {
			continue
		}
		var vol int64
		if i < len(bars.Volume) && bars.Volume[i] != nil {
			vol = *bars.Volume[i]
		}
		y, m, d := time.Unix(ts, 0).In(loc).Date()
		out = append(out, models.PricePoint{
			Date:   time.Date(y, m, d, 0, 0, 0, 0, loc),
			Close:  bars.Close[i].Decimal,
			Volume: vol,
		})
	}
	return models.NormalizeHistory(out)
}
