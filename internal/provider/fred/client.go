package fred

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/findata/internal/domain/models"
	"github.com/guttosm/findata/internal/provider"
	"github.com/guttosm/findata/internal/provider/httpx"
)

const (
	// DefaultBaseURL is the public FRED API host.
	DefaultBaseURL = "https://api.stlouisfed.org"
	// Source is the label attached to every indicator.
	Source = "Federal Reserve Economic Data (FRED)"
	// ObservationLimit bounds how many of the most recent observations are requested.
	ObservationLimit = 10

	name         = "fred"
	missingValue = "."
)

// ErrNoAPIKey is returned by New when the credential is empty.
var ErrNoAPIKey = errors.New("fred: api key is required")

var _ provider.SeriesProvider = (*Client)(nil)

// Client reads series observations from the FRED API.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *httpx.Client
}

// New builds a Client. A Client only exists when a credential is configured.
func New(baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), APIKey: apiKey, HTTP: httpx.New(timeout)}, nil
}

func (c *Client) Name() string { return name }

// FetchSeries returns the most recent observations of seriesID, oldest first.
// Missing observations (".") are dropped so the result has no gaps.
func (c *Client) FetchSeries(ctx context.Context, seriesID string) (models.RawSeries, error) {
	out, err := c.fetch(ctx, seriesID)
	return out, provider.Fail(name, "observations", seriesID, err)
}

func (c *Client) fetch(ctx context.Context, seriesID string) (models.RawSeries, error) {
	q := url.Values{}
	q.Set("series_id", seriesID)
	q.Set("api_key", c.APIKey)
	q.Set("file_type", "json")
	q.Set("sort_order", "desc")
	q.Set("limit", strconv.Itoa(ObservationLimit))
	u := c.BaseURL + "/fred/series/observations?" + q.Encode()

	var body observationsResponse
	status, err := c.HTTP.GetJSON(ctx, u, &body)
	if err != nil {
		return nil, redact(err, c.APIKey)
	}
	if body.ErrorMessage != "" {
		return nil, errors.New(body.ErrorMessage)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", status)
	}

	out := make(models.RawSeries, 0, len(body.Observations))
	for _, o := range body.Observations {
		if o.Value == missingValue || o.Value == "" {
			continue
		}
		v, err := decimal.NewFromString(o.Value)
		if err != nil {
			return nil, fmt.Errorf("observation %s: %w", o.Date, err)
		}
		d, err := time.Parse(time.DateOnly, o.Date)
		if err != nil {
			return nil, fmt.Errorf("observation date %q: %w", o.Date, err)
		}
		out = append(out, models.Observation{Date: d, Value: v})
	}
	slices.SortStableFunc(out, func(a, b models.Observation) int { return a.Date.Compare(b.Date) })
	return out, nil
}

// redact strips the credential from transport errors, which embed the request URL.
func redact(err error, key string) error {
	msg := err.Error()
	if !strings.Contains(msg, key) {
		return err
	}
	return errors.New(strings.ReplaceAll(msg, key, "REDACTED"))
}

type observationsResponse struct {
	Observations []struct {
		Date  string `json:"date"`
		Value string `json:"value"`
	} `json:"observations"`
	ErrorCode    int    `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}
