package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/findata/internal/domain/models"
)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeMarketService{summary: &models.AggregateResult[models.IndexSummary]{
		Items:     map[string]models.IndexSummary{"^VIX": {Symbol: "^VIX", DisplayName: "VIX", Current: nd("13.2")}},
		FetchedAt: fetchedAt,
	}}
	r := NewRouter(NewHandler(svc), time.Second)

	req := httptest.NewRequest(http.MethodGet, "/market-summary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	// Ensure RequestID middleware injected header
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}

	var out struct {
		Indices map[string]struct {
			Name    string   `json:"name"`
			Current *float64 `json:"current"`
		} `json:"indices"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	vix, ok := out.Indices["^VIX"]
	if !ok || vix.Name != "VIX" || vix.Current == nil || *vix.Current != 13.2 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestNewRouter_RequestTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(NewHandler(&fakeMarketService{block: true}), 20*time.Millisecond)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stock/AAPL", nil))

	if w.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected 504, got %d", w.Code)
	}
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(NewHandler(&fakeMarketService{}), time.Second)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/aggregate", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body["error"] != "not found" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestNewRouter_CORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(NewHandler(&fakeMarketService{err: errors.New("down")}), time.Second)

	req := httptest.NewRequest(http.MethodGet, "/stock/AAPL", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}

	pre := httptest.NewRequest(http.MethodOptions, "/market-summary", nil)
	pre.Header.Set("Origin", "http://localhost:3000")
	pre.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, pre)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected preflight 204, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Fatalf("expected allowed methods on preflight")
	}
}
