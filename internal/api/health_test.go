package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		configured func() bool
		path       string
		want       map[string]string
	}{
		{name: "health", path: "/health", want: map[string]string{"status": "healthy", "service": "financial-data"}},
		{name: "readyz configured", configured: func() bool { return true }, path: "/readyz", want: map[string]string{"status": "ready", "indicators": "configured"}},
		{name: "readyz unconfigured", configured: func() bool { return false }, path: "/readyz", want: map[string]string{"status": "ready", "indicators": "unconfigured"}},
		{name: "readyz nil probe", path: "/readyz", want: map[string]string{"status": "ready", "indicators": "unconfigured"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			NewHealthHandler(tc.configured).Register(r)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("want 200 got %d", w.Code)
			}

			var got map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			for k, v := range tc.want {
				if got[k] != v {
					t.Fatalf("%s: want %q got %q", k, v, got[k])
				}
			}
		})
	}
}
