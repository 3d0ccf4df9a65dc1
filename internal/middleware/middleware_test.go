// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/tomtom215/citescape/internal/logging"
	"github.com/tomtom215/citescape/internal/metrics"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{"generates when absent", "", false},
		{"keeps upstream id", "upstream-123", true},
		{"keeps uuid", "0b6c1f0e-3f4a-4c39-9f7d-2a0c5d1e9b11", true},
		{"keeps dotted id", "lb.eu-west:42_a", true},
		{"replaces oversized id", strings.Repeat("x", 200), false},
		{"replaces id with spaces", "abc def", false},
		{"replaces id with quotes", `abc"}`, false},
		{"replaces id with newline", "abc\ninjected", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ctxID, logID string
			handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
				ctxID = GetRequestID(r.Context())
				logID = logging.RequestIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			header := rec.Header().Get(RequestIDHeader)
			if header == "" {
				t.Fatal("response is missing the request id header")
			}
			if header != ctxID || header != logID {
				t.Errorf("ids disagree: header=%q ctx=%q log=%q", header, ctxID, logID)
			}
			if tt.wantSame && header != tt.incoming {
				t.Errorf("header = %q, want %q", header, tt.incoming)
			}
			if !tt.wantSame && header == tt.incoming {
				t.Errorf("header should have been regenerated")
			}
		})
	}
}

func TestRequestID_CorrelationID(t *testing.T) {
	var got string
	handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
		got = logging.CorrelationIDFromContext(r.Context())
	})

	t.Run("propagates upstream id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(CorrelationIDHeader, "retry-chain-7")
		rec := httptest.NewRecorder()
		handler(rec, req)

		if got != "retry-chain-7" {
			t.Errorf("context correlation id = %q, want retry-chain-7", got)
		}
		if h := rec.Header().Get(CorrelationIDHeader); h != "retry-chain-7" {
			t.Errorf("header = %q, want retry-chain-7", h)
		}
	})

	t.Run("generates when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler(rec, req)

		if got == "" || got == "retry-chain-7" {
			t.Errorf("context correlation id = %q, want a fresh id", got)
		}
		if h := rec.Header().Get(CorrelationIDHeader); h != got {
			t.Errorf("header = %q, want %q", h, got)
		}
	})
}

func TestGetRequestID_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetRequestID(req.Context()); got != "" {
		t.Errorf("GetRequestID() = %q, want empty", got)
	}
}

func TestPrometheusMetrics_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler { return PrometheusMetrics(next.ServeHTTP) })
	r.Get("/api/v1/countries/{country}/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	pattern := "/api/v1/countries/{country}/health"
	before := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, pattern, "418"))

	for _, country := range []string{"spain", "portugal"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/countries/"+country+"/health", nil))
		if rec.Code != http.StatusTeapot {
			t.Fatalf("status = %d, want 418", rec.Code)
		}
	}

	after := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, pattern, "418"))
	if after-before != 2 {
		t.Errorf("request counter delta = %v, want 2", after-before)
	}
}

func TestRoutePattern_Unrouted(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	if got := RoutePattern(req); got != unmatchedRoute {
		t.Errorf("RoutePattern() = %q, want %q", got, unmatchedRoute)
	}
}

func TestStatusRecorder_FirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	sr := &statusRecorder{ResponseWriter: rec, statusCode: http.StatusOK}

	sr.WriteHeader(http.StatusNotFound)
	sr.WriteHeader(http.StatusInternalServerError)

	if sr.statusCode != http.StatusNotFound {
		t.Errorf("statusCode = %d, want 404", sr.statusCode)
	}
}

func TestAccessLog(t *testing.T) {
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"server error", http.StatusInternalServerError, `"level":"error"`},
		{"client error", http.StatusNotFound, `"level":"warn"`},
		{"success", http.StatusOK, `"level":"debug"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := logging.NewTestLogger(&buf).Level(zerolog.DebugLevel)

			handler := AccessLog(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/countries/spain/recommendations", nil)
			req = req.WithContext(logging.ContextWithLogger(req.Context(), logger))
			handler(httptest.NewRecorder(), req)

			out := buf.String()
			if !strings.Contains(out, tt.wantLevel) {
				t.Errorf("log %q missing %s", out, tt.wantLevel)
			}
			if !strings.Contains(out, `"path":"/api/v1/countries/spain/recommendations"`) {
				t.Errorf("log %q missing path", out)
			}
		})
	}
}
