// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/citescape/internal/middleware"
)

// RouterOptions holds the router's optional surfaces.
type RouterOptions struct {
	MetricsEnabled bool
	MetricsPath    string
}

// NewRouter builds the chi router for h.
func NewRouter(h *Handler, mw *ChiMiddleware, opts RouterOptions) http.Handler {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}

	r := chi.NewRouter()

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(mw.CORS())

	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(mw.RateLimit())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.AccessLog))
		r.Use(chimiddleware.Compress(5, "application/json"))

		r.Get("/health", h.Health)
		r.Get("/countries", h.Countries)

		r.Route("/countries/{country}", func(r chi.Router) {
			r.Get("/health", h.CountryHealth)
			r.Get("/questionnaire", h.Questionnaire)
			r.Post("/recommendations", h.Recommendations)
		})
	})

	if opts.MetricsEnabled {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Handle(path, promhttp.Handler())
	}

	return r
}
