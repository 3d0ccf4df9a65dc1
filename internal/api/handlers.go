// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/citescape/internal/cache"
	"github.com/tomtom215/citescape/internal/logging"
	"github.com/tomtom215/citescape/internal/metrics"
	"github.com/tomtom215/citescape/internal/recommend"
	"github.com/tomtom215/citescape/internal/validation"
)

// maxBodyBytes bounds the recommendation request body.
const maxBodyBytes = 1 << 20

// CacheHeader reports whether an envelope came from the cache.
const CacheHeader = "X-Cache"

// HandlerConfig holds request defaults for the handlers.
type HandlerConfig struct {
	DefaultTopN    int
	MaxTopN        int
	RequestTimeout time.Duration
	Breaker        BreakerConfig

	// CacheSize bounds the envelope cache; zero disables it.
	CacheSize int
	CacheTTL  time.Duration
}

// DefaultHandlerConfig returns the defaults.
func DefaultHandlerConfig() HandlerConfig {
	return HandlerConfig{
		DefaultTopN:    recommend.DefaultTopN,
		MaxTopN:        50,
		RequestTimeout: 5 * time.Second,
		Breaker:        DefaultBreakerConfig(),
	}
}

// Handler serves the gateway endpoints from a registry.
type Handler struct {
	registry *recommend.Registry
	config   HandlerConfig
	breakers *breakers
	cache    *cache.LRU[*recommend.Envelope]
}

// NewHandler creates a handler. Zero config fields take the defaults.
func NewHandler(registry *recommend.Registry, cfg HandlerConfig) *Handler {
	defaults := DefaultHandlerConfig()
	if cfg.DefaultTopN <= 0 {
		cfg.DefaultTopN = defaults.DefaultTopN
	}
	if cfg.MaxTopN <= 0 {
		cfg.MaxTopN = defaults.MaxTopN
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaults.RequestTimeout
	}
	h := &Handler{
		registry: registry,
		config:   cfg,
		breakers: newBreakers(cfg.Breaker),
	}
	if cfg.CacheSize > 0 {
		h.cache = cache.NewLRU[*recommend.Envelope](cfg.CacheSize, cfg.CacheTTL)
	}
	return h
}

// HealthResponse is the aggregate health payload.
type HealthResponse struct {
	Status    string                      `json:"status"`
	Countries map[string]recommend.Health `json:"countries"`
}

// Health handles GET /api/v1/health. It answers 503 when any country is
// unhealthy or none is registered.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	countries := h.registry.Health()

	status := recommend.HealthHealthy
	if len(countries) == 0 {
		status = recommend.HealthUnhealthy
	}
	for _, c := range countries {
		if c.Status != recommend.HealthHealthy {
			status = recommend.HealthUnhealthy
			break
		}
	}

	code := http.StatusOK
	if status != recommend.HealthHealthy {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: status, Countries: countries})
}

// CountrySummary is one entry of the countries listing.
type CountrySummary struct {
	ID               string `json:"id"`
	DisplayName      string `json:"display_name"`
	AlgorithmVersion string `json:"algorithm_version"`
	Cities           int    `json:"cities"`
}

// Countries handles GET /api/v1/countries.
func (h *Handler) Countries(w http.ResponseWriter, r *http.Request) {
	ids := h.registry.Countries()
	out := make([]CountrySummary, 0, len(ids))
	for _, id := range ids {
		e, err := h.registry.Get(id)
		if err != nil {
			continue
		}
		out = append(out, CountrySummary{
			ID:               id,
			DisplayName:      e.DisplayName(),
			AlgorithmVersion: e.Bundle().AlgorithmVersion,
			Cities:           e.Catalog().Len(),
		})
	}
	respondSuccess(w, r, out, len(out))
}

// CountryHealthResponse is one engine's health with its request counters.
type CountryHealthResponse struct {
	recommend.Health
	Stats   recommend.Stats `json:"stats"`
	Breaker string          `json:"circuit_breaker"`
}

// CountryHealth handles GET /api/v1/countries/{country}/health.
func (h *Handler) CountryHealth(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")
	e, err := h.registry.Get(country)
	if err != nil {
		respondError(w, r, http.StatusNotFound, ErrCodeUnknownCountry, unknownCountryMessage(country), nil)
		return
	}

	health := e.Health()
	code := http.StatusOK
	if health.Status != recommend.HealthHealthy {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, CountryHealthResponse{
		Health:  health,
		Stats:   e.Stats(),
		Breaker: h.breakers.state(country),
	})
}

// QuestionnaireResponse describes the fields a country engine reads.
type QuestionnaireResponse struct {
	Country          string               `json:"country"`
	DisplayName      string               `json:"display_name"`
	AlgorithmVersion string               `json:"algorithm_version"`
	Fields           []recommend.Question `json:"fields"`
}

// Questionnaire handles GET /api/v1/countries/{country}/questionnaire.
func (h *Handler) Questionnaire(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")
	e, err := h.registry.Get(country)
	if err != nil {
		respondError(w, r, http.StatusNotFound, ErrCodeUnknownCountry, unknownCountryMessage(country), nil)
		return
	}

	b := e.Bundle()
	fields := b.Questionnaire()
	respondSuccess(w, r, QuestionnaireResponse{
		Country:          b.Country,
		DisplayName:      b.DisplayName,
		AlgorithmVersion: b.AlgorithmVersion,
		Fields:           fields,
	}, len(fields))
}

// RecommendationRequest is the body of the recommendations endpoint.
type RecommendationRequest struct {
	Responses recommend.Profile `json:"responses"`
	TopN      *int              `json:"top_n,omitempty" validate:"omitempty,gte=0"`
}

// Recommendations handles POST /api/v1/countries/{country}/recommendations.
// Every outcome is written as an engine envelope.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")
	logger := logging.CtxWith(r.Context()).Str("country", country).Logger()

	e, err := h.registry.Get(country)
	if err != nil {
		respondEnvelope(w, http.StatusNotFound, recommend.ErrorEnvelope(unknownCountryMessage(country)))
		return
	}

	var req RecommendationRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		logger.Debug().Err(err).Msg("invalid recommendation request body")
		respondEnvelope(w, http.StatusBadRequest, recommend.ErrorEnvelope("Request body must be a JSON object with a responses map"))
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondEnvelope(w, http.StatusBadRequest, recommend.ErrorEnvelope(verr.ToAPIError().Message))
		return
	}

	topN := h.config.DefaultTopN
	if req.TopN != nil {
		topN = *req.TopN
	}
	if topN > h.config.MaxTopN {
		respondEnvelope(w, http.StatusBadRequest, recommend.ErrorEnvelope(
			fmt.Sprintf("top_n must be less than or equal to %d", h.config.MaxTopN)))
		return
	}

	// Engines are deterministic over immutable catalogs, so a success
	// envelope can be replayed for the same answers and top_n.
	key := h.cacheKey(country, req.Responses, topN)
	if key != "" {
		cached, ok := h.cache.Get(key)
		metrics.RecordCacheLookup(country, ok)
		if ok {
			w.Header().Set(CacheHeader, "HIT")
			respondEnvelope(w, http.StatusOK, cached)
			return
		}
		w.Header().Set(CacheHeader, "MISS")
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.config.RequestTimeout)
	defer cancel()

	env, err := h.breakers.execute(country, func() (*recommend.Envelope, error) {
		return e.Evaluate(ctx, req.Responses, topN)
	})
	if isRejection(err) {
		respondEnvelope(w, http.StatusServiceUnavailable, recommend.ErrorEnvelope(
			fmt.Sprintf("Recommendations for %s are temporarily unavailable", e.DisplayName())))
		return
	}
	if err != nil && !errors.Is(err, recommend.ErrNoCandidates) {
		logger.Warn().Err(err).Msg("recommendation failed")
	}
	if err == nil && key != "" {
		h.cache.Add(key, env)
	}
	respondEnvelope(w, http.StatusOK, env)
}

// cacheKey returns "" when caching is off or the answers cannot be keyed.
func (h *Handler) cacheKey(country string, responses recommend.Profile, topN int) string {
	if h.cache == nil {
		return ""
	}
	key, err := cache.GenerateKey(country, struct {
		Responses recommend.Profile `json:"responses"`
		TopN      int               `json:"top_n"`
	}{responses, topN})
	if err != nil {
		return ""
	}
	return key
}

func unknownCountryMessage(country string) string {
	return fmt.Sprintf("Unknown country %q", country)
}
