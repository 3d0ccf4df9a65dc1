// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

// Package metrics defines the Prometheus collectors exported by citescape.
//
// Collectors are registered with the default registry through promauto and
// served by promhttp on the configured metrics path. Callers use the Record*
// helpers rather than touching the collectors directly.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "citescape_recommendations_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"country", "status"}, // status: "success", "error"
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "citescape_recommendation_duration_seconds",
			Help:    "Time spent in the recommendation pipeline",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05},
		},
		[]string{"country"},
	)

	RecommendationCandidates = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "citescape_prefilter_candidates",
			Help:    "Number of cities left after pre-filtering",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144},
		},
		[]string{"country"},
	)

	PrefilterSoftSkips = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "citescape_prefilter_soft_skips_total",
			Help: "Zone families skipped because they would leave too few cities",
		},
		[]string{"country", "family"},
	)

	BonusRuleHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "citescape_bonus_rule_hits_total",
			Help: "Bonus or malus rules applied to a recommended city",
		},
		[]string{"country", "rule"},
	)

	// Catalog Metrics
	CatalogCities = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "citescape_catalog_cities",
			Help: "Number of cities in each registered catalog",
		},
		[]string{"country"},
	)

	RecommendationCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "citescape_recommendation_cache_requests_total",
			Help: "Envelope cache lookups by country and result (hit, miss)",
		},
		[]string{"country", "result"},
	)

	CountryHealthy = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "citescape_country_healthy",
			Help: "Whether a registered country engine reports healthy (1) or not (0)",
		},
		[]string{"country"},
	)

	CatalogLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "citescape_catalog_load_errors_total",
			Help: "Catalog loads that failed at engine construction",
		},
		[]string{"country"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordRecommendation records one pass through a country's pipeline.
// candidates is the size of the filtered set; it is not observed on errors
// raised before filtering (candidates < 0).
func RecordRecommendation(country, status string, duration time.Duration, candidates int) {
	RecommendationsTotal.WithLabelValues(country, status).Inc()
	RecommendationDuration.WithLabelValues(country).Observe(duration.Seconds())
	if candidates >= 0 {
		RecommendationCandidates.WithLabelValues(country).Observe(float64(candidates))
	}
}

// RecordSoftSkip counts a zone family that was not applied.
func RecordSoftSkip(country, family string) {
	PrefilterSoftSkips.WithLabelValues(country, family).Inc()
}

// RecordBonusHit counts a bonus rule applied to a returned city.
func RecordBonusHit(country, rule string) {
	BonusRuleHits.WithLabelValues(country, rule).Inc()
}

// SetCatalogCities publishes the size of a registered catalog.
func SetCatalogCities(country string, n int) {
	CatalogCities.WithLabelValues(country).Set(float64(n))
}

// RecordCatalogLoadError counts a failed catalog load.
func RecordCatalogLoadError(country string) {
	CatalogLoadErrors.WithLabelValues(country).Inc()
}

// SetCountryHealthy publishes a country's health status.
func SetCountryHealthy(country string, healthy bool) {
	v := 0.0
	if healthy {
		v = 1
	}
	CountryHealthy.WithLabelValues(country).Set(v)
}

// RecordCacheLookup counts one envelope cache lookup.
func RecordCacheLookup(country string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	RecommendationCacheRequests.WithLabelValues(country, result).Inc()
}
