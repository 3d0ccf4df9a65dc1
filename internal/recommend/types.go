// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package recommend

import (
	"errors"

	"github.com/tomtom215/citescape/internal/catalog"
)

// Request errors. Evaluate wraps them; Recommend turns them into envelopes.
var (
	// ErrNoCandidates is returned when nothing is left to rank, which only
	// happens for an empty catalog.
	ErrNoCandidates = errors.New("no candidate cities")

	// ErrInvalidTopN is returned for a negative top_n.
	ErrInvalidTopN = errors.New("top_n must not be negative")

	// ErrUnknownCountry is returned by Registry.Get.
	ErrUnknownCountry = errors.New("unknown country")

	// ErrInternalScoring wraps unexpected failures inside the pipeline.
	ErrInternalScoring = errors.New("internal scoring error")
)

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// DefaultTopN is the number of recommendations when the caller gives none.
const DefaultTopN = 3

// Envelope is the uniform response of every country engine.
type Envelope struct {
	Status              string           `json:"status"`
	Message             string           `json:"message,omitempty"`
	Recommendations     []Recommendation `json:"recommendations"`
	TotalCitiesAnalyzed int              `json:"total_cities_analyzed,omitempty"`
	AlgorithmVersion    string           `json:"algorithm_version,omitempty"`
	Country             string           `json:"country,omitempty"`
}

// OK reports whether the envelope is a success envelope.
func (e *Envelope) OK() bool {
	return e.Status == StatusSuccess
}

// ErrorEnvelope builds a status "error" envelope with an empty recommendation list.
func ErrorEnvelope(message string) *Envelope {
	return &Envelope{
		Status:          StatusError,
		Message:         message,
		Recommendations: []Recommendation{},
	}
}

// Recommendation is one ranked city.
type Recommendation struct {
	City   string `json:"city"`
	CityID string `json:"city_id"`

	// Exactly one of Region and State is set, per the bundle's RegionKey.
	Region string `json:"region,omitempty"`
	State  string `json:"state,omitempty"`

	// ScorePercentage is the final score x 100, rounded to one decimal.
	ScorePercentage float64 `json:"score_percentage"`

	Population   int64                `json:"population"`
	Coordinates  *catalog.Coordinates `json:"coordinates,omitempty"`
	EconomicZone string               `json:"economic_zone,omitempty"`

	TopCriteria    []CriterionContribution `json:"top_criteria,omitempty"`
	Strengths      []string                `json:"strengths,omitempty"`
	Concerns       []string                `json:"concerns,omitempty"`
	WhyRecommended string                  `json:"why_recommended,omitempty"`

	// BonusesApplied names the bonus rules that fired for this city.
	BonusesApplied []string `json:"bonuses_applied,omitempty"`

	// LifestyleBonus is the soft lifestyle factor, when not 1.
	LifestyleBonus float64 `json:"lifestyle_bonus,omitempty"`

	score float64
}

// Score returns the unrounded final score.
func (r *Recommendation) Score() float64 {
	return r.score
}

// CriterionContribution explains one criterion's share of a score.
type CriterionContribution struct {
	// Criterion is the display label.
	Criterion string `json:"criterion"`

	// Score is the city's score on the criterion, in percent.
	Score float64 `json:"score"`

	// Contribution is score x weight x 100.
	Contribution float64 `json:"contribution"`
}

// Health is the health-check payload of one engine.
type Health struct {
	Status         string         `json:"status"`
	Version        string         `json:"version"`
	CitiesCount    int            `json:"cities_count"`
	CriteriaCount  int            `json:"criteria_count"`
	ZonesAvailable map[string]int `json:"zones_available,omitempty"`
}

// Health status values.
const (
	HealthHealthy   = "healthy"
	HealthUnhealthy = "unhealthy"
)

// Stats is a snapshot of an engine's request counters.
type Stats struct {
	Requests      int64 `json:"requests"`
	Errors        int64 `json:"errors"`
	EmptyRequests int64 `json:"empty_requests"`
}
