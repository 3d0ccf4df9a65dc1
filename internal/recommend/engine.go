// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package recommend

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/citescape/internal/catalog"
	"github.com/tomtom215/citescape/internal/logging"
	"github.com/tomtom215/citescape/internal/metrics"
)

// Engine ranks one country's cities. It is immutable after NewEngine and
// safe for concurrent use.
type Engine struct {
	bundle  Bundle
	catalog *catalog.Catalog
	cities  []catalog.City
	explain explainer
	logger  zerolog.Logger

	requestCount atomic.Int64
	errorCount   atomic.Int64
	emptyCount   atomic.Int64
}

// NewEngine validates the bundle and binds it to a loaded catalog.
// Mismatches between the two (criteria or zone members the catalog lacks)
// are logged as warnings; they do not fail construction.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEngine(b *Bundle, cat *catalog.Catalog, logger zerolog.Logger) (*Engine, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil bundle", ErrInvalidBundle)
	}
	if cat == nil {
		return nil, fmt.Errorf("%w: nil catalog", catalog.ErrCatalogMalformed)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		bundle:  b.withDefaults(),
		catalog: cat,
		cities:  cat.Cities(),
		logger: logger.With().
			Str("component", "recommend").
			Str("country", b.Country).
			Logger(),
	}
	e.explain = explainer{bundle: &e.bundle, catalog: cat}

	e.warnMismatches()
	return e, nil
}

// warnMismatches logs bundle references the catalog cannot satisfy.
func (e *Engine) warnMismatches() {
	for _, criterion := range e.bundle.ReferencedCriteria() {
		if !e.catalog.HasCriterion(criterion) {
			e.logger.Warn().
				Str("criterion", criterion).
				Msg("bundle references a criterion missing from the catalog")
		}
	}

	for _, f := range e.bundle.Families {
		for _, zone := range sortedZoneNames(f.Zones) {
			for _, id := range f.Zones[zone] {
				if !e.catalog.Has(id) {
					e.logger.Warn().
						Str("family", f.Name).
						Str("zone", zone).
						Str("city_id", id).
						Msg("zone lists a city missing from the catalog")
				}
			}
		}
	}
}

// Country returns the country id.
func (e *Engine) Country() string {
	return e.bundle.Country
}

// DisplayName returns the human-readable country name.
func (e *Engine) DisplayName() string {
	return e.bundle.DisplayName
}

// Bundle returns the engine's parameter bundle. Callers must not modify it.
func (e *Engine) Bundle() *Bundle {
	return &e.bundle
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Recommend runs the pipeline and always returns an envelope. Failures,
// including panics inside the pipeline, produce a status "error" envelope.
func (e *Engine) Recommend(ctx context.Context, responses Profile, topN int) *Envelope {
	env, _ := e.Evaluate(ctx, responses, topN) //nolint:errcheck // the envelope carries the error
	return env
}

// Evaluate runs the pipeline. It returns the envelope Recommend would return
// and, for error envelopes, the underlying error.
func (e *Engine) Evaluate(ctx context.Context, responses Profile, topN int) (env *Envelope, err error) {
	start := time.Now()
	e.requestCount.Add(1)
	candidates := -1

	logger := logging.WithContextIDs(ctx, e.logger.With()).
		Int("top_n", topN).
		Logger()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrInternalScoring, r)
			logger.Error().Interface("panic", r).Msg("recommendation pipeline panicked")
			env = ErrorEnvelope("An internal error occurred while scoring cities")
		}

		status := StatusSuccess
		if err != nil {
			status = StatusError
			e.errorCount.Add(1)
		}
		metrics.RecordRecommendation(e.bundle.Country, status, time.Since(start), candidates)
	}()

	if topN < 0 {
		return ErrorEnvelope(fmt.Sprintf("top_n must be a non-negative integer, got %d", topN)),
			fmt.Errorf("%w: %d", ErrInvalidTopN, topN)
	}
	if cerr := ctx.Err(); cerr != nil {
		return ErrorEnvelope("The request was cancelled"), cerr
	}

	profile := e.resolveProfile(responses, logger)

	filtered := Prefilter(e.cities, profile, &e.bundle)
	candidates = len(filtered.Cities)
	for _, skip := range filtered.Skipped {
		logger.Debug().
			Str("family", skip.Family).
			Str("value", skip.Value).
			Int("remaining", skip.Remaining).
			Int("minimum", skip.Minimum).
			Msg("zone family soft-skipped")
		metrics.RecordSoftSkip(e.bundle.Country, skip.Family)
	}

	if candidates == 0 {
		return ErrorEnvelope("No cities are available for this country"), ErrNoCandidates
	}

	weights := AdaptWeights(e.bundle.BaseWeights, profile, e.bundle.Adjustments)

	ranked := e.rank(filtered, weights, profile, topN)
	if len(ranked) == 0 {
		e.emptyCount.Add(1)
	}
	for i := range ranked {
		for _, name := range ranked[i].BonusesApplied {
			metrics.RecordBonusHit(e.bundle.Country, name)
		}
	}

	logger.Debug().
		Int("candidates", candidates).
		Strs("families_applied", filtered.Applied).
		Int("returned", len(ranked)).
		Dur("duration", time.Since(start)).
		Msg("recommendation completed")

	return &Envelope{
		Status:              StatusSuccess,
		Recommendations:     ranked,
		TotalCitiesAnalyzed: candidates,
		AlgorithmVersion:    e.bundle.AlgorithmVersion,
		Country:             e.bundle.Country,
	}, nil
}

// resolveProfile applies bundle defaults without touching the caller's map.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func (e *Engine) resolveProfile(responses Profile, logger zerolog.Logger) Profile {
	var missing []string
	for _, field := range e.bundle.RequiredFields {
		if _, ok := responses.Get(field); !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		logger.Debug().Strs("fields", missing).Msg("using defaults for unanswered fields")
	}
	return responses.withDefaults(e.bundle.Defaults)
}

type scoredCity struct {
	city      *catalog.City
	score     Score
	lifestyle float64
}

// rank scores the candidates, stable-sorts them by descending score and
// explains the first topN.
func (e *Engine) rank(c Candidates, weights Weights, profile Profile, topN int) []Recommendation {
	scored := make([]scoredCity, len(c.Cities))
	for i := range c.Cities {
		city := &c.Cities[i]
		lifestyle := c.LifestyleBonus(city.ID)
		scored[i] = scoredCity{
			city:      city,
			score:     ScoreCity(city, weights, profile, e.bundle.Bonuses, lifestyle),
			lifestyle: lifestyle,
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score.Value > scored[j].score.Value
	})

	if topN > len(scored) {
		topN = len(scored)
	}

	out := make([]Recommendation, topN)
	for i := 0; i < topN; i++ {
		s := scored[i]
		out[i] = e.explain.build(s.city, s.score, weights, profile, s.lifestyle)
	}
	return out
}

// Health reports the engine's health-check payload.
func (e *Engine) Health() Health {
	status := HealthHealthy
	if e.catalog.Len() == 0 {
		status = HealthUnhealthy
	}

	zones := make(map[string]int, len(e.bundle.Families))
	for _, f := range e.bundle.Families {
		if f.Threshold != nil {
			zones[f.Name] = len(f.Threshold.Levels)
			continue
		}
		zones[f.Name] = len(f.Zones)
	}

	return Health{
		Status:         status,
		Version:        e.bundle.AlgorithmVersion,
		CitiesCount:    e.catalog.Len(),
		CriteriaCount:  len(e.catalog.Criteria()),
		ZonesAvailable: zones,
	}
}

// Stats returns a snapshot of the request counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Requests:      e.requestCount.Load(),
		Errors:        e.errorCount.Load(),
		EmptyRequests: e.emptyCount.Load(),
	}
}

func sortedZoneNames(zones map[string][]string) []string {
	names := make([]string, 0, len(zones))
	for name := range zones {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
