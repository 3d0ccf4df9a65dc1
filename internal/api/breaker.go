// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package api

import (
	"context"
	"errors"
	"sync"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/citescape/internal/logging"
	"github.com/tomtom215/citescape/internal/metrics"
	"github.com/tomtom215/citescape/internal/recommend"
)

// BreakerConfig controls the per-country circuit breakers.
type BreakerConfig struct {
	// FailureRatio opens the breaker once this share of requests failed.
	FailureRatio float64

	// MinRequests is the number of requests before the ratio is considered.
	MinRequests uint32

	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration
}

// DefaultBreakerConfig returns the defaults.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureRatio: 0.6,
		MinRequests:  10,
		Timeout:      30 * time.Second,
	}
}

// breakers holds one circuit breaker per country, created on first use.
type breakers struct {
	mu     sync.Mutex
	config BreakerConfig
	byName map[string]*gobreaker.CircuitBreaker[*recommend.Envelope]
}

func newBreakers(cfg BreakerConfig) *breakers {
	defaults := DefaultBreakerConfig()
	if cfg.FailureRatio <= 0 {
		cfg.FailureRatio = defaults.FailureRatio
	}
	if cfg.MinRequests == 0 {
		cfg.MinRequests = defaults.MinRequests
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	return &breakers{
		config: cfg,
		byName: make(map[string]*gobreaker.CircuitBreaker[*recommend.Envelope]),
	}
}

func breakerName(country string) string {
	return "engine-" + country
}

func (b *breakers) get(country string) *gobreaker.CircuitBreaker[*recommend.Envelope] {
	b.mu.Lock()
	defer b.mu.Unlock()

	if cb, ok := b.byName[country]; ok {
		return cb
	}

	name := breakerName(country)
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cfg := b.config
	cb := gobreaker.NewCircuitBreaker[*recommend.Envelope](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			if ratio >= cfg.FailureRatio {
				logging.Warn().
					Str("breaker", name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_ratio", ratio).
					Msg("opening circuit breaker")
				return true
			}
			return false
		},
		IsSuccessful: isBreakerSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("breaker", name).
				Str("from", stateToString(from)).
				Str("to", stateToString(to)).
				Msg("circuit breaker state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, stateToString(from), stateToString(to)).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})
	b.byName[country] = cb
	return cb
}

// isBreakerSuccess treats caller-side outcomes as successes: they say
// nothing about the engine's health.
func isBreakerSuccess(err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, recommend.ErrInvalidTopN),
		errors.Is(err, recommend.ErrNoCandidates),
		errors.Is(err, context.Canceled):
		return true
	default:
		return false
	}
}

// execute runs fn behind the country's breaker. When the breaker rejects the
// call the returned envelope is nil and the error is gobreaker.ErrOpenState
// or gobreaker.ErrTooManyRequests.
func (b *breakers) execute(country string, fn func() (*recommend.Envelope, error)) (*recommend.Envelope, error) {
	cb := b.get(country)
	name := breakerName(country)

	env, err := cb.Execute(fn)
	switch {
	case isRejection(err):
		metrics.CircuitBreakerRequests.WithLabelValues(name, "rejected").Inc()
		logging.Warn().Err(err).Str("breaker", name).Msg("request rejected by circuit breaker")
	case !isBreakerSuccess(err):
		metrics.CircuitBreakerRequests.WithLabelValues(name, "failure").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(float64(cb.Counts().ConsecutiveFailures))
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(name, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
	}
	return env, err
}

// state reports the breaker state of a country, "closed" if it was never used.
func (b *breakers) state(country string) string {
	b.mu.Lock()
	cb, ok := b.byName[country]
	b.mu.Unlock()
	if !ok {
		return stateToString(gobreaker.StateClosed)
	}
	return stateToString(cb.State())
}

func isRejection(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// stateToFloat converts a breaker state for the state gauge.
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
