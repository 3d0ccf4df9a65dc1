// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package services

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/citescape/internal/metrics"
	"github.com/tomtom215/citescape/internal/recommend"
)

// HealthSource reports the health of every registered country.
// Satisfied by *recommend.Registry.
type HealthSource interface {
	Health() map[string]recommend.Health
}

// HealthMonitorService polls the registry, publishes a per-country health
// gauge and logs every status change.
type HealthMonitorService struct {
	source   HealthSource
	interval time.Duration
	logger   zerolog.Logger
	last     map[string]string
	name     string
}

// NewHealthMonitorService creates a monitor. A non-positive interval means 1m.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewHealthMonitorService(source HealthSource, interval time.Duration, logger zerolog.Logger) *HealthMonitorService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &HealthMonitorService{
		source:   source,
		interval: interval,
		logger:   logger.With().Str("service", "health-monitor").Logger(),
		last:     make(map[string]string),
		name:     "health-monitor",
	}
}

// Serve implements suture.Service. It checks once immediately, then on
// every tick.
func (s *HealthMonitorService) Serve(ctx context.Context) error {
	s.check()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.check()
		}
	}
}

// check publishes the current health and returns the number of unhealthy
// countries.
func (s *HealthMonitorService) check() int {
	health := s.source.Health()

	countries := make([]string, 0, len(health))
	for c := range health {
		countries = append(countries, c)
	}
	sort.Strings(countries)

	unhealthy := 0
	for _, c := range countries {
		h := health[c]
		healthy := h.Status == recommend.HealthHealthy
		if !healthy {
			unhealthy++
		}
		metrics.SetCountryHealthy(c, healthy)

		prev, seen := s.last[c]
		s.last[c] = h.Status
		switch {
		case !seen && healthy:
			s.logger.Debug().Str("country", c).Int("cities", h.CitiesCount).Msg("country healthy")
		case !seen || prev != h.Status:
			event := s.logger.Info()
			if !healthy {
				event = s.logger.Warn()
			}
			event.Str("country", c).
				Str("previous", prev).
				Str("status", h.Status).
				Int("cities", h.CitiesCount).
				Msg("country health changed")
		}
	}
	return unhealthy
}

// String implements fmt.Stringer.
func (s *HealthMonitorService) String() string {
	return s.name
}
