// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package recommend

import (
	"fmt"
	"io/fs"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tomtom215/citescape/internal/catalog"
	"github.com/tomtom215/citescape/internal/metrics"
)

// Registry maps country ids to engines. Countries are registered at startup;
// a country whose construction fails is never exposed.
type Registry struct {
	mu      sync.RWMutex
	engines map[string]*Engine
	logger  zerolog.Logger
}

// NewRegistry creates an empty registry.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewRegistry(logger zerolog.Logger) *Registry {
	return &Registry{
		engines: make(map[string]*Engine),
		logger:  logger.With().Str("component", "registry").Logger(),
	}
}

// Register loads the catalog at path and registers an engine for b.
func (r *Registry) Register(b *Bundle, path string) (*Engine, error) {
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, r.loadFailed(b, err)
	}
	return r.build(b, cat)
}

// RegisterFS loads the catalog named name from fsys and registers an engine for b.
func (r *Registry) RegisterFS(b *Bundle, fsys fs.FS, name string) (*Engine, error) {
	cat, err := catalog.LoadFS(fsys, name)
	if err != nil {
		return nil, r.loadFailed(b, err)
	}
	return r.build(b, cat)
}

func (r *Registry) loadFailed(b *Bundle, err error) error {
	country := bundleCountry(b)
	metrics.RecordCatalogLoadError(country)
	r.logger.Error().Err(err).Str("country", country).Msg("catalog load failed; country not registered")
	return fmt.Errorf("register %s: %w", country, err)
}

func (r *Registry) build(b *Bundle, cat *catalog.Catalog) (*Engine, error) {
	e, err := NewEngine(b, cat, r.logger)
	if err != nil {
		return nil, fmt.Errorf("register %s: %w", bundleCountry(b), err)
	}
	if err := r.Add(e); err != nil {
		return nil, err
	}
	return e, nil
}

func bundleCountry(b *Bundle) string {
	if b == nil {
		return ""
	}
	return b.Country
}

// Add registers a constructed engine. Registering a country twice is an error.
func (r *Registry) Add(e *Engine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.engines[e.Country()]; exists {
		return fmt.Errorf("register %s: country already registered", e.Country())
	}
	r.engines[e.Country()] = e
	metrics.SetCatalogCities(e.Country(), e.Catalog().Len())

	r.logger.Info().
		Str("country", e.Country()).
		Int("cities", e.Catalog().Len()).
		Str("algorithm_version", e.Bundle().AlgorithmVersion).
		Msg("country engine registered")
	return nil
}

// Get returns the engine for a country.
func (r *Registry) Get(country string) (*Engine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.engines[country]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCountry, country)
	}
	return e, nil
}

// Countries returns the registered country ids, sorted.
func (r *Registry) Countries() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.engines))
	for c := range r.engines {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of registered countries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.engines)
}

// Health returns the health of every registered engine.
func (r *Registry) Health() map[string]Health {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Health, len(r.engines))
	for c, e := range r.engines {
		out[c] = e.Health()
	}
	return out
}
