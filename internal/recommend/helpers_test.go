// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package recommend

import (
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/citescape/internal/catalog"
)

// testCatalogDoc is a six-city catalog. gamma and delta have identical
// scores; epsilon lacks nightlife.
const testCatalogDoc = `{
  "metadata": {"country": "testland", "version": "t1"},
  "criteria_definitions": {"cost": {"label": "Low cost"}},
  "cities": [
    {"id": "alpha", "name": "Alpha", "region": "North", "population": 100000,
     "scores": {"cost": 0.9, "climate": 0.5, "nightlife": 0.3}},
    {"id": "beta", "name": "Beta", "region": "North", "population": 200000,
     "scores": {"cost": 0.4, "climate": 0.9, "nightlife": 0.9}},
    {"id": "gamma", "name": "Gamma", "region": "South", "population": 50000,
     "scores": {"cost": 0.6, "climate": 0.7, "nightlife": 0.5}},
    {"id": "delta", "name": "Delta", "region": "South", "population": 60000,
     "scores": {"cost": 0.6, "climate": 0.7, "nightlife": 0.5}},
    {"id": "epsilon", "name": "Epsilon", "region": "East", "population": 30000,
     "scores": {"cost": 0.95, "climate": 0.95}},
    {"id": "zeta", "name": "Zeta", "region": "East", "population": 10000,
     "scores": {"cost": 0.2, "climate": 0.3, "nightlife": 0.2}}
  ]
}`

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Parse([]byte(testCatalogDoc), "testland.json")
	if err != nil {
		t.Fatalf("parse test catalog: %v", err)
	}
	return cat
}

func testBundle() *Bundle {
	return &Bundle{
		Country:          "testland",
		DisplayName:      "Testland",
		AlgorithmVersion: "testland-0.1.0",
		BaseWeights: map[string]float64{
			"cost":      0.5,
			"climate":   0.3,
			"nightlife": 0.2,
		},
		Families: []ZoneFamily{
			{
				Name:      "area",
				Field:     "test_area",
				Flexible:  []string{"area_flexible"},
				MinCities: 2,
				Zones: map[string][]string{
					"north": {"alpha", "beta"},
					"south": {"gamma", "delta"},
					"east":  {"epsilon", "zeta"},
					"tiny":  {"zeta"},
				},
			},
			{
				Name:      "budget",
				Field:     "test_budget",
				Flexible:  []string{"budget_flexible"},
				MinCities: 2,
				Threshold: &ThresholdFilter{
					Criterion: "cost",
					Levels:    map[string]float64{"tight": 0.8, "moderate": 0.6},
				},
			},
			{
				Name:       "vibe",
				Field:      "test_vibe",
				MinCities:  1,
				Soft:       true,
				SoftFactor: 1.1,
				Zones: map[string][]string{
					"party": {"beta", "zeta"},
				},
			},
		},
		Adjustments: []AdjustmentRule{
			{
				Field:       "test_priority",
				Values:      []string{"cheap"},
				Multipliers: map[string]float64{"cost": 2},
			},
			{
				Field:       "test_interests",
				Values:      []string{"night_owl"},
				Multipliers: map[string]float64{"nightlife": 3, "surfing": 2},
				Base:        map[string]float64{"surfing": 0.1},
			},
		},
		Bonuses: []BonusRule{
			{
				Name:    "sunny_saver",
				When:    []Condition{{Field: "test_priority", Values: []string{"cheap"}}},
				Require: []Threshold{{Criterion: "climate", Op: AtLeast, Value: 0.9}},
				Factor:  1.2,
			},
			{
				Name:    "dull",
				Require: []Threshold{{Criterion: "nightlife", Op: AtMost, Value: 0.25}},
				Factor:  0.9,
			},
		},
		RequiredFields:   []string{"test_area", "test_budget"},
		Defaults:         map[string]string{"test_area": "area_flexible", "test_budget": "budget_flexible"},
		MultiSelect:      []string{"test_interests"},
		PriorityField:    "test_priority",
		Rationales:       map[string]string{"cheap": "{city} stretches a budget furthest."},
		DefaultRationale: "{city} is a balanced match.",
	}
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(testBundle(), testCatalog(t), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func ids(cities []catalog.City) []string {
	out := make([]string, len(cities))
	for i := range cities {
		out[i] = cities[i].ID
	}
	return out
}

func recIDs(recs []Recommendation) []string {
	out := make([]string, len(recs))
	for i := range recs {
		out[i] = recs[i].CityID
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
