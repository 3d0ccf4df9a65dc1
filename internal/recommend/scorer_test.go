// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package recommend

import (
	"testing"

	"github.com/tomtom215/citescape/internal/catalog"
)

func mustCity(t *testing.T, cat *catalog.Catalog, id string) *catalog.City {
	t.Helper()
	c, ok := cat.City(id)
	if !ok {
		t.Fatalf("city %s not in catalog", id)
	}
	return &c
}

func TestScoreCity_WeightedMean(t *testing.T) {
	cat := testCatalog(t)
	w := Weights(testBundle().BaseWeights).Normalize()

	got := ScoreCity(mustCity(t, cat, "alpha"), w, Profile{}, nil, 1)
	if !approx(got.Value, 0.66) {
		t.Errorf("alpha score = %v, want 0.66", got.Value)
	}
	if got.Base != got.Value || got.Unclamped != got.Value {
		t.Errorf("without bonuses Base/Unclamped should equal Value: %+v", got)
	}
}

func TestScoreCity_MissingCriterionDoesNotDilute(t *testing.T) {
	cat := testCatalog(t)
	w := Weights(testBundle().BaseWeights).Normalize()

	// epsilon scores 0.95 on everything it defines; nightlife is absent.
	got := ScoreCity(mustCity(t, cat, "epsilon"), w, Profile{}, nil, 1)
	if !approx(got.Value, 0.95) {
		t.Errorf("epsilon score = %v, want 0.95", got.Value)
	}
}

func TestScoreCity_NoCoveredCriteria(t *testing.T) {
	city := &catalog.City{ID: "empty", Name: "Empty", Scores: map[string]float64{"unrelated": 1}}
	got := ScoreCity(city, Weights{"cost": 1}, Profile{}, nil, 1)

	if got.Value != 0 {
		t.Errorf("score = %v, want 0", got.Value)
	}
}

func TestScoreCity_Bonuses(t *testing.T) {
	cat := testCatalog(t)
	b := testBundle()
	cheap := Profile{"test_priority": Scalar("cheap")}
	w := AdaptWeights(b.BaseWeights, cheap, b.Adjustments)

	tests := []struct {
		name        string
		city        string
		profile     Profile
		wantBonuses []string
	}{
		{"condition and threshold hold", "beta", cheap, []string{"sunny_saver"}},
		{"condition fails", "beta", Profile{}, nil},
		{"threshold fails", "alpha", cheap, nil},
		{"malus on low score", "zeta", Profile{}, []string{"dull"}},
		{"undefined criterion fails the threshold", "epsilon", Profile{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreCity(mustCity(t, cat, tt.city), w, tt.profile, b.Bonuses, 1)
			if !equalStrings(got.Bonuses, tt.wantBonuses) {
				t.Errorf("bonuses = %v, want %v", got.Bonuses, tt.wantBonuses)
			}
		})
	}
}

func TestScoreCity_BonusIsMonotonic(t *testing.T) {
	cat := testCatalog(t)
	b := testBundle()
	cheap := Profile{"test_priority": Scalar("cheap")}
	w := AdaptWeights(b.BaseWeights, cheap, b.Adjustments)
	beta := mustCity(t, cat, "beta")

	without := ScoreCity(beta, w, cheap, nil, 1)
	with := ScoreCity(beta, w, cheap, b.Bonuses[:1], 1)

	if !approx(with.Unclamped, without.Unclamped*1.2) {
		t.Errorf("unclamped with bonus = %v, want %v", with.Unclamped, without.Unclamped*1.2)
	}
	if with.Value < without.Value {
		t.Errorf("bonus lowered the score: %v < %v", with.Value, without.Value)
	}
}

func TestScoreCity_ClampsToOne(t *testing.T) {
	cat := testCatalog(t)
	b := testBundle()
	cheap := Profile{"test_priority": Scalar("cheap")}
	w := AdaptWeights(b.BaseWeights, cheap, b.Adjustments)

	bonuses := []BonusRule{{Name: "huge", Factor: 1.5}}
	got := ScoreCity(mustCity(t, cat, "epsilon"), w, cheap, bonuses, 1)

	if got.Value != 1 {
		t.Errorf("Value = %v, want 1", got.Value)
	}
	if !approx(got.Unclamped, 0.95*1.5) {
		t.Errorf("Unclamped = %v, want %v", got.Unclamped, 0.95*1.5)
	}
}

func TestScoreCity_LifestyleFactor(t *testing.T) {
	cat := testCatalog(t)
	w := Weights(testBundle().BaseWeights).Normalize()
	alpha := mustCity(t, cat, "alpha")

	plain := ScoreCity(alpha, w, Profile{}, nil, 1)
	boosted := ScoreCity(alpha, w, Profile{}, nil, 1.1)

	if !approx(boosted.Value, plain.Value*1.1) {
		t.Errorf("boosted = %v, want %v", boosted.Value, plain.Value*1.1)
	}
	if boosted.Base != plain.Base {
		t.Errorf("lifestyle factor changed Base: %v != %v", boosted.Base, plain.Base)
	}
}

func TestScoreCity_RangeInvariant(t *testing.T) {
	cat := testCatalog(t)
	b := testBundle()
	profiles := []Profile{
		{},
		{"test_priority": Scalar("cheap")},
		{"test_interests": List("night_owl")},
	}

	for _, p := range profiles {
		w := AdaptWeights(b.BaseWeights, p, b.Adjustments)
		for _, c := range cat.Cities() {
			c := c
			for _, lifestyle := range []float64{1, 1.1, 2} {
				got := ScoreCity(&c, w, p, b.Bonuses, lifestyle)
				if got.Value < 0 || got.Value > 1 {
					t.Errorf("%s: score %v out of [0,1]", c.ID, got.Value)
				}
			}
		}
	}
}
