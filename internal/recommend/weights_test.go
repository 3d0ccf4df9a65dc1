// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package recommend

import (
	"math"
	"testing"
)

func TestAdaptWeights(t *testing.T) {
	b := testBundle()

	tests := []struct {
		name    string
		profile Profile
		want    map[string]float64
	}{
		{
			name:    "no rule fires",
			profile: Profile{},
			want:    map[string]float64{"cost": 0.5, "climate": 0.3, "nightlife": 0.2},
		},
		{
			name:    "scalar match",
			profile: Profile{"test_priority": Scalar("cheap")},
			want:    map[string]float64{"cost": 1.0 / 1.5, "climate": 0.3 / 1.5, "nightlife": 0.2 / 1.5},
		},
		{
			name:    "non-matching value",
			profile: Profile{"test_priority": Scalar("luxury")},
			want:    map[string]float64{"cost": 0.5, "climate": 0.3, "nightlife": 0.2},
		},
		{
			name:    "list membership adds a new criterion from its base",
			profile: Profile{"test_interests": List("hiking", "night_owl")},
			want: map[string]float64{
				"cost":      0.5 / 1.6,
				"climate":   0.3 / 1.6,
				"nightlife": 0.6 / 1.6,
				"surfing":   0.2 / 1.6,
			},
		},
		{
			name:    "unset answer never fires",
			profile: Profile{"test_priority": Scalar(""), "test_interests": List()},
			want:    map[string]float64{"cost": 0.5, "climate": 0.3, "nightlife": 0.2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdaptWeights(b.BaseWeights, tt.profile, b.Adjustments)

			if len(got) != len(tt.want) {
				t.Fatalf("got %d weights %v, want %d", len(got), got, len(tt.want))
			}
			for k, w := range tt.want {
				if math.Abs(got[k]-w) > 1e-12 {
					t.Errorf("weight[%s] = %v, want %v", k, got[k], w)
				}
			}
			if math.Abs(got.Sum()-1) > 1e-9 {
				t.Errorf("Sum() = %v, want 1", got.Sum())
			}
		})
	}
}

func TestAdaptWeights_NewCriterionWithoutBaseStartsAtZero(t *testing.T) {
	rules := []AdjustmentRule{{
		Field:       "f",
		Values:      []string{"v"},
		Multipliers: map[string]float64{"brand_new": 5},
	}}
	got := AdaptWeights(map[string]float64{"a": 1}, Profile{"f": Scalar("v")}, rules)

	if got["brand_new"] != 0 {
		t.Errorf("weight[brand_new] = %v, want 0", got["brand_new"])
	}
	if got["a"] != 1 {
		t.Errorf("weight[a] = %v, want 1", got["a"])
	}
}

func TestAdaptWeights_RulesCompound(t *testing.T) {
	rules := []AdjustmentRule{
		{Field: "f", Values: []string{"v"}, Multipliers: map[string]float64{"a": 2}},
		{Field: "g", Values: []string{"w"}, Multipliers: map[string]float64{"a": 3}},
	}
	got := AdaptWeights(map[string]float64{"a": 1, "b": 1}, Profile{"f": Scalar("v"), "g": Scalar("w")}, rules)

	if !approx(got["a"], 6.0/7.0) || !approx(got["b"], 1.0/7.0) {
		t.Errorf("weights = %v, want a=6/7 b=1/7", got)
	}
}

func TestAdaptWeights_ZeroSumFallsBackToBase(t *testing.T) {
	base := map[string]float64{"a": 3, "b": 1}
	rules := []AdjustmentRule{{
		Field:       "f",
		Values:      []string{"v"},
		Multipliers: map[string]float64{"a": 0, "b": 0},
	}}
	got := AdaptWeights(base, Profile{"f": Scalar("v")}, rules)

	if !approx(got["a"], 0.75) || !approx(got["b"], 0.25) {
		t.Errorf("weights = %v, want normalized base a=0.75 b=0.25", got)
	}
}

func TestAdaptWeights_DoesNotMutateBase(t *testing.T) {
	b := testBundle()
	AdaptWeights(b.BaseWeights, Profile{"test_priority": Scalar("cheap"), "test_interests": List("night_owl")}, b.Adjustments)

	if b.BaseWeights["cost"] != 0.5 || len(b.BaseWeights) != 3 {
		t.Errorf("base weights mutated: %v", b.BaseWeights)
	}
}

func TestWeights_Normalize(t *testing.T) {
	t.Run("all zero gives equal shares", func(t *testing.T) {
		got := Weights{"a": 0, "b": 0, "c": 0, "d": 0}.Normalize()
		for k, w := range got {
			if w != 0.25 {
				t.Errorf("weight[%s] = %v, want 0.25", k, w)
			}
		}
	})

	t.Run("empty stays empty", func(t *testing.T) {
		if got := (Weights{}).Normalize(); len(got) != 0 {
			t.Errorf("Normalize() = %v, want empty", got)
		}
	})

	t.Run("scales to one", func(t *testing.T) {
		got := Weights{"a": 2, "b": 6}.Normalize()
		if got["a"] != 0.25 || got["b"] != 0.75 {
			t.Errorf("Normalize() = %v, want a=0.25 b=0.75", got)
		}
	})
}

func TestFiredAdjustments(t *testing.T) {
	b := testBundle()
	got := FiredAdjustments(Profile{"test_interests": List("night_owl")}, b.Adjustments)

	if len(got) != 1 || got[0] != 1 {
		t.Errorf("FiredAdjustments() = %v, want [1]", got)
	}
}
