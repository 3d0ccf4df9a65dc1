// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package countries

import "github.com/tomtom215/citescape/internal/recommend"

// AustraliaLifestyleBonus is the soft factor for cities in the chosen
// lifestyle zone.
const AustraliaLifestyleBonus = 1.1

// Australia returns the Australian bundle. Lifestyle is soft: cities in the
// selected zone score 10% higher but nothing is removed.
func Australia() *recommend.Bundle {
	return &recommend.Bundle{
		Country:          "australia",
		DisplayName:      "Australia",
		AlgorithmVersion: "australia-1.1.0",
		RegionKey:        "state",
		BaseWeights: map[string]float64{
			"cost_of_living":        0.10,
			"housing_affordability": 0.10,
			"beach_access":          0.06,
			"climate_rating":        0.08,
			"job_market":            0.10,
			"family_friendly":       0.07,
			"schools_quality":       0.05,
			"healthcare":            0.08,
			"outdoor_lifestyle":     0.07,
			"culture_scene":         0.06,
			"public_transport":      0.05,
			"safety":                0.08,
			"community_feel":        0.05,
			"nature_access":         0.05,
		},
		Families: []recommend.ZoneFamily{
			{
				Name:      "climate",
				Field:     "australia_climate_preference",
				Flexible:  []string{"climate_flexible"},
				MinCities: 2,
				Zones: map[string][]string{
					"tropical":      {"cairns", "darwin", "townsville"},
					"subtropical":   {"brisbane", "gold_coast", "sunshine_coast", "toowoomba"},
					"temperate":     {"sydney", "melbourne", "adelaide", "hobart", "canberra", "newcastle", "bendigo", "geelong"},
					"mediterranean": {"perth", "adelaide"},
				},
			},
			{
				Name:       "lifestyle",
				Field:      "australia_lifestyle_priority",
				Flexible:   []string{"lifestyle_flexible"},
				MinCities:  1,
				Soft:       true,
				SoftFactor: AustraliaLifestyleBonus,
				Zones: map[string][]string{
					"relaxed_regional": {"hobart", "newcastle", "sunshine_coast", "cairns", "townsville", "bendigo", "toowoomba"},
					"big_city_buzz":    {"sydney", "melbourne", "brisbane", "perth"},
					"beach_lifestyle":  {"gold_coast", "sunshine_coast", "newcastle", "perth"},
				},
			},
			{
				Name:      "budget",
				Field:     "australia_budget_range",
				Flexible:  []string{"budget_flexible"},
				MinCities: 3,
				Threshold: &recommend.ThresholdFilter{
					Criterion: "cost_of_living",
					Levels: map[string]float64{
						"budget_tight":    0.6,
						"budget_moderate": 0.45,
					},
				},
			},
		},
		Adjustments: []recommend.AdjustmentRule{
			{Field: "australia_family_situation", Values: []string{"family_kids"},
				Multipliers: map[string]float64{"family_friendly": 2.0, "schools_quality": 2.0, "safety": 1.3}},
			{Field: "australia_family_situation", Values: []string{"retirees"},
				Multipliers: map[string]float64{"healthcare": 2.0, "community_feel": 1.5, "job_market": 0.3}},
			{Field: "australia_family_situation", Values: []string{"young_professional"},
				Multipliers: map[string]float64{"job_market": 2.0, "culture_scene": 1.4, "public_transport": 1.4}},
			{Field: "australia_budget_range", Values: []string{"budget_tight"},
				Multipliers: map[string]float64{"cost_of_living": 2.0, "housing_affordability": 2.0}},
			{Field: "australia_lifestyle_priority", Values: []string{"big_city_buzz"},
				Multipliers: map[string]float64{"culture_scene": 1.5, "public_transport": 1.5}},
			{Field: "australia_lifestyle_priority", Values: []string{"beach_lifestyle"},
				Multipliers: map[string]float64{"beach_access": 2.5, "outdoor_lifestyle": 1.3}},
			{Field: "australia_lifestyle_priority", Values: []string{"relaxed_regional"},
				Multipliers: map[string]float64{"community_feel": 1.5, "nature_access": 1.3}},
		},
		Bonuses: []recommend.BonusRule{
			{
				Name:    "family_haven",
				When:    []recommend.Condition{when("australia_family_situation", "family_kids")},
				Require: []recommend.Threshold{atLeast("schools_quality", 0.9), atLeast("safety", 0.9)},
				Factor:  1.05,
			},
		},
		RequiredFields: []string{"australia_lifestyle_priority", "australia_family_situation", "australia_budget_range"},
		Defaults: map[string]string{
			"australia_climate_preference": "climate_flexible",
			"australia_lifestyle_priority": "lifestyle_flexible",
			"australia_budget_range":       "budget_flexible",
		},
		Thresholds:    recommend.Thresholds{High: 0.9, Low: 0.6},
		PriorityField: "australia_family_situation",
		Rationales: map[string]string{
			"family_kids":        "{city} is a safe, affordable place to raise a family.",
			"retirees":           "{city} offers good healthcare and a close-knit community.",
			"young_professional": "{city} gives you career options and plenty to do after work.",
		},
		DefaultRationale: "{city} matches the lifestyle and budget you described.",
	}
}
