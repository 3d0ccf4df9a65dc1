// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package countries

import "github.com/tomtom215/citescape/internal/recommend"

// Germany returns the German bundle. The language family runs first so an
// English-priority answer constrains every later family.
func Germany() *recommend.Bundle {
	return &recommend.Bundle{
		Country:          "germany",
		DisplayName:      "Germany",
		AlgorithmVersion: "germany-1.2.0",
		RegionKey:        "state",
		BaseWeights: map[string]float64{
			"cost_of_living":          0.10,
			"housing_affordability":   0.10,
			"job_market":              0.12,
			"english_friendliness":    0.06,
			"public_transport":        0.08,
			"culture_scene":           0.08,
			"nightlife":               0.04,
			"salary_level":            0.08,
			"safety":                  0.08,
			"startup_scene":           0.04,
			"nature_access":           0.06,
			"international_community": 0.06,
			"healthcare":              0.10,
		},
		Families: []recommend.ZoneFamily{
			{
				Name:      "language",
				Field:     "germany_language_comfort",
				Flexible:  []string{"language_flexible", "german_fluent"},
				MinCities: 3,
				Zones: map[string][]string{
					"english_priority": {"berlin", "munich", "frankfurt", "hamburg", "heidelberg", "cologne", "dusseldorf", "leipzig"},
				},
			},
			{
				Name:      "region",
				Field:     "germany_region_preference",
				Flexible:  []string{"region_flexible"},
				MinCities: 2,
				Zones: map[string][]string{
					"north": {"hamburg", "bremen", "hannover"},
					"south": {"munich", "stuttgart", "nuremberg", "freiburg", "heidelberg"},
					"east":  {"berlin", "leipzig", "dresden"},
					"west":  {"cologne", "dusseldorf", "essen", "frankfurt"},
				},
			},
			{
				Name:      "budget",
				Field:     "germany_budget_range",
				Flexible:  []string{"budget_flexible"},
				MinCities: 3,
				Threshold: &recommend.ThresholdFilter{
					Criterion: "cost_of_living",
					Levels: map[string]float64{
						"budget_low":    0.5,
						"budget_medium": 0.35,
					},
				},
			},
		},
		Adjustments: []recommend.AdjustmentRule{
			{Field: "germany_main_priority", Values: []string{"cost_optimization"},
				Multipliers: map[string]float64{"cost_of_living": 3.0, "housing_affordability": 3.0}},
			{Field: "germany_main_priority", Values: []string{"career_growth"},
				Multipliers: map[string]float64{"job_market": 2.0, "salary_level": 2.0}},
			{Field: "germany_main_priority", Values: []string{"quality_of_life"},
				Multipliers: map[string]float64{"safety": 1.5, "nature_access": 1.5, "healthcare": 1.3}},
			{Field: "germany_main_priority", Values: []string{"startup_founder"},
				Multipliers: map[string]float64{"startup_scene": 3.0, "international_community": 1.5}},
			{Field: "germany_language_comfort", Values: []string{"english_priority"},
				Multipliers: map[string]float64{"english_friendliness": 2.5, "international_community": 1.5}},
			{Field: "germany_budget_range", Values: []string{"budget_low"},
				Multipliers: map[string]float64{"cost_of_living": 1.5, "housing_affordability": 1.5}},
			// The seed catalog does not score childcare yet; the engine warns at startup.
			{Field: "germany_family_situation", Values: []string{"family_kids"},
				Multipliers: map[string]float64{"safety": 1.3, "childcare_availability": 1.0},
				Base:        map[string]float64{"childcare_availability": 0.08}},
			{Field: "germany_lifestyle", Values: []string{"nightlife_culture"},
				Multipliers: map[string]float64{"nightlife": 2.0, "culture_scene": 1.5}},
		},
		Bonuses: []recommend.BonusRule{
			{
				Name:    "english_hub",
				When:    []recommend.Condition{when("germany_language_comfort", "english_priority")},
				Require: []recommend.Threshold{atLeast("english_friendliness", 0.9), atLeast("international_community", 0.9)},
				Factor:  1.05,
			},
			{
				Name:    "over_budget",
				When:    []recommend.Condition{when("germany_budget_range", "budget_low")},
				Require: []recommend.Threshold{atMost("cost_of_living", 0.3)},
				Factor:  0.85,
			},
		},
		RequiredFields: []string{"germany_main_priority", "germany_language_comfort", "germany_budget_range"},
		Defaults: map[string]string{
			"germany_language_comfort":  "language_flexible",
			"germany_region_preference": "region_flexible",
			"germany_budget_range":      "budget_flexible",
		},
		Thresholds:    recommend.Thresholds{High: 0.9, Low: 0.6},
		PriorityField: "germany_main_priority",
		Rationales: map[string]string{
			"cost_optimization": "{city} stretches your budget further than the other cities that fit you.",
			"career_growth":     "{city} combines a strong job market with competitive salaries.",
			"quality_of_life":   "{city} scores high on safety, healthcare and access to nature.",
			"startup_founder":   "{city} has the founder network and international talent you need.",
		},
		DefaultRationale: "{city} is a balanced match across work, cost and daily life.",
	}
}
