// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package countries

import "github.com/tomtom215/citescape/internal/recommend"

// Thailand returns the Thai bundle.
func Thailand() *recommend.Bundle {
	return &recommend.Bundle{
		Country:          "thailand",
		DisplayName:      "Thailand",
		AlgorithmVersion: "thailand-1.4.0",
		RegionKey:        "region",
		BaseWeights: map[string]float64{
			"cost_of_living":         0.12,
			"street_food_culture":    0.10,
			"beach_access":           0.06,
			"nightlife":              0.04,
			"digital_infrastructure": 0.07,
			"healthcare":             0.09,
			"expat_community":        0.06,
			"climate_comfort":        0.06,
			"nature_access":          0.07,
			"cultural_sites":         0.06,
			"transport":              0.05,
			"safety":                 0.09,
			"english_proficiency":    0.05,
			"air_quality":            0.06,
		},
		Families: []recommend.ZoneFamily{
			{
				Name:      "region",
				Field:     "thailand_region_preference",
				Flexible:  []string{"region_flexible"},
				MinCities: 2,
				Zones: map[string][]string{
					"north":         {"chiang_mai", "chiang_rai", "pai"},
					"central_east":  {"bangkok", "ayutthaya", "pattaya", "hua_hin"},
					"andaman_coast": {"phuket", "krabi"},
					"gulf_islands":  {"koh_samui", "koh_phangan"},
					"northeast":     {"khon_kaen", "udon_thani"},
					"south":         {"phuket", "krabi", "koh_samui", "koh_phangan", "hat_yai"},
				},
			},
			{
				Name:      "budget",
				Field:     "thailand_budget",
				Flexible:  []string{"budget_flexible"},
				MinCities: 3,
				Threshold: &recommend.ThresholdFilter{
					Criterion: "cost_of_living",
					Levels: map[string]float64{
						"budget_backpacker": 0.8,
						"budget_moderate":   0.6,
					},
				},
			},
		},
		Adjustments: []recommend.AdjustmentRule{
			{Field: "thailand_street_food_importance", Values: []string{"food_essential"},
				Multipliers: map[string]float64{"street_food_culture": 2.5}},
			{Field: "thailand_street_food_importance", Values: []string{"food_important"},
				Multipliers: map[string]float64{"street_food_culture": 1.5}},
			{Field: "thailand_street_food_importance", Values: []string{"food_indifferent"},
				Multipliers: map[string]float64{"street_food_culture": 0.5}},
			{Field: "thailand_nature_urban_balance", Values: []string{"beach_paradise"},
				Multipliers: map[string]float64{"beach_access": 3.0, "nature_access": 1.2}},
			{Field: "thailand_nature_urban_balance", Values: []string{"urban_energy"},
				Multipliers: map[string]float64{"nightlife": 2.0, "transport": 1.5, "digital_infrastructure": 1.3}},
			{Field: "thailand_nature_urban_balance", Values: []string{"mountain_retreat"},
				Multipliers: map[string]float64{"nature_access": 2.0, "air_quality": 1.3}},
			{Field: "thailand_climate_adaptation", Values: []string{"climate_sensitive"},
				Multipliers: map[string]float64{"climate_comfort": 2.0, "air_quality": 1.5}},
			{Field: "thailand_climate_adaptation", Values: []string{"climate_lover"},
				Multipliers: map[string]float64{"climate_comfort": 0.5}},
			{Field: "thailand_work_style", Values: []string{"digital_nomad"},
				Multipliers: map[string]float64{"digital_infrastructure": 2.0, "expat_community": 1.4}},
			{Field: "thailand_healthcare_needs", Values: []string{"healthcare_priority"},
				Multipliers: map[string]float64{"healthcare": 2.0}},
			{Field: "thailand_budget", Values: []string{"budget_backpacker"},
				Multipliers: map[string]float64{"cost_of_living": 2.0}},
		},
		Bonuses: []recommend.BonusRule{
			{
				Name:    "street_food_paradise",
				When:    []recommend.Condition{when("thailand_street_food_importance", "food_essential")},
				Require: []recommend.Threshold{atLeast("street_food_culture", 0.95)},
				Factor:  1.15,
			},
			{
				Name:    "beach_paradise",
				When:    []recommend.Condition{when("thailand_nature_urban_balance", "beach_paradise")},
				Require: []recommend.Threshold{atLeast("beach_access", 0.95)},
				Factor:  1.18,
			},
			{
				Name:    "smoky_season",
				When:    []recommend.Condition{when("thailand_climate_adaptation", "climate_sensitive")},
				Require: []recommend.Threshold{atMost("air_quality", 0.45)},
				Factor:  0.9,
			},
		},
		RequiredFields: []string{
			"thailand_region_preference",
			"thailand_street_food_importance",
			"thailand_nature_urban_balance",
			"thailand_climate_adaptation",
		},
		Defaults: map[string]string{
			"thailand_region_preference": "region_flexible",
			"thailand_budget":            "budget_flexible",
		},
		Thresholds:    recommend.Thresholds{High: 0.9, Low: 0.6},
		PriorityField: "thailand_nature_urban_balance",
		Rationales: map[string]string{
			"beach_paradise":   "{city} puts you close to some of the best beaches in the country.",
			"urban_energy":     "{city} keeps you in the middle of the action, day and night.",
			"mountain_retreat": "{city} trades the crowds for mountains, forests and cooler evenings.",
		},
		DefaultRationale: "{city} balances cost, food and comfort in line with your answers.",
	}
}
