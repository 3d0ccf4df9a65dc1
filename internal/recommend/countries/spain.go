// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package countries

import "github.com/tomtom215/citescape/internal/recommend"

// Spain returns the Spanish bundle. Lifestyle is a hard filter.
func Spain() *recommend.Bundle {
	return &recommend.Bundle{
		Country:          "spain",
		DisplayName:      "Spain",
		AlgorithmVersion: "spain-2.3.0",
		RegionKey:        "region",
		BaseWeights: map[string]float64{
			"cost_of_living":         0.12,
			"housing_affordability":  0.06,
			"climate_rating":         0.12,
			"beach_access":           0.06,
			"culture_scene":          0.08,
			"nightlife":              0.04,
			"digital_infrastructure": 0.06,
			"coworking_spaces":       0.03,
			"public_transport":       0.06,
			"safety":                 0.09,
			"healthcare":             0.08,
			"expat_community":        0.04,
			"english_proficiency":    0.03,
			"gastronomy":             0.06,
			"outdoor_activities":     0.04,
			"job_market":             0.05,
			"tranquility":            0.03,
		},
		Families: []recommend.ZoneFamily{
			{
				Name:      "climate",
				Field:     "spain_climate",
				Flexible:  []string{"climate_flexible"},
				MinCities: 2,
				Zones: map[string][]string{
					"mediterranean_mild":  {"barcelona", "valencia", "malaga", "alicante", "palma", "murcia"},
					"hot_dry":             {"sevilla", "granada", "cadiz", "murcia", "zaragoza"},
					"atlantic_green":      {"bilbao", "san_sebastian"},
					"subtropical_islands": {"las_palmas", "santa_cruz_tenerife"},
					"continental":         {"madrid", "zaragoza", "salamanca"},
				},
			},
			{
				Name:      "lifestyle",
				Field:     "spain_lifestyle",
				Flexible:  []string{"lifestyle_flexible"},
				MinCities: 3,
				Zones: map[string][]string{
					"mediterranean_coastal": {"barcelona", "valencia", "malaga", "alicante", "palma", "cadiz", "las_palmas"},
					"big_city":              {"madrid", "barcelona", "valencia", "sevilla", "bilbao"},
					"historic_cultural":     {"sevilla", "granada", "salamanca", "san_sebastian", "cadiz"},
					"island_life":           {"palma", "las_palmas", "santa_cruz_tenerife"},
				},
			},
			{
				Name:      "budget",
				Field:     "spain_budget_comfort",
				Flexible:  []string{"budget_flexible"},
				MinCities: 3,
				Threshold: &recommend.ThresholdFilter{
					Criterion: "cost_of_living",
					Levels: map[string]float64{
						"budget_tight":    0.65,
						"budget_moderate": 0.5,
					},
				},
			},
			{
				Name:      "work",
				Field:     "spain_work_environment",
				Flexible:  []string{"work_flexible"},
				MinCities: 3,
				Zones: map[string][]string{
					"remote_digital":   {"madrid", "barcelona", "valencia", "malaga", "las_palmas", "bilbao"},
					"corporate_career": {"madrid", "barcelona", "bilbao", "valencia", "zaragoza"},
				},
			},
		},
		Adjustments: []recommend.AdjustmentRule{
			{Field: "spain_climate", Values: []string{"mediterranean_mild", "hot_dry", "subtropical_islands"},
				Multipliers: map[string]float64{"climate_rating": 1.5}},
			{Field: "spain_lifestyle", Values: []string{"mediterranean_coastal"},
				Multipliers: map[string]float64{"beach_access": 2.5, "outdoor_activities": 1.3}},
			{Field: "spain_lifestyle", Values: []string{"big_city"},
				Multipliers: map[string]float64{"culture_scene": 1.5, "nightlife": 1.8, "public_transport": 1.4}},
			{Field: "spain_lifestyle", Values: []string{"historic_cultural"},
				Multipliers: map[string]float64{"culture_scene": 2.0, "gastronomy": 1.3}},
			{Field: "spain_lifestyle", Values: []string{"island_life"},
				Multipliers: map[string]float64{"beach_access": 1.8, "tranquility": 1.5}},
			{Field: "spain_work_environment", Values: []string{"remote_digital"},
				Multipliers: map[string]float64{"digital_infrastructure": 2.0, "coworking_spaces": 2.0, "expat_community": 1.3}},
			{Field: "spain_work_environment", Values: []string{"corporate_career"},
				Multipliers: map[string]float64{"job_market": 2.5, "english_proficiency": 1.3}},
			{Field: "spain_budget_comfort", Values: []string{"budget_tight"},
				Multipliers: map[string]float64{"cost_of_living": 2.0, "housing_affordability": 2.0}},
			{Field: "spain_budget_comfort", Values: []string{"budget_moderate"},
				Multipliers: map[string]float64{"cost_of_living": 1.4}},
			{Field: "spain_budget_comfort", Values: []string{"budget_comfortable"},
				Multipliers: map[string]float64{"cost_of_living": 0.6}},
			// family_friendly is not a base criterion; the rule brings it in.
			{Field: "spain_priorities", Values: []string{"family"},
				Multipliers: map[string]float64{"family_friendly": 1.0, "safety": 1.3},
				Base:        map[string]float64{"family_friendly": 0.08}},
			{Field: "spain_priorities", Values: []string{"nightlife"},
				Multipliers: map[string]float64{"nightlife": 1.8}},
			{Field: "spain_priorities", Values: []string{"food"},
				Multipliers: map[string]float64{"gastronomy": 1.6}},
			{Field: "spain_priorities", Values: []string{"nature"},
				Multipliers: map[string]float64{"outdoor_activities": 1.6, "tranquility": 1.3}},
			{Field: "spain_language", Values: []string{"english_needed"},
				Multipliers: map[string]float64{"english_proficiency": 2.0, "expat_community": 1.5}},
		},
		Bonuses: []recommend.BonusRule{
			{
				Name:    "coastal_remote_hub",
				When:    []recommend.Condition{when("spain_work_environment", "remote_digital")},
				Require: []recommend.Threshold{atLeast("beach_access", 0.9), atLeast("coworking_spaces", 0.85)},
				Factor:  1.05,
			},
			{
				Name:    "tight_budget_strain",
				When:    []recommend.Condition{when("spain_budget_comfort", "budget_tight")},
				Require: []recommend.Threshold{atMost("cost_of_living", 0.45)},
				Factor:  0.85,
			},
		},
		RequiredFields: []string{"spain_climate", "spain_lifestyle", "spain_budget_comfort", "spain_work_environment"},
		Defaults: map[string]string{
			"spain_climate":          "climate_flexible",
			"spain_lifestyle":        "lifestyle_flexible",
			"spain_budget_comfort":   "budget_flexible",
			"spain_work_environment": "work_flexible",
		},
		MultiSelect:   []string{"spain_priorities"},
		Thresholds:    recommend.Thresholds{High: 0.9, Low: 0.6},
		PriorityField: "spain_main_priority",
		Rationales: map[string]string{
			"quality_of_life": "{city} pairs a relaxed pace with the services you rated highest.",
			"career":          "{city} offers the strongest professional prospects among your matches.",
			"cost_savings":    "{city} keeps living costs low without giving up what matters to you.",
			"lifestyle":       "{city} fits the way you want to spend your days.",
		},
		DefaultRationale: "{city} is a well-rounded match for your answers.",
	}
}
