// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package countries

import "github.com/tomtom215/citescape/internal/recommend"

// PortugalLifestyleBonus is the soft factor for cities in the chosen
// lifestyle zone.
const PortugalLifestyleBonus = 1.08

// Portugal returns the Portuguese bundle. Like Australia, lifestyle is a
// soft family.
func Portugal() *recommend.Bundle {
	return &recommend.Bundle{
		Country:          "portugal",
		DisplayName:      "Portugal",
		AlgorithmVersion: "portugal-1.0.2",
		RegionKey:        "region",
		BaseWeights: map[string]float64{
			"cost_of_living":         0.12,
			"housing_affordability":  0.08,
			"climate_rating":         0.10,
			"beach_access":           0.06,
			"digital_infrastructure": 0.07,
			"expat_community":        0.06,
			"english_proficiency":    0.05,
			"safety":                 0.10,
			"healthcare":             0.09,
			"gastronomy":             0.06,
			"culture_scene":          0.07,
			"public_transport":       0.05,
			"surf_quality":           0.03,
			"tranquility":            0.06,
		},
		Families: []recommend.ZoneFamily{
			{
				Name:      "region",
				Field:     "portugal_region",
				Flexible:  []string{"region_flexible"},
				MinCities: 2,
				Zones: map[string][]string{
					"north":       {"porto", "braga", "guimaraes"},
					"centre":      {"coimbra", "aveiro"},
					"lisbon_area": {"lisbon", "cascais", "ericeira", "setubal"},
					"algarve":     {"faro", "lagos"},
					"islands":     {"funchal", "ponta_delgada"},
					"alentejo":    {"evora"},
				},
			},
			{
				Name:       "lifestyle",
				Field:      "portugal_lifestyle",
				Flexible:   []string{"lifestyle_flexible"},
				MinCities:  1,
				Soft:       true,
				SoftFactor: PortugalLifestyleBonus,
				Zones: map[string][]string{
					"surf_coast":     {"ericeira", "lagos", "cascais", "aveiro", "ponta_delgada"},
					"historic_towns": {"guimaraes", "braga", "coimbra", "evora"},
					"urban_hub":      {"lisbon", "porto"},
				},
			},
			{
				Name:      "budget",
				Field:     "portugal_budget",
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
			{Field: "portugal_work_style", Values: []string{"remote_worker"},
				Multipliers: map[string]float64{"digital_infrastructure": 2.0, "expat_community": 1.3}},
			{Field: "portugal_lifestyle", Values: []string{"surf_coast"},
				Multipliers: map[string]float64{"surf_quality": 4.0, "beach_access": 1.5}},
			{Field: "portugal_lifestyle", Values: []string{"historic_towns"},
				Multipliers: map[string]float64{"culture_scene": 1.6, "tranquility": 1.3}},
			{Field: "portugal_lifestyle", Values: []string{"urban_hub"},
				Multipliers: map[string]float64{"culture_scene": 1.4, "public_transport": 1.6}},
			{Field: "portugal_language", Values: []string{"english_needed"},
				Multipliers: map[string]float64{"english_proficiency": 2.0, "expat_community": 1.4}},
			{Field: "portugal_budget", Values: []string{"budget_tight"},
				Multipliers: map[string]float64{"cost_of_living": 2.0, "housing_affordability": 1.8}},
			{Field: "portugal_priorities", Values: []string{"healthcare"},
				Multipliers: map[string]float64{"healthcare": 1.6}},
			{Field: "portugal_priorities", Values: []string{"food"},
				Multipliers: map[string]float64{"gastronomy": 1.6}},
			{Field: "portugal_priorities", Values: []string{"quiet"},
				Multipliers: map[string]float64{"tranquility": 1.8}},
		},
		Bonuses: []recommend.BonusRule{
			{
				Name:    "surf_paradise",
				When:    []recommend.Condition{when("portugal_lifestyle", "surf_coast")},
				Require: []recommend.Threshold{atLeast("surf_quality", 0.95)},
				Factor:  1.06,
			},
			{
				Name:    "remote_connectivity_gap",
				When:    []recommend.Condition{when("portugal_work_style", "remote_worker")},
				Require: []recommend.Threshold{atMost("digital_infrastructure", 0.76)},
				Factor:  0.95,
			},
		},
		RequiredFields: []string{"portugal_region", "portugal_lifestyle", "portugal_budget"},
		Defaults: map[string]string{
			"portugal_region":    "region_flexible",
			"portugal_lifestyle": "lifestyle_flexible",
			"portugal_budget":    "budget_flexible",
		},
		MultiSelect:   []string{"portugal_priorities"},
		Thresholds:    recommend.Thresholds{High: 0.9, Low: 0.6},
		PriorityField: "portugal_main_priority",
		Rationales: map[string]string{
			"cost_savings":    "{city} keeps costs down while still ticking your boxes.",
			"remote_work":     "{city} has the connectivity and community remote workers look for.",
			"quality_of_life": "{city} is safe, sunny and easy to settle into.",
		},
		DefaultRationale: "{city} is a strong all-round match for your answers.",
	}
}
