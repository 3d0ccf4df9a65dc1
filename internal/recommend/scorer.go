// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package recommend

import (
	"github.com/tomtom215/citescape/internal/catalog"
)

// Score is the scoring result for one city.
type Score struct {
	// Value is the final score in [0,1].
	Value float64

	// Base is the coverage-renormalized weighted mean before any bonus.
	Base float64

	// Unclamped is the score after bonuses and before clamping.
	Unclamped float64

	// Bonuses lists the names of the bonus rules that fired.
	Bonuses []string
}

// ScoreCity scores one city.
//
// The weighted sum only runs over criteria the city defines and is divided
// by the weight those criteria cover, so an absent criterion neither adds
// nor dilutes. The soft lifestyle factor and every matching bonus rule
// multiply the result, which is then clamped to [0,1].
func ScoreCity(city *catalog.City, weights Weights, profile Profile, bonuses []BonusRule, lifestyle float64) Score {
	base := weightedMean(city, weights)

	score := base * lifestyle
	var fired []string
	for i := range bonuses {
		if bonuses[i].matches(city, profile) {
			score *= bonuses[i].Factor
			fired = append(fired, bonuses[i].Name)
		}
	}

	return Score{
		Value:     clamp01(score),
		Base:      base,
		Unclamped: score,
		Bonuses:   fired,
	}
}

func weightedMean(city *catalog.City, weights Weights) float64 {
	var raw, covered float64
	for _, k := range weights.Keys() {
		s, ok := city.Score(k)
		if !ok {
			continue
		}
		raw += s * weights[k]
		covered += weights[k]
	}
	if covered <= 0 {
		return 0
	}
	return raw / covered
}

func (r *BonusRule) matches(city *catalog.City, profile Profile) bool {
	for _, c := range r.When {
		answer, ok := profile.Get(c.Field)
		if !ok || !answer.MatchesAny(c.Values) {
			return false
		}
	}
	for _, t := range r.Require {
		s, ok := city.Score(t.Criterion)
		if !ok {
			return false
		}
		switch t.Op {
		case AtLeast:
			if s < t.Value {
				return false
			}
		case AtMost:
			if s > t.Value {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
