// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package recommend

import (
	"math"
	"sort"
	"strings"

	"github.com/tomtom215/citescape/internal/catalog"
)

const (
	topCriteriaK = 3
	maxListItems = 3
)

// roundPercent converts a [0,1] value to a percentage with one decimal.
func roundPercent(v float64) float64 {
	return math.Round(v*1000) / 10
}

type criterionScore struct {
	name   string
	score  float64
	weight float64
}

// explainer builds the explanatory fields of a recommendation.
type explainer struct {
	bundle  *Bundle
	catalog *catalog.Catalog
}

func (x *explainer) label(criterion string) string {
	if l, ok := x.bundle.Labels[criterion]; ok {
		return l
	}
	return x.catalog.Label(criterion)
}

// weighted returns the city's defined criteria that carry weight, sorted by name.
func weighted(city *catalog.City, w Weights) []criterionScore {
	out := make([]criterionScore, 0, len(w))
	for _, k := range w.Keys() {
		if w[k] <= 0 {
			continue
		}
		if s, ok := city.Score(k); ok {
			out = append(out, criterionScore{name: k, score: s, weight: w[k]})
		}
	}
	return out
}

func (x *explainer) topCriteria(cs []criterionScore) []CriterionContribution {
	sorted := make([]criterionScore, len(cs))
	copy(sorted, cs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].score*sorted[i].weight > sorted[j].score*sorted[j].weight
	})
	if len(sorted) > topCriteriaK {
		sorted = sorted[:topCriteriaK]
	}

	out := make([]CriterionContribution, len(sorted))
	for i, c := range sorted {
		out[i] = CriterionContribution{
			Criterion:    x.label(c.name),
			Score:        roundPercent(c.score),
			Contribution: roundPercent(c.score * c.weight),
		}
	}
	return out
}

// strengths lists weighted criteria at or above the high threshold, best first.
func (x *explainer) strengths(cs []criterionScore) []string {
	var picked []criterionScore
	for _, c := range cs {
		if c.score >= x.bundle.Thresholds.High {
			picked = append(picked, c)
		}
	}
	sort.SliceStable(picked, func(i, j int) bool { return picked[i].score > picked[j].score })
	return x.labels(picked)
}

// concerns lists weighted criteria at or below the low threshold, worst first.
func (x *explainer) concerns(cs []criterionScore) []string {
	var picked []criterionScore
	for _, c := range cs {
		if c.score <= x.bundle.Thresholds.Low {
			picked = append(picked, c)
		}
	}
	sort.SliceStable(picked, func(i, j int) bool { return picked[i].score < picked[j].score })
	return x.labels(picked)
}

func (x *explainer) labels(cs []criterionScore) []string {
	if len(cs) > maxListItems {
		cs = cs[:maxListItems]
	}
	if len(cs) == 0 {
		return nil
	}
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = x.label(c.name)
	}
	return out
}

func (x *explainer) rationale(city *catalog.City, profile Profile) string {
	tmpl := x.bundle.DefaultRationale
	if answer, ok := profile.Get(x.bundle.PriorityField); ok {
		for _, v := range answer.Values() {
			if r, ok := x.bundle.Rationales[v]; ok {
				tmpl = r
				break
			}
		}
	}
	return strings.ReplaceAll(tmpl, "{city}", city.Name)
}

func (x *explainer) build(city *catalog.City, s Score, w Weights, profile Profile, lifestyle float64) Recommendation {
	cs := weighted(city, w)
	rec := Recommendation{
		City:            city.Name,
		CityID:          city.ID,
		ScorePercentage: roundPercent(s.Value),
		Population:      city.Population,
		Coordinates:     city.Coordinates,
		EconomicZone:    city.EconomicZone,
		TopCriteria:     x.topCriteria(cs),
		Strengths:       x.strengths(cs),
		Concerns:        x.concerns(cs),
		WhyRecommended:  x.rationale(city, profile),
		BonusesApplied:  s.Bonuses,
		score:           s.Value,
	}
	if lifestyle != 1 {
		rec.LifestyleBonus = lifestyle
	}
	if x.bundle.RegionKey == "state" {
		rec.State = city.Region
	} else {
		rec.Region = city.Region
	}
	return rec
}
