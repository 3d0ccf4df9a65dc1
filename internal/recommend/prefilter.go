// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package recommend

import (
	"github.com/tomtom215/citescape/internal/catalog"
)

// Candidates is the pre-filter output for one request.
type Candidates struct {
	// Cities is the filtered set, in catalog order.
	Cities []catalog.City

	// Bonus holds the soft lifestyle factor per city id. Cities without an
	// entry have factor 1. The map belongs to the request.
	Bonus map[string]float64

	// Applied lists the families that narrowed the set.
	Applied []string

	// Skipped lists the families that would have left too few cities.
	Skipped []SoftSkip
}

// SoftSkip records a family that was not adopted.
type SoftSkip struct {
	Family    string
	Value     string
	Remaining int
	Minimum   int
}

// LifestyleBonus returns the soft factor for a city id.
func (c *Candidates) LifestyleBonus(id string) float64 {
	if f, ok := c.Bonus[id]; ok {
		return f
	}
	return 1
}

// Prefilter narrows cities family by family in the bundle's declared order.
//
// For each family whose answer is set and not flexible, the intersection of
// the current set with the selected zone (or the cities passing the
// threshold) is adopted only when it holds at least MinCities; otherwise the
// previous set is kept and a SoftSkip is recorded. Soft families never
// narrow: their zone members have SoftFactor multiplied into Bonus. The result is never
// empty for a non-empty input.
func Prefilter(cities []catalog.City, profile Profile, b *Bundle) Candidates {
	out := Candidates{
		Cities: cities,
		Bonus:  make(map[string]float64),
	}

	for i := range b.Families {
		f := &b.Families[i]
		answer, ok := profile.Get(f.Field)
		if !ok {
			continue
		}
		value := answer.Value()
		if f.isFlexible(value) {
			continue
		}

		if f.Soft {
			members, ok := f.Zones[value]
			if !ok {
				continue
			}
			// Factors from several soft families compound.
			for _, id := range members {
				out.Bonus[id] = out.LifestyleBonus(id) * f.SoftFactor
			}
			out.Applied = append(out.Applied, f.Name)
			continue
		}

		var next []catalog.City
		switch {
		case f.Threshold != nil:
			level, ok := f.Threshold.Levels[value]
			if !ok {
				continue
			}
			next = filterThreshold(out.Cities, f.Threshold.Criterion, level)
		default:
			members, ok := f.Zones[value]
			if !ok {
				continue
			}
			next = filterZone(out.Cities, members)
		}

		if len(next) < f.MinCities {
			out.Skipped = append(out.Skipped, SoftSkip{
				Family:    f.Name,
				Value:     value,
				Remaining: len(next),
				Minimum:   f.MinCities,
			})
			continue
		}
		out.Cities = next
		out.Applied = append(out.Applied, f.Name)
	}

	return out
}

func filterZone(cities []catalog.City, members []string) []catalog.City {
	set := make(map[string]struct{}, len(members))
	for _, id := range members {
		set[id] = struct{}{}
	}
	out := make([]catalog.City, 0, len(members))
	for i := range cities {
		if _, ok := set[cities[i].ID]; ok {
			out = append(out, cities[i])
		}
	}
	return out
}

func filterThreshold(cities []catalog.City, criterion string, level float64) []catalog.City {
	out := make([]catalog.City, 0, len(cities))
	for i := range cities {
		if s, ok := cities[i].Score(criterion); ok && s >= level {
			out = append(out, cities[i])
		}
	}
	return out
}
