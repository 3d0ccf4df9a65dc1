// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

// Package countries holds the parameter bundle of every supported country.
//
// Each constructor returns a fresh *recommend.Bundle, so callers may keep a
// bundle without worrying about aliasing. The tables are the whole of a
// country's behavior: zone families (in pre-filter order), adjustment rules
// (in adapter order) and bonus rules.
//
// Australia and Portugal use the soft lifestyle variant: their lifestyle
// family annotates matching cities with a score factor instead of filtering.
// The other countries filter on lifestyle like any other zone family.
package countries

import (
	"sort"

	"github.com/tomtom215/citescape/internal/recommend"
)

// Constructor builds a country's bundle.
type Constructor func() *recommend.Bundle

var constructors = map[string]Constructor{
	"australia": Australia,
	"germany":   Germany,
	"portugal":  Portugal,
	"spain":     Spain,
	"thailand":  Thailand,
}

// Names returns the supported country ids, sorted.
func Names() []string {
	out := make([]string, 0, len(constructors))
	for name := range constructors {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the bundle for a country id.
func Lookup(country string) (*recommend.Bundle, bool) {
	c, ok := constructors[country]
	if !ok {
		return nil, false
	}
	return c(), true
}

// All returns every bundle, sorted by country id.
func All() []*recommend.Bundle {
	names := Names()
	out := make([]*recommend.Bundle, len(names))
	for i, name := range names {
		out[i] = constructors[name]()
	}
	return out
}

// when is shorthand for a single-field profile condition.
func when(field string, values ...string) recommend.Condition {
	return recommend.Condition{Field: field, Values: values}
}

func atLeast(criterion string, v float64) recommend.Threshold {
	return recommend.Threshold{Criterion: criterion, Op: recommend.AtLeast, Value: v}
}

func atMost(criterion string, v float64) recommend.Threshold {
	return recommend.Threshold{Criterion: criterion, Op: recommend.AtMost, Value: v}
}
