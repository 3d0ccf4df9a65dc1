// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package recommend

import "sort"

// Weights maps criterion to weight.
type Weights map[string]float64

// Clone returns a copy.
func (w Weights) Clone() Weights {
	out := make(Weights, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

// Sum returns the total weight.
func (w Weights) Sum() float64 {
	// Summing in key order keeps results bitwise reproducible.
	var total float64
	for _, k := range w.Keys() {
		total += w[k]
	}
	return total
}

// Keys returns the criteria in sorted order.
func (w Weights) Keys() []string {
	keys := make([]string, 0, len(w))
	for k := range w {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Normalize returns weights scaled to sum to 1.
// If every weight is zero, each criterion gets an equal share.
func (w Weights) Normalize() Weights {
	out := make(Weights, len(w))
	if len(w) == 0 {
		return out
	}

	total := w.Sum()
	if total <= 0 {
		equal := 1.0 / float64(len(w))
		for k := range w {
			out[k] = equal
		}
		return out
	}

	for k, v := range w {
		out[k] = v / total
	}
	return out
}

// AdaptWeights applies the matching adjustment rules to a copy of base, in
// order, and normalizes the result.
//
// A rule fires when the answer for its field equals one of its values
// (scalar) or contains one (list); a missing answer never fires. A criterion
// the weights do not hold yet starts from the rule's Base entry, or 0.
// When the adapted weights sum to zero, the normalized base weights are
// returned instead.
func AdaptWeights(base map[string]float64, profile Profile, rules []AdjustmentRule) Weights {
	w := Weights(base).Clone()

	for _, r := range rules {
		answer, ok := profile.Get(r.Field)
		if !ok || !answer.MatchesAny(r.Values) {
			continue
		}
		for _, criterion := range sortedKeys(r.Multipliers) {
			current, ok := w[criterion]
			if !ok {
				current = r.Base[criterion]
			}
			w[criterion] = current * r.Multipliers[criterion]
		}
	}

	if w.Sum() > 0 {
		return w.Normalize()
	}
	return Weights(base).Normalize()
}

// FiredAdjustments returns the indexes of the rules that match profile.
func FiredAdjustments(profile Profile, rules []AdjustmentRule) []int {
	var out []int
	for i, r := range rules {
		if answer, ok := profile.Get(r.Field); ok && answer.MatchesAny(r.Values) {
			out = append(out, i)
		}
	}
	return out
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
