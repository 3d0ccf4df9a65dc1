// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package recommend

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidBundle is returned by Bundle.Validate.
var ErrInvalidBundle = errors.New("invalid bundle")

// Default explanation thresholds.
const (
	DefaultHighThreshold = 0.9
	DefaultLowThreshold  = 0.6
	DefaultMinCities     = 2
)

// Bundle is the static parameter set of one country. Bundles are authored
// as tables in package countries and never mutated at runtime.
type Bundle struct {
	// Country is the registry key, e.g. "spain".
	Country string

	// DisplayName is the human-readable country name.
	DisplayName string

	// AlgorithmVersion is reported in every success envelope.
	AlgorithmVersion string

	// RegionKey selects the envelope field for the region label:
	// "region" (default) or "state".
	RegionKey string

	// BaseWeights are the starting criterion weights. They need not sum to 1.
	BaseWeights map[string]float64

	// Families are applied by the pre-filter in this order.
	Families []ZoneFamily

	// Adjustments are applied by the weight adapter in this order.
	Adjustments []AdjustmentRule

	// Bonuses are applied by the scorer after renormalization.
	Bonuses []BonusRule

	// RequiredFields are the questionnaire keys the engine expects.
	// Absent keys fall back to Defaults.
	RequiredFields []string

	// Defaults holds the default answer per field.
	Defaults map[string]string

	// MultiSelect lists the fields answered with a list of values.
	MultiSelect []string

	// Thresholds drive the strengths and concerns lists.
	Thresholds Thresholds

	// PriorityField is the questionnaire key whose answer selects the rationale.
	PriorityField string

	// Rationales maps a PriorityField answer to a rationale template.
	// "{city}" is replaced with the city name.
	Rationales map[string]string

	// DefaultRationale is used when no rationale matches.
	DefaultRationale string

	// Labels overrides catalog criterion labels.
	Labels map[string]string
}

// Thresholds are the score bounds for strengths (>= High) and concerns (<= Low).
type Thresholds struct {
	High float64
	Low  float64
}

// ZoneFamily is one pre-filter stage.
//
// A family is either a zone family (Zones), a threshold family (Threshold),
// or a soft family (Soft) which annotates cities with a bonus factor
// instead of removing them.
type ZoneFamily struct {
	// Name is the family name used in logs and health output ("climate").
	Name string

	// Field is the questionnaire key read for this family.
	Field string

	// Flexible lists answers that disable the family.
	Flexible []string

	// MinCities is the minimum set size for the family to be adopted.
	MinCities int

	// Zones maps zone name to member city ids.
	Zones map[string][]string

	// Threshold turns the family into a score threshold filter.
	Threshold *ThresholdFilter

	// Soft marks the soft lifestyle bonus variant.
	Soft bool

	// SoftFactor multiplies the score of cities in the selected zone.
	SoftFactor float64
}

// ThresholdFilter keeps cities whose Criterion score is at least the level
// mapped from the answer. Answers without a level do not filter.
type ThresholdFilter struct {
	Criterion string
	Levels    map[string]float64
}

// AdjustmentRule multiplies criterion weights when Field matches one of Values.
type AdjustmentRule struct {
	Field  string
	Values []string

	// Multipliers maps criterion to factor.
	Multipliers map[string]float64

	// Base is the starting weight for a criterion not yet in the weight map.
	// Criteria absent here start from 0.
	Base map[string]float64
}

// Comparison is the operator of a bonus Threshold.
type Comparison int

const (
	// AtLeast requires score >= Value.
	AtLeast Comparison = iota
	// AtMost requires score <= Value.
	AtMost
)

// String implements fmt.Stringer.
func (c Comparison) String() string {
	switch c {
	case AtLeast:
		return ">="
	case AtMost:
		return "<="
	default:
		return "?"
	}
}

// Condition is a profile predicate: Field matches one of Values.
type Condition struct {
	Field  string
	Values []string
}

// Threshold is a city predicate over one criterion. A city that does not
// define the criterion fails it.
type Threshold struct {
	Criterion string
	Op        Comparison
	Value     float64
}

// BonusRule multiplies the score by Factor when every condition and every
// threshold holds. Factors below 1 act as a malus.
type BonusRule struct {
	Name    string
	When    []Condition
	Require []Threshold
	Factor  float64
}

// Validate checks the bundle's structural invariants.
func (b *Bundle) Validate() error {
	var problems []string
	add := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if b.Country == "" {
		add("country is required")
	}
	if b.AlgorithmVersion == "" {
		add("algorithm version is required")
	}
	if b.RegionKey != "" && b.RegionKey != "region" && b.RegionKey != "state" {
		add("region key must be \"region\" or \"state\", got %q", b.RegionKey)
	}
	if len(b.BaseWeights) == 0 {
		add("base weights are empty")
	}
	var total float64
	for k, w := range b.BaseWeights {
		if w < 0 {
			add("base weight %s is negative", k)
		}
		total += w
	}
	if len(b.BaseWeights) > 0 && total <= 0 {
		add("base weights sum to zero")
	}

	seen := make(map[string]bool, len(b.Families))
	for i := range b.Families {
		f := &b.Families[i]
		if f.Name == "" || f.Field == "" {
			add("family %d needs a name and a field", i)
		}
		if seen[f.Name] {
			add("family %s declared twice", f.Name)
		}
		seen[f.Name] = true
		if f.MinCities < 1 {
			add("family %s: minimum must be at least 1", f.Name)
		}
		switch {
		case f.Threshold != nil:
			if f.Threshold.Criterion == "" || len(f.Threshold.Levels) == 0 {
				add("family %s: threshold needs a criterion and levels", f.Name)
			}
		case len(f.Zones) == 0:
			add("family %s has no zones", f.Name)
		}
		if f.Soft && f.SoftFactor <= 0 {
			add("family %s: soft factor must be positive", f.Name)
		}
	}

	for i, r := range b.Adjustments {
		if r.Field == "" || len(r.Values) == 0 {
			add("adjustment %d needs a field and values", i)
		}
		for k, m := range r.Multipliers {
			if m < 0 {
				add("adjustment %d: multiplier for %s is negative", i, k)
			}
		}
		for k, w := range r.Base {
			if w < 0 {
				add("adjustment %d: base for %s is negative", i, k)
			}
		}
	}

	for i, r := range b.Bonuses {
		if r.Name == "" {
			add("bonus %d needs a name", i)
		}
		if r.Factor < 0 {
			add("bonus %s: factor is negative", r.Name)
		}
	}

	if b.Thresholds.Low > b.Thresholds.High {
		add("low threshold %.2f is above high threshold %.2f", b.Thresholds.Low, b.Thresholds.High)
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w %s: %s", ErrInvalidBundle, b.Country, strings.Join(problems, "; "))
	}
	return nil
}

// withDefaults fills zero-valued optional fields.
func (b Bundle) withDefaults() Bundle {
	if b.RegionKey == "" {
		b.RegionKey = "region"
	}
	if b.Thresholds.High == 0 {
		b.Thresholds.High = DefaultHighThreshold
	}
	if b.Thresholds.Low == 0 {
		b.Thresholds.Low = DefaultLowThreshold
	}
	if b.DisplayName == "" {
		b.DisplayName = b.Country
	}
	return b
}

// isFlexible reports whether value disables the family.
func (f *ZoneFamily) isFlexible(value string) bool {
	for _, v := range f.Flexible {
		if v == value {
			return true
		}
	}
	return false
}

// ReferencedCriteria returns every criterion the bundle weights, adjusts,
// thresholds or tests, sorted.
func (b *Bundle) ReferencedCriteria() []string {
	set := make(map[string]struct{})
	for k := range b.BaseWeights {
		set[k] = struct{}{}
	}
	for _, r := range b.Adjustments {
		for k := range r.Multipliers {
			set[k] = struct{}{}
		}
	}
	for _, f := range b.Families {
		if f.Threshold != nil {
			set[f.Threshold.Criterion] = struct{}{}
		}
	}
	for _, r := range b.Bonuses {
		for _, t := range r.Require {
			set[t.Criterion] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Question describes one questionnaire field as the bundle understands it.
type Question struct {
	Field    string   `json:"field"`
	Family   string   `json:"family,omitempty"`
	Required bool     `json:"required"`
	Default  string   `json:"default,omitempty"`
	Options  []string `json:"options"`
	Multi    bool     `json:"multi_select,omitempty"`
}

// Questionnaire lists every field the bundle reads, with the answers that
// change its behavior. Fields are sorted by name.
func (b *Bundle) Questionnaire() []Question {
	type acc struct {
		q       Question
		options map[string]struct{}
	}
	fields := make(map[string]*acc)
	get := func(field string) *acc {
		a, ok := fields[field]
		if !ok {
			a = &acc{q: Question{Field: field}, options: map[string]struct{}{}}
			fields[field] = a
		}
		return a
	}

	for _, f := range b.Families {
		a := get(f.Field)
		a.q.Family = f.Name
		for _, v := range f.Flexible {
			a.options[v] = struct{}{}
		}
		for zone := range f.Zones {
			a.options[zone] = struct{}{}
		}
		if f.Threshold != nil {
			for level := range f.Threshold.Levels {
				a.options[level] = struct{}{}
			}
		}
	}
	for _, r := range b.Adjustments {
		a := get(r.Field)
		for _, v := range r.Values {
			a.options[v] = struct{}{}
		}
	}
	for _, r := range b.Bonuses {
		for _, c := range r.When {
			a := get(c.Field)
			for _, v := range c.Values {
				a.options[v] = struct{}{}
			}
		}
	}
	for field, v := range b.Defaults {
		a := get(field)
		a.q.Default = v
		a.options[v] = struct{}{}
	}
	for _, field := range b.RequiredFields {
		get(field).q.Required = true
	}
	for _, field := range b.MultiSelect {
		get(field).q.Multi = true
	}
	if b.PriorityField != "" {
		a := get(b.PriorityField)
		for v := range b.Rationales {
			a.options[v] = struct{}{}
		}
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Question, 0, len(names))
	for _, name := range names {
		a := fields[name]
		a.q.Options = make([]string, 0, len(a.options))
		for o := range a.options {
			a.q.Options = append(a.q.Options, o)
		}
		sort.Strings(a.q.Options)
		out = append(out, a.q)
	}
	return out
}
