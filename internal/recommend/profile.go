// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package recommend

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// Answer is one questionnaire response: a single value or, for multi-select
// questions, a list of values.
type Answer struct {
	values []string
	list   bool
}

// Scalar returns a single-valued answer. An empty string is an unset answer.
func Scalar(v string) Answer {
	if v == "" {
		return Answer{}
	}
	return Answer{values: []string{v}}
}

// List returns a multi-select answer. Empty strings are dropped.
func List(vs ...string) Answer {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		if v != "" {
			out = append(out, v)
		}
	}
	return Answer{values: out, list: true}
}

// IsSet reports whether the answer carries at least one value.
func (a Answer) IsSet() bool {
	return len(a.values) > 0
}

// IsList reports whether the answer came from a multi-select question.
func (a Answer) IsList() bool {
	return a.list
}

// Value returns the first value, or "" when unset.
func (a Answer) Value() string {
	if len(a.values) == 0 {
		return ""
	}
	return a.values[0]
}

// Values returns a copy of all values.
func (a Answer) Values() []string {
	out := make([]string, len(a.values))
	copy(out, a.values)
	return out
}

// Matches reports whether v equals a scalar answer or is a member of a list
// answer. An unset answer matches nothing.
func (a Answer) Matches(v string) bool {
	if a.list {
		for _, x := range a.values {
			if x == v {
				return true
			}
		}
		return false
	}
	return len(a.values) == 1 && a.values[0] == v
}

// MatchesAny reports whether any of vs matches.
func (a Answer) MatchesAny(vs []string) bool {
	for _, v := range vs {
		if a.Matches(v) {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (a Answer) String() string {
	if a.list {
		return fmt.Sprint(a.values)
	}
	return a.Value()
}

// MarshalJSON renders a scalar as a string and a list as an array.
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.list {
		return json.Marshal(a.values)
	}
	if !a.IsSet() {
		return []byte(`null`), nil
	}
	return json.Marshal(a.values[0])
}

// UnmarshalJSON accepts a string, number, boolean, null or an array of those.
func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Answer{}
		return nil
	}

	if data[0] == '[' {
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("answer list: %w", err)
		}
		vals := make([]string, 0, len(raw))
		for _, item := range raw {
			v, err := scalarText(item)
			if err != nil {
				return err
			}
			vals = append(vals, v)
		}
		*a = List(vals...)
		return nil
	}

	v, err := scalarText(data)
	if err != nil {
		return err
	}
	*a = Scalar(v)
	return nil
}

func scalarText(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		return "", nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", fmt.Errorf("answer: %w", err)
		}
		return s, nil
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("false")):
		return string(data), nil
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return "", fmt.Errorf("answer: unsupported value %s", string(data))
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	}
}

// Profile maps questionnaire field names (country-prefixed, such as
// "spain_climate") to answers. A profile lives for one request.
type Profile map[string]Answer

// Get returns the answer for field when it is set.
func (p Profile) Get(field string) (Answer, bool) {
	a, ok := p[field]
	if !ok || !a.IsSet() {
		return Answer{}, false
	}
	return a, true
}

// withDefaults returns a new profile where unset fields take the given
// defaults. The receiver is not modified.
func (p Profile) withDefaults(defaults map[string]string) Profile {
	out := make(Profile, len(p)+len(defaults))
	for k, v := range p {
		out[k] = v
	}
	for field, value := range defaults {
		if _, ok := out.Get(field); !ok {
			out[field] = Scalar(value)
		}
	}
	return out
}

// ProfileFromStrings builds a profile of scalar answers.
func ProfileFromStrings(m map[string]string) Profile {
	p := make(Profile, len(m))
	for k, v := range m {
		p[k] = Scalar(v)
	}
	return p
}
