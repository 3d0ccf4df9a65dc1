// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package recommend

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestProfile_UnmarshalJSON(t *testing.T) {
	data := []byte(`{
		"climate": "mediterranean_mild",
		"priorities": ["beach", "nightlife"],
		"kids": 3,
		"ratio": 2.50,
		"remote": true,
		"skipped": null,
		"blank": ""
	}`)

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	tests := []struct {
		field  string
		want   string
		set    bool
		isList bool
	}{
		{"climate", "mediterranean_mild", true, false},
		{"priorities", "beach", true, true},
		{"kids", "3", true, false},
		{"ratio", "2.5", true, false},
		{"remote", "true", true, false},
		{"skipped", "", false, false},
		{"blank", "", false, false},
		{"absent", "", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			a, ok := p.Get(tt.field)
			if ok != tt.set {
				t.Fatalf("Get(%s) ok = %v, want %v", tt.field, ok, tt.set)
			}
			if a.Value() != tt.want {
				t.Errorf("Value() = %q, want %q", a.Value(), tt.want)
			}
			if a.IsList() != tt.isList {
				t.Errorf("IsList() = %v, want %v", a.IsList(), tt.isList)
			}
		})
	}
}

func TestProfile_UnmarshalJSONRejectsObjects(t *testing.T) {
	var p Profile
	if err := json.Unmarshal([]byte(`{"climate": {"nested": true}}`), &p); err == nil {
		t.Error("expected an error for an object answer")
	}
}

func TestAnswer_MarshalJSON(t *testing.T) {
	tests := []struct {
		name   string
		answer Answer
		want   string
	}{
		{"scalar", Scalar("x"), `"x"`},
		{"list", List("a", "b"), `["a","b"]`},
		{"empty list", List(), `[]`},
		{"unset", Scalar(""), `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.answer)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAnswer_Matches(t *testing.T) {
	tests := []struct {
		name   string
		answer Answer
		value  string
		want   bool
	}{
		{"scalar equal", Scalar("a"), "a", true},
		{"scalar different", Scalar("a"), "b", false},
		{"list member", List("a", "b"), "b", true},
		{"list non-member", List("a", "b"), "c", false},
		{"unset", Answer{}, "", false},
		{"empty list", List(), "a", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.answer.Matches(tt.value); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestProfile_WithDefaults(t *testing.T) {
	p := Profile{"a": Scalar("given"), "b": Scalar("")}
	got := p.withDefaults(map[string]string{"a": "default_a", "b": "default_b", "c": "default_c"})

	want := map[string]string{"a": "given", "b": "default_b", "c": "default_c"}
	for k, v := range want {
		if got[k].Value() != v {
			t.Errorf("%s = %q, want %q", k, got[k].Value(), v)
		}
	}
	if _, ok := p["c"]; ok {
		t.Error("withDefaults mutated the receiver")
	}
	if p["b"].IsSet() {
		t.Error("withDefaults overwrote the receiver's unset answer")
	}
}
