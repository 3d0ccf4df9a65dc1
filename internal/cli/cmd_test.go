// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package cli

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/citescape/internal/catalog"
	"github.com/tomtom215/citescape/internal/recommend"
)

// executeCmd runs the root command and captures stdout and stderr separately.
func executeCmd(t *testing.T, app *App, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd(app)
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCountriesCmd(t *testing.T) {
	out, _, err := executeCmd(t, &App{}, "countries")
	require.NoError(t, err)
	assert.Contains(t, out, "spain")
	assert.Contains(t, out, "Thailand")
	assert.Contains(t, out, "spain-2.3.0")
}

func TestCountriesCmd_JSONSubset(t *testing.T) {
	out, _, err := executeCmd(t, &App{}, "countries", "--json", "--countries", "spain,portugal")
	require.NoError(t, err)

	var got []countryInfo
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "portugal", got[0].ID)
	assert.Equal(t, "spain", got[1].ID)
	assert.Equal(t, 16, got[1].Cities)
}

func TestHealthCmd(t *testing.T) {
	t.Run("single country", func(t *testing.T) {
		out, _, err := executeCmd(t, &App{}, "health", "germany")
		require.NoError(t, err)

		var h recommend.Health
		require.NoError(t, json.Unmarshal([]byte(out), &h))
		assert.Equal(t, recommend.HealthHealthy, h.Status)
		assert.Positive(t, h.CitiesCount)
	})

	t.Run("all countries", func(t *testing.T) {
		out, _, err := executeCmd(t, &App{}, "health")
		require.NoError(t, err)

		var all map[string]recommend.Health
		require.NoError(t, json.Unmarshal([]byte(out), &all))
		assert.Len(t, all, 5)
	})

	t.Run("unknown country", func(t *testing.T) {
		_, _, err := executeCmd(t, &App{}, "health", "atlantis")
		require.Error(t, err)
		assert.ErrorIs(t, err, recommend.ErrUnknownCountry)
	})
}

func TestRecommendCmd_Set(t *testing.T) {
	out, _, err := executeCmd(t, &App{}, "recommend", "spain",
		"--set", "spain_climate=mediterranean_mild",
		"--set", "spain_lifestyle=mediterranean_coastal",
		"--set", "spain_work_environment=remote_digital",
		"--set", "spain_budget_comfort=budget_comfortable",
	)
	require.NoError(t, err)

	var env recommend.Envelope
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	assert.Equal(t, recommend.StatusSuccess, env.Status)
	require.Len(t, env.Recommendations, 3)
	assert.Equal(t, "valencia", env.Recommendations[0].CityID)
	assert.Equal(t, 3, env.TotalCitiesAnalyzed)
}

func TestRecommendCmd_AnswersFileAndOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "answers.json")
	answers := `{
		"spain_climate": "mediterranean_mild",
		"spain_lifestyle": "island_life",
		"spain_work_environment": "remote_digital",
		"spain_budget_comfort": "budget_comfortable"
	}`
	require.NoError(t, os.WriteFile(path, []byte(answers), 0o600))

	out, _, err := executeCmd(t, &App{}, "recommend", "spain",
		"--answers", path,
		"--set", "spain_lifestyle=mediterranean_coastal",
		"--top", "1",
	)
	require.NoError(t, err)

	var env recommend.Envelope
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	require.Len(t, env.Recommendations, 1)
	assert.Equal(t, "valencia", env.Recommendations[0].CityID)
}

func TestRecommendCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown country", []string{"recommend", "atlantis"}, "unknown country"},
		{"bad set", []string{"recommend", "spain", "--set", "no-equals"}, "want field=value"},
		{"missing file", []string{"recommend", "spain", "--answers", "/does/not/exist.json"}, "read answers"},
		{"negative top", []string{"recommend", "spain", "--top", "-1"}, "top_n"},
		{"no country", []string{"recommend"}, "accepts 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCmd(t, &App{}, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBuildProfile(t *testing.T) {
	p, err := buildProfile("", []string{"a=x", "b= y , z ", "c="})
	require.NoError(t, err)

	assert.Equal(t, "x", p["a"].Value())
	assert.True(t, p["b"].IsList())
	assert.Equal(t, []string{"y", "z"}, p["b"].Values())
	assert.False(t, p["c"].IsSet())
}

func TestCatalogDir(t *testing.T) {
	dir := t.TempDir()
	data, err := fs.ReadFile(catalog.Embedded(), catalog.FileName("thailand"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, catalog.FileName("thailand")), data, 0o600))

	out, stderr, err := executeCmd(t, &App{}, "countries", "--json", "--catalog-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, stderr, "catalog missing")

	var got []countryInfo
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "thailand", got[0].ID)
}

func TestNoCountries(t *testing.T) {
	_, _, err := executeCmd(t, &App{}, "countries", "--catalog-dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no country")
}
