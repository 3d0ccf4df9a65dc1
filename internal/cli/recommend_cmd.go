// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/citescape/internal/recommend"
)

func newRecommendCmd(app *App) *cobra.Command {
	var (
		answersFile string
		sets        []string
		topN        int
	)

	cmd := &cobra.Command{
		Use:   "recommend <country>",
		Short: "Rank a country's cities for a set of answers",
		Long: `Rank a country's cities for a set of answers.

Answers come from a JSON object file (--answers) and from repeated
--set field=value flags, which win over the file. A value containing
commas becomes a multi-select list.`,
		Example: `  citescape recommend spain --set spain_lifestyle=mediterranean_coastal --top 5
  citescape recommend thailand --answers answers.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.Registry.Get(args[0])
			if err != nil {
				return err
			}

			profile, err := buildProfile(answersFile, sets)
			if err != nil {
				return err
			}

			env := e.Recommend(context.Background(), profile, topN)
			if err := printJSON(cmd.OutOrStdout(), env); err != nil {
				return err
			}
			if !env.OK() {
				return errors.New(env.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&answersFile, "answers", "", "JSON file with questionnaire answers")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Answer as field=value (repeatable)")
	cmd.Flags().IntVar(&topN, "top", recommend.DefaultTopN, "Number of cities to return")

	return cmd
}

// buildProfile merges the answers file with --set overrides.
func buildProfile(path string, sets []string) (recommend.Profile, error) {
	profile := recommend.Profile{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read answers: %w", err)
		}
		if err := json.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("parse answers %s: %w", path, err)
		}
	}

	for _, s := range sets {
		field, value, ok := strings.Cut(s, "=")
		field = strings.TrimSpace(field)
		if !ok || field == "" {
			return nil, fmt.Errorf("invalid --set %q: want field=value", s)
		}
		if strings.Contains(value, ",") {
			parts := strings.Split(value, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			profile[field] = recommend.List(parts...)
			continue
		}
		profile[field] = recommend.Scalar(strings.TrimSpace(value))
	}

	return profile, nil
}
