// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/citescape/internal/recommend"
)

type countryInfo struct {
	ID               string `json:"id"`
	DisplayName      string `json:"display_name"`
	AlgorithmVersion string `json:"algorithm_version"`
	Cities           int    `json:"cities"`
}

func newCountriesCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "countries",
		Short: "List the loaded countries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var out []countryInfo
			for _, id := range app.Registry.Countries() {
				e, err := app.Registry.Get(id)
				if err != nil {
					return err
				}
				out = append(out, countryInfo{
					ID:               id,
					DisplayName:      e.DisplayName(),
					AlgorithmVersion: e.Bundle().AlgorithmVersion,
					Cities:           e.Catalog().Len(),
				})
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), out)
			}
			for _, c := range out {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-12s %-16s %d cities\n",
					c.ID, c.DisplayName, c.AlgorithmVersion, c.Cities)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}

func newHealthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "health [country]",
		Short: "Show engine health for one or all countries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				health := app.Registry.Health()
				if err := printJSON(cmd.OutOrStdout(), health); err != nil {
					return err
				}
				for country, h := range health {
					if h.Status != recommend.HealthHealthy {
						return fmt.Errorf("%s is %s", country, h.Status)
					}
				}
				return nil
			}

			e, err := app.Registry.Get(args[0])
			if err != nil {
				return err
			}
			h := e.Health()
			if err := printJSON(cmd.OutOrStdout(), h); err != nil {
				return err
			}
			if h.Status != recommend.HealthHealthy {
				return fmt.Errorf("%s is %s", args[0], h.Status)
			}
			return nil
		},
	}
}
