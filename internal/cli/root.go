// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

// Package cli implements the citescape command line tool, which runs the
// country engines in-process without the HTTP gateway.
package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/citescape/internal/logging"
	"github.com/tomtom215/citescape/internal/recommend"
	"github.com/tomtom215/citescape/internal/recommend/countries"
)

// App holds what the commands share. Registry is built from the root flags
// on first use when it is nil.
type App struct {
	Registry *recommend.Registry

	// CatalogDir and Countries seed the root flag defaults.
	CatalogDir string
	Countries  []string
}

// NewRootCmd creates the top-level "citescape" command.
func NewRootCmd(app *App) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "citescape",
		Short:         "Rank cities in a country against a questionnaire",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Init(logging.Config{
				Level:  logLevel,
				Format: "console",
				Output: cmd.ErrOrStderr(),
			})
			return app.ensureRegistry(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&app.CatalogDir, "catalog-dir", app.CatalogDir,
		"Directory holding <country>.json catalogs (default: embedded catalogs)")
	root.PersistentFlags().StringSliceVar(&app.Countries, "countries", app.Countries,
		"Countries to load (default: all)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level")

	root.AddCommand(
		newCountriesCmd(app),
		newHealthCmd(app),
		newRecommendCmd(app),
	)

	return root
}

func (app *App) ensureRegistry(stderr io.Writer) error {
	if app.Registry != nil {
		return nil
	}

	reg := recommend.NewRegistry(logging.Logger())
	res := countries.RegisterAll(reg, app.Countries, app.CatalogDir)

	failed := make([]string, 0, len(res.Failed))
	for country := range res.Failed {
		failed = append(failed, country)
	}
	sort.Strings(failed)
	for _, country := range failed {
		fmt.Fprintf(stderr, "warning: %v\n", res.Failed[country])
	}

	if len(res.Registered) == 0 {
		return fmt.Errorf("no country could be loaded")
	}
	app.Registry = reg
	return nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
