// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

// Command citescape runs the country engines from the command line.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/tomtom215/citescape/internal/cli"
)

func main() {
	app := &cli.App{CatalogDir: os.Getenv("CATALOG_DIR")}
	if v := os.Getenv("CATALOG_COUNTRIES"); v != "" {
		app.Countries = strings.Split(v, ",")
	}

	if err := cli.NewRootCmd(app).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
