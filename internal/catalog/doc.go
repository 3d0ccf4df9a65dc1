// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

/*
Package catalog loads and validates per-country city catalogs.

A catalog is a JSON document listing candidate cities, each scored on a
country-specific set of criteria in [0,1]:

	{
	  "metadata": {"country": "spain", "version": "2.1"},
	  "criteria_definitions": {"cost_of_living": {"label": "Cost of living"}},
	  "cities": [
	    {
	      "id": "valencia",
	      "name": "Valencia",
	      "region": "Comunidad Valenciana",
	      "population": 791413,
	      "coordinates": {"lat": 39.47, "lng": -0.38},
	      "scores": {"cost_of_living": 0.78, "beach_access": 0.95}
	    }
	  ]
	}

Cities may carry "state" instead of "region". A criterion a city does not
define is absent from its score map, never zero.

# Errors

Load returns ErrCatalogMissing when the document does not exist and
ErrCatalogMalformed when it is structurally invalid. Both are wrapped, so
callers test with errors.Is.

# Thread Safety

A Catalog is immutable after Load returns. Accessors hand out copies of the
city slice and may be called from any number of goroutines.

# Seed Data

The seed catalogs shipped with the binary are embedded and exposed through
Embedded; LoadFS reads them the same way Load reads a file on disk.
*/
package catalog
