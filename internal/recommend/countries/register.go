// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package countries

import (
	"fmt"
	"path/filepath"

	"github.com/tomtom215/citescape/internal/catalog"
	"github.com/tomtom215/citescape/internal/recommend"
)

// RegisterResult reports which countries made it into a registry.
type RegisterResult struct {
	Registered []string
	Failed     map[string]error
}

// RegisterAll registers the named countries, or every known country when
// names is empty. Catalogs are read from dir as "<country>.json", or from the
// embedded seed catalogs when dir is empty. A country that fails is recorded
// in Failed and skipped; the others still register.
func RegisterAll(reg *recommend.Registry, names []string, dir string) RegisterResult {
	if len(names) == 0 {
		names = Names()
	}

	res := RegisterResult{Failed: make(map[string]error)}
	for _, name := range names {
		b, ok := Lookup(name)
		if !ok {
			res.Failed[name] = fmt.Errorf("register %s: %w", name, recommend.ErrUnknownCountry)
			continue
		}

		var err error
		if dir == "" {
			_, err = reg.RegisterFS(b, catalog.Embedded(), catalog.FileName(name))
		} else {
			_, err = reg.Register(b, filepath.Join(dir, catalog.FileName(name)))
		}
		if err != nil {
			res.Failed[name] = err
			continue
		}
		res.Registered = append(res.Registered, name)
	}
	return res
}
