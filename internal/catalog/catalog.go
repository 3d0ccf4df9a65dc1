// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/citescape/internal/validation"
)

var (
	// ErrCatalogMissing is returned when the catalog document does not exist.
	ErrCatalogMissing = errors.New("catalog missing")

	// ErrCatalogMalformed is returned when the document is structurally invalid.
	ErrCatalogMalformed = errors.New("catalog malformed")
)

//go:embed data/*.json
var seedFS embed.FS

// Embedded returns the seed catalogs compiled into the binary.
// Files are named "<country>.json".
func Embedded() fs.FS {
	sub, err := fs.Sub(seedFS, "data")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}

// FileName returns the conventional catalog file name for a country.
func FileName(country string) string {
	return country + ".json"
}

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// City is one candidate city. Values are never mutated after load.
type City struct {
	// ID is the unique identifier zones and bonus annotations refer to.
	ID string `json:"id" validate:"required,slug"`

	// Name is the display name.
	Name string `json:"name" validate:"required"`

	// Region is the region or state label, depending on the country.
	Region string `json:"region,omitempty"`

	// Population is the resident count; zero when unknown.
	Population int64 `json:"population" validate:"gte=0"`

	// Coordinates is nil when the catalog does not locate the city.
	Coordinates *Coordinates `json:"coordinates,omitempty"`

	// EconomicZone is an optional free-form tag.
	EconomicZone string `json:"economic_zone,omitempty"`

	// Scores maps criterion name to a score in [0,1].
	Scores map[string]float64 `json:"scores" validate:"dive,keys,slug,endkeys,gte=0,lte=1"`
}

// Score returns the city's score for a criterion and whether it is defined.
func (c *City) Score(criterion string) (float64, bool) {
	s, ok := c.Scores[criterion]
	return s, ok
}

// CriterionDefinition documents one scoring dimension.
type CriterionDefinition struct {
	Label       string `json:"label,omitempty"`
	Description string `json:"description,omitempty"`
}

// Metadata carries the catalog's identity.
type Metadata struct {
	Country string `json:"country,omitempty"`
	Version string `json:"version,omitempty"`
	Source  string `json:"source,omitempty"`
}

// Catalog is a loaded, validated country catalog.
type Catalog struct {
	source   string
	metadata Metadata
	defs     map[string]CriterionDefinition
	cities   []City
	index    map[string]int
	criteria []string
}

// document is the wire shape. Scores stay raw so non-numeric values are
// reported as malformed rather than silently decoded.
type document struct {
	Metadata            *Metadata                      `json:"metadata"`
	CriteriaDefinitions map[string]CriterionDefinition `json:"criteria_definitions"`
	Cities              *[]rawCity                     `json:"cities"`
}

type rawCity struct {
	ID           string                     `json:"id"`
	Name         string                     `json:"name"`
	Region       string                     `json:"region"`
	State        string                     `json:"state"`
	Population   json.Number                `json:"population"`
	Coordinates  *Coordinates               `json:"coordinates"`
	EconomicZone string                     `json:"economic_zone"`
	Scores       map[string]json.RawMessage `json:"scores"`
}

// Load reads and validates the catalog at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCatalogMissing, path)
		}
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads and validates the catalog named name within fsys.
func LoadFS(fsys fs.FS, name string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCatalogMissing, name)
		}
		return nil, fmt.Errorf("read catalog %s: %w", name, err)
	}
	return Parse(data, name)
}

// Parse validates a catalog document. source is only used in messages.
func Parse(data []byte, source string) (*Catalog, error) {
	trimmed := strings.TrimSpace(string(data))
	if !strings.HasPrefix(trimmed, "{") {
		return nil, malformed(source, "document is not a JSON object")
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, malformed(source, "decode: %v", err)
	}
	if doc.Cities == nil {
		return nil, malformed(source, "missing \"cities\"")
	}

	cat := &Catalog{
		source: source,
		defs:   doc.CriteriaDefinitions,
		cities: make([]City, 0, len(*doc.Cities)),
		index:  make(map[string]int, len(*doc.Cities)),
	}
	if doc.Metadata != nil {
		cat.metadata = *doc.Metadata
	}
	if cat.defs == nil {
		cat.defs = map[string]CriterionDefinition{}
	}

	criteria := make(map[string]struct{}, len(cat.defs))
	for name := range cat.defs {
		criteria[name] = struct{}{}
	}

	for i, raw := range *doc.Cities {
		city, err := raw.toCity()
		if err != nil {
			return nil, malformed(source, "city %d (%q): %v", i, raw.ID, err)
		}
		if verr := validation.ValidateStruct(&city); verr != nil {
			return nil, malformed(source, "city %d (%q): %v", i, raw.ID, verr)
		}
		if _, dup := cat.index[city.ID]; dup {
			return nil, malformed(source, "duplicate city id %q", city.ID)
		}
		cat.index[city.ID] = len(cat.cities)
		cat.cities = append(cat.cities, city)
		for name := range city.Scores {
			criteria[name] = struct{}{}
		}
	}

	cat.criteria = make([]string, 0, len(criteria))
	for name := range criteria {
		cat.criteria = append(cat.criteria, name)
	}
	sort.Strings(cat.criteria)

	return cat, nil
}

func (r *rawCity) toCity() (City, error) {
	city := City{
		ID:           r.ID,
		Name:         r.Name,
		Region:       r.Region,
		Coordinates:  r.Coordinates,
		EconomicZone: r.EconomicZone,
		Scores:       make(map[string]float64, len(r.Scores)),
	}
	if city.Region == "" {
		city.Region = r.State
	}

	if r.Population != "" {
		pop, err := r.Population.Int64()
		if err != nil {
			f, ferr := r.Population.Float64()
			if ferr != nil {
				return City{}, fmt.Errorf("population %q is not numeric", r.Population)
			}
			pop = int64(f)
		}
		city.Population = pop
	}

	for name, value := range r.Scores {
		var score float64
		if string(value) == "null" {
			return City{}, fmt.Errorf("score %q is null", name)
		}
		if err := json.Unmarshal(value, &score); err != nil {
			return City{}, fmt.Errorf("score %q is not numeric: %s", name, string(value))
		}
		city.Scores[name] = score
	}
	return city, nil
}

func malformed(source, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s: %s", ErrCatalogMalformed, source, fmt.Sprintf(format, args...))
}

// Source returns the path or name the catalog was loaded from.
func (c *Catalog) Source() string {
	return c.source
}

// Country returns the country recorded in the metadata, if any.
func (c *Catalog) Country() string {
	return c.metadata.Country
}

// Version returns the catalog data version, if any.
func (c *Catalog) Version() string {
	return c.metadata.Version
}

// Len returns the number of cities.
func (c *Catalog) Len() int {
	return len(c.cities)
}

// Cities returns the cities in catalog order. The slice is a copy; the
// score maps are shared and must not be modified.
func (c *Catalog) Cities() []City {
	out := make([]City, len(c.cities))
	copy(out, c.cities)
	return out
}

// City looks up a city by id.
func (c *Catalog) City(id string) (City, bool) {
	i, ok := c.index[id]
	if !ok {
		return City{}, false
	}
	return c.cities[i], true
}

// Has reports whether the catalog contains id.
func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Criteria returns the sorted union of scored and defined criteria.
func (c *Catalog) Criteria() []string {
	out := make([]string, len(c.criteria))
	copy(out, c.criteria)
	return out
}

// HasCriterion reports whether any city scores, or the catalog defines, criterion.
func (c *Catalog) HasCriterion(criterion string) bool {
	i := sort.SearchStrings(c.criteria, criterion)
	return i < len(c.criteria) && c.criteria[i] == criterion
}

// Label returns the display label for a criterion, falling back to the
// criterion name with underscores replaced by spaces.
func (c *Catalog) Label(criterion string) string {
	if def, ok := c.defs[criterion]; ok && def.Label != "" {
		return def.Label
	}
	return humanize(criterion)
}

func humanize(criterion string) string {
	s := strings.ReplaceAll(criterion, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
