// Package catalog holds the vehicle, grid intensity and fuel price data the
// analysis layer feeds to the engine.
//
// A catalog is read once from YAML (the embedded seed or a user file) and is
// immutable afterwards, so a *Catalog is safe for concurrent use.
package catalog

import (
	"cmp"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// SupportedSchema is the range of catalog schema_version values this build
// reads.
const SupportedSchema = ">= 1.0.0, < 2.0.0"

//go:embed data/catalog.yaml
var seedCatalog []byte

// file is the on-disk layout.
type file struct {
	SchemaVersion string      `yaml:"schema_version"`
	Vehicles      []Vehicle   `yaml:"vehicles"`
	GridIntensity []GridState `yaml:"grid_intensity"`
	FuelPrices    []FuelPrice `yaml:"fuel_prices"`
}

// Catalog is an indexed, read-only view of catalog data.
type Catalog struct {
	version  *semver.Version
	source   string
	digest   string
	vehicles []Vehicle
	byID     map[string]int
	states   []GridState
	byState  map[string]int
	prices   map[priceKey]float64
}

type priceKey struct {
	fuel  string
	state string
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(seedCatalog, "embedded")
}

// Load reads a catalog file from path. An empty path returns Default.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes and indexes catalog YAML. source names the data in errors.
func Parse(data []byte, source string) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrInvalidCatalog, source, err)
	}

	version, err := checkSchema(f.SchemaVersion)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	sum := sha256.Sum256(data)
	c := &Catalog{
		version: version,
		source:  source,
		digest:  hex.EncodeToString(sum[:]),
		byID:    make(map[string]int, len(f.Vehicles)),
		byState: make(map[string]int, len(f.GridIntensity)),
		prices:  make(map[priceKey]float64, len(f.FuelPrices)),
	}

	if err = c.indexVehicles(f.Vehicles); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	if err = c.indexStates(f.GridIntensity); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	for _, p := range f.FuelPrices {
		if p.PricePerUnit < 0 {
			return nil, fmt.Errorf("%s: %w: negative %s price in %s", source, ErrInvalidCatalog, p.FuelType, p.State)
		}
		c.prices[priceKey{fuel: strings.ToUpper(p.FuelType), state: normalizeState(p.State)}] = p.PricePerUnit
	}

	return c, nil
}

func checkSchema(raw string) (*semver.Version, error) {
	if raw == "" {
		return nil, fmt.Errorf("%w: schema_version is missing", ErrUnsupportedSchema)
	}
	version, err := semver.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: schema_version %q: %w", ErrUnsupportedSchema, raw, err)
	}
	constraint, err := semver.NewConstraint(SupportedSchema)
	if err != nil {
		return nil, err
	}
	if !constraint.Check(version) {
		return nil, fmt.Errorf("%w: schema_version %s does not satisfy %s", ErrUnsupportedSchema, version, SupportedSchema)
	}
	return version, nil
}

func (c *Catalog) indexVehicles(vehicles []Vehicle) error {
	c.vehicles = make([]Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v.ID == "" {
			return fmt.Errorf("%w: vehicle %q has no id", ErrInvalidCatalog, v.Name())
		}
		if !v.FuelType.Valid() {
			return fmt.Errorf("%w: vehicle %s has no fuel_type", ErrInvalidCatalog, v.ID)
		}
		if _, dup := c.byID[v.ID]; dup {
			return fmt.Errorf("%w: duplicate vehicle id %s", ErrInvalidCatalog, v.ID)
		}
		v.EfficiencyUnit = v.FuelType.EfficiencyUnit()
		c.byID[v.ID] = len(c.vehicles)
		c.vehicles = append(c.vehicles, v)
	}

	slices.SortStableFunc(c.vehicles, compareVehicles)
	for i, v := range c.vehicles {
		c.byID[v.ID] = i
	}
	return nil
}

func compareVehicles(a, b Vehicle) int {
	return cmp.Or(
		cmp.Compare(a.Make, b.Make),
		cmp.Compare(a.Model, b.Model),
		cmp.Compare(a.Variant, b.Variant),
	)
}

func (c *Catalog) indexStates(states []GridState) error {
	c.states = make([]GridState, 0, len(states))
	for _, s := range states {
		key := normalizeState(s.State)
		if key == "" {
			return fmt.Errorf("%w: grid record without state", ErrInvalidCatalog)
		}
		if s.IntensityKgPerKWh <= 0 {
			return fmt.Errorf("%w: state %s has non-positive intensity", ErrInvalidCatalog, s.State)
		}
		if _, dup := c.byState[key]; dup {
			return fmt.Errorf("%w: duplicate state %s", ErrInvalidCatalog, s.State)
		}
		c.byState[key] = 0
		c.states = append(c.states, s)
	}

	slices.SortStableFunc(c.states, func(a, b GridState) int {
		return cmp.Compare(a.IntensityKgPerKWh, b.IntensityKgPerKWh)
	})
	for i, s := range c.states {
		c.byState[normalizeState(s.State)] = i
	}
	return nil
}

func normalizeState(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SchemaVersion returns the catalog's schema version.
func (c *Catalog) SchemaVersion() string {
	return c.version.String()
}

// Source returns the file path the catalog came from, or "embedded".
func (c *Catalog) Source() string {
	return c.source
}

// Digest is the hex SHA-256 of the catalog bytes.
func (c *Catalog) Digest() string {
	return c.digest
}

// Len returns the number of vehicles.
func (c *Catalog) Len() int {
	return len(c.vehicles)
}

// Vehicle returns the vehicle with the given ID.
func (c *Catalog) Vehicle(id string) (Vehicle, error) {
	i, ok := c.byID[id]
	if !ok {
		return Vehicle{}, fmt.Errorf("%w: %s", ErrVehicleNotFound, id)
	}
	return c.vehicles[i], nil
}

// Makes returns the distinct makes in alphabetical order.
func (c *Catalog) Makes() []string {
	makes := make([]string, 0, len(c.vehicles))
	for _, v := range c.vehicles {
		if len(makes) == 0 || makes[len(makes)-1] != v.Make {
			makes = append(makes, v.Make)
		}
	}
	return makes
}

// States returns every state ordered by intensity, cleanest first.
func (c *Catalog) States() []GridState {
	return slices.Clone(c.states)
}

// State returns one state's grid record. Names match case-insensitively.
func (c *Catalog) State(name string) (GridState, error) {
	i, ok := c.byState[normalizeState(name)]
	if !ok {
		return GridState{}, fmt.Errorf("%w: %s", ErrStateNotFound, name)
	}
	return c.states[i], nil
}

// GridIntensity returns the intensity for state and whether it is known.
func (c *Catalog) GridIntensity(state string) (float64, bool) {
	s, err := c.State(state)
	if err != nil {
		return 0, false
	}
	return s.IntensityKgPerKWh, true
}

// FuelPrice returns the price of key (see PriceKey) in state and whether it
// is known.
func (c *Catalog) FuelPrice(key, state string) (float64, bool) {
	p, ok := c.prices[priceKey{fuel: strings.ToUpper(key), state: normalizeState(state)}]
	return p, ok
}
