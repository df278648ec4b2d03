// Package analysis answers carbonwise questions by combining catalog data
// with the lifecycle engine: single-vehicle reports, side-by-side
// comparisons, diversified recommendations, accumulation timelines and fleet
// totals.
//
// The service owns every default the engine refuses to invent (grid
// intensity, daily distance, ownership years, energy prices), resolves state
// names to grid intensities, and logs what it skips.
package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rshade/carbonwise/internal/batch"
	"github.com/rshade/carbonwise/internal/catalog"
	"github.com/rshade/carbonwise/internal/config"
	"github.com/rshade/carbonwise/internal/lca"
	"github.com/rshade/carbonwise/internal/logging"
)

// Grid intensity sources reported in responses.
const (
	GridSourceOverride = "override"
	GridSourceCatalog  = "catalog"
	GridSourceDefault  = "default"
)

// Defaults are substituted for request fields left at their zero value.
type Defaults struct {
	GridIntensity       float64
	FuelPrice           float64
	ElectricityPrice    float64
	DailyKm             float64
	Years               float64
	UsagePattern        lca.UsagePattern
	TimelineMonths      int
	GridImprovementRate float64
}

// DefaultsFromConfig converts the config defaults section.
func DefaultsFromConfig(cfg config.DefaultsConfig) (Defaults, error) {
	pattern, err := lca.ParseUsagePattern(cfg.UsagePattern)
	if err != nil {
		return Defaults{}, err
	}
	return Defaults{
		GridIntensity:       cfg.GridIntensity,
		FuelPrice:           cfg.FuelPrice,
		ElectricityPrice:    cfg.ElectricityPrice,
		DailyKm:             cfg.DailyKm,
		Years:               cfg.Years,
		UsagePattern:        pattern,
		TimelineMonths:      cfg.TimelineMonths,
		GridImprovementRate: cfg.GridImprovementRate,
	}, nil
}

// Service evaluates requests against one catalog. It holds no mutable state
// and is safe for concurrent use.
type Service struct {
	catalog     *catalog.Catalog
	defaults    Defaults
	batchSize   int
	concurrency int
}

// Option configures a Service.
type Option func(*Service)

// WithDefaults replaces the built-in defaults.
func WithDefaults(d Defaults) Option {
	return func(s *Service) { s.defaults = d }
}

// WithBatching sets the batch size and concurrency used to score many
// vehicles. Non-positive values keep the package defaults.
func WithBatching(size, concurrency int) Option {
	return func(s *Service) {
		if size > 0 {
			s.batchSize = size
		}
		if concurrency > 0 {
			s.concurrency = concurrency
		}
	}
}

// NewService creates a service over cat.
func NewService(cat *catalog.Catalog, opts ...Option) *Service {
	s := &Service{
		catalog: cat,
		defaults: Defaults{
			GridIntensity:    config.DefaultGridIntensity,
			FuelPrice:        config.DefaultFuelPrice,
			ElectricityPrice: config.DefaultElectricityPrice,
			DailyKm:          config.DefaultDailyKm,
			Years:            config.DefaultYears,
			TimelineMonths:   config.DefaultTimelineMonths,
		},
		batchSize:   batch.DefaultBatchSize,
		concurrency: batch.DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog returns the catalog the service reads.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Defaults returns the defaults in effect.
func (s *Service) Defaults() Defaults {
	return s.defaults
}

// Usage is the shared driving context of most requests. Zero fields take the
// service defaults; GridIntensity, when positive, overrides the state lookup.
type Usage struct {
	State         string  `json:"state,omitempty"`
	DailyKm       float64 `json:"daily_km,omitempty"`
	Years         float64 `json:"years,omitempty"`
	UsagePattern  string  `json:"usage_pattern,omitempty"`
	GridIntensity float64 `json:"grid_intensity,omitempty"`
}

// GridContext reports which grid intensity a response used and why.
type GridContext struct {
	State        string   `json:"state,omitempty"`
	Intensity    float64  `json:"grid_intensity"`
	RenewablePct *float64 `json:"renewable_pct"`
	Source       string   `json:"grid_source"`
	Category     string   `json:"grid_category"`
}

// resolvedUsage is Usage after defaults are applied.
type resolvedUsage struct {
	grid    GridContext
	dailyKm float64
	years   float64
	pattern lca.UsagePattern
}

func (r resolvedUsage) profile() lca.UsageProfile {
	return lca.UsageProfile{
		DailyKm:       r.dailyKm,
		Years:         r.years,
		Pattern:       r.pattern,
		GridIntensity: r.grid.Intensity,
	}
}

func (s *Service) resolveUsage(logger zerolog.Logger, u Usage) (resolvedUsage, error) {
	pattern := s.defaults.UsagePattern
	if strings.TrimSpace(u.UsagePattern) != "" {
		p, err := lca.ParseUsagePattern(u.UsagePattern)
		if err != nil {
			return resolvedUsage{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		pattern = p
	}

	if u.DailyKm < 0 || u.Years < 0 || u.GridIntensity < 0 {
		return resolvedUsage{}, fmt.Errorf("%w: daily km, years and grid intensity must not be negative", ErrInvalidRequest)
	}

	return resolvedUsage{
		grid:    s.resolveGrid(logger, u.State, u.GridIntensity),
		dailyKm: orDefault(u.DailyKm, s.defaults.DailyKm),
		years:   orDefault(u.Years, s.defaults.Years),
		pattern: pattern,
	}, nil
}

// resolveGrid picks the override, then the catalog entry for state, then the
// default intensity.
func (s *Service) resolveGrid(logger zerolog.Logger, state string, override float64) GridContext {
	grid := GridContext{State: state}

	if st, err := s.catalog.State(state); err == nil && state != "" {
		grid.State = st.State
		grid.Intensity = st.IntensityKgPerKWh
		grid.Source = GridSourceCatalog
		pct := st.RenewablePct
		grid.RenewablePct = &pct
	}

	switch {
	case override > 0:
		grid.Intensity = override
		grid.Source = GridSourceOverride
	case grid.Source == "":
		if state != "" {
			logger.Warn().Str("state", state).Float64("grid_intensity", s.defaults.GridIntensity).
				Msg("unknown state, using default grid intensity")
		}
		grid.Intensity = s.defaults.GridIntensity
		grid.Source = GridSourceDefault
	}

	grid.Category = catalog.BandFor(grid.Intensity).Category
	return grid
}

// energyPrices returns the fuel and electricity prices for a vehicle in state.
func (s *Service) energyPrices(v catalog.Vehicle, state string) (fuel, electricity float64) {
	fuel, ok := s.catalog.FuelPrice(catalog.PriceKey(v.FuelType), state)
	if !ok {
		fuel = s.defaults.FuelPrice
	}
	electricity, ok = s.catalog.FuelPrice(catalog.PriceElectricity, state)
	if !ok {
		electricity = s.defaults.ElectricityPrice
	}
	return fuel, electricity
}

// lookupVehicles resolves ids in order, logging and collecting the ones the
// catalog does not know.
func (s *Service) lookupVehicles(logger zerolog.Logger, ids []string) ([]catalog.Vehicle, []Skipped) {
	vehicles := make([]catalog.Vehicle, 0, len(ids))
	var skipped []Skipped
	for _, id := range ids {
		v, err := s.catalog.Vehicle(id)
		if err != nil {
			logger.Warn().Str("vehicle_id", id).Msg("skipping unknown vehicle")
			skipped = append(skipped, Skipped{VehicleID: id, Reason: err.Error()})
			continue
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, skipped
}

// Skipped names a vehicle left out of a response and why.
type Skipped struct {
	VehicleID string `json:"vehicle_id"`
	Reason    string `json:"reason"`
}

func (s *Service) newProcessor() *batch.Processor[catalog.Vehicle] {
	p, err := batch.NewProcessor[catalog.Vehicle](s.batchSize)
	if err != nil {
		return batch.NewProcessorWithDefaults[catalog.Vehicle]()
	}
	return p
}

func operationLogger(ctx context.Context, operation string) zerolog.Logger {
	return logging.FromContext(ctx).With().
		Str("component", "analysis").
		Str("operation", operation).
		Logger()
}

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}
