package analysis

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/rshade/carbonwise/internal/batch"
	"github.com/rshade/carbonwise/internal/catalog"
	"github.com/rshade/carbonwise/internal/lca"
)

// MaxFleetAlternatives caps the lower-carbon swaps suggested for a fleet.
const MaxFleetAlternatives = 3

// FleetEntry is one line of a fleet file: Count identical vehicles each
// driving DailyKm. Empty State and zero DailyKm take the request defaults.
type FleetEntry struct {
	VehicleID string  `json:"vehicle_id" yaml:"vehicle_id"`
	Count     int     `json:"count" yaml:"count"`
	DailyKm   float64 `json:"daily_km,omitempty" yaml:"daily_km,omitempty"`
	State     string  `json:"state,omitempty" yaml:"state,omitempty"`
}

// FleetRequest asks for the aggregate footprint of a fleet.
type FleetRequest struct {
	Entries []FleetEntry `json:"entries"`
	Usage
}

// FleetEntryResult is the footprint of one fleet line.
type FleetEntryResult struct {
	Entry      FleetEntry          `json:"entry"`
	Vehicle    string              `json:"vehicle"`
	FuelType   lca.FuelType        `json:"fuel_type"`
	Grid       GridContext         `json:"grid"`
	PerVehicle lca.EmissionsResult `json:"per_vehicle"`
	TotalKg    int64               `json:"total_kg"`
}

// FuelTotal aggregates fleet lines sharing a fuel type.
type FuelTotal struct {
	FuelType lca.FuelType `json:"fuel_type"`
	Vehicles int          `json:"vehicles"`
	TotalKg  int64        `json:"total_kg"`
}

// FleetAlternative suggests replacing a fleet line with the lowest-footprint
// catalog vehicle of the same body type under the same usage.
type FleetAlternative struct {
	VehicleID     string `json:"vehicle_id"`
	AlternativeID string `json:"alternative_id"`
	Alternative   string `json:"alternative"`
	SavingsKg     int64  `json:"savings_kg"`
}

// FleetResponse aggregates a fleet.
type FleetResponse struct {
	Years           float64            `json:"years"`
	Vehicles        int                `json:"vehicles"`
	TotalKg         int64              `json:"total_kg"`
	AvgPerVehicleKg int64              `json:"avg_per_vehicle_kg"`
	ByFuel          []FuelTotal        `json:"by_fuel"`
	Entries         []FleetEntryResult `json:"entries"`
	Alternatives    []FleetAlternative `json:"alternatives"`
	Skipped         []Skipped          `json:"skipped,omitempty"`
}

// fleetScore is the outcome of one fleet line.
type fleetScore struct {
	result      FleetEntryResult
	alternative *FleetAlternative
	err         error
}

// Fleet evaluates every entry in batches and aggregates totals by fuel type.
// Entries that name unknown vehicles or cannot be evaluated are skipped.
func (s *Service) Fleet(ctx context.Context, req FleetRequest) (*FleetResponse, error) {
	logger := operationLogger(ctx, "Fleet")

	if len(req.Entries) == 0 {
		return nil, fmt.Errorf("%w: fleet has no entries", ErrInvalidRequest)
	}
	for i, e := range req.Entries {
		if e.Count <= 0 {
			return nil, fmt.Errorf("%w: entry %d (%s): count must be positive", ErrInvalidRequest, i+1, e.VehicleID)
		}
		if e.DailyKm < 0 {
			return nil, fmt.Errorf("%w: entry %d (%s): daily km must not be negative", ErrInvalidRequest, i+1, e.VehicleID)
		}
	}
	base, err := s.resolveUsage(logger, req.Usage)
	if err != nil {
		return nil, err
	}

	processor, err := batch.NewProcessor[FleetEntry](s.batchSize)
	if err != nil {
		processor = batch.NewProcessorWithDefaults[FleetEntry]()
	}
	processor.WithProgressCallback(func(p batch.ProgressSnapshot) {
		logger.Debug().
			Int("processed", p.ProcessedItems).
			Int("total", p.TotalItems).
			Float64("percent", p.PercentComplete).
			Msg("fleet progress")
	})

	candidates := s.catalog.Vehicles(catalog.Filter{})
	scores, err := batch.Map(ctx, processor, req.Entries, s.concurrency,
		func(_ context.Context, e FleetEntry) (fleetScore, error) {
			usage := base
			usage.dailyKm = orDefault(e.DailyKm, base.dailyKm)
			if e.State != "" {
				usage.grid = s.resolveGrid(logger, e.State, req.GridIntensity)
			}
			return s.scoreFleetEntry(e, usage, candidates), nil
		})
	if err != nil {
		return nil, fmt.Errorf("scoring fleet: %w", err)
	}

	resp := &FleetResponse{Years: base.years, ByFuel: []FuelTotal{}, Entries: []FleetEntryResult{}, Alternatives: []FleetAlternative{}}
	byFuel := make(map[lca.FuelType]*FuelTotal)
	for i, sc := range scores {
		if sc.err != nil {
			id := req.Entries[i].VehicleID
			logger.Warn().Err(sc.err).Str("vehicle_id", id).Msg("skipping fleet entry")
			resp.Skipped = append(resp.Skipped, Skipped{VehicleID: id, Reason: sc.err.Error()})
			continue
		}
		r := sc.result
		resp.Entries = append(resp.Entries, r)
		resp.Vehicles += r.Entry.Count
		resp.TotalKg += r.TotalKg

		ft, ok := byFuel[r.FuelType]
		if !ok {
			ft = &FuelTotal{FuelType: r.FuelType}
			byFuel[r.FuelType] = ft
		}
		ft.Vehicles += r.Entry.Count
		ft.TotalKg += r.TotalKg

		if sc.alternative != nil {
			resp.Alternatives = append(resp.Alternatives, *sc.alternative)
		}
	}

	for _, f := range lca.FuelTypes() {
		if ft, ok := byFuel[f]; ok {
			resp.ByFuel = append(resp.ByFuel, *ft)
		}
	}
	if resp.Vehicles > 0 {
		resp.AvgPerVehicleKg = int64(math.Round(float64(resp.TotalKg) / float64(resp.Vehicles)))
	}
	slices.SortStableFunc(resp.Alternatives, func(a, b FleetAlternative) int {
		return cmp.Compare(b.SavingsKg, a.SavingsKg)
	})
	if len(resp.Alternatives) > MaxFleetAlternatives {
		resp.Alternatives = resp.Alternatives[:MaxFleetAlternatives]
	}

	logger.Debug().
		Int("entries", len(resp.Entries)).
		Int("vehicles", resp.Vehicles).
		Int64("total_kg", resp.TotalKg).
		Msg("fleet analysis complete")

	return resp, nil
}

func (s *Service) scoreFleetEntry(e FleetEntry, usage resolvedUsage, candidates []catalog.Vehicle) fleetScore {
	v, err := s.catalog.Vehicle(e.VehicleID)
	if err != nil {
		return fleetScore{err: err}
	}
	emissions, err := lca.CalculateLifecycleEmissions(v.Profile(), usage.profile())
	if err != nil {
		return fleetScore{err: err}
	}

	sc := fleetScore{result: FleetEntryResult{
		Entry:      e,
		Vehicle:    v.Name(),
		FuelType:   v.FuelType,
		Grid:       usage.grid,
		PerVehicle: emissions,
		TotalKg:    emissions.TotalKg * int64(e.Count),
	}}

	best, bestTotal := lowestOfBodyType(v, usage, candidates)
	if best != nil && bestTotal < emissions.TotalKg {
		sc.alternative = &FleetAlternative{
			VehicleID:     v.ID,
			AlternativeID: best.ID,
			Alternative:   best.Name(),
			SavingsKg:     (emissions.TotalKg - bestTotal) * int64(e.Count),
		}
	}
	return sc
}

// lowestOfBodyType finds the catalog vehicle sharing v's body type with the
// lowest lifecycle total under usage.
func lowestOfBodyType(v catalog.Vehicle, usage resolvedUsage, candidates []catalog.Vehicle) (*catalog.Vehicle, int64) {
	if v.BodyType == "" {
		return nil, 0
	}
	filter := catalog.Filter{BodyType: v.BodyType}

	var best *catalog.Vehicle
	var bestTotal int64
	for i := range candidates {
		c := candidates[i]
		if c.ID == v.ID || !filter.Matches(c) {
			continue
		}
		r, err := lca.CalculateLifecycleEmissions(c.Profile(), usage.profile())
		if err != nil {
			continue
		}
		if best == nil || r.TotalKg < bestTotal {
			best = &candidates[i]
			bestTotal = r.TotalKg
		}
	}
	return best, bestTotal
}
