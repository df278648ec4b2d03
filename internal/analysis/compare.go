package analysis

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/rshade/carbonwise/internal/catalog"
	"github.com/rshade/carbonwise/internal/lca"
)

// Comparison bounds on the number of requested vehicles.
const (
	MinCompareVehicles = 2
	MaxCompareVehicles = 4
)

// CompareRequest asks for a side-by-side comparison of catalog vehicles.
type CompareRequest struct {
	VehicleIDs []string `json:"vehicle_ids"`
	Usage
}

// VehicleEvaluation is one vehicle's lifecycle report within a comparison.
type VehicleEvaluation struct {
	Vehicle        catalog.Vehicle     `json:"vehicle"`
	Emissions      lca.EmissionsResult `json:"emissions"`
	Timeline       []lca.TimelinePoint `json:"timeline"`
	GreenwashFlags []lca.GreenwashFlag `json:"greenwash_flags"`
}

// BreakevenPair is the break-even of an electric vehicle against a
// combustion vehicle from the same comparison.
type BreakevenPair struct {
	EVID   string              `json:"ev_id"`
	EV     string              `json:"ev"`
	ICEID  string              `json:"ice_id"`
	ICE    string              `json:"ice"`
	Result lca.BreakevenResult `json:"result"`
}

// CompareResponse ranks vehicles by lifecycle total, lowest first.
type CompareResponse struct {
	Grid         GridContext         `json:"grid"`
	DailyKm      float64             `json:"daily_km"`
	Years        float64             `json:"years"`
	UsagePattern lca.UsagePattern    `json:"usage_pattern"`
	Results      []VehicleEvaluation `json:"results"`
	Breakeven    []BreakevenPair     `json:"breakeven"`
	Skipped      []Skipped           `json:"skipped,omitempty"`
}

// Compare evaluates two to four vehicles under the same usage. Unknown or
// unevaluable vehicles are reported in Skipped rather than failing the
// request.
func (s *Service) Compare(ctx context.Context, req CompareRequest) (*CompareResponse, error) {
	logger := operationLogger(ctx, "Compare")

	if n := len(req.VehicleIDs); n < MinCompareVehicles || n > MaxCompareVehicles {
		return nil, fmt.Errorf("%w: compare needs %d to %d vehicles, got %d",
			ErrInvalidRequest, MinCompareVehicles, MaxCompareVehicles, n)
	}
	usage, err := s.resolveUsage(logger, req.Usage)
	if err != nil {
		return nil, err
	}

	vehicles, skipped := s.lookupVehicles(logger, req.VehicleIDs)
	months := max(int(math.Round(usage.years*lca.MonthsPerYear)), 1)

	results := make([]VehicleEvaluation, 0, len(vehicles))
	for _, v := range vehicles {
		eval, err := s.evaluate(v, usage, months)
		if err != nil {
			logger.Warn().Err(err).Str("vehicle_id", v.ID).Msg("skipping vehicle that cannot be evaluated")
			skipped = append(skipped, Skipped{VehicleID: v.ID, Reason: err.Error()})
			continue
		}
		results = append(results, eval)
	}

	slices.SortStableFunc(results, func(a, b VehicleEvaluation) int {
		return cmp.Compare(a.Emissions.TotalKg, b.Emissions.TotalKg)
	})

	resp := &CompareResponse{
		Grid:         usage.grid,
		DailyKm:      usage.dailyKm,
		Years:        usage.years,
		UsagePattern: usage.pattern,
		Results:      results,
		Breakeven:    breakevenMatrix(results),
		Skipped:      skipped,
	}

	logger.Debug().
		Int("requested", len(req.VehicleIDs)).
		Int("evaluated", len(results)).
		Int("breakeven_pairs", len(resp.Breakeven)).
		Msg("comparison complete")

	return resp, nil
}

func (s *Service) evaluate(v catalog.Vehicle, usage resolvedUsage, months int) (VehicleEvaluation, error) {
	emissions, err := lca.CalculateLifecycleEmissions(v.Profile(), usage.profile())
	if err != nil {
		return VehicleEvaluation{}, err
	}
	timeline, err := lca.GenerateMonthlyTimeline(v.Profile(), lca.TimelineOptions{
		GridIntensity: usage.grid.Intensity,
		DailyKm:       usage.dailyKm,
		Months:        months,
		Pattern:       usage.pattern,
	})
	if err != nil {
		return VehicleEvaluation{}, err
	}
	return VehicleEvaluation{
		Vehicle:        v,
		Emissions:      emissions,
		Timeline:       timeline,
		GreenwashFlags: lca.DetectGreenwashFlags(v.Profile(), usage.grid.Intensity),
	}, nil
}

// breakevenMatrix pairs every electric vehicle with every petrol, diesel and
// CNG vehicle, in result order.
func breakevenMatrix(results []VehicleEvaluation) []BreakevenPair {
	pairs := []BreakevenPair{}
	for _, ev := range results {
		if ev.Vehicle.FuelType != lca.FuelElectric {
			continue
		}
		for _, ice := range results {
			if !isBreakevenBaseline(ice.Vehicle.FuelType) {
				continue
			}
			pairs = append(pairs, BreakevenPair{
				EVID:  ev.Vehicle.ID,
				EV:    ev.Vehicle.Name(),
				ICEID: ice.Vehicle.ID,
				ICE:   ice.Vehicle.Name(),
				Result: lca.CalculateBreakeven(
					lca.Subject{Vehicle: ev.Vehicle.Profile(), Result: ev.Emissions},
					lca.Subject{Vehicle: ice.Vehicle.Profile(), Result: ice.Emissions},
				),
			})
		}
	}
	return pairs
}

func isBreakevenBaseline(f lca.FuelType) bool {
	switch f {
	case lca.FuelPetrol, lca.FuelDiesel, lca.FuelCNG:
		return true
	case lca.FuelElectric, lca.FuelHybrid:
		return false
	default:
		return false
	}
}
