package analysis

import (
	"context"
	"fmt"

	"github.com/rshade/carbonwise/internal/catalog"
	"github.com/rshade/carbonwise/internal/lca"
)

// TimelinesRequest asks for monthly cumulative emissions of several vehicles.
// Months and GridImprovementRate take the service defaults when zero.
type TimelinesRequest struct {
	VehicleIDs          []string `json:"vehicle_ids"`
	State               string   `json:"state,omitempty"`
	DailyKm             float64  `json:"daily_km,omitempty"`
	UsagePattern        string   `json:"usage_pattern,omitempty"`
	GridIntensity       float64  `json:"grid_intensity,omitempty"`
	Months              int      `json:"months,omitempty"`
	GridImprovementRate float64  `json:"grid_improvement_rate,omitempty"`
}

// VehicleTimeline is one vehicle's accumulation curve.
type VehicleTimeline struct {
	Vehicle  catalog.Vehicle     `json:"vehicle"`
	Timeline []lca.TimelinePoint `json:"timeline"`
}

// Crossover is the first month an electric vehicle's cumulative emissions
// are at or below a combustion vehicle's. Month is nil when the curves never
// cross within the horizon.
type Crossover struct {
	EVID  string `json:"ev_id"`
	ICEID string `json:"ice_id"`
	Month *int   `json:"month"`
}

// TimelinesResponse holds the curves in request order.
type TimelinesResponse struct {
	Grid                GridContext       `json:"grid"`
	DailyKm             float64           `json:"daily_km"`
	Months              int               `json:"months"`
	GridImprovementRate float64           `json:"grid_improvement_rate"`
	Timelines           []VehicleTimeline `json:"timelines"`
	Crossovers          []Crossover       `json:"crossovers"`
	Skipped             []Skipped         `json:"skipped,omitempty"`
}

// Timelines generates accumulation curves and their EV crossovers.
func (s *Service) Timelines(ctx context.Context, req TimelinesRequest) (*TimelinesResponse, error) {
	logger := operationLogger(ctx, "Timelines")

	if len(req.VehicleIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one vehicle is required", ErrInvalidRequest)
	}
	if req.Months < 0 || req.GridImprovementRate < 0 {
		return nil, fmt.Errorf("%w: months and grid improvement rate must not be negative", ErrInvalidRequest)
	}
	usage, err := s.resolveUsage(logger, Usage{
		State:         req.State,
		DailyKm:       req.DailyKm,
		UsagePattern:  req.UsagePattern,
		GridIntensity: req.GridIntensity,
	})
	if err != nil {
		return nil, err
	}

	months := req.Months
	if months == 0 {
		months = s.defaults.TimelineMonths
	}
	rate := orDefault(req.GridImprovementRate, s.defaults.GridImprovementRate)

	vehicles, skipped := s.lookupVehicles(logger, req.VehicleIDs)
	timelines := make([]VehicleTimeline, 0, len(vehicles))
	for _, v := range vehicles {
		points, err := lca.GenerateMonthlyTimeline(v.Profile(), lca.TimelineOptions{
			GridIntensity:       usage.grid.Intensity,
			DailyKm:             usage.dailyKm,
			Months:              months,
			GridImprovementRate: rate,
			Pattern:             usage.pattern,
		})
		if err != nil {
			logger.Warn().Err(err).Str("vehicle_id", v.ID).Msg("skipping vehicle that cannot be evaluated")
			skipped = append(skipped, Skipped{VehicleID: v.ID, Reason: err.Error()})
			continue
		}
		timelines = append(timelines, VehicleTimeline{Vehicle: v, Timeline: points})
	}

	logger.Debug().Int("timelines", len(timelines)).Int("months", months).Msg("timelines generated")

	return &TimelinesResponse{
		Grid:                usage.grid,
		DailyKm:             usage.dailyKm,
		Months:              months,
		GridImprovementRate: rate,
		Timelines:           timelines,
		Crossovers:          crossovers(timelines),
		Skipped:             skipped,
	}, nil
}

func crossovers(timelines []VehicleTimeline) []Crossover {
	out := []Crossover{}
	for _, ev := range timelines {
		if ev.Vehicle.FuelType != lca.FuelElectric {
			continue
		}
		for _, ice := range timelines {
			if !isBreakevenBaseline(ice.Vehicle.FuelType) {
				continue
			}
			out = append(out, Crossover{
				EVID:  ev.Vehicle.ID,
				ICEID: ice.Vehicle.ID,
				Month: firstCrossing(ev.Timeline, ice.Timeline),
			})
		}
	}
	return out
}

// firstCrossing returns the first month at which a is at or below b.
func firstCrossing(a, b []lca.TimelinePoint) *int {
	for i := range min(len(a), len(b)) {
		if a[i].CumulativeKg <= b[i].CumulativeKg {
			month := a[i].Month
			return &month
		}
	}
	return nil
}
