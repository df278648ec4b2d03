package analysis

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/rshade/carbonwise/internal/batch"
	"github.com/rshade/carbonwise/internal/catalog"
	"github.com/rshade/carbonwise/internal/lca"
)

// MaxRecommendations is the number of vehicles a recommendation returns.
const MaxRecommendations = 3

// FuelPreferenceAny disables the fuel type filter.
const FuelPreferenceAny = "ANY"

// recommendationLabels are assigned by rank.
//
//nolint:gochecknoglobals // Fixed lookup table.
var recommendationLabels = [MaxRecommendations]string{
	"Best Carbon Choice",
	"Greener Alternative",
	"Premium Carbon-Efficient Pick",
}

// RecommendRequest asks for the lowest-footprint vehicles matching a budget
// and preferences.
type RecommendRequest struct {
	Usage

	// MinBudget and MaxBudget bound the price in lakh rupees; zero is open.
	MinBudget float64 `json:"min_budget,omitempty"`
	MaxBudget float64 `json:"max_budget,omitempty"`

	// FuelPreference is a fuel type name or "ANY"; empty means any.
	FuelPreference string `json:"fuel_preference,omitempty"`
	MinSeating     int    `json:"min_seating,omitempty"`
}

// Recommendation is one ranked pick.
type Recommendation struct {
	Rank           int                 `json:"rank"`
	Label          string              `json:"label"`
	Explanation    string              `json:"explanation"`
	Vehicle        catalog.Vehicle     `json:"vehicle"`
	Emissions      lca.EmissionsResult `json:"emissions"`
	TCO            lca.TCOResult       `json:"tco"`
	GreenwashFlags []lca.GreenwashFlag `json:"greenwash_flags"`
}

// RecommendResponse holds up to MaxRecommendations picks.
type RecommendResponse struct {
	Grid              GridContext      `json:"grid"`
	DailyKm           float64          `json:"daily_km"`
	Years             float64          `json:"years"`
	UsagePattern      lca.UsagePattern `json:"usage_pattern"`
	TotalEvaluated    int              `json:"total_evaluated"`
	AvgBudgetCarbonKg int64            `json:"avg_budget_carbon_kg"`
	Recommendations   []Recommendation `json:"recommendations"`
	Skipped           []Skipped        `json:"skipped,omitempty"`
}

// scored is one candidate after evaluation. err is set when the engine
// rejected the vehicle.
type scored struct {
	vehicle   catalog.Vehicle
	emissions lca.EmissionsResult
	tco       lca.TCOResult
	err       error
}

// Recommend filters the catalog, scores every candidate and returns a
// diversified top three by lifecycle total.
func (s *Service) Recommend(ctx context.Context, req RecommendRequest) (*RecommendResponse, error) {
	logger := operationLogger(ctx, "Recommend")

	usage, err := s.resolveUsage(logger, req.Usage)
	if err != nil {
		return nil, err
	}
	filter, err := recommendFilter(req)
	if err != nil {
		return nil, err
	}

	candidates := s.catalog.Vehicles(filter)
	logger.Debug().Int("candidates", len(candidates)).Msg("catalog filtered")

	results, err := batch.Map(ctx, s.newProcessor(), candidates, s.concurrency,
		func(_ context.Context, v catalog.Vehicle) (scored, error) {
			return s.score(v, usage), nil
		})
	if err != nil {
		return nil, fmt.Errorf("scoring candidates: %w", err)
	}

	ranked := make([]scored, 0, len(results))
	var skipped []Skipped
	for _, r := range results {
		if r.err != nil {
			logger.Warn().Err(r.err).Str("vehicle_id", r.vehicle.ID).Msg("skipping vehicle that cannot be evaluated")
			skipped = append(skipped, Skipped{VehicleID: r.vehicle.ID, Reason: r.err.Error()})
			continue
		}
		ranked = append(ranked, r)
	}
	slices.SortStableFunc(ranked, func(a, b scored) int {
		return cmp.Compare(a.emissions.TotalKg, b.emissions.TotalKg)
	})

	picks := selectDiverse(ranked, MaxRecommendations)
	recommendations := make([]Recommendation, 0, len(picks))
	for i, p := range picks {
		recommendations = append(recommendations, Recommendation{
			Rank:           i + 1,
			Label:          recommendationLabels[i],
			Explanation:    explain(p, i, usage),
			Vehicle:        p.vehicle,
			Emissions:      p.emissions,
			TCO:            p.tco,
			GreenwashFlags: lca.DetectGreenwashFlags(p.vehicle.Profile(), usage.grid.Intensity),
		})
	}

	logger.Debug().
		Int("evaluated", len(candidates)).
		Int("ranked", len(ranked)).
		Int("recommended", len(recommendations)).
		Msg("recommendation complete")

	return &RecommendResponse{
		Grid:              usage.grid,
		DailyKm:           usage.dailyKm,
		Years:             usage.years,
		UsagePattern:      usage.pattern,
		TotalEvaluated:    len(candidates),
		AvgBudgetCarbonKg: averageTotal(ranked),
		Recommendations:   recommendations,
		Skipped:           skipped,
	}, nil
}

func recommendFilter(req RecommendRequest) (catalog.Filter, error) {
	if req.MinBudget < 0 || req.MaxBudget < 0 || req.MinSeating < 0 {
		return catalog.Filter{}, fmt.Errorf("%w: budget and seating must not be negative", ErrInvalidRequest)
	}
	if req.MaxBudget > 0 && req.MinBudget > req.MaxBudget {
		return catalog.Filter{}, fmt.Errorf("%w: min budget %g exceeds max budget %g",
			ErrInvalidRequest, req.MinBudget, req.MaxBudget)
	}

	filter := catalog.Filter{
		MinPrice:   req.MinBudget,
		MaxPrice:   req.MaxBudget,
		MinSeating: req.MinSeating,
	}
	pref := strings.TrimSpace(req.FuelPreference)
	if pref != "" && !strings.EqualFold(pref, FuelPreferenceAny) {
		fuel, err := lca.ParseFuelType(pref)
		if err != nil {
			return catalog.Filter{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		filter.FuelType = fuel
	}
	return filter, nil
}

func (s *Service) score(v catalog.Vehicle, usage resolvedUsage) scored {
	out := scored{vehicle: v}

	emissions, err := lca.CalculateLifecycleEmissions(v.Profile(), usage.profile())
	if err != nil {
		out.err = err
		return out
	}
	fuel, electricity := s.energyPrices(v, usage.grid.State)
	tco, err := lca.CalculateTCO(v.Profile(), lca.TCOInput{
		DailyKm:          usage.dailyKm,
		Years:            usage.years,
		FuelPrice:        fuel,
		ElectricityPrice: electricity,
	})
	if err != nil {
		out.err = err
		return out
	}

	out.emissions = emissions
	out.tco = tco
	return out
}

func averageTotal(ranked []scored) int64 {
	if len(ranked) == 0 {
		return 0
	}
	var sum int64
	for _, r := range ranked {
		sum += r.emissions.TotalKg
	}
	return int64(math.Round(float64(sum) / float64(len(ranked))))
}
