package lca

import (
	"fmt"
	"math"
)

// TimelineOptions parameterizes GenerateMonthlyTimeline.
type TimelineOptions struct {
	// GridIntensity is the starting grid intensity in kg CO2/kWh.
	GridIntensity float64

	// DailyKm is the distance driven per day.
	DailyKm float64

	// Months is the horizon; zero selects DefaultTimelineMonths.
	Months int

	// GridImprovementRate is the annual fractional decline of grid intensity.
	// Zero keeps the grid static.
	GridImprovementRate float64

	// Pattern adjusts the per-km rate as in CalculateLifecycleEmissions.
	Pattern UsagePattern
}

// GenerateMonthlyTimeline returns cumulative emissions for months 0 through
// the horizon inclusive.
//
// The series starts at the manufacturing debt. After each month is recorded,
// the month's driving is added at an effective grid intensity of
// GridIntensity * (1 - GridImprovementRate * m/12), floored at
// MinGridIntensity, so grid-charged vehicles improve over time while
// combustion vehicles do not. Disposal emissions land once, on the final point.
func GenerateMonthlyTimeline(vehicle VehicleProfile, opts TimelineOptions) ([]TimelinePoint, error) {
	if err := requirePositive("daily km", opts.DailyKm); err != nil {
		return nil, err
	}
	if err := requirePositive("grid intensity", opts.GridIntensity); err != nil {
		return nil, err
	}
	if err := requireNonNegative("grid improvement rate", opts.GridImprovementRate); err != nil {
		return nil, err
	}
	if opts.Months < 0 {
		return nil, fmt.Errorf("%w: months must be non-negative, got %d", ErrInvalidInput, opts.Months)
	}

	multiplier, err := opts.Pattern.Multiplier()
	if err != nil {
		return nil, err
	}

	months := opts.Months
	if months == 0 {
		months = DefaultTimelineMonths
	}

	monthlyKm := opts.DailyKm * AvgDaysPerMonth
	disposal := DisposalEmissions(vehicle)
	cumulative := ManufacturingEmissions(vehicle)

	timeline := make([]TimelinePoint, 0, months+1)
	for m := 0; m <= months; m++ {
		if m == months {
			cumulative += disposal
		}

		timeline = append(timeline, TimelinePoint{
			Month:        m,
			Year:         roundTo(float64(m)/MonthsPerYear, yearDecimals),
			CumulativeKg: roundInt(cumulative),
			Label:        fmt.Sprintf("%dy %dm", m/MonthsPerYear, m%MonthsPerYear),
		})

		if m == months {
			break
		}

		grid := EffectiveGridIntensity(opts.GridIntensity, opts.GridImprovementRate, m)
		perKm, perKmErr := OperationalEmissionPerKm(vehicle, grid)
		if perKmErr != nil {
			return nil, perKmErr
		}
		cumulative += perKm * multiplier * monthlyKm
	}

	return timeline, nil
}

// EffectiveGridIntensity returns the grid intensity in month m under an
// annual improvement rate, never below MinGridIntensity.
func EffectiveGridIntensity(initial, annualRate float64, month int) float64 {
	current := initial * (1 - annualRate*(float64(month)/MonthsPerYear))
	return math.Max(current, MinGridIntensity)
}
