package lca

import (
	"fmt"
	"math"
	"strings"
)

// Subject pairs a vehicle with the lifecycle result computed for it.
type Subject struct {
	Vehicle VehicleProfile
	Result  EmissionsResult
}

// CalculateBreakeven finds the distance at which the candidate's cumulative
// emissions drop below the baseline's.
//
// Both cumulative curves are linear in distance once the upfront debt
// (manufacturing plus disposal) is fixed, so the crossover is
// debt / (baseline per-km - candidate per-km). A candidate whose per-km rate
// is not lower than the baseline's never breaks even. A candidate whose
// upfront debt is already lower breaks even immediately, at 0 km.
//
// Distance is converted to time using the candidate result's daily distance,
// or DefaultBreakevenDailyKm when it has none.
func CalculateBreakeven(candidate, baseline Subject) BreakevenResult {
	candidatePerKm := candidate.Result.perKm()
	baselinePerKm := baseline.Result.perKm()

	if candidatePerKm >= baselinePerKm {
		return BreakevenResult{
			WillBreakeven: false,
			Reason: fmt.Sprintf(
				"%s per-km emissions (%.3f kg) ≥ %s per-km emissions (%.3f kg) at current grid intensity",
				describeSubject(candidate.Vehicle), candidatePerKm,
				describeSubject(baseline.Vehicle), baselinePerKm),
		}
	}

	debt := candidate.Result.upfrontKg() - baseline.Result.upfrontKg()
	savings := baselinePerKm - candidatePerKm
	km := math.Max(debt/savings, 0)

	dailyKm := candidate.Result.DailyKm
	if dailyKm <= 0 {
		dailyKm = DefaultBreakevenDailyKm
	}
	years := km / dailyKm / DaysPerYear

	breakevenKm := roundInt(km)
	breakevenYears := roundTo(years, yearDecimals)
	breakevenMonths := int64(math.Round(years * MonthsPerYear))
	debtKg := roundInt(debt)
	savingsPerKm := roundTo(savings, perKmDecimals)

	return BreakevenResult{
		WillBreakeven:   true,
		BreakevenKm:     &breakevenKm,
		BreakevenYears:  &breakevenYears,
		BreakevenMonths: &breakevenMonths,
		EmissionDebtKg:  &debtKg,
		SavingsPerKm:    &savingsPerKm,
	}
}

// describeSubject names a vehicle for human-readable explanations.
func describeSubject(v VehicleProfile) string {
	label := strings.TrimSpace(v.Make + " " + v.Model)
	if label == "" {
		return v.FuelType.String()
	}
	return fmt.Sprintf("%s (%s)", v.FuelType, label)
}
