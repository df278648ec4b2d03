package lca

// CalculateLifecycleEmissions combines manufacturing, operational and
// disposal emissions for one vehicle over one usage profile.
//
// The usage pattern multiplier adjusts only the per-km operational rate.
// All arithmetic runs at full precision; each _kg field is rounded once at the
// end and TotalKg is the sum of the rounded parts, so the breakdown always adds
// up. EmissionPerKm is rounded to three decimals.
//
// Returns ErrUnknownFuelType from the operational model, or ErrInvalidInput
// when daily distance, duration or grid intensity is not positive.
func CalculateLifecycleEmissions(vehicle VehicleProfile, usage UsageProfile) (EmissionsResult, error) {
	if err := requirePositive("daily km", usage.DailyKm); err != nil {
		return EmissionsResult{}, err
	}
	if err := requirePositive("years", usage.Years); err != nil {
		return EmissionsResult{}, err
	}

	multiplier, err := usage.Pattern.Multiplier()
	if err != nil {
		return EmissionsResult{}, err
	}

	basePerKm, err := OperationalEmissionPerKm(vehicle, usage.GridIntensity)
	if err != nil {
		return EmissionsResult{}, err
	}

	distance := TotalDistanceKm(usage.DailyKm, usage.Years)
	perKm := basePerKm * multiplier

	manufacturing := ManufacturingEmissions(vehicle)
	operational := perKm * distance
	disposal := DisposalEmissions(vehicle)

	mfgKg := roundInt(manufacturing)
	opKg := roundInt(operational)
	dispKg := roundInt(disposal)

	return EmissionsResult{
		ManufacturingKg:   mfgKg,
		OperationalKg:     opKg,
		DisposalKg:        dispKg,
		TotalKg:           mfgKg + opKg + dispKg,
		EmissionPerKm:     roundTo(perKm, perKmDecimals),
		TotalDistanceKm:   distance,
		DailyKm:           usage.DailyKm,
		Years:             usage.Years,
		UsagePattern:      usage.Pattern,
		GridIntensityUsed: usage.GridIntensity,
		exact: &exactFigures{
			manufacturingKg: manufacturing,
			disposalKg:      disposal,
			perKm:           perKm,
		},
	}, nil
}

// TotalDistanceKm returns the distance driven over the ownership period.
func TotalDistanceKm(dailyKm, years float64) float64 {
	return dailyKm * DaysPerYear * years
}
