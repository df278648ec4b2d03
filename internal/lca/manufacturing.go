package lca

// EstimateManufacturingEmissions is the fallback heuristic used when a
// vehicle record carries no explicit manufacturing figure: kerb weight
// (DefaultKerbWeightKg when absent) times ManufacturingKgPerKgMass, plus
// BatteryKgPerKWh for every kWh of battery.
func EstimateManufacturingEmissions(vehicle VehicleProfile) float64 {
	weight := vehicle.KerbWeightKg
	if weight <= 0 {
		weight = DefaultKerbWeightKg
	}

	kg := weight * ManufacturingKgPerKgMass
	if vehicle.HasBattery() {
		kg += vehicle.BatteryCapacityKWh * BatteryKgPerKWh
	}
	return kg
}

// ManufacturingEmissions returns the explicit manufacturing figure, or the
// heuristic estimate when none is supplied.
func ManufacturingEmissions(vehicle VehicleProfile) float64 {
	if vehicle.ManufacturingEmissionsKg > 0 {
		return vehicle.ManufacturingEmissionsKg
	}
	return EstimateManufacturingEmissions(vehicle)
}

// DisposalEmissions returns the explicit end-of-life figure, inflated by
// UnmanagedDisposalPenalty when the vehicle has no recycling program and a
// battery larger than LargeBatteryThresholdKWh. Disposal is never estimated:
// an unset figure stays zero.
func DisposalEmissions(vehicle VehicleProfile) float64 {
	kg := vehicle.DisposalEmissionsKg
	if kg <= 0 {
		return 0
	}
	if hasUnmanagedBattery(vehicle) {
		kg *= UnmanagedDisposalPenalty
	}
	return kg
}

// hasUnmanagedBattery reports a large battery with no end-of-life program.
func hasUnmanagedBattery(vehicle VehicleProfile) bool {
	return !vehicle.HasRecyclingProgram && vehicle.BatteryCapacityKWh > LargeBatteryThresholdKWh
}
