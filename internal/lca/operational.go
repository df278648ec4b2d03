package lca

import (
	"fmt"
	"math"
)

// OperationalEmissionPerKm returns kg CO2 emitted per km driven.
//
// Combustion vehicles divide their fuel emission factor by efficiency.
// Electric vehicles multiply grid energy per km by the grid intensity and
// the charging loss factor. Hybrids blend the two by HybridElectricFraction;
// the electric share contributes only when the vehicle has a battery and uses
// an efficiency denominator scaled by HybridEfficiencyPenalty.
//
// gridIntensity is kg CO2/kWh and only affects ELECTRIC and HYBRID vehicles,
// but must be positive for every fuel type.
//
// Returns ErrUnknownFuelType for an unrecognized fuel type and
// ErrInvalidInput for non-positive or non-finite efficiency or intensity.
func OperationalEmissionPerKm(vehicle VehicleProfile, gridIntensity float64) (float64, error) {
	if err := requirePositive("efficiency", vehicle.MIDCEfficiency); err != nil {
		return 0, err
	}
	if err := requirePositive("grid intensity", gridIntensity); err != nil {
		return 0, err
	}

	eff := vehicle.MIDCEfficiency

	switch vehicle.FuelType {
	case FuelPetrol:
		return PetrolKgPerLitre / eff, nil
	case FuelDiesel:
		return DieselKgPerLitre / eff, nil
	case FuelCNG:
		return CNGKgPerKg / eff, nil
	case FuelElectric:
		return gridIntensity * ChargingLossFactor / eff, nil
	case FuelHybrid:
		petrol := PetrolKgPerLitre / eff
		electric := 0.0
		if vehicle.HasBattery() {
			electric = gridIntensity * ChargingLossFactor / (eff * HybridEfficiencyPenalty)
		}
		return (1-HybridElectricFraction)*petrol + HybridElectricFraction*electric, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFuelType, vehicle.FuelType)
	}
}

// requirePositive rejects zero, negative, NaN and infinite values.
func requirePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s must be positive and finite, got %v", ErrInvalidInput, name, v)
	}
	return nil
}

// requireNonNegative rejects negative, NaN and infinite values.
func requireNonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %s must be non-negative and finite, got %v", ErrInvalidInput, name, v)
	}
	return nil
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, decimals int) float64 {
	const base = 10
	p := math.Pow(base, float64(decimals))
	return math.Round(v*p) / p
}

// roundInt rounds a kilogram or rupee figure to the nearest integer.
func roundInt(v float64) int64 {
	return int64(math.Round(v))
}
