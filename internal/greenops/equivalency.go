package greenops

import (
	"fmt"
	"math"
)

// PetrolCarKm returns how far an average petrol car drives to emit kg of CO2.
func PetrolCarKm(kg float64) float64 {
	return kg / PetrolCarKgPerKm
}

// Calculate expresses a carbon figure in kilograms as petrol-car kilometres,
// tree seedlings and smartphone charges.
//
// Values below MinEquivalencyThresholdKg return an empty output and no error.
// Negative values return ErrNegativeValue; NaN, infinite or overflowing
// values return ErrCalculationOverflow.
func Calculate(kg float64) (EquivalencyOutput, error) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
	}
	if kg < 0 {
		return EquivalencyOutput{IsEmpty: true}, ErrNegativeValue
	}
	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	km := PetrolCarKm(kg)
	trees := kg / TreeSeedlingFactor
	phones := kg / SmartphoneChargeFactor

	if math.IsInf(km, 0) || math.IsInf(phones, 0) {
		return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
	}

	results := []EquivalencyResult{
		{Type: EquivalencyPetrolCarKm, Value: km, FormattedValue: formatEquivalencyValue(km), Label: "km in a petrol car"},
		{Type: EquivalencyTreeSeedlings, Value: trees, FormattedValue: formatEquivalencyValue(trees), Label: "tree seedlings grown"},
		{Type: EquivalencySmartphonesCharged, Value: phones, FormattedValue: formatEquivalencyValue(phones), Label: "smartphones charged"},
	}

	return EquivalencyOutput{
		InputKg: kg,
		Results: results,
		DisplayText: fmt.Sprintf("Equivalent to driving a petrol car ~%s km or growing ~%s tree seedlings for 10 years",
			results[0].FormattedValue, results[1].FormattedValue),
	}, nil
}

// formatEquivalencyValue switches to abbreviated notation for very large
// values and comma-separated integers otherwise.
func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
