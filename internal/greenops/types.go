// Package greenops makes lifecycle carbon figures relatable.
//
// It converts kilograms of CO2 into everyday equivalencies such as kilometres
// driven in a petrol car or tree seedlings grown, and formats large figures
// with thousand separators for reports and audit messages.
package greenops

import "fmt"

// EquivalencyType names one everyday comparison for a carbon figure.
type EquivalencyType int

const (
	// EquivalencyPetrolCarKm converts CO2 to km driven in an average petrol car.
	EquivalencyPetrolCarKm EquivalencyType = iota

	// EquivalencyTreeSeedlings converts CO2 to tree seedlings grown for 10 years.
	EquivalencyTreeSeedlings

	// EquivalencySmartphonesCharged converts CO2 to smartphone full charges.
	EquivalencySmartphonesCharged
)

func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyPetrolCarKm:
		return "PetrolCarKm"
	case EquivalencyTreeSeedlings:
		return "TreeSeedlings"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// EquivalencyResult is one comparison, both raw and formatted.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput is everything Calculate produces for one figure.
type EquivalencyOutput struct {
	// InputKg is the carbon figure the equivalencies were computed from.
	InputKg float64 `json:"input_kg"`

	// Results are in display priority order.
	Results []EquivalencyResult `json:"results"`

	// DisplayText is the prose form, e.g.
	// "Equivalent to driving a petrol car ~53,846 km or growing ~117 tree seedlings for 10 years".
	DisplayText string `json:"display_text"`

	// IsEmpty is true when the input was below MinEquivalencyThresholdKg.
	IsEmpty bool `json:"is_empty"`
}
