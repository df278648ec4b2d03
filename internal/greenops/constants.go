package greenops

// Equivalency Factors
//
// kg CO2 attributed to one unit of each everyday activity. To express an
// emission figure as an equivalency, divide by the factor:
//
//	equivalency = kg_CO2 / factor
const (
	// PetrolCarKgPerKm is kg CO2 per km for an average Indian petrol hatchback
	// on the MIDC cycle.
	PetrolCarKgPerKm = 0.13

	// SmartphoneChargeFactor is kg CO2 per full smartphone charge.
	SmartphoneChargeFactor = 0.00822

	// TreeSeedlingFactor is kg CO2 absorbed by one tree seedling grown for
	// ten years.
	TreeSeedlingFactor = 60.0
)

// Display Threshold Constants control when equivalencies are shown.
const (
	// MinEquivalencyThresholdKg is the minimum kg CO2 for showing equivalencies.
	// Below it the equivalencies become meaninglessly small.
	MinEquivalencyThresholdKg = 1.0

	// LargeNumberThreshold is the value at which "~X.X million" display starts.
	LargeNumberThreshold = 1_000_000

	// BillionThreshold is the threshold for billion-scale display.
	BillionThreshold = 1_000_000_000
)
