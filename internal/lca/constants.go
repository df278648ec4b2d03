package lca

// Fuel Emission Factors
//
// Tailpipe CO2 released per unit of fuel burned. Operational emissions for
// combustion vehicles are computed as:
//
//	kg_CO2_per_km = (1 / efficiency) * factor
const (
	// PetrolKgPerLitre is kg CO2 per litre of petrol.
	PetrolKgPerLitre = 2.31

	// DieselKgPerLitre is kg CO2 per litre of diesel.
	DieselKgPerLitre = 2.68

	// CNGKgPerKg is kg CO2 per kg of compressed natural gas.
	CNGKgPerKg = 2.75
)

// Loss and Drivetrain Factors for grid-charged driving.
const (
	// ChargingLossFactor scales grid energy drawn per kWh delivered to the
	// wheels (charger, cable and battery round-trip losses).
	ChargingLossFactor = 1.15

	// HybridElectricFraction is the share of hybrid driving done on battery.
	HybridElectricFraction = 0.35

	// HybridEfficiencyPenalty multiplies the efficiency denominator for the
	// electric share of a hybrid drivetrain.
	HybridEfficiencyPenalty = 1.3
)

// Usage Pattern Multipliers applied to the per-km operational rate.
// MIDC approximates mixed driving.
const (
	CityMultiplier    = 1.15
	HighwayMultiplier = 0.90
	MixedMultiplier   = 1.0
)

// Manufacturing and End-of-Life Constants.
const (
	// ManufacturingKgPerKgMass is base production emissions per kg of kerb weight.
	ManufacturingKgPerKgMass = 4.0

	// BatteryKgPerKWh is cell production emissions per kWh of battery capacity.
	BatteryKgPerKWh = 150.0

	// DefaultKerbWeightKg is assumed when a vehicle record has no kerb weight.
	DefaultKerbWeightKg = 1200.0

	// UnmanagedDisposalPenalty inflates the disposal figure of a large battery
	// with no recycling program.
	UnmanagedDisposalPenalty = 1.5

	// LargeBatteryThresholdKWh is the capacity above which a battery counts as
	// large for end-of-life rules.
	LargeBatteryThresholdKWh = 5.0
)

// Distance and Time Constants.
const (
	// DaysPerYear is used to turn daily distance into annual distance.
	DaysPerYear = 365

	// AvgDaysPerMonth is the average month length used by the timeline.
	AvgDaysPerMonth = 30.44

	// MonthsPerYear converts between years and months.
	MonthsPerYear = 12

	// DefaultBreakevenDailyKm is used when a result carries no daily distance.
	DefaultBreakevenDailyKm = 40.0

	// DefaultTimelineMonths is the horizon used when none is requested.
	DefaultTimelineMonths = 120

	// MinGridIntensity floors the improving grid intensity in timelines.
	MinGridIntensity = 0.05
)

// Cost Rates for total cost of ownership.
const (
	// RupeesPerLakh converts a lakh price into rupees.
	RupeesPerLakh = 100_000

	// InsuranceRatePerYear is the annual insurance premium as a share of price.
	InsuranceRatePerYear = 0.03

	// ElectricMaintenancePerYear is the flat annual maintenance for ELECTRIC.
	ElectricMaintenancePerYear = 5000.0

	// CombustionMaintenancePerYear is the flat annual maintenance for every
	// other fuel type.
	CombustionMaintenancePerYear = 12000.0
)

// Greenwash Rule Thresholds.
const (
	// ZeroEmissionManufacturingKg is the manufacturing figure above which a
	// "zero emission" claim is flagged.
	ZeroEmissionManufacturingKg = 5000.0

	// HighGridIntensity is the grid intensity above which EV charging is flagged.
	HighGridIntensity = 0.75

	// HeavyEVKerbWeightKg is the kerb weight above which an EV is flagged.
	HeavyEVKerbWeightKg = 1800.0

	// EstimatedDataSourceMarker marks a data source label as an estimate.
	EstimatedDataSourceMarker = "Estimated"
)

// Output rounding precision.
const (
	perKmDecimals    = 3
	yearDecimals     = 1
	costPerKmDecimal = 2
)
