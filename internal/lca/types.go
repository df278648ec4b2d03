// Package lca implements the lifecycle carbon engine for passenger vehicles
// operated in India.
//
// It turns a vehicle's static attributes and a usage profile into
// manufacturing, operational and disposal emissions, and derives break-even
// comparisons, monthly accumulation timelines, total cost of ownership and
// greenwashing flags from the same per-km model.
//
// Every function is pure: no I/O, no logging, no retained state. Inputs are
// never mutated and results are plain records safe to serialize directly.
package lca

// VehicleProfile is the read-only description of a vehicle supplied by the
// catalog. Zero numeric values mean "not supplied".
type VehicleProfile struct {
	Make    string `json:"make" yaml:"make"`
	Model   string `json:"model" yaml:"model"`
	Variant string `json:"variant,omitempty" yaml:"variant,omitempty"`

	FuelType FuelType `json:"fuel_type" yaml:"fuel_type"`

	// MIDCEfficiency is the efficiency on the Indian test cycle, in the unit
	// returned by FuelType.EfficiencyUnit.
	MIDCEfficiency float64 `json:"midc_efficiency" yaml:"midc_efficiency"`

	// WLTPEfficiency is the European test cycle figure, used for audit only.
	WLTPEfficiency float64 `json:"wltp_efficiency,omitempty" yaml:"wltp_efficiency,omitempty"`

	BatteryCapacityKWh float64 `json:"battery_capacity_kwh,omitempty" yaml:"battery_capacity_kwh,omitempty"`
	KerbWeightKg       float64 `json:"kerb_weight_kg,omitempty" yaml:"kerb_weight_kg,omitempty"`

	// ManufacturingEmissionsKg is a lab or manufacturer figure. When zero the
	// weight/battery heuristic is used.
	ManufacturingEmissionsKg float64 `json:"manufacturing_emissions_kg,omitempty" yaml:"manufacturing_emissions_kg,omitempty"`

	// DisposalEmissionsKg is an explicit end-of-life figure. It is never estimated.
	DisposalEmissionsKg float64 `json:"disposal_emissions_kg,omitempty" yaml:"disposal_emissions_kg,omitempty"`

	HasRecyclingProgram bool `json:"has_recycling_program" yaml:"has_recycling_program"`

	// PriceLakh is the ex-showroom price in lakh rupees.
	PriceLakh float64 `json:"price_lakh" yaml:"price_lakh"`

	DataSource string `json:"data_source,omitempty" yaml:"data_source,omitempty"`
}

// HasBattery reports whether the vehicle carries a traction battery.
func (v VehicleProfile) HasBattery() bool {
	return v.BatteryCapacityKWh > 0
}

// PurchasePrice returns the listed price in rupees.
func (v VehicleProfile) PurchasePrice() float64 {
	return v.PriceLakh * RupeesPerLakh
}

// UsageProfile describes how and where a vehicle is driven.
type UsageProfile struct {
	DailyKm       float64      `json:"daily_km"`
	Years         float64      `json:"years"`
	Pattern       UsagePattern `json:"usage_pattern"`
	GridIntensity float64      `json:"grid_intensity"`
}

// EmissionsResult is the lifecycle breakdown for one vehicle and usage profile.
// Every _kg field is independently rounded; TotalKg is their sum.
type EmissionsResult struct {
	ManufacturingKg int64   `json:"manufacturing_kg"`
	OperationalKg   int64   `json:"operational_kg"`
	DisposalKg      int64   `json:"disposal_kg"`
	TotalKg         int64   `json:"total_kg"`
	EmissionPerKm   float64 `json:"emission_per_km"`
	TotalDistanceKm float64 `json:"total_distance_km"`

	DailyKm           float64      `json:"daily_km"`
	Years             float64      `json:"years"`
	UsagePattern      UsagePattern `json:"usage_pattern"`
	GridIntensityUsed float64      `json:"grid_intensity_used"`

	exact *exactFigures
}

// exactFigures keeps the unrounded intermediates so that break-even
// comparisons derived from a result use full precision.
type exactFigures struct {
	manufacturingKg float64
	disposalKg      float64
	perKm           float64
}

// upfrontKg returns manufacturing plus disposal, unrounded when available.
func (r EmissionsResult) upfrontKg() float64 {
	if r.exact != nil {
		return r.exact.manufacturingKg + r.exact.disposalKg
	}
	return float64(r.ManufacturingKg + r.DisposalKg)
}

// perKm returns the adjusted per-km rate, unrounded when available.
func (r EmissionsResult) perKm() float64 {
	if r.exact != nil {
		return r.exact.perKm
	}
	return r.EmissionPerKm
}

// BreakevenResult reports when a candidate vehicle's cumulative emissions
// fall below a baseline's. When WillBreakeven is false every crossover field
// is nil and Reason explains why.
type BreakevenResult struct {
	WillBreakeven   bool     `json:"will_breakeven"`
	BreakevenKm     *int64   `json:"breakeven_km"`
	BreakevenYears  *float64 `json:"breakeven_years"`
	BreakevenMonths *int64   `json:"breakeven_months"`
	EmissionDebtKg  *int64   `json:"emission_debt_kg,omitempty"`
	SavingsPerKm    *float64 `json:"savings_per_km,omitempty"`
	Reason          string   `json:"reason,omitempty"`
}

// TimelinePoint is one month of cumulative emissions.
type TimelinePoint struct {
	Month        int     `json:"month"`
	Year         float64 `json:"year"`
	CumulativeKg int64   `json:"cumulative_kg"`
	Label        string  `json:"label"`
}

// TCOResult is the total cost of ownership breakdown in rupees.
type TCOResult struct {
	PurchaseCost    int64   `json:"purchase_cost"`
	FuelCost        int64   `json:"fuel_cost"`
	InsuranceCost   int64   `json:"insurance_cost"`
	MaintenanceCost int64   `json:"maintenance_cost"`
	TotalCost       int64   `json:"total_cost"`
	CostPerKm       float64 `json:"cost_per_km"`
	TotalDistanceKm float64 `json:"total_distance_km"`
}

// Severity ranks a greenwash flag.
type Severity string

// Greenwash flag severities.
const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// FlagKind identifies which claim-audit rule produced a flag.
type FlagKind string

// Greenwash flag kinds, in evaluation order.
const (
	FlagMisleadingZeroEmission FlagKind = "MISLEADING_ZERO_EMISSION"
	FlagHighGridIntensity      FlagKind = "HIGH_GRID_INTENSITY"
	FlagWLTPNotMIDC            FlagKind = "WLTP_NOT_MIDC"
	FlagNoRecyclingProgram     FlagKind = "NO_RECYCLING_PROGRAM"
	FlagHeavyEV                FlagKind = "HIGH_WEIGHT_EV"
)

// GreenwashFlag is a finding that a common marketing claim is misleading
// relative to the vehicle's computed lifecycle data.
type GreenwashFlag struct {
	Kind           FlagKind `json:"type"`
	Severity       Severity `json:"severity"`
	Claim          string   `json:"claim"`
	Reality        string   `json:"reality"`
	Recommendation string   `json:"recommendation"`
}
