package catalog

import (
	"github.com/rshade/carbonwise/internal/lca"
)

// Vehicle is a catalog entry: the engine's VehicleProfile plus descriptive
// attributes used for filtering and display.
type Vehicle struct {
	ID string `json:"id" yaml:"id"`

	lca.VehicleProfile `yaml:",inline"`

	ManufactureYear      int    `json:"manufacture_year,omitempty" yaml:"manufacture_year,omitempty"`
	CountryOfAssembly    string `json:"country_of_assembly,omitempty" yaml:"country_of_assembly,omitempty"`
	EngineDisplacementCC int    `json:"engine_displacement_cc,omitempty" yaml:"engine_displacement_cc,omitempty"`
	BSNorm               string `json:"bs_norm,omitempty" yaml:"bs_norm,omitempty"`
	SeatingCapacity      int    `json:"seating_capacity,omitempty" yaml:"seating_capacity,omitempty"`
	BodyType             string `json:"body_type,omitempty" yaml:"body_type,omitempty"`
	Segment              string `json:"segment,omitempty" yaml:"segment,omitempty"`

	// EfficiencyUnit is derived from the fuel type on load.
	EfficiencyUnit string `json:"midc_efficiency_unit,omitempty" yaml:"-"`
}

// Profile returns the engine view of the vehicle.
func (v Vehicle) Profile() lca.VehicleProfile {
	return v.VehicleProfile
}

// Name returns "Make Model Variant" with empty parts dropped.
func (v Vehicle) Name() string {
	name := v.Make
	for _, part := range []string{v.Model, v.Variant} {
		if part == "" {
			continue
		}
		if name != "" {
			name += " "
		}
		name += part
	}
	return name
}

// GridState is the average grid carbon intensity of one Indian state.
type GridState struct {
	State             string  `json:"state_name" yaml:"state"`
	IntensityKgPerKWh float64 `json:"intensity_kg_per_kwh" yaml:"intensity_kg_per_kwh"`
	RenewablePct      float64 `json:"renewable_pct" yaml:"renewable_pct"`
	DataYear          int     `json:"data_year,omitempty" yaml:"data_year,omitempty"`
	Source            string  `json:"source,omitempty" yaml:"source,omitempty"`
}

// Band returns the display band for the state's intensity.
func (g GridState) Band() GridBand {
	return BandFor(g.IntensityKgPerKWh)
}

// Energy carriers used as fuel price keys. Vehicle fuel types map onto these
// through PriceKey.
const (
	PricePetrol      = "PETROL"
	PriceDiesel      = "DIESEL"
	PriceCNG         = "CNG"
	PriceElectricity = "ELECTRICITY"
)

// FuelPrice is a retail energy price in one state.
type FuelPrice struct {
	FuelType     string  `json:"fuel_type" yaml:"fuel_type"`
	State        string  `json:"state_name" yaml:"state"`
	PricePerUnit float64 `json:"price_per_unit" yaml:"price_per_unit"`
	Unit         string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	UpdatedDate  string  `json:"updated_date,omitempty" yaml:"updated_date,omitempty"`
}

// PriceKey returns the fuel price key a vehicle's tank is filled under.
// Hybrids are priced at petrol; electric vehicles at electricity.
func PriceKey(f lca.FuelType) string {
	switch f {
	case lca.FuelDiesel:
		return PriceDiesel
	case lca.FuelCNG:
		return PriceCNG
	case lca.FuelElectric:
		return PriceElectricity
	default:
		return PricePetrol
	}
}
