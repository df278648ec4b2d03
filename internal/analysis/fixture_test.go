package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonwise/internal/catalog"
)

// fixtureCatalog has per-km rates of exactly 0.1 kg (combustion), 0.2 kg
// (pet-b) and 0.05 kg (ev-a on the Mid grid) so totals are whole numbers.
const fixtureCatalog = `
schema_version: 1.2.0
vehicles:
  - id: ev-a
    make: Volta
    model: Spark
    fuel_type: ELECTRIC
    midc_efficiency: 11.5
    battery_capacity_kwh: 40
    manufacturing_emissions_kg: 8000
    has_recycling_program: true
    price_lakh: 15
    seating_capacity: 5
    body_type: SUV
  - id: pet-a
    make: Alpha
    model: One
    fuel_type: PETROL
    midc_efficiency: 23.1
    manufacturing_emissions_kg: 5000
    price_lakh: 8
    seating_capacity: 5
    body_type: SUV
  - id: pet-b
    make: Alpha
    model: Two
    fuel_type: PETROL
    midc_efficiency: 11.55
    manufacturing_emissions_kg: 5000
    price_lakh: 6
    seating_capacity: 5
    body_type: Hatchback
  - id: cng-b
    make: Beta
    model: Gas
    fuel_type: CNG
    midc_efficiency: 27.5
    manufacturing_emissions_kg: 4000
    price_lakh: 7
    seating_capacity: 7
    body_type: MUV
  - id: cng-b2
    make: Beta
    model: Gas
    variant: Plus
    fuel_type: CNG
    midc_efficiency: 27.5
    manufacturing_emissions_kg: 4100
    price_lakh: 7.5
    seating_capacity: 5
    body_type: MUV
  - id: die-c
    make: Gamma
    model: Oil
    fuel_type: DIESEL
    midc_efficiency: 26.8
    manufacturing_emissions_kg: 5500
    price_lakh: 12
    seating_capacity: 7
    body_type: SUV
  - id: bad
    make: Delta
    model: Ghost
    fuel_type: PETROL
    price_lakh: 9
    seating_capacity: 5
    body_type: Sedan
grid_intensity:
  - {state: Mid, intensity_kg_per_kwh: 0.5, renewable_pct: 30}
  - {state: Dirty, intensity_kg_per_kwh: 0.9, renewable_pct: 5}
fuel_prices:
  - {fuel_type: PETROL, state: Mid, price_per_unit: 100}
  - {fuel_type: ELECTRICITY, state: Mid, price_per_unit: 8}
`

var testDefaults = Defaults{
	GridIntensity:    0.71,
	FuelPrice:        95,
	ElectricityPrice: 9,
	DailyKm:          100,
	Years:            1,
	TimelineMonths:   120,
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	cat, err := catalog.Parse([]byte(fixtureCatalog), "fixture")
	require.NoError(t, err)
	return NewService(cat, WithDefaults(testDefaults), WithBatching(2, 2))
}

func midUsage() Usage {
	return Usage{State: "Mid", DailyKm: 100, Years: 1}
}
