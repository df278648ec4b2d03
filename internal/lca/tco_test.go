package lca

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTCO(t *testing.T) {
	in := TCOInput{DailyKm: 40, Years: 8, FuelPrice: 100, ElectricityPrice: 8}

	tests := []struct {
		name            string
		vehicle         VehicleProfile
		wantFuel        int64
		wantInsurance   int64
		wantMaintenance int64
		wantTotal       int64
		wantPerKm       float64
	}{
		{
			name:            "petrol",
			vehicle:         swiftPetrol(),
			wantFuel:        648889, // 116800 / 18 * 100
			wantInsurance:   168000, // 700000 * 0.03 * 8
			wantMaintenance: 96000,
			wantTotal:       1612889,
			wantPerKm:       13.81,
		},
		{
			name:            "electric",
			vehicle:         nexonEV(),
			wantFuel:        179093, // 116800 / 6 * 8 * 1.15
			wantInsurance:   360000,
			wantMaintenance: 40000,
			wantTotal:       2079093,
			wantPerKm:       17.8,
		},
		{
			name:            "hybrid splits distance",
			vehicle:         VehicleProfile{FuelType: FuelHybrid, MIDCEfficiency: 25, BatteryCapacityKWh: 1.8, PriceLakh: 19},
			wantFuel:        315252, // 0.65*116800/25*100 + 0.35*116800/32.5*8*1.15
			wantInsurance:   456000,
			wantMaintenance: 96000,
			wantTotal:       2767252,
			wantPerKm:       23.69,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateTCO(tt.vehicle, in)
			require.NoError(t, err)

			assert.Equal(t, int64(tt.vehicle.PriceLakh*RupeesPerLakh), got.PurchaseCost)
			assert.Equal(t, tt.wantFuel, got.FuelCost)
			assert.Equal(t, tt.wantInsurance, got.InsuranceCost)
			assert.Equal(t, tt.wantMaintenance, got.MaintenanceCost)
			assert.Equal(t, tt.wantTotal, got.TotalCost)
			assert.InDelta(t, tt.wantPerKm, got.CostPerKm, 1e-9)
			assert.InDelta(t, 116800.0, got.TotalDistanceKm, 1e-9)
		})
	}
}

func TestCalculateTCO_CNGUsesFuelPrice(t *testing.T) {
	cng := VehicleProfile{FuelType: FuelCNG, MIDCEfficiency: 25, PriceLakh: 8}
	got, err := CalculateTCO(cng, TCOInput{DailyKm: 50, Years: 5, FuelPrice: 76, ElectricityPrice: 8})
	require.NoError(t, err)
	// 91250 km / 25 km per kg * 76
	assert.Equal(t, int64(277400), got.FuelCost)
}

func TestCalculateTCO_Errors(t *testing.T) {
	tests := []struct {
		name    string
		vehicle VehicleProfile
		in      TCOInput
		wantErr error
	}{
		{name: "unknown fuel", vehicle: VehicleProfile{FuelType: FuelType(8), MIDCEfficiency: 10}, in: TCOInput{DailyKm: 40, Years: 8}, wantErr: ErrUnknownFuelType},
		{name: "zero efficiency", vehicle: VehicleProfile{FuelType: FuelPetrol}, in: TCOInput{DailyKm: 40, Years: 8}, wantErr: ErrInvalidInput},
		{name: "zero years", vehicle: swiftPetrol(), in: TCOInput{DailyKm: 40}, wantErr: ErrInvalidInput},
		{name: "negative price", vehicle: swiftPetrol(), in: TCOInput{DailyKm: 40, Years: 8, FuelPrice: -1}, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateTCO(tt.vehicle, tt.in)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
