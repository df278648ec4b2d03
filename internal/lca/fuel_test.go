package lca

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFuelType(t *testing.T) {
	tests := []struct {
		in      string
		want    FuelType
		wantErr bool
	}{
		{in: "PETROL", want: FuelPetrol},
		{in: "diesel", want: FuelDiesel},
		{in: " Cng ", want: FuelCNG},
		{in: "ELECTRIC", want: FuelElectric},
		{in: "hybrid", want: FuelHybrid},
		{in: "HYDROGEN", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFuelType(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownFuelType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFuelType_String(t *testing.T) {
	assert.Equal(t, "ELECTRIC", FuelElectric.String())
	assert.Equal(t, "FuelType(0)", FuelType(0).String())
	assert.Equal(t, "FuelType(9)", FuelType(9).String())
}

func TestFuelType_EfficiencyUnit(t *testing.T) {
	assert.Equal(t, "km/L", FuelPetrol.EfficiencyUnit())
	assert.Equal(t, "km/L", FuelHybrid.EfficiencyUnit())
	assert.Equal(t, "km/kg", FuelCNG.EfficiencyUnit())
	assert.Equal(t, "km/kWh", FuelElectric.EfficiencyUnit())
	assert.Empty(t, FuelType(0).EfficiencyUnit())
}

func TestFuelType_IsCombustion(t *testing.T) {
	assert.True(t, FuelPetrol.IsCombustion())
	assert.True(t, FuelCNG.IsCombustion())
	assert.False(t, FuelElectric.IsCombustion())
	assert.False(t, FuelHybrid.IsCombustion())
}

func TestFuelType_JSON(t *testing.T) {
	var v struct {
		Fuel FuelType `json:"fuel"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"fuel":"cng"}`), &v))
	assert.Equal(t, FuelCNG, v.Fuel)

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"fuel":"CNG"}`, string(out))

	v.Fuel = FuelType(42)
	_, err = json.Marshal(v)
	require.Error(t, err)

	err = json.Unmarshal([]byte(`{"fuel":"steam"}`), &v)
	require.ErrorIs(t, err, ErrUnknownFuelType)
}

func TestParseUsagePattern(t *testing.T) {
	tests := []struct {
		in      string
		want    UsagePattern
		wantErr bool
	}{
		{in: "", want: UsageMixed},
		{in: "mixed", want: UsageMixed},
		{in: "CITY", want: UsageCity},
		{in: "Highway", want: UsageHighway},
		{in: "offroad", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseUsagePattern(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUsagePattern_Multiplier(t *testing.T) {
	city, err := UsageCity.Multiplier()
	require.NoError(t, err)
	mixed, err := UsageMixed.Multiplier()
	require.NoError(t, err)
	highway, err := UsageHighway.Multiplier()
	require.NoError(t, err)

	assert.Greater(t, city, mixed)
	assert.Less(t, highway, mixed)

	_, err = UsagePattern(7).Multiplier()
	require.ErrorIs(t, err, ErrInvalidInput)
}
