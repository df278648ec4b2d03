package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonwise/internal/lca"
)

const smallCatalog = `
schema_version: 1.0.0
vehicles:
  - id: b-ev
    make: Beta
    model: Volt
    fuel_type: electric
    midc_efficiency: 7
    battery_capacity_kwh: 30
    price_lakh: 12
    seating_capacity: 5
    body_type: SUV
  - id: a-petrol
    make: Alpha
    model: Zoom
    variant: LX
    fuel_type: PETROL
    midc_efficiency: 18
    price_lakh: 7
    seating_capacity: 5
    body_type: Hatchback
  - id: a-cng
    make: Alpha
    model: Zoom
    variant: CNG
    fuel_type: CNG
    midc_efficiency: 26
    price_lakh: 8
    seating_capacity: 7
    body_type: MUV
grid_intensity:
  - {state: Dirty, intensity_kg_per_kwh: 0.9}
  - {state: Clean, intensity_kg_per_kwh: 0.2, renewable_pct: 80}
fuel_prices:
  - {fuel_type: PETROL, state: Clean, price_per_unit: 101.5}
  - {fuel_type: electricity, state: Clean, price_per_unit: 7}
`

func mustParse(t *testing.T, data string) *Catalog {
	t.Helper()
	c, err := Parse([]byte(data), "test")
	require.NoError(t, err)
	return c
}

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "embedded", c.Source())
	assert.Greater(t, c.Len(), 10)
	assert.NotEmpty(t, c.States())

	for _, f := range lca.FuelTypes() {
		assert.NotEmpty(t, c.Vehicles(Filter{FuelType: f}), "no %s vehicles in seed", f)
	}

	nexon, err := c.Vehicle("tata-nexon-ev-lr")
	require.NoError(t, err)
	assert.Equal(t, lca.FuelElectric, nexon.FuelType)
	assert.Equal(t, "km/kWh", nexon.EfficiencyUnit)

	g, ok := c.GridIntensity("Delhi")
	require.True(t, ok)
	assert.InDelta(t, 0.72, g, 0)

	p, ok := c.FuelPrice(PriceElectricity, "Delhi")
	require.True(t, ok)
	assert.Positive(t, p)
}

func TestParse_OrdersVehicles(t *testing.T) {
	c := mustParse(t, smallCatalog)

	var ids []string
	for _, v := range c.Vehicles(Filter{}) {
		ids = append(ids, v.ID)
	}
	// make, model, variant: "CNG" sorts before "LX".
	assert.Equal(t, []string{"a-cng", "a-petrol", "b-ev"}, ids)
	assert.Equal(t, []string{"Alpha", "Beta"}, c.Makes())
}

func TestParse_SchemaVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr bool
	}{
		{name: "lowest", version: "1.0.0"},
		{name: "minor bump", version: "1.7.2"},
		{name: "next major", version: "2.0.0", wantErr: true},
		{name: "prerelease of old major", version: "0.9.0", wantErr: true},
		{name: "garbage", version: "latest", wantErr: true},
		{name: "missing", version: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := "schema_version: \"" + tt.version + "\"\nvehicles: []\n"
			_, err := Parse([]byte(data), "test")
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedSchema)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "yaml", data: "vehicles: [\n"},
		{name: "unknown fuel", data: "schema_version: 1.0.0\nvehicles:\n  - {id: x, make: A, model: B, fuel_type: STEAM}\n"},
		{name: "missing fuel", data: "schema_version: 1.0.0\nvehicles:\n  - {id: x, make: A, model: B}\n"},
		{name: "missing id", data: "schema_version: 1.0.0\nvehicles:\n  - {make: A, model: B, fuel_type: CNG}\n"},
		{name: "duplicate id", data: "schema_version: 1.0.0\nvehicles:\n  - {id: x, make: A, model: B, fuel_type: CNG}\n  - {id: x, make: A, model: C, fuel_type: CNG}\n"},
		{name: "zero intensity", data: "schema_version: 1.0.0\ngrid_intensity:\n  - {state: X, intensity_kg_per_kwh: 0}\n"},
		{name: "duplicate state", data: "schema_version: 1.0.0\ngrid_intensity:\n  - {state: X, intensity_kg_per_kwh: 0.5}\n  - {state: x, intensity_kg_per_kwh: 0.6}\n"},
		{name: "negative price", data: "schema_version: 1.0.0\nfuel_prices:\n  - {fuel_type: PETROL, state: X, price_per_unit: -1}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "test")
			require.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vehicles.yaml")
		require.NoError(t, os.WriteFile(path, []byte(smallCatalog), 0600))

		c, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, path, c.Source())
		assert.Equal(t, 3, c.Len())
	})

	t.Run("empty path is embedded", func(t *testing.T) {
		c, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "embedded", c.Source())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}

func TestDigest(t *testing.T) {
	a, err := Parse([]byte(smallCatalog), "a.yaml")
	require.NoError(t, err)
	b, err := Parse([]byte(smallCatalog), "b.yaml")
	require.NoError(t, err)
	edited, err := Parse([]byte(smallCatalog+"\n# edited\n"), "a.yaml")
	require.NoError(t, err)

	assert.Len(t, a.Digest(), 64)
	assert.Equal(t, a.Digest(), b.Digest(), "digest depends on content, not source")
	assert.NotEqual(t, a.Digest(), edited.Digest())
}

func TestVehicle_NotFound(t *testing.T) {
	c := mustParse(t, smallCatalog)

	_, err := c.Vehicle("nope")
	require.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestStates(t *testing.T) {
	c := mustParse(t, smallCatalog)

	states := c.States()
	require.Len(t, states, 2)
	assert.Equal(t, "Clean", states[0].State)
	assert.Equal(t, "Very Clean", states[0].Band().Category)
	assert.Equal(t, "Very Carbon Heavy", states[1].Band().Category)

	s, err := c.State("  clean ")
	require.NoError(t, err)
	assert.InDelta(t, 80.0, s.RenewablePct, 0)

	_, err = c.State("Atlantis")
	require.ErrorIs(t, err, ErrStateNotFound)

	_, ok := c.GridIntensity("Atlantis")
	assert.False(t, ok)

	// Returned slice is a copy.
	states[0].State = "mutated"
	assert.Equal(t, "Clean", c.States()[0].State)
}

func TestFuelPrice(t *testing.T) {
	c := mustParse(t, smallCatalog)

	p, ok := c.FuelPrice("petrol", "CLEAN")
	require.True(t, ok)
	assert.InDelta(t, 101.5, p, 0)

	p, ok = c.FuelPrice(PriceElectricity, "Clean")
	require.True(t, ok)
	assert.InDelta(t, 7.0, p, 0)

	_, ok = c.FuelPrice(PriceDiesel, "Clean")
	assert.False(t, ok)
}

func TestPriceKey(t *testing.T) {
	assert.Equal(t, PricePetrol, PriceKey(lca.FuelPetrol))
	assert.Equal(t, PricePetrol, PriceKey(lca.FuelHybrid))
	assert.Equal(t, PriceDiesel, PriceKey(lca.FuelDiesel))
	assert.Equal(t, PriceCNG, PriceKey(lca.FuelCNG))
	assert.Equal(t, PriceElectricity, PriceKey(lca.FuelElectric))
}

func TestVehicle_JSONIsFlat(t *testing.T) {
	c := mustParse(t, smallCatalog)
	v, err := c.Vehicle("a-petrol")
	require.NoError(t, err)

	out, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "a-petrol", m["id"])
	assert.Equal(t, "Alpha", m["make"])
	assert.Equal(t, "PETROL", m["fuel_type"])
	assert.Equal(t, "km/L", m["midc_efficiency_unit"])
	assert.Equal(t, "Alpha Zoom LX", v.Name())
}
