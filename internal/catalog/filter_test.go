package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/carbonwise/internal/lca"
)

func TestVehicles_Filter(t *testing.T) {
	c := mustParse(t, smallCatalog)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "none", filter: Filter{}, want: []string{"a-cng", "a-petrol", "b-ev"}},
		{name: "fuel", filter: Filter{FuelType: lca.FuelElectric}, want: []string{"b-ev"}},
		{name: "make case-insensitive", filter: Filter{Make: "alpha"}, want: []string{"a-cng", "a-petrol"}},
		{name: "body type", filter: Filter{BodyType: "muv"}, want: []string{"a-cng"}},
		{name: "min price inclusive", filter: Filter{MinPrice: 8}, want: []string{"a-cng", "b-ev"}},
		{name: "max price inclusive", filter: Filter{MaxPrice: 8}, want: []string{"a-cng", "a-petrol"}},
		{name: "seating", filter: Filter{MinSeating: 6}, want: []string{"a-cng"}},
		{name: "search spans fields", filter: Filter{Search: "zoom lx"}, want: []string{"a-petrol"}},
		{name: "combined", filter: Filter{Make: "Alpha", MaxPrice: 7.5}, want: []string{"a-petrol"}},
		{name: "no match", filter: Filter{Search: "tesla"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make([]string, 0)
			for _, v := range c.Vehicles(tt.filter) {
				got = append(got, v.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		intensity float64
		category  string
		color     string
	}{
		{0.1, "Very Clean", "#10b981"},
		{0.3, "Very Clean", "#10b981"},
		{0.31, "Clean", "#34d399"},
		{0.5, "Clean", "#34d399"},
		{0.7, "Moderate", "#fbbf24"},
		{0.85, "Carbon Heavy", "#f97316"},
		{0.86, "Very Carbon Heavy", "#ef4444"},
	}

	for _, tt := range tests {
		band := BandFor(tt.intensity)
		assert.Equal(t, tt.category, band.Category, "intensity %v", tt.intensity)
		assert.Equal(t, tt.color, band.Color, "intensity %v", tt.intensity)
	}
}
