package cli_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonwise/internal/catalog"
	"github.com/rshade/carbonwise/internal/cli"
	"github.com/rshade/carbonwise/internal/lca"
)

func TestParseVehicleFilters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		filters       []string
		want          catalog.Filter
		wantErrSubstr string
	}{
		{
			name:    "nil filters",
			filters: nil,
			want:    catalog.Filter{},
		},
		{
			name:    "empty string filter is ignored",
			filters: []string{"", "  "},
			want:    catalog.Filter{},
		},
		{
			name:    "every key",
			filters: []string{"fuel=cng", "make=Tata", "body=SUV", "min-price=5", "max-price=12.5", "seats=7", "search=nexon"},
			want: catalog.Filter{
				FuelType:   lca.FuelCNG,
				Make:       "Tata",
				BodyType:   "SUV",
				MinPrice:   5,
				MaxPrice:   12.5,
				MinSeating: 7,
				Search:     "nexon",
			},
		},
		{
			name:    "keys are case-insensitive and trimmed",
			filters: []string{" FUEL = electric "},
			want:    catalog.Filter{FuelType: lca.FuelElectric},
		},
		{
			name:    "later value wins",
			filters: []string{"make=Tata", "make=Kia"},
			want:    catalog.Filter{Make: "Kia"},
		},
		{
			name:          "missing equals",
			filters:       []string{"fuel"},
			wantErrSubstr: "use key=value",
		},
		{
			name:          "empty value",
			filters:       []string{"make="},
			wantErrSubstr: "use key=value",
		},
		{
			name:          "unknown key",
			filters:       []string{"colour=red"},
			wantErrSubstr: "unknown filter key",
		},
		{
			name:          "non-numeric price",
			filters:       []string{"max-price=cheap"},
			wantErrSubstr: "invalid filter",
		},
		{
			name:          "unknown fuel",
			filters:       []string{"fuel=hydrogen"},
			wantErrSubstr: "invalid filter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := cli.ParseVehicleFilters(context.Background(), tt.filters)
			if tt.wantErrSubstr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrSubstr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
