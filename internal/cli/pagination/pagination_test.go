package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonwise/internal/catalog"
	"github.com/rshade/carbonwise/internal/lca"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr string
	}{
		{name: "valid default", params: *NewParams()},
		{name: "valid offset mode", params: Params{Limit: 10, Offset: 20}},
		{name: "valid page mode", params: Params{Page: 2, PageSize: 10}},
		{name: "negative limit", params: Params{Limit: -1}, wantErr: "limit cannot be negative"},
		{name: "negative offset", params: Params{Offset: -1}, wantErr: "offset cannot be negative"},
		{name: "negative page", params: Params{Page: -1}, wantErr: "page cannot be negative"},
		{name: "mixed modes", params: Params{Page: 1, PageSize: 5, Offset: 3}, wantErr: "mutually exclusive"},
		{name: "page size without page", params: Params{PageSize: 5}, wantErr: "page must be specified"},
		{name: "page without page size", params: Params{Page: 2}, wantErr: "page-size must be specified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		input     string
		wantField string
		wantOrder string
		wantErr   error
	}{
		{input: "", wantField: "", wantOrder: "asc"},
		{input: "price", wantField: "price", wantOrder: "asc"},
		{input: "price:DESC", wantField: "price", wantOrder: "desc"},
		{input: " name : asc ", wantField: "name", wantOrder: "asc"},
		{input: "a:b:c", wantErr: ErrInvalidSortFormat},
		{input: ":desc", wantErr: ErrEmptySortField},
		{input: "price:up", wantErr: ErrInvalidSortOrder},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			field, order, err := ParseSort(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestApply(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name   string
		params Params
		want   []int
	}{
		{"no limit", Params{}, items},
		{"limit", Params{Limit: 3}, []int{1, 2, 3}},
		{"offset and limit", Params{Offset: 2, Limit: 3}, []int{3, 4, 5}},
		{"offset only", Params{Offset: 5}, []int{6, 7}},
		{"offset beyond end", Params{Offset: 10}, []int{}},
		{"first page", Params{Page: 1, PageSize: 3}, []int{1, 2, 3}},
		{"last partial page", Params{Page: 3, PageSize: 3}, []int{7}},
		{"page beyond end clamps", Params{Page: 9, PageSize: 3}, []int{7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.params, items))
		})
	}

	assert.Empty(t, Apply(Params{Limit: 2}, []string{}))
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		total  int
		want   Meta
	}{
		{
			name:   "single page when unbounded",
			params: Params{},
			total:  17,
			want:   Meta{CurrentPage: 1, PageSize: 17, TotalPages: 1, TotalItems: 17},
		},
		{
			name:   "page mode",
			params: Params{Page: 2, PageSize: 5},
			total:  17,
			want:   Meta{CurrentPage: 2, PageSize: 5, TotalPages: 4, TotalItems: 17, HasPrevious: true, HasNext: true},
		},
		{
			name:   "offset converted to page",
			params: Params{Offset: 10, Limit: 5},
			total:  12,
			want:   Meta{CurrentPage: 3, PageSize: 5, TotalPages: 3, TotalItems: 12, HasPrevious: true},
		},
		{
			name:   "page past the end reports the last page",
			params: Params{Page: 9, PageSize: 3},
			total:  7,
			want:   Meta{CurrentPage: 3, PageSize: 3, TotalPages: 3, TotalItems: 7, HasPrevious: true},
		},
		{
			name:   "empty",
			params: Params{Limit: 5},
			total:  0,
			want:   Meta{CurrentPage: 1, PageSize: 5, TotalPages: 0, TotalItems: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewMeta(tt.params, tt.total))
		})
	}
}

func TestVehicleSorter(t *testing.T) {
	vehicle := func(id, mk string, price, eff float64, fuel lca.FuelType) catalog.Vehicle {
		return catalog.Vehicle{
			ID: id,
			VehicleProfile: lca.VehicleProfile{
				Make: mk, Model: id, FuelType: fuel, PriceLakh: price, MIDCEfficiency: eff,
			},
		}
	}
	vehicles := []catalog.Vehicle{
		vehicle("b", "Tata", 12, 7, lca.FuelElectric),
		vehicle("a", "maruti", 7, 22, lca.FuelPetrol),
		vehicle("c", "Hyundai", 7, 26, lca.FuelCNG),
	}
	ids := func(vs []catalog.Vehicle) []string {
		out := make([]string, 0, len(vs))
		for _, v := range vs {
			out = append(out, v.ID)
		}
		return out
	}

	s := NewVehicleSorter()

	got, err := s.Sort(vehicles, "price", SortOrderAsc)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b"}, ids(got), "ties keep input order")

	got, err = s.Sort(vehicles, "efficiency", SortOrderDesc)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, ids(got))

	got, err = s.Sort(vehicles, "make", SortOrderAsc)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, ids(got))

	got, err = s.Sort(vehicles, "", SortOrderAsc)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, ids(got))
	assert.Equal(t, "b", vehicles[0].ID, "input is not modified")

	_, err = s.Sort(vehicles, "colour", SortOrderAsc)
	require.ErrorIs(t, err, ErrInvalidSortField)

	assert.True(t, s.IsValidField("seating"))
	assert.False(t, s.IsValidField("colour"))
	assert.Equal(t, []string{"efficiency", "fuel", "make", "name", "price", "seating", "weight"}, s.GetValidFields())
}
