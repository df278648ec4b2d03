package pagination

import (
	"cmp"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/rshade/carbonwise/internal/catalog"
)

// Sorter defines field-validated sorting of a listing.
type Sorter[T any] interface {
	// Sort returns a sorted copy of items.
	Sort(items []T, field, order string) ([]T, error)
	// IsValidField checks if the given field name is valid for sorting.
	IsValidField(field string) bool
	// GetValidFields returns the valid field names in sorted order.
	GetValidFields() []string
}

var _ Sorter[catalog.Vehicle] = (*VehicleSorter)(nil)

// VehicleSorter implements Sorter for catalog vehicles.
type VehicleSorter struct {
	compare map[string]func(a, b catalog.Vehicle) int
}

// NewVehicleSorter creates a VehicleSorter.
func NewVehicleSorter() *VehicleSorter {
	return &VehicleSorter{
		compare: map[string]func(a, b catalog.Vehicle) int{
			"name": func(a, b catalog.Vehicle) int {
				return cmp.Compare(strings.ToLower(a.Name()), strings.ToLower(b.Name()))
			},
			"make": func(a, b catalog.Vehicle) int {
				return cmp.Compare(strings.ToLower(a.Make), strings.ToLower(b.Make))
			},
			"fuel": func(a, b catalog.Vehicle) int {
				return cmp.Compare(a.FuelType, b.FuelType)
			},
			"price": func(a, b catalog.Vehicle) int {
				return cmp.Compare(a.PriceLakh, b.PriceLakh)
			},
			"efficiency": func(a, b catalog.Vehicle) int {
				return cmp.Compare(a.MIDCEfficiency, b.MIDCEfficiency)
			},
			"seating": func(a, b catalog.Vehicle) int {
				return cmp.Compare(a.SeatingCapacity, b.SeatingCapacity)
			},
			"weight": func(a, b catalog.Vehicle) int {
				return cmp.Compare(a.KerbWeightKg, b.KerbWeightKg)
			},
		},
	}
}

// IsValidField checks if the field is valid for sorting.
func (s *VehicleSorter) IsValidField(field string) bool {
	_, ok := s.compare[field]
	return ok
}

// GetValidFields returns all valid sort fields.
func (s *VehicleSorter) GetValidFields() []string {
	fields := make([]string, 0, len(s.compare))
	for field := range s.compare {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Sort returns a stably sorted copy of vehicles. An empty field keeps the
// input order.
func (s *VehicleSorter) Sort(vehicles []catalog.Vehicle, field, order string) ([]catalog.Vehicle, error) {
	if field == "" {
		return vehicles, nil
	}
	compare, ok := s.compare[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field, strings.Join(s.GetValidFields(), ", "))
	}

	sorted := slices.Clone(vehicles)
	slices.SortStableFunc(sorted, func(a, b catalog.Vehicle) int {
		if order == SortOrderDesc {
			return compare(b, a)
		}
		return compare(a, b)
	})
	return sorted, nil
}
