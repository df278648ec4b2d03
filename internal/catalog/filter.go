package catalog

import (
	"strings"

	"github.com/rshade/carbonwise/internal/lca"
)

// Filter narrows a vehicle listing. Zero-valued fields do not filter.
type Filter struct {
	FuelType   lca.FuelType
	Make       string
	BodyType   string
	MinPrice   float64
	MaxPrice   float64
	MinSeating int

	// Search matches a case-insensitive substring of "make model variant".
	Search string
}

// Matches reports whether v passes every set criterion.
func (f Filter) Matches(v Vehicle) bool {
	switch {
	case f.FuelType != 0 && v.FuelType != f.FuelType:
		return false
	case f.Make != "" && !strings.EqualFold(v.Make, f.Make):
		return false
	case f.BodyType != "" && !strings.EqualFold(v.BodyType, f.BodyType):
		return false
	case f.MinPrice > 0 && v.PriceLakh < f.MinPrice:
		return false
	case f.MaxPrice > 0 && v.PriceLakh > f.MaxPrice:
		return false
	case f.MinSeating > 0 && v.SeatingCapacity < f.MinSeating:
		return false
	}

	if f.Search == "" {
		return true
	}
	haystack := strings.ToLower(v.Make + " " + v.Model + " " + v.Variant)
	return strings.Contains(haystack, strings.ToLower(f.Search))
}

// Vehicles returns matching vehicles ordered by make, model and variant.
func (c *Catalog) Vehicles(f Filter) []Vehicle {
	out := make([]Vehicle, 0, len(c.vehicles))
	for _, v := range c.vehicles {
		if f.Matches(v) {
			out = append(out, v)
		}
	}
	return out
}
