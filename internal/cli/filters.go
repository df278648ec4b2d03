package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rshade/carbonwise/internal/catalog"
	"github.com/rshade/carbonwise/internal/lca"
	"github.com/rshade/carbonwise/internal/logging"
)

// Filter keys accepted by --filter.
const (
	filterFuel     = "fuel"
	filterMake     = "make"
	filterBody     = "body"
	filterMinPrice = "min-price"
	filterMaxPrice = "max-price"
	filterSeats    = "seats"
	filterSearch   = "search"
)

// ParseVehicleFilters turns "key=value" expressions into a catalog filter.
// All expressions are validated before any is applied; empty strings are
// ignored and a later expression for the same key wins.
func ParseVehicleFilters(ctx context.Context, filters []string) (catalog.Filter, error) {
	log := logging.FromContext(ctx)

	var f catalog.Filter
	for _, expr := range filters {
		if strings.TrimSpace(expr) == "" {
			continue
		}
		if err := applyFilter(&f, expr); err != nil {
			log.Warn().Ctx(ctx).
				Str("component", "cli").
				Str("operation", "parse_filters").
				Str("filter", expr).
				Err(err).
				Msg("invalid filter expression")
			return catalog.Filter{}, err
		}
		log.Debug().Ctx(ctx).
			Str("component", "cli").
			Str("operation", "parse_filters").
			Str("filter", expr).
			Msg("applied filter")
	}
	return f, nil
}

func applyFilter(f *catalog.Filter, expr string) error {
	key, value, ok := strings.Cut(expr, "=")
	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)
	if !ok || key == "" || value == "" {
		return fmt.Errorf("invalid filter %q: use key=value", expr)
	}

	var err error
	switch key {
	case filterFuel:
		f.FuelType, err = lca.ParseFuelType(value)
	case filterMake:
		f.Make = value
	case filterBody:
		f.BodyType = value
	case filterMinPrice:
		f.MinPrice, err = strconv.ParseFloat(value, 64)
	case filterMaxPrice:
		f.MaxPrice, err = strconv.ParseFloat(value, 64)
	case filterSeats:
		f.MinSeating, err = strconv.Atoi(value)
	case filterSearch:
		f.Search = value
	default:
		return fmt.Errorf("unknown filter key %q: use one of %s", key, strings.Join([]string{
			filterFuel, filterMake, filterBody, filterMinPrice, filterMaxPrice, filterSeats, filterSearch,
		}, ", "))
	}
	if err != nil {
		return fmt.Errorf("invalid filter %q: %w", expr, err)
	}
	return nil
}
