package analysis

import (
	"fmt"
	"strconv"

	"github.com/rshade/carbonwise/internal/greenops"
	"github.com/rshade/carbonwise/internal/lca"
)

// explain describes why a pick landed at its rank.
func explain(c scored, rank int, usage resolvedUsage) string {
	v := c.vehicle
	e := c.emissions
	name := v.Name()
	state := usage.grid.State
	if state == "" {
		state = "your region"
	}
	total := greenops.FormatNumber(e.TotalKg)
	mfg := greenops.FormatNumber(e.ManufacturingKg)
	daily := plain(usage.dailyKm)
	years := plain(usage.years)
	grid := plain(usage.grid.Intensity)

	if rank == 0 {
		switch v.FuelType {
		case lca.FuelCNG:
			return fmt.Sprintf("At %s km/day in %s for %s years, the %s achieves the lowest lifecycle carbon footprint of %s kg CO₂. "+
				"CNG's low manufacturing emissions (%s kg) and competitive per-km efficiency make it the cleanest choice at your usage pattern.",
				daily, state, years, name, total, mfg)
		case lca.FuelElectric:
			return fmt.Sprintf("At %s km/day in %s for %s years, the %s has the lowest total footprint at %s kg CO₂. "+
				"Despite higher manufacturing emissions (%s kg), %s's grid intensity of %s kg CO₂/kWh enables the EV to offset its carbon debt within your ownership period.",
				daily, state, years, name, total, mfg, state, grid)
		case lca.FuelHybrid:
			return fmt.Sprintf("The %s tops our recommendation at %s kg CO₂ total. "+
				"Its hybrid powertrain combines low petrol consumption with electric efficiency, resulting in the best carbon outcome for %s at your driving pattern.",
				name, total, state)
		case lca.FuelPetrol, lca.FuelDiesel:
		}
		return fmt.Sprintf("At %s km/day in %s for %s years, the %s has the lowest lifecycle footprint at %s kg CO₂. "+
			"Its fuel efficiency of %s %s keeps operational emissions competitive.",
			daily, state, years, name, total, plain(v.MIDCEfficiency), v.FuelType.EfficiencyUnit())
	}

	if v.FuelType == lca.FuelElectric {
		return fmt.Sprintf("The %s totals %s kg CO₂. Its battery manufacturing adds %s kg upfront. "+
			"At %s's grid intensity of %s kg CO₂/kWh, the EV needs extended driving to offset compared to lower-emission alternatives.",
			name, total, mfg, state, grid)
	}
	return fmt.Sprintf("The %s totals %s kg CO₂ over %s years. Manufacturing contributes %s kg and operations add %s kg at your %s km/day usage in %s.",
		name, total, years, mfg, greenops.FormatNumber(e.OperationalKg), daily, state)
}

// plain formats a number with the fewest digits that round-trip.
func plain(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
