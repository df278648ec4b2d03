package lca

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rshade/carbonwise/internal/greenops"
)

// Fixed recommendation text per rule.
const (
	recZeroEmission  = `The "zero emission" label only applies to tailpipe emissions, not lifecycle emissions.`
	recHighGrid      = "Consider CNG alternatives in coal-heavy grid states, or charge during solar hours if possible."
	recWLTPNotMIDC   = "Always compare vehicles using MIDC figures for India-specific accuracy."
	recNoRecycling   = "Ask the manufacturer about their battery end-of-life plan before purchasing."
	recHeavyEV       = "Consider lighter EV alternatives for lower overall environmental impact."
	wltpRealityNotes = "This figure uses WLTP (European test cycle), not MIDC (Indian driving conditions). " +
		"Real-world Indian efficiency is typically 10-20% lower."
)

// greenwashRule is one independent claim check.
type greenwashRule struct {
	kind     FlagKind
	severity Severity
	applies  func(v VehicleProfile, gridIntensity float64) bool
	build    func(v VehicleProfile, gridIntensity float64) (claim, reality, recommendation string)
}

// greenwashRules is evaluated in order; every rule that applies emits a flag.
//
//nolint:gochecknoglobals // Fixed rule table.
var greenwashRules = []greenwashRule{
	{
		kind:     FlagMisleadingZeroEmission,
		severity: SeverityHigh,
		applies: func(v VehicleProfile, _ float64) bool {
			return v.FuelType == FuelElectric && v.ManufacturingEmissionsKg > ZeroEmissionManufacturingKg
		},
		build: func(v VehicleProfile, _ float64) (string, string, string) {
			return `"Zero Emission Vehicle"`,
				fmt.Sprintf("Manufacturing this vehicle emits %s kg CO₂, equivalent to driving a petrol car %s km.",
					greenops.FormatFloat(v.ManufacturingEmissionsKg, 0),
					greenops.FormatFloat(greenops.PetrolCarKm(v.ManufacturingEmissionsKg), 0)),
				recZeroEmission
		},
	},
	{
		kind:     FlagHighGridIntensity,
		severity: SeverityMedium,
		applies: func(v VehicleProfile, g float64) bool {
			return v.FuelType == FuelElectric && g > HighGridIntensity
		},
		build: func(_ VehicleProfile, g float64) (string, string, string) {
			return `"Clean energy driving"`,
				fmt.Sprintf("Your state's grid intensity is %s kg CO₂/kWh; charging this EV may produce more "+
					"lifecycle CO₂ than a comparable CNG vehicle.", formatPlain(g)),
				recHighGrid
		},
	},
	{
		kind:     FlagWLTPNotMIDC,
		severity: SeverityLow,
		applies: func(v VehicleProfile, _ float64) bool {
			return v.WLTPEfficiency > 0 &&
				(v.MIDCEfficiency <= 0 || strings.Contains(v.DataSource, EstimatedDataSourceMarker))
		},
		build: func(v VehicleProfile, _ float64) (string, string, string) {
			unit := v.FuelType.EfficiencyUnit()
			if unit == "" {
				unit = "km/L"
			}
			return fmt.Sprintf(`"%s %s efficiency"`, formatPlain(v.WLTPEfficiency), unit),
				wltpRealityNotes,
				recWLTPNotMIDC
		},
	},
	{
		kind:     FlagNoRecyclingProgram,
		severity: SeverityMedium,
		applies: func(v VehicleProfile, _ float64) bool {
			return (v.FuelType == FuelElectric || v.FuelType == FuelHybrid) && hasUnmanagedBattery(v)
		},
		build: func(v VehicleProfile, _ float64) (string, string, string) {
			disposal := "Its end-of-life emissions are not disclosed, and battery disposal carries potential toxic waste."
			if v.DisposalEmissionsKg > 0 {
				disposal = fmt.Sprintf("Battery disposal adds %s kg CO₂ and potential toxic waste.",
					greenops.FormatFloat(v.DisposalEmissionsKg, 0))
			}
			return `"Eco-friendly vehicle"`,
				fmt.Sprintf("This vehicle has a %s kWh battery with no disclosed recycling program. %s",
					formatPlain(v.BatteryCapacityKWh), disposal),
				recNoRecycling
		},
	},
	{
		kind:     FlagHeavyEV,
		severity: SeverityLow,
		applies: func(v VehicleProfile, _ float64) bool {
			return v.FuelType == FuelElectric && v.KerbWeightKg > HeavyEVKerbWeightKg
		},
		build: func(v VehicleProfile, _ float64) (string, string, string) {
			return `"Green transportation"`,
				fmt.Sprintf("At %s kg, this is a heavy EV. Heavier vehicles have higher manufacturing emissions "+
					"and tire/brake particulate matter, even with zero tailpipe emissions.",
					greenops.FormatFloat(v.KerbWeightKg, 0)),
				recHeavyEV
		},
	},
}

// DetectGreenwashFlags audits a vehicle's common marketing claims against its
// data and the grid intensity where it will be charged.
//
// Rules are independent and evaluated in a fixed order; several may fire for
// the same vehicle. The result is deterministic and never nil: a vehicle that
// matches no rule yields an empty slice.
func DetectGreenwashFlags(vehicle VehicleProfile, gridIntensity float64) []GreenwashFlag {
	flags := make([]GreenwashFlag, 0, len(greenwashRules))
	for _, rule := range greenwashRules {
		if !rule.applies(vehicle, gridIntensity) {
			continue
		}
		claim, reality, rec := rule.build(vehicle, gridIntensity)
		flags = append(flags, GreenwashFlag{
			Kind:           rule.kind,
			Severity:       rule.severity,
			Claim:          claim,
			Reality:        reality,
			Recommendation: rec,
		})
	}
	return flags
}

// formatPlain prints a float with the fewest digits that round-trip.
func formatPlain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
