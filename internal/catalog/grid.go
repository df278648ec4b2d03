package catalog

// GridBand classifies a grid intensity for display.
type GridBand struct {
	Category string `json:"category"`
	Color    string `json:"color"`
}

// gridBands are checked in order; the first whose MaxIntensity is not
// exceeded applies.
//
//nolint:gochecknoglobals // Fixed lookup table.
var gridBands = []struct {
	maxIntensity float64
	band         GridBand
}{
	{0.3, GridBand{Category: "Very Clean", Color: "#10b981"}},
	{0.5, GridBand{Category: "Clean", Color: "#34d399"}},
	{0.7, GridBand{Category: "Moderate", Color: "#fbbf24"}},
	{0.85, GridBand{Category: "Carbon Heavy", Color: "#f97316"}},
}

// veryCarbonHeavy applies above the last band.
//
//nolint:gochecknoglobals // Fixed lookup table.
var veryCarbonHeavy = GridBand{Category: "Very Carbon Heavy", Color: "#ef4444"}

// BandFor returns the display band for an intensity in kg CO2/kWh.
func BandFor(intensity float64) GridBand {
	for _, b := range gridBands {
		if intensity <= b.maxIntensity {
			return b.band
		}
	}
	return veryCarbonHeavy
}
