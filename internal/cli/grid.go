package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rshade/carbonwise/internal/catalog"
	"github.com/rshade/carbonwise/internal/greenops"
)

// gridStateView is a grid record with its display band and known energy
// prices.
type gridStateView struct {
	catalog.GridState

	Band   catalog.GridBand   `json:"band"`
	Prices map[string]float64 `json:"prices,omitempty"`
}

func newGridStateView(cat *catalog.Catalog, s catalog.GridState) gridStateView {
	view := gridStateView{GridState: s, Band: s.Band()}
	for _, key := range []string{catalog.PricePetrol, catalog.PriceDiesel, catalog.PriceCNG, catalog.PriceElectricity} {
		if price, ok := cat.FuelPrice(key, s.State); ok {
			if view.Prices == nil {
				view.Prices = map[string]float64{}
			}
			view.Prices[key] = price
		}
	}
	return view
}

// NewGridListCmd creates the grid list command.
func NewGridListCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List state grid intensities, cleanest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cmd)
			if err != nil {
				return err
			}

			states := cat.States()
			views := make([]gridStateView, len(states))
			for i, s := range states {
				views[i] = newGridStateView(cat, s)
			}
			if format == outputJSON {
				return writeJSON(cmd.OutOrStdout(), views)
			}

			p := newPrinter(cmd.OutOrStdout())
			t := p.table("state", "kg co2/kwh", "renewable", "category")
			for _, v := range views {
				t.row(v.State, greenops.FormatFloat(v.IntensityKgPerKWh, 2),
					greenops.FormatFloat(v.RenewablePct, 1)+"%", v.Band.Category)
			}
			return t.flush()
		},
	}

	addOutputFlag(cmd, &output)

	return cmd
}

// NewGridShowCmd creates the grid show command.
func NewGridShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "show <state>",
		Short:   "Show one state's grid intensity and energy prices",
		Example: `  carbonwise grid show "Tamil Nadu"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			s, err := cat.State(args[0])
			if err != nil {
				return err
			}

			view := newGridStateView(cat, s)
			if format == outputJSON {
				return writeJSON(cmd.OutOrStdout(), view)
			}

			p := newPrinter(cmd.OutOrStdout())
			p.heading("%s", view.State)
			band := p.style(lipgloss.NewStyle().Foreground(lipgloss.Color(view.Band.Color)).Bold(true), view.Band.Category)
			p.line("Intensity: %s kg CO₂/kWh (%s)", greenops.FormatFloat(view.IntensityKgPerKWh, 2), band)
			p.line("Renewable: %s%%", greenops.FormatFloat(view.RenewablePct, 1))
			if view.DataYear > 0 {
				p.line("Data year: %d", view.DataYear)
			}
			for _, key := range []string{catalog.PricePetrol, catalog.PriceDiesel, catalog.PriceCNG, catalog.PriceElectricity} {
				if price, ok := view.Prices[key]; ok {
					p.line("%-12s ₹%s", key+":", greenops.FormatFloat(price, 2))
				}
			}
			if view.Source != "" {
				p.muted("Source: %s", view.Source)
			}
			return nil
		},
	}

	addOutputFlag(cmd, &output)

	return cmd
}
