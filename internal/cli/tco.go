package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonwise/internal/analysis"
	"github.com/rshade/carbonwise/internal/greenops"
)

// NewTCOCmd creates the tco command for a vehicle's cost of ownership.
func NewTCOCmd() *cobra.Command {
	var (
		req    analysis.TCORequest
		output string
	)

	cmd := &cobra.Command{
		Use:   "tco <vehicle-id>",
		Short: "Total cost of ownership of one vehicle",
		Long: `Estimates purchase, energy, insurance and maintenance costs in rupees.
Energy prices come from --fuel-price/--electricity-price, then the catalog's
price for --state, then the configured defaults.`,
		Example: `  carbonwise tco tata-nexon-ev-lr --state Delhi --years 5
  carbonwise tco maruti-swift-zxi --fuel-price 104.5 --daily-km 60`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}
			req.VehicleID = args[0]
			audit := newAuditContext(ctx, "tco", map[string]string{"vehicle_id": req.VehicleID, "state": req.State})

			svc, err := newService(cmd)
			if err != nil {
				audit.logFailure(ctx, err)
				return err
			}
			resp, err := svc.TCO(ctx, req)
			if err != nil {
				audit.logFailure(ctx, err)
				return err
			}
			audit.logSuccess(ctx, 1, 0)

			if format == outputJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			return renderTCO(newPrinter(cmd.OutOrStdout()), resp)
		},
	}

	cmd.Flags().StringVar(&req.State, "state", "", "state used to look up energy prices")
	cmd.Flags().Float64Var(&req.DailyKm, "daily-km", 0, "average km driven per day (default from config)")
	cmd.Flags().Float64Var(&req.Years, "years", 0, "ownership period in years (default from config)")
	cmd.Flags().Float64Var(&req.FuelPrice, "fuel-price", 0, "fuel price in rupees per litre or kg")
	cmd.Flags().Float64Var(&req.ElectricityPrice, "electricity-price", 0, "electricity price in rupees per kWh")
	addOutputFlag(cmd, &output)

	return cmd
}

func renderTCO(p *printer, resp *analysis.TCOResponse) error {
	c := resp.TCO
	p.heading("%s", vehicleLabel(resp.Vehicle))
	p.line("Fuel ₹%s, electricity ₹%s/kWh over %s km",
		greenops.FormatFloat(resp.FuelPrice, 2), greenops.FormatFloat(resp.ElectricityPrice, 2),
		greenops.FormatFloat(c.TotalDistanceKm, 0))
	p.blank()

	t := p.table("Cost", "Amount")
	t.row("Purchase", greenops.FormatRupees(c.PurchaseCost))
	t.row("Energy", greenops.FormatRupees(c.FuelCost))
	t.row("Insurance", greenops.FormatRupees(c.InsuranceCost))
	t.row("Maintenance", greenops.FormatRupees(c.MaintenanceCost))
	t.row("Total", greenops.FormatRupees(c.TotalCost))
	t.row("Per km", fmt.Sprintf("₹%s", greenops.FormatFloat(c.CostPerKm, 2)))
	return t.flush()
}
