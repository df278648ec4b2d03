package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/carbonwise/internal/analysis"
)

// NewAuditCmd creates the audit command, which checks a vehicle's marketing
// claims against its lifecycle data.
func NewAuditCmd() *cobra.Command {
	var (
		state         string
		gridIntensity float64
		output        string
	)

	cmd := &cobra.Command{
		Use:   "audit <vehicle-id>",
		Short: "Flag misleading green claims for a vehicle",
		Example: `  carbonwise audit mg-zs-ev-excite --state Jharkhand
  carbonwise audit toyota-hyryder-v-hybrid --grid-intensity 0.82 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}
			audit := newAuditContext(ctx, "audit", map[string]string{"vehicle_id": args[0], "state": state})

			svc, err := newService(cmd)
			if err != nil {
				audit.logFailure(ctx, err)
				return err
			}
			resp, err := svc.Audit(ctx, analysis.AuditRequest{
				VehicleID: args[0], State: state, GridIntensity: gridIntensity,
			})
			if err != nil {
				audit.logFailure(ctx, err)
				return err
			}
			audit.logSuccess(ctx, len(resp.GreenwashFlags), 0)

			if format == outputJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			p := newPrinter(cmd.OutOrStdout())
			p.heading("%s", vehicleLabel(resp.Vehicle))
			p.grid(resp.Grid)
			p.blank()
			p.flags(resp.GreenwashFlags)
			return nil
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "Indian state whose grid powers charging")
	cmd.Flags().Float64Var(&gridIntensity, "grid-intensity", 0, "override grid intensity in kg CO2/kWh")
	addOutputFlag(cmd, &output)

	return cmd
}
