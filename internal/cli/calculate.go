package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/carbonwise/internal/analysis"
	"github.com/rshade/carbonwise/internal/greenops"
	"github.com/rshade/carbonwise/internal/logging"
)

// NewCalculateCmd creates the calculate command for one vehicle's lifecycle
// footprint.
func NewCalculateCmd() *cobra.Command {
	var (
		usage  usageFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "calculate <vehicle-id>",
		Short: "Lifecycle emissions of one vehicle",
		Long: `Calculates manufacturing, operational and disposal emissions of a catalog
vehicle for a daily distance, ownership period and state grid, and runs the
greenwashing audit on the result.`,
		Example: `  carbonwise calculate tata-nexon-ev-lr --state Delhi --daily-km 40 --years 8
  carbonwise calculate maruti-swift-zxi --usage city --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeCalculate(cmd, args[0], usage, output)
		},
	}

	usage.register(cmd, true)
	addOutputFlag(cmd, &output)

	return cmd
}

func executeCalculate(cmd *cobra.Command, vehicleID string, usage usageFlags, output string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	format, err := parseOutputFormat(output)
	if err != nil {
		return err
	}
	audit := newAuditContext(ctx, "calculate", usage.auditParams(map[string]string{"vehicle_id": vehicleID}))

	svc, err := newService(cmd)
	if err != nil {
		audit.logFailure(ctx, err)
		return err
	}
	resp, err := svc.Calculate(ctx, analysis.CalculateRequest{VehicleID: vehicleID, Usage: usage.usage()})
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Str("vehicle_id", vehicleID).Msg("calculation failed")
		audit.logFailure(ctx, err)
		return err
	}
	audit.logSuccess(ctx, 1, float64(resp.Emissions.TotalKg))

	if format == outputJSON {
		return writeJSON(cmd.OutOrStdout(), resp)
	}
	return renderCalculate(newPrinter(cmd.OutOrStdout()), resp)
}

func renderCalculate(p *printer, resp *analysis.CalculateResponse) error {
	e := resp.Emissions
	p.heading("%s", vehicleLabel(resp.Vehicle))
	p.grid(resp.Grid)
	p.line("Usage: %s km/day for %s years (%s), %s km total",
		greenops.FormatFloat(e.DailyKm, 1), greenops.FormatFloat(e.Years, 1), e.UsagePattern,
		greenops.FormatFloat(e.TotalDistanceKm, 0))
	p.blank()

	t := p.table("Phase", "Emissions")
	t.row("Manufacturing", kg(e.ManufacturingKg))
	t.row("Operational", kg(e.OperationalKg))
	t.row("Disposal", kg(e.DisposalKg))
	t.row("Total", kg(e.TotalKg))
	t.row("Per km", greenops.FormatFloat(e.EmissionPerKm, 3)+" kg")
	if err := t.flush(); err != nil {
		return err
	}

	if resp.Equivalency.DisplayText != "" {
		p.blank()
		p.muted("%s", resp.Equivalency.DisplayText)
	}
	p.blank()
	p.heading("Greenwashing audit")
	p.flags(resp.GreenwashFlags)
	return nil
}
