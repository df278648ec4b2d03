package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonwise/internal/analysis"
	"github.com/rshade/carbonwise/internal/greenops"
	"github.com/rshade/carbonwise/internal/logging"
)

// NewCompareCmd creates the compare command for two to four vehicles.
func NewCompareCmd() *cobra.Command {
	var (
		usage  usageFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "compare <vehicle-id> <vehicle-id> [vehicle-id...]",
		Short: "Compare lifecycle emissions of 2 to 4 vehicles",
		Long: `Ranks two to four catalog vehicles by lifecycle emissions under the same usage
and reports when each electric vehicle breaks even against each petrol, diesel
and CNG vehicle. Unknown IDs are skipped with a warning.`,
		Example: `  carbonwise compare tata-nexon-ev-lr maruti-swift-zxi --state Delhi
  carbonwise compare tata-nexon-ev-lr tata-tiago-icng hyundai-creta-sx --years 10 --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeCompare(cmd, args, usage, output)
		},
	}

	usage.register(cmd, true)
	addOutputFlag(cmd, &output)

	return cmd
}

func executeCompare(cmd *cobra.Command, ids []string, usage usageFlags, output string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	format, err := parseOutputFormat(output)
	if err != nil {
		return err
	}
	audit := newAuditContext(ctx, "compare", usage.auditParams(map[string]string{"vehicles": strings.Join(ids, ",")}))

	svc, err := newService(cmd)
	if err != nil {
		audit.logFailure(ctx, err)
		return err
	}

	req := analysis.CompareRequest{VehicleIDs: ids, Usage: usage.usage()}
	resp, err := cachedAnalysis(cmd, svc, "compare", req,
		func(ctx context.Context) (*analysis.CompareResponse, error) {
			return svc.Compare(ctx, req)
		})
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Msg("comparison failed")
		audit.logFailure(ctx, err)
		return err
	}

	var total int64
	for _, r := range resp.Results {
		total += r.Emissions.TotalKg
	}
	audit.logSuccess(ctx, len(resp.Results), float64(total))

	if format == outputJSON {
		return writeJSON(cmd.OutOrStdout(), resp)
	}
	return renderCompare(newPrinter(cmd.OutOrStdout()), resp)
}

func renderCompare(p *printer, resp *analysis.CompareResponse) error {
	p.heading("Lifecycle comparison")
	p.grid(resp.Grid)
	p.line("Usage: %s km/day for %s years (%s)",
		greenops.FormatFloat(resp.DailyKm, 1), greenops.FormatFloat(resp.Years, 1), resp.UsagePattern)
	p.blank()

	t := p.table("Rank", "Vehicle", "Fuel", "Manufacturing", "Operational", "Disposal", "Total", "Per km", "Flags")
	for i, r := range resp.Results {
		e := r.Emissions
		t.row(i+1, r.Vehicle.Name(), r.Vehicle.FuelType, kg(e.ManufacturingKg), kg(e.OperationalKg),
			kg(e.DisposalKg), kg(e.TotalKg), greenops.FormatFloat(e.EmissionPerKm, 3), len(r.GreenwashFlags))
	}
	if err := t.flush(); err != nil {
		return err
	}

	if len(resp.Breakeven) > 0 {
		p.blank()
		p.heading("Break-even")
		for _, b := range resp.Breakeven {
			if !b.Result.WillBreakeven {
				p.line("%s vs %s: never (%s)", b.EV, b.ICE, b.Result.Reason)
				continue
			}
			p.line("%s vs %s: %s km (%s years)", b.EV, b.ICE,
				greenops.FormatNumber(*b.Result.BreakevenKm), greenops.FormatFloat(*b.Result.BreakevenYears, 1))
		}
	}
	renderSkipped(p, resp.Skipped)
	return nil
}

func renderSkipped(p *printer, skipped []analysis.Skipped) {
	if len(skipped) == 0 {
		return
	}
	p.blank()
	for _, s := range skipped {
		p.muted("skipped %s: %s", s.VehicleID, s.Reason)
	}
}
