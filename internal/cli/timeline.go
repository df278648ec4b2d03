package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonwise/internal/analysis"
	"github.com/rshade/carbonwise/internal/greenops"
	"github.com/rshade/carbonwise/internal/lca"
)

// NewTimelineCmd creates the timeline command for monthly cumulative
// emissions.
func NewTimelineCmd() *cobra.Command {
	var (
		usage  usageFlags
		req    analysis.TimelinesRequest
		output string
	)

	cmd := &cobra.Command{
		Use:   "timeline <vehicle-id> [vehicle-id...]",
		Short: "Monthly cumulative emissions with an improving grid",
		Long: `Accumulates emissions month by month from the manufacturing debt, optionally
with the grid getting cleaner each year, and reports the first month each
electric vehicle drops below each combustion vehicle. Table output shows
one row per year; JSON output carries every month.`,
		Example: `  carbonwise timeline tata-nexon-ev-lr maruti-swift-zxi --state Delhi --months 120
  carbonwise timeline tata-nexon-ev-lr --grid-improvement 0.05 --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}
			req.VehicleIDs = args
			req.State = usage.state
			req.DailyKm = usage.dailyKm
			req.UsagePattern = usage.usagePattern
			req.GridIntensity = usage.gridIntensity

			audit := newAuditContext(ctx, "timeline", usage.auditParams(map[string]string{
				"vehicles": strings.Join(args, ","),
				"months":   fmt.Sprint(req.Months),
			}))

			svc, err := newService(cmd)
			if err != nil {
				audit.logFailure(ctx, err)
				return err
			}
			resp, err := svc.Timelines(ctx, req)
			if err != nil {
				audit.logFailure(ctx, err)
				return err
			}
			audit.logSuccess(ctx, len(resp.Timelines), 0)

			if format == outputJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			return renderTimelines(newPrinter(cmd.OutOrStdout()), resp)
		},
	}

	usage.register(cmd, false)
	cmd.Flags().IntVar(&req.Months, "months", 0, "horizon in months (default from config)")
	cmd.Flags().Float64Var(&req.GridImprovementRate, "grid-improvement", 0,
		"annual fractional decline of grid intensity, e.g. 0.05")
	addOutputFlag(cmd, &output)

	return cmd
}

func renderTimelines(p *printer, resp *analysis.TimelinesResponse) error {
	p.heading("Cumulative emissions over %d months", resp.Months)
	p.grid(resp.Grid)
	if resp.GridImprovementRate > 0 {
		p.line("Grid improves %s%% per year", greenops.FormatFloat(resp.GridImprovementRate*100, 1))
	}
	p.blank()

	if len(resp.Timelines) == 0 {
		p.muted("No vehicles could be evaluated.")
		renderSkipped(p, resp.Skipped)
		return nil
	}

	headers := []string{"Month"}
	for _, tl := range resp.Timelines {
		headers = append(headers, tl.Vehicle.Name())
	}
	t := p.table(headers...)
	for _, i := range yearlyIndexes(resp.Timelines[0].Timeline) {
		row := []any{resp.Timelines[0].Timeline[i].Label}
		for _, tl := range resp.Timelines {
			row = append(row, kg(tl.Timeline[i].CumulativeKg))
		}
		t.row(row...)
	}
	if err := t.flush(); err != nil {
		return err
	}

	if len(resp.Crossovers) > 0 {
		p.blank()
		p.heading("Crossovers")
		for _, c := range resp.Crossovers {
			if c.Month == nil {
				p.line("%s never drops below %s within %d months", c.EVID, c.ICEID, resp.Months)
				continue
			}
			p.line("%s drops below %s in month %d", c.EVID, c.ICEID, *c.Month)
		}
	}
	renderSkipped(p, resp.Skipped)
	return nil
}

// yearlyIndexes selects month 0, every twelfth month and the final month.
func yearlyIndexes(points []lca.TimelinePoint) []int {
	var out []int
	for i, pt := range points {
		if pt.Month%lca.MonthsPerYear == 0 || i == len(points)-1 {
			out = append(out, i)
		}
	}
	return out
}
