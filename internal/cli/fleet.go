package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonwise/internal/analysis"
	"github.com/rshade/carbonwise/internal/logging"
)

// NewFleetCmd creates the fleet command, which aggregates a fleet file.
func NewFleetCmd() *cobra.Command {
	var (
		usage  usageFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "fleet <fleet-file>",
		Short: "Aggregate lifecycle emissions of a fleet",
		Long: `Reads a fleet from YAML or CSV and totals lifecycle emissions by fuel type.

YAML files carry shared usage plus a vehicles list:

  state: Karnataka
  years: 8
  vehicles:
    - {vehicle_id: tata-nexon-ev-lr, count: 12, daily_km: 80}
    - {vehicle_id: maruti-swift-zxi, count: 30}

CSV files need vehicle_id and count columns; daily_km and state are optional.
Flags override the file's shared usage.`,
		Example: `  carbonwise fleet fleet.yaml
  carbonwise fleet fleet.csv --state Delhi --years 5 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeFleet(cmd, args[0], usage, output)
		},
	}

	usage.register(cmd, true)
	addOutputFlag(cmd, &output)

	return cmd
}

func executeFleet(cmd *cobra.Command, path string, usage usageFlags, output string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	format, err := parseOutputFormat(output)
	if err != nil {
		return err
	}
	audit := newAuditContext(ctx, "fleet", usage.auditParams(map[string]string{"fleet_file": path}))

	req, err := analysis.LoadFleetFile(path)
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Str("fleet_file", path).Msg("failed to load fleet")
		audit.logFailure(ctx, err)
		return err
	}
	applyUsageOverrides(cmd, &req.Usage, usage)

	svc, err := newService(cmd)
	if err != nil {
		audit.logFailure(ctx, err)
		return err
	}
	resp, err := svc.Fleet(ctx, req)
	if err != nil {
		audit.logFailure(ctx, err)
		return err
	}
	audit.logSuccess(ctx, resp.Vehicles, float64(resp.TotalKg))

	if format == outputJSON {
		return writeJSON(cmd.OutOrStdout(), resp)
	}
	return renderFleet(newPrinter(cmd.OutOrStdout()), resp)
}

// applyUsageOverrides copies explicitly set usage flags over u.
func applyUsageOverrides(cmd *cobra.Command, u *analysis.Usage, flags usageFlags) {
	if cmd.Flags().Changed("state") {
		u.State = flags.state
	}
	if cmd.Flags().Changed("daily-km") {
		u.DailyKm = flags.dailyKm
	}
	if cmd.Flags().Changed("years") {
		u.Years = flags.years
	}
	if cmd.Flags().Changed("usage") {
		u.UsagePattern = flags.usagePattern
	}
	if cmd.Flags().Changed("grid-intensity") {
		u.GridIntensity = flags.gridIntensity
	}
}

func renderFleet(p *printer, resp *analysis.FleetResponse) error {
	p.heading("Fleet footprint over %s years", fmt.Sprint(resp.Years))
	p.line("%d vehicles, %s total, %s per vehicle", resp.Vehicles, kg(resp.TotalKg), kg(resp.AvgPerVehicleKg))
	p.blank()

	t := p.table("Vehicle", "Count", "Daily km", "State", "Per vehicle", "Total")
	for _, e := range resp.Entries {
		state := e.Grid.State
		if state == "" {
			state = "-"
		}
		t.row(e.Vehicle, e.Entry.Count, fmt.Sprint(e.PerVehicle.DailyKm), state, kg(e.PerVehicle.TotalKg), kg(e.TotalKg))
	}
	if err := t.flush(); err != nil {
		return err
	}

	p.blank()
	p.heading("By fuel")
	ft := p.table("Fuel", "Vehicles", "Total")
	for _, f := range resp.ByFuel {
		ft.row(f.FuelType, f.Vehicles, kg(f.TotalKg))
	}
	if err := ft.flush(); err != nil {
		return err
	}

	if len(resp.Alternatives) > 0 {
		p.blank()
		p.heading("Lower-carbon swaps")
		for _, a := range resp.Alternatives {
			p.line("Replace %s with %s: saves %s", a.VehicleID, a.Alternative, kg(a.SavingsKg))
		}
	}
	renderSkipped(p, resp.Skipped)
	return nil
}
