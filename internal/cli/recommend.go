package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonwise/internal/analysis"
	"github.com/rshade/carbonwise/internal/greenops"
	"github.com/rshade/carbonwise/internal/logging"
)

// NewRecommendCmd creates the recommend command.
func NewRecommendCmd() *cobra.Command {
	var (
		usage  usageFlags
		req    analysis.RecommendRequest
		output string
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend the three lowest-footprint vehicles for a budget",
		Long: `Filters the catalog by budget, fuel preference and seating, scores every
candidate on lifecycle emissions and cost of ownership, and returns up to three
picks favouring different makes and fuel types.`,
		Example: `  carbonwise recommend --state Maharashtra --max-budget 15
  carbonwise recommend --fuel electric --min-seating 5 --daily-km 60 --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.Usage = usage.usage()
			return executeRecommend(cmd, req, usage, output)
		},
	}

	usage.register(cmd, true)
	cmd.Flags().Float64Var(&req.MinBudget, "min-budget", 0, "minimum price in lakh rupees")
	cmd.Flags().Float64Var(&req.MaxBudget, "max-budget", 0, "maximum price in lakh rupees")
	cmd.Flags().StringVar(&req.FuelPreference, "fuel", analysis.FuelPreferenceAny,
		"fuel preference: petrol, diesel, cng, electric, hybrid or any")
	cmd.Flags().IntVar(&req.MinSeating, "min-seating", 0, "minimum seating capacity")
	addOutputFlag(cmd, &output)

	return cmd
}

func executeRecommend(cmd *cobra.Command, req analysis.RecommendRequest, usage usageFlags, output string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	format, err := parseOutputFormat(output)
	if err != nil {
		return err
	}
	audit := newAuditContext(ctx, "recommend", usage.auditParams(map[string]string{
		"min_budget": fmt.Sprint(req.MinBudget),
		"max_budget": fmt.Sprint(req.MaxBudget),
		"fuel":       req.FuelPreference,
	}))

	svc, err := newService(cmd)
	if err != nil {
		audit.logFailure(ctx, err)
		return err
	}

	resp, err := cachedAnalysis(cmd, svc, "recommend", req,
		func(ctx context.Context) (*analysis.RecommendResponse, error) {
			return svc.Recommend(ctx, req)
		})
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Msg("recommendation failed")
		audit.logFailure(ctx, err)
		return err
	}
	audit.logSuccess(ctx, len(resp.Recommendations), float64(resp.AvgBudgetCarbonKg))

	if format == outputJSON {
		return writeJSON(cmd.OutOrStdout(), resp)
	}
	return renderRecommend(newPrinter(cmd.OutOrStdout()), resp)
}

func renderRecommend(p *printer, resp *analysis.RecommendResponse) error {
	p.heading("Recommendations")
	p.grid(resp.Grid)
	p.line("Evaluated %d vehicles; average lifecycle footprint %s",
		resp.TotalEvaluated, kg(resp.AvgBudgetCarbonKg))

	if len(resp.Recommendations) == 0 {
		p.blank()
		p.muted("No vehicles match these filters.")
		renderSkipped(p, resp.Skipped)
		return nil
	}

	for _, r := range resp.Recommendations {
		p.blank()
		p.heading("%d. %s: %s", r.Rank, r.Label, vehicleLabel(r.Vehicle))
		p.line("   %s total, %s per km, cost of ownership %s",
			kg(r.Emissions.TotalKg), greenops.FormatFloat(r.Emissions.EmissionPerKm, 3)+" kg",
			greenops.FormatRupees(r.TCO.TotalCost))
		p.line("   %s", r.Explanation)
		if n := len(r.GreenwashFlags); n > 0 {
			p.muted("   %d greenwashing flag(s); run 'carbonwise audit %s' for details", n, r.Vehicle.ID)
		}
	}
	renderSkipped(p, resp.Skipped)
	return nil
}
