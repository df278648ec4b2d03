package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonwise/internal/catalog"
	"github.com/rshade/carbonwise/internal/cli/pagination"
	"github.com/rshade/carbonwise/internal/greenops"
	"github.com/rshade/carbonwise/internal/logging"
)

// vehicleListing is the JSON shape of `vehicles list`.
type vehicleListing struct {
	Vehicles   []catalog.Vehicle `json:"vehicles"`
	Pagination pagination.Meta   `json:"pagination"`
}

// NewVehiclesListCmd creates the vehicles list command.
func NewVehiclesListCmd() *cobra.Command {
	var (
		filters []string
		sortBy  string
		params  = pagination.NewParams()
		output  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog vehicles",
		Long: `Lists catalog vehicles ordered by make, model and variant.

Filters use key=value and may be repeated:
  fuel=electric  make=tata  body=suv  min-price=8  max-price=15  seats=7  search=nexon
Prices are in lakh rupees.`,
		Example: `  carbonwise vehicles list --filter fuel=electric --sort price:asc
  carbonwise vehicles list --filter make=maruti --page 2 --page-size 5 --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeVehiclesList(cmd, filters, sortBy, *params, output)
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter expression key=value (repeatable)")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort as field or field:order, fields: "+
		fmt.Sprint(pagination.NewVehicleSorter().GetValidFields()))
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "maximum vehicles to show (0 = all)")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "vehicles to skip")
	cmd.Flags().IntVar(&params.Page, "page", 0, "page number, starting at 1")
	cmd.Flags().IntVar(&params.PageSize, "page-size", 0, "vehicles per page")
	addOutputFlag(cmd, &output)

	return cmd
}

func executeVehiclesList(cmd *cobra.Command, filters []string, sortBy string, params pagination.Params, output string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	format, err := parseOutputFormat(output)
	if err != nil {
		return err
	}
	if err = params.Validate(); err != nil {
		return err
	}
	params.SortField, params.SortOrder, err = pagination.ParseSort(sortBy)
	if err != nil {
		return err
	}
	filter, err := ParseVehicleFilters(ctx, filters)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	matched, err := pagination.NewVehicleSorter().Sort(cat.Vehicles(filter), params.SortField, params.SortOrder)
	if err != nil {
		return err
	}
	page := pagination.Apply(params, matched)
	meta := pagination.NewMeta(params, len(matched))

	log.Debug().Ctx(ctx).
		Int("matched", len(matched)).
		Int("shown", len(page)).
		Str("sort", sortBy).
		Msg("listed vehicles")

	if format == outputJSON {
		return writeJSON(cmd.OutOrStdout(), vehicleListing{Vehicles: page, Pagination: meta})
	}

	p := newPrinter(cmd.OutOrStdout())
	if len(page) == 0 {
		p.muted("No vehicles match.")
		return nil
	}
	t := p.table("id", "vehicle", "fuel", "efficiency", "price", "seats", "body")
	for _, v := range page {
		t.row(v.ID, v.Name(), v.FuelType, efficiency(v), lakh(v.PriceLakh), seats(v.SeatingCapacity), dash(v.BodyType))
	}
	if err = t.flush(); err != nil {
		return err
	}
	if len(page) < len(matched) {
		p.muted("Page %d of %d (%d vehicles)", meta.CurrentPage, meta.TotalPages, meta.TotalItems)
	}
	return nil
}

// NewVehiclesShowCmd creates the vehicles show command.
func NewVehiclesShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "show <vehicle-id>",
		Short:   "Show one catalog vehicle",
		Example: `  carbonwise vehicles show tata-nexon-ev-lr`,
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
			v, err := cat.Vehicle(args[0])
			if err != nil {
				if errors.Is(err, catalog.ErrVehicleNotFound) {
					return fmt.Errorf("%w (try `carbonwise vehicles list`)", err)
				}
				return err
			}

			if format == outputJSON {
				return writeJSON(cmd.OutOrStdout(), v)
			}
			renderVehicle(newPrinter(cmd.OutOrStdout()), v)
			return nil
		},
	}

	addOutputFlag(cmd, &output)

	return cmd
}

func renderVehicle(p *printer, v catalog.Vehicle) {
	p.heading("%s", v.Name())
	p.line("ID:            %s", v.ID)
	p.line("Fuel:          %s", v.FuelType)
	p.line("Efficiency:    %s (MIDC)", efficiency(v))
	if v.WLTPEfficiency > 0 {
		p.line("WLTP:          %s %s", greenops.FormatFloat(v.WLTPEfficiency, 2), v.FuelType.EfficiencyUnit())
	}
	p.line("Price:         %s", lakh(v.PriceLakh))
	if v.HasBattery() {
		recycling := "no recycling program"
		if v.HasRecyclingProgram {
			recycling = "recycling program"
		}
		p.line("Battery:       %s kWh, %s", greenops.FormatFloat(v.BatteryCapacityKWh, 1), recycling)
	}
	if v.KerbWeightKg > 0 {
		p.line("Kerb weight:   %s", kg(int64(v.KerbWeightKg)))
	}
	if v.ManufacturingEmissionsKg > 0 {
		p.line("Manufacturing: %s CO₂ (reported)", kg(int64(v.ManufacturingEmissionsKg)))
	}
	p.line("Body:          %s, %s seats", dash(v.BodyType), seats(v.SeatingCapacity))
	if v.BSNorm != "" {
		p.line("Emission norm: %s", v.BSNorm)
	}
	if v.DataSource != "" {
		p.muted("Source: %s", v.DataSource)
	}
}

// NewVehiclesMakesCmd creates the vehicles makes command.
func NewVehiclesMakesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "makes",
		Short: "List manufacturers in the catalog",
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
			makes := cat.Makes()
			if format == outputJSON {
				return writeJSON(cmd.OutOrStdout(), makes)
			}
			for _, m := range makes {
				cmd.Println(m)
			}
			return nil
		},
	}

	addOutputFlag(cmd, &output)

	return cmd
}

func lakh(v float64) string {
	if v <= 0 {
		return "-"
	}
	return "₹" + greenops.FormatFloat(v, 2) + " lakh"
}

func seats(n int) string {
	if n <= 0 {
		return "-"
	}
	return strconv.Itoa(n)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
