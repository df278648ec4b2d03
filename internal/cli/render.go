package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rshade/carbonwise/internal/analysis"
	"github.com/rshade/carbonwise/internal/catalog"
	"github.com/rshade/carbonwise/internal/config"
	"github.com/rshade/carbonwise/internal/greenops"
	"github.com/rshade/carbonwise/internal/lca"
)

// Output formats accepted by --output.
const (
	outputTable = config.FormatTable
	outputJSON  = config.FormatJSON
)

// Palette for terminal output.
const (
	colorHeader   = lipgloss.Color("#10b981")
	colorMuted    = lipgloss.Color("#6b7280")
	colorHigh     = lipgloss.Color("#ef4444")
	colorMedium   = lipgloss.Color("#f97316")
	colorLow      = lipgloss.Color("#fbbf24")
	colorPositive = lipgloss.Color("#34d399")
)

// parseOutputFormat normalizes an --output value.
func parseOutputFormat(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case outputTable, "":
		return outputTable, nil
	case outputJSON:
		return outputJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format %q: use table or json", s)
	}
}

// addOutputFlag registers --output with the configured default.
func addOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "output", config.GetDefaultOutputFormat(), "Output format: table or json")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printer writes human-readable sections. Styling applies only on a terminal.
type printer struct {
	w      io.Writer
	styled bool
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w, styled: writerIsTerminal(w)}
}

func (p *printer) style(s lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return s.Render(text)
}

func (p *printer) heading(format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(p.w, p.style(lipgloss.NewStyle().Foreground(colorHeader).Bold(true), text))
}

func (p *printer) muted(format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(p.w, p.style(lipgloss.NewStyle().Foreground(colorMuted).Italic(true), text))
}

func (p *printer) line(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) blank() {
	_, _ = fmt.Fprintln(p.w)
}

// table starts a tab-aligned table with upper-case headers.
func (p *printer) table(headers ...string) *table {
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, strings.ToUpper(strings.Join(headers, "\t")))
	return &table{w: tw}
}

type table struct {
	w *tabwriter.Writer
}

func (t *table) row(cols ...any) {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = fmt.Sprint(c)
	}
	_, _ = fmt.Fprintln(t.w, strings.Join(parts, "\t"))
}

func (t *table) flush() error {
	return t.w.Flush()
}

// severity colours a greenwash severity label.
func (p *printer) severity(s lca.Severity) string {
	label := "[" + string(s) + "]"
	var color lipgloss.Color
	switch s {
	case lca.SeverityHigh:
		color = colorHigh
	case lca.SeverityMedium:
		color = colorMedium
	default:
		color = colorLow
	}
	return p.style(lipgloss.NewStyle().Foreground(color).Bold(true), label)
}

func (p *printer) flags(flags []lca.GreenwashFlag) {
	if len(flags) == 0 {
		p.line("%s no greenwashing flags raised", p.style(lipgloss.NewStyle().Foreground(colorPositive), "✓"))
		return
	}
	for _, f := range flags {
		p.line("%s %s", p.severity(f.Severity), f.Kind)
		p.line("    claim:   %s", f.Claim)
		p.line("    reality: %s", f.Reality)
		p.line("    advice:  %s", f.Recommendation)
	}
}

func (p *printer) grid(g analysis.GridContext) {
	state := g.State
	if state == "" {
		state = "(none)"
	}
	p.line("Grid: %s at %s kg CO₂/kWh (%s, %s)", state, greenops.FormatFloat(g.Intensity, 2), g.Category, g.Source)
}

func kg(v int64) string {
	return greenops.FormatNumber(v) + " kg"
}

func vehicleLabel(v catalog.Vehicle) string {
	return fmt.Sprintf("%s (%s)", v.Name(), v.FuelType)
}

func efficiency(v catalog.Vehicle) string {
	if v.MIDCEfficiency <= 0 {
		return "-"
	}
	return greenops.FormatFloat(v.MIDCEfficiency, 2) + " " + v.FuelType.EfficiencyUnit()
}
