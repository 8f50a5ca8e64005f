// Package report prints the end-of-run summary.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rustyeddy/puestos/journal"
)

var (
	titleColor = lipgloss.Color("#7C3AED")
	ruleColor  = lipgloss.Color("#6B7280")
	valueColor = lipgloss.Color("#10B981")
)

type styles struct {
	title lipgloss.Style
	rule  lipgloss.Style
	value lipgloss.Style
}

// newStyles binds styles to w so colors are dropped when w is not a terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().Bold(true).Foreground(titleColor),
		rule:  r.NewStyle().Foreground(ruleColor),
		value: r.NewStyle().Foreground(valueColor),
	}
}

const rule = "=================================================="

// PrintSummary writes the final summary of a run: best seller, totals,
// averages and the phase timing breakdown.
func PrintSummary(w io.Writer, r journal.RunRecord) {
	s := newStyles(w)

	fmt.Fprintln(w, s.rule.Render(rule))
	fmt.Fprintln(w, s.title.Render(fmt.Sprintf(" Final summary after %d steps", r.Steps)))
	fmt.Fprintln(w, s.rule.Render(rule))

	if r.RunID != "" {
		fmt.Fprintf(w, "Run ID:            %s\n", r.RunID)
	}
	fmt.Fprintf(w, "Vendors:           %d (workers: %d, seed: %d)\n", r.Vendors, r.Workers, r.Seed)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Best vendor:       Puesto %s (%d sales)\n", s.value.Render(fmt.Sprint(r.BestVendorID)), r.BestVendorSales)
	fmt.Fprintf(w, "Total revenue:     Q%s\n", s.value.Render(fmt.Sprintf("%.2f", r.TotalRevenue)))
	fmt.Fprintf(w, "Units sold:        %d\n", r.TotalUnits)
	fmt.Fprintf(w, "Avg final price:   Q%.2f\n", r.AveragePrice)
	fmt.Fprintf(w, "Revenue per unit:  Q%.2f\n", r.RevenuePerUnit)

	fmt.Fprintln(w)
	fmt.Fprintln(w, s.title.Render("Timings"))
	fmt.Fprintln(w, s.rule.Render("--------------------------------------------------"))
	fmt.Fprintf(w, "Total:             %s\n", seconds(r.TotalTime))
	fmt.Fprintf(w, " - display:        %s\n", seconds(r.DisplayTime))
	fmt.Fprintf(w, " - pricing:        %s\n", seconds(r.PricingTime))
	fmt.Fprintf(w, " - sales:          %s\n", seconds(r.SalesTime))
	fmt.Fprintln(w)
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.6f s", d.Seconds())
}
