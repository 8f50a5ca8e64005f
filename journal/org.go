package journal

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"
	"time"
)

var runOrgFuncs = template.FuncMap{
	"short": shortID,
	"secs":  func(d time.Duration) string { return fmt.Sprintf("%.6f", d.Seconds()) },
	"orTime": func(t time.Time) time.Time {
		if t.IsZero() {
			return time.Now()
		}
		return t
	},
}

var runOrgTemplate = template.Must(template.New("run").Funcs(runOrgFuncs).Parse(RunOrgTemplate))

// FormatRunOrg renders a run as an Org-mode block: facts in a
// PROPERTIES drawer, the summary as a list and timings as a table.
func FormatRunOrg(r RunRecord) string {
	var buf bytes.Buffer
	if err := runOrgTemplate.Execute(&buf, r); err != nil {
		return fmt.Sprintf("** Run: %s (render error: %v)\n", r.RunID, err)
	}
	return buf.String()
}

// FormatRunsOrg renders multiple runs separated by blank lines.
func FormatRunsOrg(runs []RunRecord) string {
	var b strings.Builder
	for i, r := range runs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatRunOrg(r))
	}
	return b.String()
}

// FormatStepsOrg renders reported steps as an Org table.
func FormatStepsOrg(steps []StepRecord) string {
	var b strings.Builder
	b.WriteString("| Step | Adjusted | Units | Revenue |\n")
	b.WriteString("|------+----------+-------+---------|\n")
	for _, s := range steps {
		adj := ""
		if s.Adjusted {
			adj = "yes"
		}
		fmt.Fprintf(&b, "| %d | %s | %d | %.2f |\n", s.Step, adj, s.Units, s.Revenue)
	}
	return b.String()
}

// WriteRunOrg writes the Org block for r to path.
func WriteRunOrg(path string, r RunRecord) error {
	return os.WriteFile(path, []byte(FormatRunOrg(r)), 0644)
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}

const RunOrgTemplate = `** Run: {{short .RunID}} ({{.Vendors}} vendors, {{.Steps}} steps)
:PROPERTIES:
:RUN_ID:      {{.RunID}}
:CREATED:     [{{(orTime .Created).Format "2006-01-02 Mon 15:04"}}]
:SEED:        {{.Seed}}
:VENDORS:     {{.Vendors}}
:STEPS:       {{.Steps}}
:WORKERS:     {{.Workers}}
:PRICE_MIN:   {{printf "%.2f" .PriceMin}}
:PRICE_MAX:   {{printf "%.2f" .PriceMax}}
:END:

*** Summary
- Best vendor:      Puesto {{.BestVendorID}} ({{.BestVendorSales}} sales)
- Total revenue:    Q{{printf "%.2f" .TotalRevenue}}
- Units sold:       {{.TotalUnits}}
- Avg final price:  Q{{printf "%.2f" .AveragePrice}}
- Revenue per unit: Q{{printf "%.2f" .RevenuePerUnit}}

*** Timings
| Phase   | Seconds |
|---------+---------|
| sales   | {{secs .SalesTime}} |
| pricing | {{secs .PricingTime}} |
| display | {{secs .DisplayTime}} |
| total   | {{secs .TotalTime}} |
`
