// Package renderer turns an analysis into human readable markdown, and
// markdown into a standalone HTML page.
package renderer

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/navs23/fundinsights"
	md "github.com/nao1215/markdown"
)

// Options holds configuration for rendering an analysis.
type Options struct {
	Currency     string // display currency code, defaults to fundinsights.DefaultCurrency
	SkipCharts   bool   // do not render the annual returns and portfolio value sections
	SkipWarnings bool   // do not render the list of unreadable cells
}

func (o Options) currency() string {
	if o.Currency == "" {
		return fundinsights.DefaultCurrency
	}
	return o.Currency
}

// AnalysisMarkdown renders the complete analysis: summary cards, yearly
// table and chart series.
func AnalysisMarkdown(a *fundinsights.Analysis, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	cur := opts.currency()

	doc.H1(a.Name)

	doc.H2("Summary")
	doc.Table(summaryTable(a.Summary, cur))

	doc.H2("Yearly Performance")
	doc.Table(yearlyTable(a.Rollups, a.Summary, cur))

	if !opts.SkipCharts {
		years := a.Rollups.Sorted()
		doc.H2(fmt.Sprintf("Annual Returns (%s)", symbol(cur)))
		doc.Table(seriesTable("Total Returns", years, cur, func(y *fundinsights.YearlyRollup) fundinsights.Amount { return y.TotalReturns }))
		doc.H2(fmt.Sprintf("Portfolio Value (%s)", symbol(cur)))
		doc.Table(seriesTable("End Balance", years, cur, func(y *fundinsights.YearlyRollup) fundinsights.Amount { return y.EndBalance }))
	}

	if !opts.SkipWarnings && (a.SkippedRows > 0 || len(a.CellWarnings) > 0) {
		doc.H2("Warnings")
		var items []string
		if a.SkippedRows > 0 {
			items = append(items, fmt.Sprintf("%d line(s) with missing cells were skipped", a.SkippedRows))
		}
		for _, w := range a.CellWarnings {
			items = append(items, md.Code(w.String()))
		}
		doc.BulletList(items...)
	}

	return doc.String()
}

func summaryTable(s fundinsights.Summary, cur string) md.TableSet {
	value := "-"
	if s.CurrentValue != 0 {
		value = s.CurrentValue.Format(cur)
	}
	return md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total Portfolio Value"), md.Bold(value)},
		Rows: [][]string{
			{"Total Invested", s.TotalInvested.Format(cur)},
			{"Total Returns", s.TotalReturns.Format(cur)},
			{"Overall Return Rate", s.OverallReturnRate.Format(1)},
		},
	}
}

func yearlyTable(r fundinsights.Rollups, s fundinsights.Summary, cur string) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Year", "Start Balance", "Contributions", "Market Gains", "Total Returns", "Return %", "End Balance"},
	}
	for _, y := range r.Sorted() {
		table.Rows = append(table.Rows, []string{
			y.Label(),
			y.StartBalance.Format(cur),
			y.TotalContributions.Format(cur),
			y.TotalMarketGains.Format(cur),
			y.TotalReturns.Format(cur),
			y.ReturnPercentage.Format(1),
			y.EndBalance.Format(cur),
		})
	}
	if s.AverageCount > 0 {
		table.Rows = append(table.Rows, []string{md.Bold("Average Return % by Year:"), "", "", "", "", md.Bold(s.AverageReturnPercentage.Format(2)), ""})
	}
	table.Rows = append(table.Rows, []string{md.Italic("\\* Partial year data"), "", "", "", "", "", ""})
	return table
}

// barWidth is the length of the longest bar in a series.
const barWidth = 24

// seriesTable renders one value per year with a proportional text bar.
func seriesTable(title string, years []*fundinsights.YearlyRollup, cur string, value func(*fundinsights.YearlyRollup) fundinsights.Amount) md.TableSet {
	var peak float64
	for _, y := range years {
		if v := value(y); v.IsFinite() {
			peak = math.Max(peak, math.Abs(float64(v)))
		}
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Year", title, ""},
	}
	for _, y := range years {
		v := value(y)
		table.Rows = append(table.Rows, []string{y.Label(), v.Format(cur), bar(v, peak)})
	}
	return table
}

// bar draws v relative to peak, negative values use a lighter shade.
func bar(v fundinsights.Amount, peak float64) string {
	if !v.IsFinite() || peak == 0 {
		return ""
	}
	n := int(math.Round(math.Abs(float64(v)) / peak * barWidth))
	if v < 0 {
		return strings.Repeat("░", n)
	}
	return strings.Repeat("█", n)
}

// symbol returns the currency symbol, e.g. "£" for GBP.
func symbol(code string) string {
	g := fundinsights.CurrencySymbol(code)
	if g == "" {
		return code
	}
	return g
}
