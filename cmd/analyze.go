package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/navs23/fundinsights"
	"github.com/navs23/fundinsights/renderer"
)

type analyzeCmd struct {
	file     string
	name     string
	html     string
	year     string
	plain    bool
	noCharts bool
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "analyse a portfolio statement" }
func (*analyzeCmd) Usage() string {
	return `fi analyze [-f <file>] [-name <name>] [-year <year>] [-html <out>] [-plain]

  Reads a monthly statement, either tab separated text copied from a
  spreadsheet or a saved report envelope {"name": ..., "rawData": ...}, and
  prints its yearly performance report.

  The statement is read from stdin when -f is not set.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Statement file, - for stdin.")
	f.StringVar(&c.name, "name", "", "Report name, defaults to the envelope name or the statement months.")
	f.StringVar(&c.year, "year", "", "Only print the monthly breakdown of this year.")
	f.StringVar(&c.html, "html", "", "Also write the report as a standalone HTML page into this file.")
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown instead of rendering it for the terminal.")
	f.BoolVar(&c.noCharts, "no-charts", false, "Do not print the annual returns and portfolio value charts.")
}

func (c *analyzeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	input, err := readInput(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	report, err := fundinsights.DecodeInput(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if name := strings.TrimSpace(c.name); name != "" {
		report.Name = name
	}

	a, err := fundinsights.AnalyzeReport(report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	logWarnings(a)

	opts := renderer.Options{Currency: cfg.Currency, SkipCharts: c.noCharts}
	doc, err := document(a, c.year, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if c.html != "" {
		page, err := renderer.HTML(a.Name, doc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering HTML: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := os.WriteFile(c.html, page, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.html, err)
			return subcommands.ExitFailure
		}
	}

	printReport(doc, c.plain)
	return subcommands.ExitSuccess
}

// document renders the whole analysis, or a single year when year is set.
func document(a *fundinsights.Analysis, year string, opts renderer.Options) (string, error) {
	if year == "" {
		return renderer.AnalysisMarkdown(a, opts), nil
	}
	y, ok := a.Rollups[strings.TrimSuffix(strings.TrimSpace(year), "*")]
	if !ok {
		return "", fmt.Errorf("unknown year %q, available years are %s", year, strings.Join(a.Years(), ", "))
	}
	return renderer.YearMarkdown(y, opts), nil
}

func printReport(doc string, plain bool) {
	if plain {
		fmt.Print(doc)
		return
	}
	printMarkdown(doc)
}
