package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/navs23/fundinsights"
	"github.com/navs23/fundinsights/renderer"
	"github.com/navs23/fundinsights/store"
)

type showCmd struct {
	json     bool
	plain    bool
	year     string
	noCharts bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "show a saved report" }
func (*showCmd) Usage() string {
	return `fi show [-json] [-year <year>] [-plain] [<name>]

  Prints the performance report of a saved report, the last saved one by
  default. With -json it prints the report envelope instead, that can be
  read back by analyze or save.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the report envelope.")
	f.StringVar(&c.year, "year", "", "Only print the monthly breakdown of this year.")
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown instead of rendering it for the terminal.")
	f.BoolVar(&c.noCharts, "no-charts", false, "Do not print the annual returns and portfolio value charts.")
}

func (c *showCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name, ok := reportArg(f)
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: show accepts at most one report name")
		return subcommands.ExitUsageError
	}
	cfg, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	reports, err := openReports(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening saved reports: %v\n", err)
		return subcommands.ExitFailure
	}
	defer reports.Close()

	report, err := loadReport(ctx, reports, name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json {
		data, err := json.Marshal(report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(data))
		return subcommands.ExitSuccess
	}

	a, err := fundinsights.AnalyzeReport(report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	logWarnings(a)
	doc, err := document(a, c.year, renderer.Options{Currency: cfg.Currency, SkipCharts: c.noCharts})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printReport(doc, c.plain)
	return subcommands.ExitSuccess
}

// loadReport returns the saved report called name, or the last saved one
// when name is empty.
func loadReport(ctx context.Context, reports *store.Reports, name string) (fundinsights.SavedReport, error) {
	if name == "" {
		return reports.Last(ctx)
	}
	return reports.Get(ctx, name)
}
