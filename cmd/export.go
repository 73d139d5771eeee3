package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/navs23/fundinsights"
	"github.com/navs23/fundinsights/chart"
	"gopkg.in/yaml.v3"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatXLSX = "xlsx"
)

type exportCmd struct {
	format string
	output string
	file   string
	report string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export an analysis as json, yaml or a spreadsheet" }
func (*exportCmd) Usage() string {
	return `fi export [-format json|yaml|xlsx] [-o <file>] [-f <file> | -r <name>]

  Writes the analysis of a statement: the summary, and the rollup of every
  year with its months. The xlsx format is a workbook with the yearly table
  and the annual returns and portfolio value charts.

  The statement is read from -f, or the saved report -r, or stdin.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", FormatJSON, "Output format: json, yaml or xlsx.")
	f.StringVar(&c.output, "o", "", "Output file, defaults to stdout (required for xlsx).")
	f.StringVar(&c.file, "f", "", "Statement file, - for stdin.")
	f.StringVar(&c.report, "r", "", "Saved report name.")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	switch {
	case c.format != FormatJSON && c.format != FormatYAML && c.format != FormatXLSX:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	case c.file != "" && c.report != "":
		fmt.Fprintln(os.Stderr, "Error: -f and -r are mutually exclusive")
		return subcommands.ExitUsageError
	case c.format == FormatXLSX && c.output == "":
		fmt.Fprintln(os.Stderr, "Error: xlsx export requires -o")
		return subcommands.ExitUsageError
	}

	cfg, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var report fundinsights.SavedReport
	if c.report != "" {
		reports, err := openReports(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening saved reports: %v\n", err)
			return subcommands.ExitFailure
		}
		report, err = reports.Get(ctx, c.report)
		reports.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	} else {
		input, err := readInput(c.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if report, err = fundinsights.DecodeInput(input); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	a, err := fundinsights.AnalyzeReport(report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	logWarnings(a)

	var w io.Writer = os.Stdout
	if c.output != "" {
		out, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		w = out
	}

	if err := export(w, a, c.format, cfg.Currency); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// export writes a in format to w.
func export(w io.Writer, a *fundinsights.Analysis, format, currency string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newExportDoc(a))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newExportDoc(a)); err != nil {
			return err
		}
		return enc.Close()
	case FormatXLSX:
		s := chart.NewSession(currency)
		defer s.Close()
		if err := s.Render(a); err != nil {
			return err
		}
		_, err := s.WriteTo(w)
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}

// exportDoc is the exported form of an analysis.
type exportDoc struct {
	Name     string               `json:"name" yaml:"name"`
	Summary  fundinsights.Summary `json:"summary" yaml:"summary"`
	Years    []yearDoc            `json:"years" yaml:"years"`
	Warnings []string             `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

type yearDoc struct {
	Year               string                       `json:"year" yaml:"year"`
	PartialYear        bool                         `json:"partialYear" yaml:"partialYear"`
	StartBalance       fundinsights.Amount          `json:"startBalance" yaml:"startBalance"`
	TotalContributions fundinsights.Amount          `json:"totalContributions" yaml:"totalContributions"`
	TotalMarketGains   fundinsights.Amount          `json:"totalMarketGains" yaml:"totalMarketGains"`
	TotalIncome        fundinsights.Amount          `json:"totalIncome" yaml:"totalIncome"`
	TotalFees          fundinsights.Amount          `json:"totalFees" yaml:"totalFees"`
	TotalReturns       fundinsights.Amount          `json:"totalReturns" yaml:"totalReturns"`
	ReturnPercentage   fundinsights.Percent         `json:"returnPercentage" yaml:"returnPercentage"`
	EndBalance         fundinsights.Amount          `json:"endBalance" yaml:"endBalance"`
	Months             []fundinsights.MonthlyRecord `json:"months" yaml:"months"`
}

func newExportDoc(a *fundinsights.Analysis) exportDoc {
	doc := exportDoc{Name: a.Name, Summary: a.Summary}
	for _, y := range a.Rollups.Sorted() {
		doc.Years = append(doc.Years, yearDoc{
			Year:               y.Year,
			PartialYear:        y.IsPartialYear(),
			StartBalance:       y.StartBalance,
			TotalContributions: y.TotalContributions,
			TotalMarketGains:   y.TotalMarketGains,
			TotalIncome:        y.TotalIncome,
			TotalFees:          y.TotalFees,
			TotalReturns:       y.TotalReturns,
			ReturnPercentage:   y.ReturnPercentage,
			EndBalance:         y.EndBalance,
			Months:             y.Months,
		})
	}
	if a.SkippedRows > 0 {
		doc.Warnings = append(doc.Warnings, fmt.Sprintf("%d lines skipped", a.SkippedRows))
	}
	for _, w := range a.CellWarnings {
		doc.Warnings = append(doc.Warnings, w.String())
	}
	return doc
}
