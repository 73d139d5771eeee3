package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/navs23/fundinsights"
)

type saveCmd struct {
	file string
	name string
}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "save a statement into the report collection" }
func (*saveCmd) Usage() string {
	return `fi save [-f <file>] [-name <name>]

  Saves a statement under a name. The name defaults to the envelope name,
  or to the first and last months of the statement, e.g. "Jan 2023 To Dec 2024".

  A report with the same name is overwritten.
`
}

func (c *saveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Statement file, - for stdin.")
	f.StringVar(&c.name, "name", "", "Report name.")
}

func (c *saveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	reports, err := openReports(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening saved reports: %v\n", err)
		return subcommands.ExitFailure
	}
	defer reports.Close()

	_, overwritten, err := reports.Save(ctx, report.Name, report.RawData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving report: %v\n", err)
		return subcommands.ExitFailure
	}
	if overwritten {
		fmt.Println("Overwritten!")
	} else {
		fmt.Println("Saved!")
	}
	return subcommands.ExitSuccess
}
