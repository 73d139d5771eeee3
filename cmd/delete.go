package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a saved report" }
func (*deleteCmd) Usage() string {
	return `fi delete <name>

  Deletes a saved report.
`
}

func (*deleteCmd) SetFlags(f *flag.FlagSet) {}

func (*deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: delete requires the report name")
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

	if err := reports.Delete(ctx, f.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting report: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
