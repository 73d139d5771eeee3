package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type renameCmd struct{}

func (*renameCmd) Name() string     { return "rename" }
func (*renameCmd) Synopsis() string { return "rename a saved report" }
func (*renameCmd) Usage() string {
	return `fi rename <old> <new>

  Renames a saved report. It fails if another report already has the new name.
`
}

func (*renameCmd) SetFlags(f *flag.FlagSet) {}

func (*renameCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: rename requires the old and the new name")
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

	if err := reports.Rename(ctx, f.Arg(0), f.Arg(1)); err != nil {
		fmt.Fprintf(os.Stderr, "Error renaming report: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
