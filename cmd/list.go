package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the saved reports" }
func (*listCmd) Usage() string {
	return `fi list

  Prints the names of the saved reports, in the order they were saved.
`
}

func (*listCmd) SetFlags(f *flag.FlagSet) {}

func (*listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	list, err := reports.List(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing reports: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, r := range list {
		fmt.Println(r.Name)
	}
	return subcommands.ExitSuccess
}
