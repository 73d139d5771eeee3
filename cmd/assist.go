package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/navs23/fundinsights"
	"github.com/navs23/fundinsights/agent"
	"github.com/navs23/fundinsights/renderer"
	"google.golang.org/genai"
)

type assistCmd struct {
	report string
	plain  bool
}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive session with the AI assistant about a saved report"
}
func (*assistCmd) Usage() string {
	return `fi assist [-r <name>] [<prompt>...]

  Starts an interactive session with the AI assistant, about the saved
  report -r or the last saved one. The prompt, if any, is the first question.

  The assistant uses Gemini models, set GEMINI_API_KEY (or GOOGLE_API_KEY).
  The model is set by FI_MODEL.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.report, "r", "", "Saved report name, defaults to the last saved report.")
	f.BoolVar(&c.plain, "plain", false, "Print the replies as raw markdown.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	report, err := loadReport(ctx, reports, strings.TrimSpace(c.report))
	reports.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	a, err := fundinsights.AnalyzeReport(report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	logWarnings(a)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyst := agent.NewAnalyst(cfg.Model, a, renderer.Options{Currency: cfg.Currency})
	economist := agent.NewEconomist(cfg.Model)
	assistant := agent.New(os.Stdout, os.Stdin, cfg.Model, analyst, economist)
	if !c.plain {
		assistant.Markdown = renderMarkdown
	}
	if err := assistant.Start(ctx, client); err != nil {
		fmt.Fprintln(os.Stderr, "Error starting the assistant:", err)
		return subcommands.ExitFailure
	}

	if err := assistant.Run(ctx, strings.Join(f.Args(), " ")); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
