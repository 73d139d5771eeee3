// Package cmd implements the fi CLI application, to analyse and keep
// portfolio statements.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/navs23/fundinsights"
	"github.com/navs23/fundinsights/store"
	"github.com/sirupsen/logrus"
)

// Commands are the fi subcommands.
var Commands = []subcommands.Command{
	&analyzeCmd{},
	&saveCmd{},
	&listCmd{},
	&showCmd{},
	&renameCmd{},
	&deleteCmd{},
	&exportCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storePath = flag.String("store", "", "Path to the saved reports (default ~/.fundinsights/reports.jsonl, or reports.db for sqlite)")
var backend = flag.String("backend", "", "Saved reports backend: file or sqlite (default file)")
var currencyCode = flag.String("currency", "", "Currency of the statements amounts (default GBP)")
var verbose = flag.Bool("v", false, "Verbose output, same as FI_LOG_LEVEL=debug")

// setup loads the configuration and configures the logger accordingly.
func setup() (*Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	initLogger(cfg.LogLevel)
	return cfg, nil
}

// openReports opens the configured report collection.
func openReports(cfg *Config) (*store.Reports, error) {
	var b store.Backend
	switch cfg.Backend {
	case BackendSQLite:
		db, err := store.OpenSQLite(cfg.Store, logrus.StandardLogger())
		if err != nil {
			return nil, err
		}
		b = db
	default:
		b = store.NewFileBackend(cfg.Store, logrus.StandardLogger())
	}
	return store.NewReports(b, logrus.StandardLogger()), nil
}

// readInput reads the statement from file, or from stdin when file is empty or "-".
func readInput(file string) (string, error) {
	if file == "" || file == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("cannot read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("cannot read statement: %w", err)
	}
	return string(data), nil
}

// logWarnings reports what the parser tolerated.
func logWarnings(a *fundinsights.Analysis) {
	if a.SkippedRows > 0 {
		logrus.WithField("report", a.Name).Warnf("%d lines skipped, they have fewer cells than the header", a.SkippedRows)
	}
	for _, w := range a.CellWarnings {
		logrus.WithFields(logrus.Fields{
			"report": a.Name,
			"line":   w.Line,
			"column": w.Column,
		}).Warnf("cannot read %q as an amount", w.Value)
	}
}

// reportArg returns the single optional report name of the command line.
func reportArg(f *flag.FlagSet) (string, bool) {
	switch f.NArg() {
	case 0:
		return "", true
	case 1:
		return strings.TrimSpace(f.Arg(0)), true
	default:
		return "", false
	}
}
