package cmd

import (
	"context"

	"github.com/navs23/fundinsights/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the fi command line.
//
// Install it with COMP_INSTALL=1 fi.
func Completion() *complete.Command {
	statement := predict.Files("*")
	names := complete.PredictFunc(reportNames)

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"store":    predict.Files("*"),
			"backend":  predict.Set{BackendFile, BackendSQLite},
			"currency": predict.Set{"GBP", "USD", "EUR"},
			"v":        predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"analyze": {
				Flags: map[string]complete.Predictor{
					"f":         statement,
					"name":      predict.Something,
					"year":      predict.Something,
					"html":      predict.Files("*.html"),
					"plain":     predict.Nothing,
					"no-charts": predict.Nothing,
				},
			},
			"save": {
				Flags: map[string]complete.Predictor{
					"f":    statement,
					"name": names,
				},
			},
			"list": {},
			"show": {
				Flags: map[string]complete.Predictor{
					"json":      predict.Nothing,
					"year":      predict.Something,
					"plain":     predict.Nothing,
					"no-charts": predict.Nothing,
				},
				Args: names,
			},
			"rename": {Args: names},
			"delete": {Args: names},
			"export": {
				Flags: map[string]complete.Predictor{
					"format": predict.Set{FormatJSON, FormatYAML, FormatXLSX},
					"o":      predict.Files("*"),
					"f":      statement,
					"r":      names,
				},
			},
			"assist": {
				Flags: map[string]complete.Predictor{
					"r":     names,
					"plain": predict.Nothing,
				},
			},
			"topic": {
				Flags: map[string]complete.Predictor{
					"plain": predict.Nothing,
				},
				Args: complete.PredictFunc(topicNames),
			},
		},
	}
}

// reportNames predicts the saved report names, with the environment configuration.
func reportNames(prefix string) []string {
	cfg, err := LoadConfig()
	if err != nil {
		return nil
	}
	reports, err := openReports(cfg)
	if err != nil {
		return nil
	}
	defer reports.Close()
	list, err := reports.List(context.Background())
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(list))
	for _, r := range list {
		names = append(names, r.Name)
	}
	return names
}

func topicNames(prefix string) []string {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return append(topics, "readme")
}
