package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/smart-diff/internal/api"
	"github.com/standardbeagle/smart-diff/internal/config"
	"github.com/standardbeagle/smart-diff/internal/types"
)

func compareCommand() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "compare two directory trees and print a summary",
		ArgsUsage: "<source-dir> <target-dir>",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "threshold", Usage: "similarity threshold below which a pair is not a match"},
			&cli.Float64Flag{Name: "weight-signature"},
			&cli.Float64Flag{Name: "weight-body"},
			&cli.Float64Flag{Name: "weight-context"},
			&cli.BoolFlag{Name: "no-recursive", Usage: "do not descend into subdirectories"},
			&cli.StringSliceFlag{Name: "include", Usage: "glob pattern(s) of files to include"},
			&cli.StringSliceFlag{Name: "exclude", Usage: "glob pattern(s) of files to ignore"},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 2 {
				return cli.Exit("expected <source-dir> <target-dir>", exitBadArguments)
			}

			fc, err := config.Load(resolveConfigPath(c))
			if err != nil {
				return cli.Exit(err, exitBadArguments)
			}
			opts := fc.ApplyDefaults()
			applyCompareFlags(c, &opts)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			id, comparison, err := api.Compare(ctx, c.Args().Get(0), c.Args().Get(1), opts)
			if err != nil {
				return cli.Exit(err, exitCodeFor(err))
			}
			if len(comparison.FunctionMatches) == 0 && len(comparison.FileChanges) == 0 {
				return cli.Exit(errNoSupportedFiles, exitNoFiles)
			}

			printComparisonSummary(id, comparison)
			return nil
		},
	}
}

func applyCompareFlags(c *cli.Context, opts *types.Options) {
	if c.IsSet("threshold") {
		opts.SimilarityThreshold = c.Float64("threshold")
	}
	if c.IsSet("weight-signature") {
		opts.Weights.Signature = c.Float64("weight-signature")
	}
	if c.IsSet("weight-body") {
		opts.Weights.Body = c.Float64("weight-body")
	}
	if c.IsSet("weight-context") {
		opts.Weights.Context = c.Float64("weight-context")
	}
	if c.Bool("no-recursive") {
		opts.Recursive = false
	}
	if c.IsSet("include") {
		opts.FilePatterns = c.StringSlice("include")
	}
	if c.IsSet("exclude") {
		opts.IgnorePatterns = c.StringSlice("exclude")
	}
}

func resolveConfigPath(c *cli.Context) string {
	if p := c.String("config"); p != "" {
		return p
	}
	return config.DefaultPath
}

func printComparisonSummary(id uuid.UUID, comparison *types.Comparison) {
	fmt.Printf("comparison %s (%s)\n", id, comparison.AnalysisDuration)

	table := tablewriter.NewWriter(coloredOut())
	table.Header("kind", "count")
	for _, kind := range []types.MatchKind{
		types.MatchIdentical, types.MatchModified, types.MatchRenamed,
		types.MatchMoved, types.MatchAdded, types.MatchDeleted,
	} {
		table.Append(colorizeKind(kind), fmt.Sprintf("%d", comparison.Summary.Counts[kind]))
	}
	table.Render()

	fmt.Printf("mean change magnitude: %.3f (stddev %.3f)\n",
		comparison.Summary.MeanMagnitude, comparison.Summary.StdDevMagnitude)
}

func colorizeKind(kind types.MatchKind) string {
	switch kind {
	case types.MatchAdded:
		return color.GreenString(kind.String())
	case types.MatchDeleted:
		return color.RedString(kind.String())
	case types.MatchModified, types.MatchRenamed, types.MatchMoved:
		return color.YellowString(kind.String())
	default:
		return kind.String()
	}
}
