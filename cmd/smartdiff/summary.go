package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/smart-diff/internal/api"
)

func summaryCommand() *cli.Command {
	return &cli.Command{
		Name:      "summary",
		Usage:     "print a stored comparison's summary",
		ArgsUsage: "<comparison-id>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.Exit("expected <comparison-id>", exitBadArguments)
			}
			id, err := uuid.Parse(c.Args().Get(0))
			if err != nil {
				return cli.Exit(fmt.Sprintf("invalid comparison id: %v", err), exitBadArguments)
			}
			summary, err := api.Summary(id)
			if err != nil {
				return cli.Exit(err, exitCodeFor(err))
			}
			for kind, count := range summary.Counts {
				fmt.Printf("%-10s %d\n", kind, count)
			}
			fmt.Printf("mean=%.3f stddev=%.3f duration=%s\n",
				summary.MeanMagnitude, summary.StdDevMagnitude, summary.AnalysisDuration)
			return nil
		},
	}
}
