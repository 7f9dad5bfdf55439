package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/smart-diff/internal/api"
)

func showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "show one function's structural and unified diff",
		ArgsUsage: "<comparison-id> <function-name>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 2 {
				return cli.Exit("expected <comparison-id> <function-name>", exitBadArguments)
			}
			id, err := uuid.Parse(c.Args().Get(0))
			if err != nil {
				return cli.Exit(fmt.Sprintf("invalid comparison id: %v", err), exitBadArguments)
			}

			match, err := api.GetFunctionDiff(id, c.Args().Get(1))
			if err != nil {
				return cli.Exit(err, exitCodeFor(err))
			}

			fmt.Printf("%s  similarity=%.3f  magnitude=%.3f\n",
				colorizeKind(match.Kind), match.Similarity.Overall, match.ChangeMagnitude)
			if match.EditScript != nil {
				fmt.Printf("%d structural edit ops (fast=%v)\n", len(match.EditScript.Ops), match.EditScript.Fast)
			}
			if match.UnifiedDiff != "" {
				fmt.Println(match.UnifiedDiff)
			}
			return nil
		},
	}
}
