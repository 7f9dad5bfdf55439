// Command smartdiff is the CLI adapter (§6's external interface) over
// internal/api: a thin urfave/cli wrapper, one subcommand per operation,
// following the teacher's cmd/lci/main.go shape.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/smart-diff/internal/debug"
	"github.com/standardbeagle/smart-diff/internal/version"
)

// Exit codes (§6): 0 normal, 2 bad arguments, 3 no supported files found,
// 4 cancelled, 5 internal error.
const (
	exitOK             = 0
	exitBadArguments   = 2
	exitNoFiles        = 3
	exitCancelled      = 4
	exitInternal       = 5
)

func main() {
	app := &cli.App{
		Name:    "smartdiff",
		Usage:   "structural code comparison across two directory trees",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "quiet", Usage: "suppress debug/progress output"},
			&cli.StringFlag{Name: "config", Usage: "path to a .smartdiff.kdl config file", Value: ""},
		},
		Before: func(c *cli.Context) error {
			debug.SetQuietMode(c.Bool("quiet"))
			return nil
		},
		Commands: []*cli.Command{
			compareCommand(),
			summaryCommand(),
			listCommand(),
			showCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "smartdiff:", err)
		os.Exit(exitCodeFor(err))
	}
}
