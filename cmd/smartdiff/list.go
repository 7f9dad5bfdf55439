package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/smart-diff/internal/api"
	"github.com/standardbeagle/smart-diff/internal/types"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "list a stored comparison's function-level changes",
		ArgsUsage: "<comparison-id>",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "kind", Usage: "filter to one or more of identical,modified,renamed,moved,added,deleted"},
			&cli.Float64Flag{Name: "min-magnitude", Usage: "drop matches below this change magnitude"},
			&cli.StringFlag{Name: "sort", Usage: "magnitude|similarity|name", Value: "magnitude"},
			&cli.BoolFlag{Name: "desc", Usage: "sort descending"},
			&cli.IntFlag{Name: "limit", Usage: "cap the number of rows printed"},
			&cli.StringFlag{Name: "format", Usage: "table|toml", Value: "table"},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.Exit("expected <comparison-id>", exitBadArguments)
			}
			id, err := uuid.Parse(c.Args().Get(0))
			if err != nil {
				return cli.Exit(fmt.Sprintf("invalid comparison id: %v", err), exitBadArguments)
			}

			opts := api.ListOptions{
				MinMagnitude: c.Float64("min-magnitude"),
				SortBy:       sortFieldFromFlag(c.String("sort")),
				Descending:   c.Bool("desc"),
				Limit:        c.Int("limit"),
			}
			if kinds := c.StringSlice("kind"); len(kinds) > 0 {
				opts.Kinds = make(map[types.MatchKind]struct{}, len(kinds))
				for _, k := range kinds {
					opts.Kinds[parseMatchKind(k)] = struct{}{}
				}
			}

			matches, err := api.ListChanges(id, opts)
			if err != nil {
				return cli.Exit(err, exitCodeFor(err))
			}

			if c.String("format") == "toml" {
				return printListTOML(matches)
			}
			printListTable(matches)
			return nil
		},
	}
}

func sortFieldFromFlag(v string) api.SortField {
	switch v {
	case "similarity":
		return api.SortBySimilarity
	case "name":
		return api.SortByName
	default:
		return api.SortByMagnitude
	}
}

func parseMatchKind(s string) types.MatchKind {
	switch s {
	case "identical":
		return types.MatchIdentical
	case "renamed":
		return types.MatchRenamed
	case "moved":
		return types.MatchMoved
	case "added":
		return types.MatchAdded
	case "deleted":
		return types.MatchDeleted
	default:
		return types.MatchModified
	}
}

func printListTable(matches []*types.FunctionMatch) {
	table := tablewriter.NewWriter(coloredOut())
	table.Header("kind", "function", "magnitude", "similarity")
	for _, m := range matches {
		table.Append(colorizeKind(m.Kind), m.SortKey(),
			fmt.Sprintf("%.3f", m.ChangeMagnitude), fmt.Sprintf("%.3f", m.Similarity.Overall))
	}
	table.Render()
}

type listRow struct {
	Kind       string  `toml:"kind"`
	Function   string  `toml:"function"`
	Magnitude  float64 `toml:"magnitude"`
	Similarity float64 `toml:"similarity"`
}

func printListTOML(matches []*types.FunctionMatch) error {
	rows := make([]listRow, len(matches))
	for i, m := range matches {
		rows[i] = listRow{Kind: m.Kind.String(), Function: m.SortKey(), Magnitude: m.ChangeMagnitude, Similarity: m.Similarity.Overall}
	}
	out, err := toml.Marshal(struct {
		Changes []listRow `toml:"changes"`
	}{Changes: rows})
	if err != nil {
		return cli.Exit(err, exitInternal)
	}
	fmt.Print(string(out))
	return nil
}
