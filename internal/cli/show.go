package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/missionlayout/pkg/graph"
	"github.com/matzehuels/missionlayout/pkg/pipeline"
	"github.com/matzehuels/missionlayout/pkg/render/grid"
)

// showCommand creates the show command, which prints a layout in the terminal.
func (c *CLI) showCommand() *cobra.Command {
	var (
		lf      layoutFlags
		selects []string
		plain   bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a layout as a grid in the terminal",
		Long: `Print a layout as a grid in the terminal.

Entrances, exits, empty slots and selected slots are colored. Use --select to
highlight the slots an index term resolves to.`,
		Example: `  missionlayout show --layout gauntlet --size 7
  missionlayout show -l grid -n 12 -s "rect(0,0,2,2)" -s exits
  missionlayout show --from mission.json --plain`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, opts, hit, err := c.load(cmd.Context(), cmd, &lf)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("select") {
				opts.Select = selects
			}
			selection, err := pipeline.Select(doc, opts.Select...)
			if err != nil {
				return err
			}
			writeShow(cmd.OutOrStdout(), doc, selection, hit, plain)
			return nil
		},
	}

	lf.register(cmd, true)
	cmd.Flags().StringArrayVarP(&selects, "select", "s", nil, "index term to highlight (repeatable)")
	cmd.Flags().BoolVar(&plain, "plain", false, "print the bare grid without borders or legend")

	return cmd
}

func writeShow(w io.Writer, doc graph.Layout, selection []int, cached, plain bool) {
	gridOpts := grid.Options{Highlight: selection}
	if plain {
		fmt.Fprintln(w, grid.Render(doc, gridOpts))
		return
	}

	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("%s layout", doc.Layout)))
	fmt.Fprintln(w, grid.Table(doc, gridOpts))
	fmt.Fprintln(w, grid.Legend())
	fmt.Fprintln(w)

	printKeyValue(w, "size", fmt.Sprintf("%d (effective %d)", doc.Size, doc.EffectiveSize))
	printKeyValue(w, "entrances", formatIndices(doc.Entrances()))
	printKeyValue(w, "exits", formatIndices(doc.Exits()))
	if empties := doc.Empties(); len(empties) > 0 {
		printKeyValue(w, "empty", formatIndices(empties))
	}
	if len(selection) > 0 {
		printKeyValue(w, "selected", formatIndices(selection))
	}
	printKeyValue(w, "functions", strings.Join(doc.IndexFunctions, ", "))
	printStats(w, len(doc.Slots), doc.EdgeCount(), cached)

	if len(doc.Unused) > 0 {
		keys := make([]string, 0, len(doc.Unused))
		for k := range doc.Unused {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		printWarning(w, "unused options: %s", strings.Join(keys, ", "))
	}
}

// formatIndices joins indices with spaces; an empty list prints as "-".
func formatIndices(indices []int) string {
	if len(indices) == 0 {
		return "-"
	}
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = fmt.Sprint(idx)
	}
	return strings.Join(parts, " ")
}
