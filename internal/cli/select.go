package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/missionlayout/pkg/pipeline"
)

// selectCommand creates the select command, which resolves index terms.
func (c *CLI) selectCommand() *cobra.Command {
	var (
		lf     layoutFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "select TERM...",
		Short: "Resolve index terms to slot indices",
		Long: `Resolve index terms to slot indices.

Terms are index functions of the layout, such as "point(1,2)" or
"rect(0,0,2,2)" for grids, or one of the keywords entrances, exits and all.
The union of all terms is printed in ascending order.`,
		Example: `  missionlayout select -l grid -n 12 -w 4 "rect(0,0,2,2)" exits
  missionlayout select --from mission.json "corner(1)"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, _, err := c.load(cmd.Context(), cmd, &lf)
			if err != nil {
				return err
			}
			selection, err := pipeline.Select(doc, args...)
			if err != nil {
				return err
			}
			c.Logger.Debug("resolved selection", "terms", args, "indices", selection)

			w := cmd.OutOrStdout()
			if asJSON {
				return json.NewEncoder(w).Encode(selection)
			}
			fmt.Fprintln(w, formatIndices(selection))
			return nil
		},
	}

	lf.register(cmd, true)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the indices as a JSON array")

	return cmd
}
