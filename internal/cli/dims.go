package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/missionlayout/pkg/errors"
	"github.com/matzehuels/missionlayout/pkg/layout"
	"github.com/matzehuels/missionlayout/pkg/pipeline"
)

var dimsHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
var dimsCellStyle = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)

// dimsCommand creates the dims command, which prints default grid dimensions.
func (c *CLI) dimsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dims N...",
		Short: "Print the default grid dimensions for slot counts",
		Long: `Print the most square grid that holds N slots.

Width, height and the number of cells marked empty are what a grid layout
uses when no width is given.`,
		Example: `  missionlayout dims 7 12 33`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := dimsRows(args)
			if err != nil {
				return err
			}
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(StyleDim).
				Headers("slots", "width", "height", "empty").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return dimsHeaderStyle
					}
					return dimsCellStyle
				})
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

func dimsRows(args []string) ([][]string, error) {
	rows := make([][]string, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, apperrors.New(apperrors.ErrCodeInvalidSize, "slot count must be an integer, got %q", arg)
		}
		if err := pipeline.ValidateSize(n); err != nil {
			return nil, err
		}
		w, h, e := layout.GridDimensions(n)
		rows = append(rows, []string{strconv.Itoa(n), strconv.Itoa(w), strconv.Itoa(h), strconv.Itoa(e)})
	}
	return rows, nil
}
