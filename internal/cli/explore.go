package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/missionlayout/pkg/graph"
	"github.com/matzehuels/missionlayout/pkg/pipeline"
	"github.com/matzehuels/missionlayout/pkg/render/grid"
)

// Explorer styles
var (
	explorePromptStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	exploreErrorStyle  = lipgloss.NewStyle().Foreground(colorYellow)
	exploreHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// termSeparator separates index terms typed into the explorer. Commas are
// taken by function arguments.
const termSeparator = ";"

// exploreCommand creates the interactive explore command.
func (c *CLI) exploreCommand() *cobra.Command {
	var lf layoutFlags

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Interactively resolve index terms against a layout",
		Long: `Open an interactive view of a layout.

Type index terms separated by ";" and press enter to highlight the slots
they resolve to. Press esc or ctrl+c to quit.`,
		Example: `  missionlayout explore -l grid -n 16 --two-start
  missionlayout explore --from mission.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			doc, _, _, err := c.load(ctx, cmd, &lf)
			if err != nil {
				return err
			}
			p := tea.NewProgram(newExploreModel(doc),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()))
			_, err = p.Run()
			return err
		},
	}

	lf.register(cmd, true)

	return cmd
}

// =============================================================================
// ExploreModel - Interactive index term resolution
// =============================================================================

// ExploreModel is the bubbletea model behind the explore command.
type ExploreModel struct {
	Layout    graph.Layout
	Input     string
	Selection []int
	Err       error
}

func newExploreModel(doc graph.Layout) ExploreModel {
	return ExploreModel{Layout: doc}
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		m.resolve()
	case tea.KeyBackspace:
		if r := []rune(m.Input); len(r) > 0 {
			m.Input = string(r[:len(r)-1])
		}
	case tea.KeyCtrlU:
		m.Input = ""
	case tea.KeySpace:
		m.Input += " "
	case tea.KeyRunes:
		m.Input += string(key.Runes)
	}
	return m, nil
}

// resolve replaces the selection with the union of the typed terms. On
// error the previous selection stays highlighted.
func (m *ExploreModel) resolve() {
	terms := splitTerms(m.Input)
	if len(terms) == 0 {
		m.Selection, m.Err = nil, nil
		return
	}
	selection, err := pipeline.Select(m.Layout, terms...)
	if err != nil {
		m.Err = err
		return
	}
	m.Selection, m.Err = selection, nil
}

func (m ExploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Layout.Layout + " layout"))
	b.WriteString("\n\n")
	b.WriteString(grid.Render(m.Layout, grid.Options{Highlight: m.Selection}))
	b.WriteString("\n\n")
	b.WriteString(grid.Legend())
	b.WriteString("\n\n")

	b.WriteString(explorePromptStyle.Render("> "))
	b.WriteString(m.Input)
	b.WriteString("\n")

	switch {
	case m.Err != nil:
		b.WriteString(exploreErrorStyle.Render(m.Err.Error()))
	case len(m.Selection) > 0:
		b.WriteString(StyleValue.Render("selected: " + formatIndices(m.Selection)))
	default:
		b.WriteString(exploreHelpStyle.Render("functions: " + strings.Join(m.Layout.IndexFunctions, ", ") + ", entrances, exits, all"))
	}
	b.WriteString("\n\n")
	b.WriteString(exploreHelpStyle.Render("⏎ resolve  ctrl+u clear  esc quit"))
	b.WriteString("\n")

	return b.String()
}

// splitTerms splits explorer input into trimmed, non-empty terms.
func splitTerms(input string) []string {
	var terms []string
	for _, t := range strings.Split(input, termSeparator) {
		if t = strings.TrimSpace(t); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}
