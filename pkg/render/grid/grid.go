// Package grid renders generated layouts as terminal grids.
//
// The visual layout stored in a [graph.Layout] is column-major; this package
// transposes it into rows and prints one right-aligned slot index per cell,
// with blank cells left empty. Styling uses lipgloss and degrades to plain
// text when the output is not a terminal.
//
//	fmt.Println(grid.Render(doc, grid.Options{Highlight: []int{0, 4}}))
//	fmt.Println(grid.Table(doc, grid.Options{}))
package grid

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/missionlayout/pkg/graph"
)

var (
	colorGreen  = lipgloss.Color("35")
	colorCyan   = lipgloss.Color("36")
	colorYellow = lipgloss.Color("220")
	colorDim    = lipgloss.Color("240")
	colorWhite  = lipgloss.Color("255")
)

var (
	styleSlot      = lipgloss.NewStyle().Foreground(colorWhite)
	styleEntrance  = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	styleExit      = lipgloss.NewStyle().Foreground(colorCyan).Bold(true).Underline(true)
	styleEmpty     = lipgloss.NewStyle().Foreground(colorDim).Faint(true)
	styleHighlight = lipgloss.NewStyle().Foreground(colorYellow).Bold(true).Reverse(true)
	styleBorder    = lipgloss.NewStyle().Foreground(colorDim)
)

// Options configures grid rendering.
type Options struct {
	// Highlight lists slot indices to emphasize, e.g. a resolved index term.
	Highlight []int
}

// Render draws the layout as rows of slot indices separated by one space.
func Render(doc graph.Layout, opts Options) string {
	width := cellWidth(doc)
	styles := newStyler(doc, opts)

	var b strings.Builder
	for y, row := range doc.Rows() {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x, idx := range row {
			if x > 0 {
				b.WriteByte(' ')
			}
			if idx == graph.Blank {
				b.WriteString(strings.Repeat(" ", width))
				continue
			}
			b.WriteString(styles.style(idx).Render(pad(idx, width)))
		}
	}
	return b.String()
}

// Table draws the layout inside a bordered lipgloss table.
func Table(doc graph.Layout, opts Options) string {
	width := cellWidth(doc)
	styles := newStyler(doc, opts)
	rows := doc.Rows()

	cells := make([][]string, len(rows))
	for y, row := range rows {
		cells[y] = make([]string, len(row))
		for x, idx := range row {
			if idx == graph.Blank {
				cells[y][x] = strings.Repeat(" ", width)
			} else {
				cells[y][x] = pad(idx, width)
			}
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		BorderRow(true).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row < 0 || row >= len(rows) || col >= len(rows[row]) {
				return base
			}
			idx := rows[row][col]
			if idx == graph.Blank {
				return base
			}
			return styles.style(idx).Padding(0, 1)
		})
	return t.Render()
}

// Legend describes the cell styles used by Render and Table.
func Legend() string {
	return strings.Join([]string{
		styleEntrance.Render("entrance"),
		styleExit.Render("exit"),
		styleEmpty.Render("empty"),
		styleHighlight.Render("selected"),
	}, "  ")
}

type styler struct {
	slots     []graph.Slot
	highlight map[int]bool
}

func newStyler(doc graph.Layout, opts Options) styler {
	s := styler{slots: doc.Slots, highlight: make(map[int]bool, len(opts.Highlight))}
	for _, i := range opts.Highlight {
		s.highlight[i] = true
	}
	return s
}

type cellKind int

const (
	cellSlot cellKind = iota
	cellEntrance
	cellExit
	cellEmpty
	cellHighlight
)

var cellStyles = map[cellKind]lipgloss.Style{
	cellSlot:      styleSlot,
	cellEntrance:  styleEntrance,
	cellExit:      styleExit,
	cellEmpty:     styleEmpty,
	cellHighlight: styleHighlight,
}

// kind classifies a slot. Highlight wins, then entrance, exit, empty.
func (s styler) kind(idx int) cellKind {
	if s.highlight[idx] {
		return cellHighlight
	}
	if idx < 0 || idx >= len(s.slots) {
		return cellSlot
	}
	slot := s.slots[idx]
	switch {
	case slot.Entrance:
		return cellEntrance
	case slot.Exit:
		return cellExit
	case slot.Empty:
		return cellEmpty
	}
	return cellSlot
}

func (s styler) style(idx int) lipgloss.Style {
	return cellStyles[s.kind(idx)]
}

// cellWidth is the number of digits in the largest slot index.
func cellWidth(doc graph.Layout) int {
	return len(strconv.Itoa(max(len(doc.Slots)-1, 0)))
}

func pad(idx, width int) string {
	s := strconv.Itoa(idx)
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
