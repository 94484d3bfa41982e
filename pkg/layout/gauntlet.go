package layout

// DefaultGauntletWidth is the column count used when no width option is set.
const DefaultGauntletWidth = 7

// Gauntlet is a long linear chain that wraps horizontally. Each wrapped pass
// is separated from the previous one by a blank row.
//
//	0 1 2 3
//
//	4 5 6 7
type Gauntlet struct {
	size  int
	width int
}

var gauntletIndex = indexTable[*Gauntlet]{}

func (g *Gauntlet) Kind() Kind { return KindGauntlet }

func (g *Gauntlet) Size() int { return g.size }

// Width returns the number of visual columns, between 4 and Size.
func (g *Gauntlet) Width() int { return g.width }

// SetOptions consumes "width" (default 7, clamped to [4, size]).
func (g *Gauntlet) SetOptions(opts Options) Options {
	rest := opts.Clone()
	g.width = min(max(rest.popInt(OptionWidth, DefaultGauntletWidth), 4), g.size)
	return rest
}

func (g *Gauntlet) MakeSlots(f Factory) []*Slot {
	slots := allocate(g.size, f)
	chain(slots)
	return slots
}

func (g *Gauntlet) VisualLayout() [][]int {
	columns := make([][]int, g.width)
	for idx := 0; idx < g.size; idx++ {
		col := idx % g.width
		if idx >= g.width {
			columns[col] = append(columns[col], -1)
		}
		columns[col] = append(columns[col], idx)
	}
	fillToLongest(columns)
	return columns
}

func (g *Gauntlet) IndexFunctions() []string { return gauntletIndex.names() }

func (g *Gauntlet) ParseIndex(term string) ([]int, bool) {
	return parseIndex(g, gauntletIndex, term)
}
