package layout

// Column is a linear chain rendered top to bottom. Slot 0 is the entrance and
// the last slot the exit.
//
//	0
//	1
//	2
type Column struct {
	size int
}

var columnIndex = indexTable[*Column]{}

func (c *Column) Kind() Kind { return KindColumn }

func (c *Column) Size() int { return c.size }

// SetOptions consumes nothing.
func (c *Column) SetOptions(opts Options) Options { return opts.Clone() }

func (c *Column) MakeSlots(f Factory) []*Slot {
	slots := allocate(c.size, f)
	chain(slots)
	return slots
}

func (c *Column) VisualLayout() [][]int {
	col := make([]int, c.size)
	for i := range col {
		col[i] = i
	}
	return [][]int{col}
}

func (c *Column) IndexFunctions() []string { return columnIndex.names() }

func (c *Column) ParseIndex(term string) ([]int, bool) {
	return parseIndex(c, columnIndex, term)
}
