package layout

// Grid is a rectangular lattice where every cell links to its four
// neighbours. Slot 0 in the top left is the entrance and the last cell in the
// bottom right the exit. Cells that pad the lattice beyond the requested size
// are marked empty along the bottom-left and top-right corners.
//
//	0 1 2
//	3 4 5
//	6 7 8
type Grid struct {
	base            int
	size            int
	width           int
	height          int
	cornersToRemove int
	twoStart        bool
}

var gridIndex = indexTable[*Grid]{
	{name: "point", arity: 2, resolve: (*Grid).point},
	{name: "rect", arity: 4, resolve: (*Grid).rect},
}

func (g *Grid) Kind() Kind { return KindGrid }

func (g *Grid) Size() int { return g.size }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// CornersToRemove returns how many lattice cells are marked empty.
func (g *Grid) CornersToRemove() int { return g.cornersToRemove }

// TwoStartPositions reports whether the grid opens two entrances.
func (g *Grid) TwoStartPositions() bool { return g.twoStart }

// SetOptions consumes "two_start_positions" (default false, adds one slot)
// and "width" (default 0). A width below 1 picks the most square dimensions
// via [GridDimensions]; otherwise the height is the smallest that fits.
func (g *Grid) SetOptions(opts Options) Options {
	rest := opts.Clone()
	g.twoStart = rest.popBool(OptionTwoStartPositions, false)
	g.size = g.base
	if g.twoStart {
		g.size++
	}

	width := rest.popInt(OptionWidth, 0)
	if width < 1 {
		g.width, g.height, g.cornersToRemove = GridDimensions(g.size)
	} else {
		g.width = width
		g.height = ceilDiv(g.size, width)
		g.cornersToRemove = g.width*g.height - g.size
	}
	return rest
}

func (g *Grid) index(x, y int) int { return y*g.width + x }

func (g *Grid) inBounds(x, y int) bool {
	return 0 <= x && x < g.width && 0 <= y && y < g.height
}

func (g *Grid) MakeSlots(f Factory) []*Slot {
	slots := allocate(g.width*g.height, f)
	if g.twoStart {
		slots[0].Empty = true
		slots[1].Entrance = true
		if below := g.index(0, 1); below < len(slots) {
			slots[below].Entrance = true
		}
	} else {
		slots[0].Entrance = true
	}
	slots[len(slots)-1].Exit = true

	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			idx := g.index(x, y)
			for _, nb := range [...][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}} {
				if g.inBounds(nb[0], nb[1]) {
					slots[idx].Next = append(slots[idx].Next, g.index(nb[0], nb[1]))
				}
			}
		}
	}

	g.trimCorners(slots)
	return slots
}

// trimCorners marks cornersToRemove cells empty. The bottom-left corner takes
// the larger half, walking up-right along anti-diagonals; the top-right corner
// walks down-left. The restart checks differ between corners: the
// bottom walk restarts on x == -1 or y == 0, the top walk on x == width or
// y == height-1.
func (g *Grid) trimCorners(slots []*Slot) {
	top := g.cornersToRemove / 2
	bottom := g.cornersToRemove - top

	x, y, lead := 0, g.height-1, 0
	for placed := 0; placed < bottom; placed++ {
		if x == -1 || y == 0 {
			lead++
			x, y = lead, g.height-1
		}
		if !g.clear(slots, x, y) {
			break
		}
		x, y = x-1, y-1
	}

	x, y, lead = g.width-1, 0, g.width-1
	for placed := 0; placed < top; placed++ {
		if x == g.width || y == g.height-1 {
			lead--
			x, y = lead, 0
		}
		if !g.clear(slots, x, y) {
			break
		}
		x, y = x+1, y+1
	}
}

// clear marks the cell at (x, y) empty. Offsets below zero count back from
// the last cell, which only happens on single-row grids. It reports false once
// the offset leaves the slot list.
func (g *Grid) clear(slots []*Slot, x, y int) bool {
	idx := g.index(x, y)
	if idx < 0 {
		idx += len(slots)
	}
	if idx < 0 || idx >= len(slots) {
		return false
	}
	slots[idx].Empty = true
	return true
}

// VisualLayout returns one column per x, each listing its cells top to bottom.
func (g *Grid) VisualLayout() [][]int {
	columns := make([][]int, g.width)
	for x := range columns {
		col := make([]int, g.height)
		for y := range col {
			col[y] = g.index(x, y)
		}
		columns[x] = col
	}
	return columns
}

func (g *Grid) IndexFunctions() []string { return gridIndex.names() }

// ParseIndex supports "point(x, y)" and "rect(x, y, width, height)".
func (g *Grid) ParseIndex(term string) ([]int, bool) {
	return parseIndex(g, gridIndex, term)
}

func (g *Grid) point(args []int) ([]int, bool) {
	x, y := args[0], args[1]
	if !g.inBounds(x, y) {
		return nil, false
	}
	return []int{g.index(x, y)}, true
}

// rect clips the rectangle to the grid; a rectangle entirely outside the grid
// resolves to no indices.
func (g *Grid) rect(args []int) ([]int, bool) {
	x0, x1 := clip(args[0], args[2], g.width)
	y0, y1 := clip(args[1], args[3], g.height)
	var indices []int
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			indices = append(indices, g.index(px, py))
		}
	}
	return indices, true
}

// clip intersects [start, start+length) with [0, limit) without overflowing
// on extreme arguments.
func clip(start, length, limit int) (lo, hi int) {
	if length <= 0 || start >= limit {
		return 0, 0
	}
	switch {
	case start < 0:
		hi = min(start+length, limit)
	case length < limit-start:
		hi = start + length
	default:
		hi = limit
	}
	return max(start, 0), hi
}
