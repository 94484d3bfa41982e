package layout

// DefaultHopscotchWidth is the column count used when no width option is set.
const DefaultHopscotchWidth = 7

// Hopscotch alternates between one available slot and a pair of slots. A
// corner slot feeds both slots of the next pair, and both slots of a pair
// converge on the following corner. Slot 0 is the entrance and the last slot
// the exit.
//
//	0 2
//	1 3 5
//	  4 6
//	    7
type Hopscotch struct {
	base     int
	size     int
	width    int
	twoStart bool
}

var hopscotchIndex = indexTable[*Hopscotch]{
	{name: "top", arity: 0, resolve: (*Hopscotch).top},
	{name: "bottom", arity: 0, resolve: (*Hopscotch).bottom},
	{name: "middle", arity: 0, resolve: (*Hopscotch).middle},
	{name: "corner", arity: 1, resolve: (*Hopscotch).corner},
}

func (h *Hopscotch) Kind() Kind { return KindHopscotch }

func (h *Hopscotch) Size() int { return h.size }

// Width returns the number of visual columns before wrapping.
func (h *Hopscotch) Width() int { return h.width }

// TwoStartPositions reports whether slots 1 and 2 are both entrances.
func (h *Hopscotch) TwoStartPositions() bool { return h.twoStart }

// SetOptions consumes "two_start_positions" (default false, adds one slot)
// and "width" (default 7, at least 4). Width only affects the visual layout.
func (h *Hopscotch) SetOptions(opts Options) Options {
	rest := opts.Clone()
	h.twoStart = rest.popBool(OptionTwoStartPositions, false)
	h.size = h.base
	if h.twoStart {
		h.size++
	}
	h.width = max(rest.popInt(OptionWidth, DefaultHopscotchWidth), 4)
	return rest
}

func (h *Hopscotch) MakeSlots(f Factory) []*Slot {
	slots := allocate(h.size, f)
	if h.twoStart {
		slots[0].Empty = true
		slots[1].Entrance = true
		if h.size > 2 {
			slots[2].Entrance = true
		}
	} else {
		slots[0].Entrance = true
	}
	slots[h.size-1].Exit = true

	// cycle 0: corner 3k links to both slots of the following pair
	// cycle 2: bottom slot 3k+1 links two ahead to the next corner
	// cycle 1: top slot 3k+2 links one ahead to the next corner
	cycle := 0
	for idx := range slots {
		var targets []int
		switch cycle {
		case 0:
			targets = []int{idx + 1, idx + 2}
			cycle = 2
		case 1:
			targets = []int{idx + 1}
			cycle = 0
		default:
			targets = []int{idx + 2}
			cycle = 1
		}
		for _, t := range targets {
			if t < h.size {
				slots[idx].Next = append(slots[idx].Next, t)
			}
		}
	}
	return slots
}

// VisualLayout groups slots into columns [0 1], [2 3 4], [5 6 7], ... The
// first width columns are staggered one row further down each, producing the
// diagonal; columns past width wrap around below a spacer of width-3 blanks.
func (h *Hopscotch) VisualLayout() [][]int {
	var cols [][]int
	col := []int{}
	colSize := 1
	for idx := 0; idx < h.size; idx++ {
		if colSize == 3 {
			colSize = 1
			cols = append(cols, col)
			col = []int{idx}
		} else {
			colSize++
			col = append(col, idx)
		}
	}
	if len(col) > 0 {
		cols = append(cols, col)
	}

	final := make([][]int, min(len(cols), h.width))
	for i := range final {
		final[i] = blanks(i - 1)
	}
	spacer := h.width - 3
	for i, c := range cols {
		target := i % h.width
		if i >= h.width {
			final[target] = append(final[target], blanks(spacer)...)
		}
		final[target] = append(final[target], c...)
	}
	fillToLongest(final)
	return final
}

func (h *Hopscotch) IndexFunctions() []string { return hopscotchIndex.names() }

// ParseIndex supports "top", "bottom", "middle" and "corner(n)".
func (h *Hopscotch) ParseIndex(term string) ([]int, bool) {
	return parseIndex(h, hopscotchIndex, term)
}

func (h *Hopscotch) corners() int { return ceilDiv(h.size, 3) }

func (h *Hopscotch) top(_ []int) ([]int, bool) {
	return strided(2, 3, h.corners(), h.size), true
}

func (h *Hopscotch) bottom(_ []int) ([]int, bool) {
	return strided(1, 3, h.corners(), h.size), true
}

func (h *Hopscotch) middle(_ []int) ([]int, bool) {
	return strided(0, 3, h.corners(), h.size), true
}

// corner returns corner n together with the pair that follows it.
func (h *Hopscotch) corner(args []int) ([]int, bool) {
	n := args[0]
	if n < 0 || n >= h.corners() {
		return nil, false
	}
	return strided(3*n, 1, 3, h.size), true
}
