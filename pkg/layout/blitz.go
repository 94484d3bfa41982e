package layout

// Blitz width bounds used when no width option is set: size/5 clamped to
// [2, 5].
const (
	blitzMinWidth       = 2
	blitzMaxWidth       = 5
	blitzSlotsPerColumn = 5
)

// Blitz arranges slots in row bands. Every slot of a row links to every slot
// of the next row, so beating one slot per row unlocks the next. The whole
// first row are entrances and the last slot is the exit.
//
//	0 1 2 3
//	4 5 6 7
type Blitz struct {
	size  int
	width int
}

var blitzIndex = indexTable[*Blitz]{
	{name: "row", arity: 1, resolve: (*Blitz).row},
}

func (b *Blitz) Kind() Kind { return KindBlitz }

func (b *Blitz) Size() int { return b.size }

// Width returns the number of slots per row.
func (b *Blitz) Width() int { return b.width }

// SetOptions consumes "width". Below 1 the width is size/5 clamped to [2, 5];
// otherwise it is capped at size. The result never exceeds size.
func (b *Blitz) SetOptions(opts Options) Options {
	rest := opts.Clone()
	width := rest.popInt(OptionWidth, 0)
	if width < 1 {
		width = min(max(b.size/blitzSlotsPerColumn, blitzMinWidth), blitzMaxWidth)
	}
	b.width = min(b.size, width)
	return rest
}

func (b *Blitz) MakeSlots(f Factory) []*Slot {
	slots := allocate(b.size, f)
	for idx := 0; idx < b.width; idx++ {
		slots[idx].Entrance = true
	}
	slots[b.size-1].Exit = true

	rows := b.size / b.width
	for row := 0; row < rows; row++ {
		for top := 0; top < b.width; top++ {
			idx := row*b.width + top
			for bot := 0; bot < b.width; bot++ {
				if other := (row+1)*b.width + bot; other < b.size {
					slots[idx].Next = append(slots[idx].Next, other)
				}
			}
		}
	}
	return slots
}

func (b *Blitz) VisualLayout() [][]int {
	columns := make([][]int, b.width)
	for idx := 0; idx < b.size; idx++ {
		columns[idx%b.width] = append(columns[idx%b.width], idx)
	}
	fillToLongest(columns)
	return columns
}

func (b *Blitz) IndexFunctions() []string { return blitzIndex.names() }

// ParseIndex supports "row(r)".
func (b *Blitz) ParseIndex(term string) ([]int, bool) {
	return parseIndex(b, blitzIndex, term)
}

func (b *Blitz) row(args []int) ([]int, bool) {
	r := args[0]
	if r < 0 || r >= ceilDiv(b.size, b.width) {
		return nil, false
	}
	return strided(r*b.width, 1, b.width, b.size), true
}
