package layout

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSize is returned by [New] when the requested slot count is
	// below one. Every layout needs at least one slot to hold an entrance and
	// an exit.
	ErrInvalidSize = errors.New("layout size must be at least 1")

	// ErrUnknownKind is returned by [New] and [ParseKind] for kinds outside
	// the five supported layouts.
	ErrUnknownKind = errors.New("unknown layout kind")
)

// Metadata stores caller-owned content attached to a slot.
type Metadata map[string]any

// Slot is a single mission slot in a generated layout.
//
// The layout only sets the flags and forward edges. Next holds indices into
// the slice returned by [Layout.MakeSlots], in the order the layout created
// them.
type Slot struct {
	Entrance bool // valid starting point
	Exit     bool // completing it can satisfy the layout's goal
	Empty    bool // occupies a cell but carries no content
	Next     []int
	Meta     Metadata
}

// NewSlot returns a fresh slot with an empty metadata map.
func NewSlot() *Slot { return &Slot{Meta: Metadata{}} }

// Factory allocates a slot. It is called exactly once per slot, in index
// order. A nil Factory means [NewSlot].
type Factory func() *Slot

// Kind identifies one of the five layouts.
type Kind int

const (
	KindColumn Kind = iota
	KindGrid
	KindHopscotch
	KindGauntlet
	KindBlitz
)

var kindNames = [...]string{
	KindColumn:    "column",
	KindGrid:      "grid",
	KindHopscotch: "hopscotch",
	KindGauntlet:  "gauntlet",
	KindBlitz:     "blitz",
}

// String returns the lowercase layout name, e.g. "grid".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds returns all layout kinds in declaration order.
func Kinds() []Kind {
	return []Kind{KindColumn, KindGrid, KindHopscotch, KindGauntlet, KindBlitz}
}

// ParseKind converts a layout name to its Kind. Matching ignores case and
// surrounding whitespace.
func ParseKind(name string) (Kind, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Layout is the capability set shared by every layout.
type Layout interface {
	// Kind reports which layout this is.
	Kind() Kind

	// Size returns the effective slot count requested by the caller, after
	// options such as two_start_positions have adjusted it. Grid layouts may
	// allocate more slots than Size to fill their lattice.
	Size() int

	// SetOptions consumes the keys this layout understands and returns the
	// remaining options. The argument is never modified. Calling SetOptions
	// again recomputes the geometry from the original size.
	SetOptions(opts Options) Options

	// MakeSlots allocates the slots through f, sets entrance, exit and empty
	// flags, and wires forward edges. At least one entrance and one exit are
	// always present.
	MakeSlots(f Factory) []*Slot

	// VisualLayout returns columns of slot indices, left to right and top to
	// bottom. All columns have the same length; -1 marks a blank cell.
	VisualLayout() [][]int

	// IndexFunctions lists the names accepted by ParseIndex.
	IndexFunctions() []string

	// ParseIndex resolves an index term to ascending, duplicate-free slot
	// indices. It reports false when the term cannot be resolved.
	ParseIndex(term string) ([]int, bool)
}

// New creates a layout of the given kind for size slots, configured with
// default options.
func New(kind Kind, size int) (Layout, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	var l Layout
	switch kind {
	case KindColumn:
		l = &Column{size: size}
	case KindGrid:
		l = &Grid{base: size}
	case KindHopscotch:
		l = &Hopscotch{base: size}
	case KindGauntlet:
		l = &Gauntlet{size: size}
	case KindBlitz:
		l = &Blitz{size: size}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	l.SetOptions(nil)
	return l, nil
}

// allocate calls f n times and returns the slots in call order.
func allocate(n int, f Factory) []*Slot {
	if f == nil {
		f = NewSlot
	}
	slots := make([]*Slot, n)
	for i := range slots {
		s := f()
		if s == nil {
			s = NewSlot()
		}
		slots[i] = s
	}
	return slots
}

// chain links every slot to its successor and marks the first slot as
// entrance and the last as exit.
func chain(slots []*Slot) {
	slots[0].Entrance = true
	slots[len(slots)-1].Exit = true
	for i := 0; i < len(slots)-1; i++ {
		slots[i].Next = append(slots[i].Next, i+1)
	}
}

// fillToLongest pads every column with -1 up to the longest column.
func fillToLongest(columns [][]int) {
	longest := 0
	for _, col := range columns {
		longest = max(longest, len(col))
	}
	for i, col := range columns {
		for len(col) < longest {
			col = append(col, -1)
		}
		columns[i] = col
	}
}

// blanks returns n blank cells, or nil when n is not positive.
func blanks(n int) []int {
	if n <= 0 {
		return nil
	}
	cells := make([]int, n)
	for i := range cells {
		cells[i] = -1
	}
	return cells
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }
