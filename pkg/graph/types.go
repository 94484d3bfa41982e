package graph

import (
	"encoding/json"
	"maps"

	"github.com/matzehuels/missionlayout/pkg/layout"
)

// Blank marks an empty cell in Layout.Visual.
const Blank = -1

// =============================================================================
// Layout - Generated Mission Layout
// =============================================================================

// Layout is the canonical serialization format for a generated layout.
// Used for CLI output, caching, and rendering.
//
// Slots are listed in index order, so Slots[i].Index == i. Visual holds
// columns left to right, each listing slot indices top to bottom.
type Layout struct {
	Layout        string `json:"layout"`         // layout kind, e.g. "grid"
	Size          int    `json:"size"`           // requested slot count
	EffectiveSize int    `json:"effective_size"` // slot count after options

	Options map[string]any `json:"options,omitempty"` // options as requested
	Unused  map[string]any `json:"unused,omitempty"`  // options the layout ignored

	Slots          []Slot   `json:"slots"`
	Visual         [][]int  `json:"visual"`
	IndexFunctions []string `json:"index_functions"`

	// Hash is the content hash of the document, set by the pipeline.
	Hash string `json:"hash,omitempty"`
}

// =============================================================================
// Slot - Serialized Mission Slot
// =============================================================================

// Slot is a serialized mission slot.
type Slot struct {
	Index    int            `json:"index"`
	Entrance bool           `json:"entrance,omitempty"`
	Exit     bool           `json:"exit,omitempty"`
	Empty    bool           `json:"empty,omitempty"`
	Next     []int          `json:"next,omitempty"`
	Meta     map[string]any `json:"meta,omitempty"`
}

// =============================================================================
// Engine ↔ Layout Conversion
// =============================================================================

// Export freezes a configured engine layout and the slots it generated into
// a Layout. size is the size the caller asked for, opts the options passed
// to SetOptions and unused the remainder SetOptions returned.
func Export(l layout.Layout, size int, opts, unused layout.Options, slots []*layout.Slot) Layout {
	names := l.IndexFunctions()
	if names == nil {
		names = []string{}
	}
	out := Layout{
		Layout:         l.Kind().String(),
		Size:           size,
		EffectiveSize:  l.Size(),
		Options:        copyMeta(opts),
		Unused:         copyMeta(unused),
		Slots:          make([]Slot, len(slots)),
		Visual:         l.VisualLayout(),
		IndexFunctions: names,
	}
	for i, s := range slots {
		out.Slots[i] = slotFromEngine(i, s)
	}
	return out
}

func slotFromEngine(i int, s *layout.Slot) Slot {
	slot := Slot{
		Index:    i,
		Entrance: s.Entrance,
		Exit:     s.Exit,
		Empty:    s.Empty,
		Meta:     copyMeta(s.Meta),
	}
	if len(s.Next) > 0 {
		slot.Next = append([]int(nil), s.Next...)
	}
	return slot
}

// copyMeta creates a shallow copy of a map, mapping empty to nil so that
// omitempty fields disappear from the JSON.
func copyMeta[M ~map[string]any](m M) map[string]any {
	if len(m) == 0 {
		return nil
	}
	return maps.Clone(map[string]any(m))
}

// =============================================================================
// Queries
// =============================================================================

// Kind returns the engine kind of the layout.
func (l Layout) Kind() (layout.Kind, error) {
	return layout.ParseKind(l.Layout)
}

// Entrances returns the indices of entrance slots in ascending order.
func (l Layout) Entrances() []int {
	return l.indices(func(s Slot) bool { return s.Entrance })
}

// Exits returns the indices of exit slots in ascending order.
func (l Layout) Exits() []int {
	return l.indices(func(s Slot) bool { return s.Exit })
}

// Empties returns the indices of empty slots in ascending order.
func (l Layout) Empties() []int {
	return l.indices(func(s Slot) bool { return s.Empty })
}

// All returns every slot index in ascending order.
func (l Layout) All() []int {
	return l.indices(func(Slot) bool { return true })
}

func (l Layout) indices(keep func(Slot) bool) []int {
	out := []int{}
	for i, s := range l.Slots {
		if keep(s) {
			out = append(out, i)
		}
	}
	return out
}

// EdgeCount returns the total number of forward edges.
func (l Layout) EdgeCount() int {
	n := 0
	for _, s := range l.Slots {
		n += len(s.Next)
	}
	return n
}

// Columns returns the number of visual columns.
func (l Layout) Columns() int { return len(l.Visual) }

// Rows returns the visual grid transposed to row-major order, so Rows()[y][x]
// is the slot shown at column x, row y.
func (l Layout) Rows() [][]int {
	if len(l.Visual) == 0 {
		return nil
	}
	height := len(l.Visual[0])
	rows := make([][]int, height)
	for y := range rows {
		rows[y] = make([]int, len(l.Visual))
		for x, col := range l.Visual {
			rows[y][x] = Blank
			if y < len(col) {
				rows[y][x] = col[y]
			}
		}
	}
	return rows
}

// UnmarshalLayout deserializes JSON bytes to a Layout.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, err
	}
	return l, nil
}
