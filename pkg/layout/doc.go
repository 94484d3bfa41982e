// Package layout synthesizes the connectivity graph and 2-D visual arrangement
// of a set of mission slots from a slot count and a small option bag.
//
// # Overview
//
// A layout is one of five geometric constructions:
//
//   - [Column]: a linear chain rendered as a single column
//   - [Grid]: a rectangular lattice with corner trimming and optional dual start
//   - [Hopscotch]: a zig-zag alternating one corner slot and a pair of slots
//   - [Gauntlet]: a linear chain that wraps across a fixed number of columns
//   - [Blitz]: row bands where every slot of a row unlocks every slot of the next
//
// Every layout satisfies the [Layout] interface. Construct one with [New],
// configure it once with [Layout.SetOptions], then call [Layout.MakeSlots] to
// obtain the slots and [Layout.VisualLayout] to obtain the rendering grid:
//
//	l, err := layout.New(layout.KindGrid, 9)
//	if err != nil {
//	    return err
//	}
//	rest := l.SetOptions(layout.Options{"two_start_positions": true})
//	slots := l.MakeSlots(nil)
//	visual := l.VisualLayout()
//
// # Slots and Edges
//
// Slots are owned by a single slice returned from MakeSlots. Forward edges are
// stored as indices into that slice, and a slot's index is also its address in
// the visual layout and in index-term results. A caller-supplied [Factory]
// allocates slots, which lets hosts attach content through [Slot.Meta].
//
// # Options
//
// [Options] is a loosely typed bag. Each layout pops the keys it understands
// ("two_start_positions", "width") and returns the rest untouched, so several
// configuration consumers can be layered. A recognized key whose value cannot
// be coerced is left in the remainder and its default applies.
//
// # Index Terms
//
// [Layout.ParseIndex] resolves textual terms such as "rect(0,0,2,2)" or
// "row(1)" against a per-layout table of named index functions. Terms that
// cannot be resolved report false; they never return an error, because the
// same text may be meaningful to another consumer. The keywords "entrances",
// "exits" and "all" belong to the caller.
//
// # Determinism
//
// Generation is a pure function of the slot count and options. Two layouts
// built with the same inputs produce identical slots, edges and visual grids,
// which lets downstream systems persist indices and regenerate the structure.
//
// Layout instances are not safe for concurrent configuration. Distinct
// instances share no state.
package layout
