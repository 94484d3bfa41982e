package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSlots is returned for a layout without slots.
	ErrNoSlots = errors.New("layout has no slots")

	// ErrNoEntrance is returned when no slot is marked as an entrance.
	ErrNoEntrance = errors.New("layout has no entrance")

	// ErrNoExit is returned when no slot is marked as an exit.
	ErrNoExit = errors.New("layout has no exit")

	// ErrSlotIndex is returned when a slot's index does not match its position.
	ErrSlotIndex = errors.New("slot index does not match position")

	// ErrEdgeOutOfRange is returned for forward edges that leave the slot list.
	ErrEdgeOutOfRange = errors.New("edge target out of range")

	// ErrSelfLoop is returned for a slot that links to itself.
	ErrSelfLoop = errors.New("edge is a self-loop")

	// ErrRaggedVisual is returned when visual columns differ in length.
	ErrRaggedVisual = errors.New("visual layout is not rectangular")

	// ErrVisualIndex is returned when the visual grid shows an unknown slot,
	// shows a slot twice, or misses one.
	ErrVisualIndex = errors.New("visual layout does not show every slot exactly once")
)

// Validate checks the structural guarantees of a generated layout and
// returns the first violation found.
func Validate(l Layout) error {
	n := len(l.Slots)
	if n == 0 {
		return ErrNoSlots
	}

	var entrance, exit bool
	for i, s := range l.Slots {
		if s.Index != i {
			return fmt.Errorf("%w: slot %d has index %d", ErrSlotIndex, i, s.Index)
		}
		entrance = entrance || s.Entrance
		exit = exit || s.Exit
		for _, to := range s.Next {
			if to < 0 || to >= n {
				return fmt.Errorf("%w: %d→%d", ErrEdgeOutOfRange, i, to)
			}
			if to == i {
				return fmt.Errorf("%w: %d", ErrSelfLoop, i)
			}
		}
	}
	if !entrance {
		return ErrNoEntrance
	}
	if !exit {
		return ErrNoExit
	}

	return validateVisual(l.Visual, n)
}

func validateVisual(visual [][]int, n int) error {
	seen := make([]bool, n)
	count := 0
	for x, col := range visual {
		if len(col) != len(visual[0]) {
			return fmt.Errorf("%w: column %d has %d cells, column 0 has %d",
				ErrRaggedVisual, x, len(col), len(visual[0]))
		}
		for y, idx := range col {
			if idx == Blank {
				continue
			}
			if idx < 0 || idx >= n {
				return fmt.Errorf("%w: cell (%d,%d) holds %d", ErrVisualIndex, x, y, idx)
			}
			if seen[idx] {
				return fmt.Errorf("%w: slot %d appears twice", ErrVisualIndex, idx)
			}
			seen[idx] = true
			count++
		}
	}
	if count != n {
		return fmt.Errorf("%w: %d of %d slots shown", ErrVisualIndex, count, n)
	}
	return nil
}
