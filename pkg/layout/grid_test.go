package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridAutoSquare(t *testing.T) {
	l := mustNew(t, KindGrid, 9, nil)
	g := l.(*Grid)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 0, g.CornersToRemove())

	slots := l.MakeSlots(nil)
	require.Len(t, slots, 9)
	assert.Equal(t, []int{0}, entrances(slots))
	assert.Equal(t, []int{8}, exits(slots))
	assert.Empty(t, empties(slots))

	assert.Equal(t, []int{1, 3}, slots[0].Next)
	assert.Equal(t, []int{3, 5, 1, 7}, slots[4].Next)
	assert.Equal(t, []int{7, 5}, slots[8].Next)

	assert.Equal(t, [][]int{{0, 3, 6}, {1, 4, 7}, {2, 5, 8}}, l.VisualLayout())
}

func TestGridTwoStartPositions(t *testing.T) {
	l := mustNew(t, KindGrid, 9, Options{OptionTwoStartPositions: true})
	assert.Equal(t, 10, l.Size())
	g := l.(*Grid)
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 5, g.Height())
	assert.True(t, g.TwoStartPositions())

	slots := l.MakeSlots(nil)
	require.Len(t, slots, 10)
	assert.Equal(t, []int{1, 2}, entrances(slots))
	assert.Equal(t, []int{0}, empties(slots))
	assert.Equal(t, []int{9}, exits(slots))
	assert.Equal(t, []int{1, 2}, slots[0].Next, "empty cells keep their edges")
}

func TestGridSingleCornerBottomLeft(t *testing.T) {
	l := mustNew(t, KindGrid, 7, nil)
	slots := l.MakeSlots(nil)
	require.Len(t, slots, 8)
	assert.Equal(t, []int{6}, empties(slots))
	assert.Equal(t, []int{7}, exits(slots))
	assert.Equal(t, [][]int{{0, 2, 4, 6}, {1, 3, 5, 7}}, l.VisualLayout())
}

func TestGridTwoCorners(t *testing.T) {
	l := mustNew(t, KindGrid, 33, nil)
	slots := l.MakeSlots(nil)
	require.Len(t, slots, 35)
	assert.Equal(t, []int{4, 30}, empties(slots))
	assert.Equal(t, []int{34}, exits(slots))
}

func TestGridCornerWalks(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		width   int
		height  int
		corners int
		empty   []int
	}{
		// 4x3, one corner each side.
		{"even split", 10, 4, 3, 2, []int{3, 8}},
		// 4x3, bottom walk restarts one column right after leaving the grid.
		{"bottom restart", 9, 4, 3, 3, []int{3, 8, 9}},
		// 5x2, both walks restart on their row bound.
		{"row bound restart", 6, 5, 2, 4, []int{3, 4, 5, 6}},
		// 5x3, two cells per corner along the outer rows.
		{"outer rows", 11, 5, 3, 4, []int{3, 4, 10, 11}},
		// 6x3, the bottom walk climbs the second anti-diagonal.
		{"anti-diagonal", 13, 6, 3, 5, []int{4, 5, 6, 12, 13}},
		// 7x3, the top walk descends its second diagonal.
		{"top diagonal", 15, 7, 3, 6, []int{5, 6, 7, 13, 14, 15}},
		// 6x4, deeper diagonal on both corners.
		{"deep diagonals", 19, 6, 4, 5, []int{4, 5, 18, 19, 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := mustNew(t, KindGrid, tt.size, Options{OptionWidth: tt.width})
			g := l.(*Grid)
			require.Equal(t, tt.height, g.Height())
			require.Equal(t, tt.corners, g.CornersToRemove())

			slots := l.MakeSlots(nil)
			assert.ElementsMatch(t, tt.empty, empties(slots))
			assert.Equal(t, []int{0}, entrances(slots))
			assert.Equal(t, []int{len(slots) - 1}, exits(slots))
		})
	}
}

func TestGridExplicitWidth(t *testing.T) {
	l := mustNew(t, KindGrid, 12, Options{OptionWidth: 4})
	assert.Equal(t, [][]int{{0, 4, 8}, {1, 5, 9}, {2, 6, 10}, {3, 7, 11}}, l.VisualLayout())
	slots := l.MakeSlots(nil)
	assert.Equal(t, []int{4, 6, 1, 9}, slots[5].Next)
}

func TestGridSingleRow(t *testing.T) {
	l := mustNew(t, KindGrid, 3, Options{OptionWidth: 5})
	g := l.(*Grid)
	require.Equal(t, 1, g.Height())
	require.Equal(t, 2, g.CornersToRemove())

	slots := l.MakeSlots(nil)
	require.Len(t, slots, 5)
	assert.Equal(t, []int{1, 3}, empties(slots))
	assert.Equal(t, []int{4}, exits(slots))
}

func TestGridTwoStartSingleRow(t *testing.T) {
	l := mustNew(t, KindGrid, 3, Options{OptionTwoStartPositions: true, OptionWidth: 6})
	slots := l.MakeSlots(nil)
	require.Len(t, slots, 6)
	assert.Equal(t, []int{1}, entrances(slots), "no cell below the start on a single row")
}
