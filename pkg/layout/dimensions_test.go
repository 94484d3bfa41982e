package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridDimensionsFixedPoints(t *testing.T) {
	tests := []struct {
		n, width, height, errCells int
	}{
		{7, 2, 4, 1},
		{8, 2, 4, 0},
		{9, 3, 3, 0},
		{10, 2, 5, 0},
		{11, 3, 4, 1},
		{12, 3, 4, 0},
		{15, 3, 5, 0},
		{16, 4, 4, 0},
		{24, 4, 6, 0},
		{25, 5, 5, 0},
		{29, 5, 6, 1},
		{33, 5, 7, 2},
	}

	for _, tt := range tests {
		w, h, e := GridDimensions(tt.n)
		assert.Equal(t, [3]int{tt.width, tt.height, tt.errCells}, [3]int{w, h, e}, "GridDimensions(%d)", tt.n)
	}
}

func TestGridDimensionsProperties(t *testing.T) {
	for n := 1; n <= 500; n++ {
		w, h, e := GridDimensions(n)
		require.LessOrEqual(t, w, h, "n=%d", n)
		require.Contains(t, []int{0, 1, 2}, e, "n=%d", n)
		require.Equal(t, n, w*h-e, "n=%d", n)
	}
}

func TestGridDimensionsSmall(t *testing.T) {
	w, h, e := GridDimensions(1)
	assert.Equal(t, [3]int{1, 1, 0}, [3]int{w, h, e})

	w, h, e = GridDimensions(2)
	assert.Equal(t, [3]int{1, 2, 0}, [3]int{w, h, e})
}

func TestSquarestFactors(t *testing.T) {
	tests := []struct {
		n, x, y int
	}{
		{1, 1, 1},
		{13, 1, 13},
		{35, 5, 7},
		{36, 6, 6},
		{49, 7, 7},
	}
	for _, tt := range tests {
		x, y := squarestFactors(tt.n)
		assert.Equal(t, tt.x, x, "n=%d", tt.n)
		assert.Equal(t, tt.y, y, "n=%d", tt.n)
	}
}

func TestIsqrt(t *testing.T) {
	for n := 0; n < 2000; n++ {
		r := isqrt(n)
		require.LessOrEqual(t, r*r, n)
		require.Greater(t, (r+1)*(r+1), n)
	}
}
