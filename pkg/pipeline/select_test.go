package pipeline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/matzehuels/missionlayout/pkg/errors"
	"github.com/matzehuels/missionlayout/pkg/graph"
	"github.com/matzehuels/missionlayout/pkg/layout"
)

func generate(t *testing.T, name string, size int, opts map[string]any) graph.Layout {
	t.Helper()
	doc, err := GenerateLayout(Options{Layout: name, Size: size, LayoutOptions: opts})
	require.NoError(t, err)
	return doc
}

func TestSelect(t *testing.T) {
	grid := generate(t, "grid", 12, map[string]any{"width": 4})

	tests := []struct {
		name  string
		terms []string
		want  []int
	}{
		{"no terms", nil, []int{}},
		{"rect", []string{"rect(0,0,2,2)"}, []int{0, 1, 4, 5}},
		{"clipped rect", []string{"rect(2,1,99,99)"}, []int{6, 7, 10, 11}},
		{"point", []string{"point(3, 2)"}, []int{11}},
		{"entrances", []string{"entrances"}, []int{0}},
		{"exits", []string{"exits"}, []int{11}},
		{"all", []string{"all"}, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
		{"union is sorted and unique", []string{"point(1,1)", "rect(0,0,2,2)", "exits"}, []int{0, 1, 4, 5, 11}},
		{"terms are trimmed", []string{"  point(0,0)  "}, []int{0}},
		{"empty rect resolves", []string{"rect(10,10,1,1)"}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(grid, tt.terms...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectUnresolved(t *testing.T) {
	grid := generate(t, "grid", 12, map[string]any{"width": 4})

	for _, term := range []string{"bogus_fn(1)", "point(1,2", "point(9,9)", "point(a,b)", "rect(0,0)", "Entrances"} {
		_, err := Select(grid, "entrances", term)
		require.Error(t, err, term)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidTerm), "%s: %v", term, err)
	}
}

func TestSelectHopscotch(t *testing.T) {
	doc := generate(t, "hopscotch", 8, nil)

	got, err := Select(doc, "middle", "corner(2)")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 6, 7}, got)
}

func TestSelectColumnOnlyKeywords(t *testing.T) {
	doc := generate(t, "column", 4, nil)

	got, err := Select(doc, "entrances", "exits")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, got)

	_, err = Select(doc, "row(0)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index functions: none")
}

func TestRebuild(t *testing.T) {
	doc := generate(t, "grid", 9, map[string]any{"two_start_positions": true, "width": 4})

	// Round trip through JSON turns ints into float64s.
	data, err := graph.MarshalLayout(doc)
	require.NoError(t, err)
	var decoded graph.Layout
	require.NoError(t, json.Unmarshal(data, &decoded))

	l, err := Rebuild(decoded)
	require.NoError(t, err)
	assert.Equal(t, layout.KindGrid, l.Kind())
	assert.Equal(t, 10, l.Size())

	g, ok := l.(*layout.Grid)
	require.True(t, ok)
	assert.Equal(t, 4, g.Width())
	assert.True(t, g.TwoStartPositions())
}

func TestRebuildErrors(t *testing.T) {
	doc := generate(t, "blitz", 10, nil)

	bad := doc
	bad.Layout = "unknown"
	_, err := Rebuild(bad)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidLayout))

	bad = doc
	bad.Size = 0
	_, err = Rebuild(bad)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidSize))

	bad = doc
	bad.EffectiveSize = 11
	_, err = Rebuild(bad)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidInput))
}
