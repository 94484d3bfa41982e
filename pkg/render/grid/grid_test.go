package grid

import (
	"regexp"
	"strings"
	"testing"

	"github.com/matzehuels/missionlayout/pkg/graph"
	"github.com/matzehuels/missionlayout/pkg/layout"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string { return ansiRe.ReplaceAllString(s, "") }

func export(t *testing.T, kind layout.Kind, size int, opts layout.Options) graph.Layout {
	t.Helper()
	l, err := layout.New(kind, size)
	if err != nil {
		t.Fatal(err)
	}
	unused := l.SetOptions(opts)
	return graph.Export(l, size, opts, unused, l.MakeSlots(nil))
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		doc  graph.Layout
		want string
	}{
		{
			name: "column",
			doc:  export(t, layout.KindColumn, 3, nil),
			want: "0\n1\n2",
		},
		{
			name: "grid 2x3",
			doc:  export(t, layout.KindGrid, 6, nil),
			want: "0 1\n2 3\n4 5",
		},
		{
			name: "padded indices",
			doc:  export(t, layout.KindBlitz, 11, layout.Options{"width": 5}),
			want: " 0  1  2  3  4\n 5  6  7  8  9\n10" + strings.Repeat(" ", 12),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := plain(Render(tt.doc, Options{})); got != tt.want {
				t.Errorf("Render() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestRenderHighlightDoesNotChangeText(t *testing.T) {
	doc := export(t, layout.KindGrid, 9, nil)
	a := plain(Render(doc, Options{}))
	b := plain(Render(doc, Options{Highlight: []int{0, 4, 8}}))
	if a != b {
		t.Errorf("highlighting changed the text:\n%s\n%s", a, b)
	}
}

func TestStylePrecedence(t *testing.T) {
	doc := graph.Layout{Slots: []graph.Slot{
		{Index: 0, Entrance: true, Exit: true},
		{Index: 1, Empty: true, Exit: true},
		{Index: 2, Empty: true},
		{Index: 3, Entrance: true},
		{Index: 4},
	}}
	s := newStyler(doc, Options{Highlight: []int{3}})

	tests := []struct {
		idx  int
		want cellKind
	}{
		{0, cellEntrance},
		{1, cellExit},
		{2, cellEmpty},
		{3, cellHighlight},
		{4, cellSlot},
		{9, cellSlot},
	}
	for _, tt := range tests {
		if got := s.kind(tt.idx); got != tt.want {
			t.Errorf("kind(%d) = %d, want %d", tt.idx, got, tt.want)
		}
	}
}

func TestTable(t *testing.T) {
	doc := export(t, layout.KindGauntlet, 6, layout.Options{"width": 4})
	out := plain(Table(doc, Options{}))

	for _, idx := range []string{"0", "1", "2", "3", "4", "5"} {
		if !strings.Contains(out, idx) {
			t.Errorf("Table() missing slot %s:\n%s", idx, out)
		}
	}
	if !strings.Contains(out, "╭") || !strings.Contains(out, "╯") {
		t.Errorf("Table() should use rounded borders:\n%s", out)
	}
	// Gauntlet of 6 at width 4: slot, spacer, wrapped slot rows.
	if lines := strings.Split(out, "\n"); len(lines) != 7 {
		t.Errorf("Table() has %d lines, want 7:\n%s", len(lines), out)
	}
}

func TestLegend(t *testing.T) {
	got := plain(Legend())
	for _, word := range []string{"entrance", "exit", "empty", "selected"} {
		if !strings.Contains(got, word) {
			t.Errorf("Legend() missing %q", word)
		}
	}
}

func TestCellWidth(t *testing.T) {
	for _, tt := range []struct{ slots, want int }{{0, 1}, {1, 1}, {10, 1}, {11, 2}, {101, 3}} {
		doc := graph.Layout{Slots: make([]graph.Slot, tt.slots)}
		if got := cellWidth(doc); got != tt.want {
			t.Errorf("cellWidth(%d slots) = %d, want %d", tt.slots, got, tt.want)
		}
	}
}
