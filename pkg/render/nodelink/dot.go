package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/missionlayout/pkg/graph"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes flags and metadata in node labels.
	// When false, only the slot index is shown.
	Detailed bool

	// Highlight lists slot indices drawn with a thick outline.
	Highlight []int
}

// ToDOT converts a layout document to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
// Output is deterministic: slots and edges appear in index order.
func ToDOT(doc graph.Layout, opts Options) string {
	highlight := make(map[int]bool, len(opts.Highlight))
	for _, i := range opts.Highlight {
		highlight[i] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, s := range doc.Slots {
		label := fmtLabel(s, opts.Detailed)
		attrs := fmtAttrs(s, label, highlight[s.Index])
		fmt.Fprintf(&buf, "  \"%d\" [%s];\n", s.Index, strings.Join(attrs, ", "))
	}

	if ranks := rankLines(doc); len(ranks) > 0 {
		buf.WriteString("\n")
		buf.WriteString(strings.Join(ranks, ""))
	}

	buf.WriteString("\n")
	for _, s := range doc.Slots {
		for _, to := range s.Next {
			fmt.Fprintf(&buf, "  \"%d\" -> \"%d\";\n", s.Index, to)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// rankLines keeps slots that share a visual row on the same rank.
func rankLines(doc graph.Layout) []string {
	var lines []string
	for _, row := range doc.Rows() {
		var ids []string
		for _, idx := range row {
			if idx != graph.Blank {
				ids = append(ids, fmt.Sprintf("\"%d\"", idx))
			}
		}
		if len(ids) > 1 {
			lines = append(lines, fmt.Sprintf("  { rank=same; %s; }\n", strings.Join(ids, "; ")))
		}
	}
	return lines
}

func fmtLabel(s graph.Slot, detailed bool) string {
	id := strconv.Itoa(s.Index)
	if !detailed {
		return id
	}

	var parts []string
	for _, f := range []struct {
		name string
		set  bool
	}{{"entrance", s.Entrance}, {"exit", s.Exit}, {"empty", s.Empty}} {
		if f.set {
			parts = append(parts, f.name)
		}
	}
	for _, k := range slices.Sorted(maps.Keys(s.Meta)) {
		parts = append(parts, fmt.Sprintf("%s: %v", k, s.Meta[k]))
	}
	if len(parts) == 0 {
		return id
	}
	return id + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(s graph.Slot, label string, highlighted bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch {
	case s.Empty:
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=grey40")
	case s.Entrance:
		attrs = append(attrs, "fillcolor=palegreen")
	}
	if s.Exit {
		attrs = append(attrs, "peripheries=2")
	}
	if highlighted {
		attrs = append(attrs, "penwidth=4", "color=orange")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based <svg> header with one
// whose viewBox starts at the origin, so the SVG scales cleanly when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
