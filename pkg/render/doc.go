// Package render groups the output renderers for generated layouts.
//
// # Overview
//
// Both renderers consume a [graph.Layout] document, so they work the same on
// freshly generated layouts and on documents read back from disk or cache:
//
//   - Node-link diagrams (in [nodelink] subpackage)
//   - Terminal grids (in [grid] subpackage)
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage writes the slot graph as Graphviz DOT, one node
// per slot and one arrow per unlock edge, and converts it to SVG with the
// embedded Graphviz build. Slots of the same visual row share a rank.
//
//	dot := nodelink.ToDOT(doc, nodelink.Options{Highlight: selection})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Terminal Grids
//
// The [grid] subpackage draws the visual layout in the terminal with
// lipgloss, coloring entrances, exits, empty slots and highlighted slots.
//
//	fmt.Println(grid.Table(doc, grid.Options{Highlight: selection}))
//
// [graph.Layout]: github.com/matzehuels/missionlayout/pkg/graph.Layout
// [nodelink]: github.com/matzehuels/missionlayout/pkg/render/nodelink
// [grid]: github.com/matzehuels/missionlayout/pkg/render/grid
package render
