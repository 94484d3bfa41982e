// Package nodelink renders generated layouts as node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz: one
// node per slot, one arrow per forward edge. Slots sharing a row of the
// visual grid are kept on the same rank, so the diagram follows the same
// shape as the terminal rendering.
//
// # Usage
//
// Convert a layout document to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(doc, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: node labels include the slot's flags and metadata
//   - Highlight: slots drawn with a thick outline (e.g. a resolved index term)
//
// # Styling
//
// Entrances are filled green, exits get a double outline, and empty slots
// are dashed and grey.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
