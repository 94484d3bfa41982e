// Package pkg provides the libraries behind missionlayout.
//
// # Overview
//
// missionlayout generates mission-slot layouts: a fixed number of slots, the
// slots a player starts from (entrances) and finishes at (exits), which slots
// unlock which, and how the slots are drawn on a 2-D grid. The pkg directory
// is organized into four areas:
//
//  1. [layout] - The layout engine (five layout kinds, index terms)
//  2. [graph] - The serialized layout document and its validation
//  3. [pipeline] - Orchestration (generate → select → render) with caching
//  4. [render] - Node-link diagrams and terminal grids
//
// # Architecture
//
// The typical data flow:
//
//	Options (flags or [config] file)
//	         ↓
//	    [layout] package (build slots, edges and visual grid)
//	         ↓
//	    [graph] package (freeze into a validated, hashed document)
//	         ↓
//	    [pipeline] package (resolve index terms, cache results)
//	         ↓
//	    JSON/DOT/SVG/text output
//
// # Quick Start
//
// Generate a layout directly with the engine:
//
//	l, _ := layout.New(layout.KindGrid, 12)
//	l.SetOptions(layout.Options{"two_start_positions": true})
//	slots := l.MakeSlots(nil)
//	visual := l.VisualLayout()
//	corner, ok := l.ParseIndex("rect(0,0,2,2)")
//
// Or run the whole pipeline with caching:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Layout:  "hopscotch",
//	    Size:    13,
//	    Select:  []string{"entrances", "corner(2)"},
//	    Formats: []string{pipeline.FormatSVG},
//	})
//
// # Main Packages
//
// [layout] - Column, grid, hopscotch, gauntlet and blitz layouts behind one
// interface, plus [layout.GridDimensions] and the index-term parser.
//
// [graph] - The JSON layout document shared by the CLI, the caches and the
// renderers, with structural validation.
//
// [pipeline] - Option validation, generation, selection and rendering used by
// the CLI and by embedding programs.
//
// [cache] - Null, file and Redis caches keyed by content hashes.
//
// [config] - TOML, YAML and JSON generation files.
//
// [errors] - Coded errors shared by every package.
//
// [render/nodelink] - Graphviz DOT export and SVG rendering.
//
// [render/grid] - lipgloss terminal rendering.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/layout/...             # Specific package
//	go test -run Example ./pkg/...       # Examples only
//
// [layout]: https://pkg.go.dev/github.com/matzehuels/missionlayout/pkg/layout
// [layout.GridDimensions]: https://pkg.go.dev/github.com/matzehuels/missionlayout/pkg/layout#GridDimensions
// [graph]: https://pkg.go.dev/github.com/matzehuels/missionlayout/pkg/graph
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/missionlayout/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/matzehuels/missionlayout/pkg/render
// [cache]: https://pkg.go.dev/github.com/matzehuels/missionlayout/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/missionlayout/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/missionlayout/pkg/errors
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/missionlayout/pkg/render/nodelink
// [render/grid]: https://pkg.go.dev/github.com/matzehuels/missionlayout/pkg/render/grid
package pkg
