// Package graph provides the serialization format for generated mission
// layouts.
//
// This package defines the canonical wire format for missionlayout's output,
// used for JSON files, caching, rendering and cross-tool interoperability.
//
// # Architecture
//
// The package sits at the serialization boundary between the layout engine
// and everything downstream:
//
//   - pkg/layout.Layout: geometry and slot generation (the engine)
//   - [Layout]: a generated layout frozen into plain data (this package)
//   - pkg/render/...: renderers that only read [Layout]
//
// Use [Export] to freeze an engine layout and its slots into a [Layout].
//
// # Format
//
// A layout document lists every slot with its flags and forward edges, plus
// the visual grid as columns of slot indices (-1 for blank cells):
//
//	{
//	  "layout": "column",
//	  "size": 3,
//	  "effective_size": 3,
//	  "slots": [
//	    {"index": 0, "entrance": true, "next": [1]},
//	    {"index": 1, "next": [2]},
//	    {"index": 2, "exit": true}
//	  ],
//	  "visual": [[0, 1, 2]],
//	  "index_functions": []
//	}
//
// Common operations:
//
//	doc, _ := graph.ReadLayoutFile("mission.json")  // File → Layout
//	graph.WriteLayoutFile(doc, "output.json")       // Layout → File
//	data, _ := graph.MarshalLayout(doc)             // Layout → []byte
//	doc, _ = graph.UnmarshalLayout(data)            // []byte → Layout
//
// # Validation
//
// [Validate] checks the structural guarantees every generated layout must
// satisfy: at least one entrance and one exit, edges that stay inside the
// slot list without self-loops, and a rectangular visual grid that shows
// every slot exactly once.
//
// # Concurrency
//
// All functions are safe for concurrent reads but not concurrent writes.
package graph
