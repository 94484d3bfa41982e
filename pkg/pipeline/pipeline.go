// Package pipeline provides the generate → select → render pipeline for
// missionlayout.
//
// This package sits between the layout engine (pkg/layout) and the entry
// points. By centralizing option validation, caching and output formats
// here, the CLI and any embedding program behave the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Generate: build a layout, create its slots and freeze it into a
//     [graph.Layout] document, validated and content-hashed
//  2. Select: resolve index terms (and the reserved keywords entrances,
//     exits and all) against the document
//  3. Render: produce JSON, DOT, SVG or terminal text
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Layout:        "grid",
//	    Size:          12,
//	    LayoutOptions: map[string]any{"two_start_positions": true},
//	    Select:        []string{"rect(0,0,2,2)"},
//	    Formats:       []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	doc, err := runner.Generate(ctx, opts)
//	indices, err := pipeline.Select(doc, "entrances", "point(1,1)")
//	artifacts, err := runner.Render(ctx, doc, indices, opts)
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	apperrors "github.com/matzehuels/missionlayout/pkg/errors"
	"github.com/matzehuels/missionlayout/pkg/graph"
	"github.com/matzehuels/missionlayout/pkg/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library
// =============================================================================

const (
	// DefaultLayout is the layout used when none is requested.
	DefaultLayout = "grid"

	// MaxSize bounds the requested slot count. Grid and blitz layouts grow
	// quadratically in edges, so very large requests are rejected early.
	MaxSize = 10000
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatText = "text"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatText: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization.
type Options struct {
	// Generate options
	Layout        string         `json:"layout"`
	Size          int            `json:"size"`
	LayoutOptions map[string]any `json:"options,omitempty"`
	Refresh       bool           `json:"refresh,omitempty"` // Skip cache lookup

	// Select options
	Select []string `json:"select,omitempty"` // Index terms to resolve and highlight

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // Flags and metadata in diagram labels

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the generated layout document.
	Layout graph.Layout

	// Selection holds the indices resolved from Options.Select.
	Selection []int

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SlotCount    int
	EdgeCount    int
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return apperrors.New(apperrors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: json, dot, svg, text)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateLayout checks that a layout name is one of the supported kinds.
func ValidateLayout(name string) error {
	if _, err := layout.ParseKind(name); err != nil {
		names := make([]string, 0, len(layout.Kinds()))
		for _, k := range layout.Kinds() {
			names = append(names, k.String())
		}
		return apperrors.New(apperrors.ErrCodeInvalidLayout,
			"invalid layout: %q (must be one of: %s)", name, strings.Join(names, ", "))
	}
	return nil
}

// ValidateSize checks that a size is within [1, MaxSize].
func ValidateSize(size int) error {
	if size < 1 {
		return apperrors.New(apperrors.ErrCodeInvalidSize, "size must be at least 1, got %d", size)
	}
	if size > MaxSize {
		return apperrors.New(apperrors.ErrCodeInvalidSize, "size must be at most %d, got %d", MaxSize, size)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	if err := o.ValidateForSelect(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForGenerate checks the fields needed to generate a layout.
// The layout name is normalized to its canonical lowercase form.
func (o *Options) ValidateForGenerate() error {
	if strings.TrimSpace(o.Layout) == "" {
		o.Layout = DefaultLayout
	}
	if err := ValidateLayout(o.Layout); err != nil {
		return err
	}
	kind, _ := layout.ParseKind(o.Layout)
	o.Layout = kind.String()

	if err := ValidateSize(o.Size); err != nil {
		return err
	}
	for key := range o.LayoutOptions {
		if err := apperrors.ValidateOptionKey(key); err != nil {
			return err
		}
	}
	o.setLogger()
	return nil
}

// ValidateForSelect checks every index term.
func (o *Options) ValidateForSelect() error {
	for _, term := range o.Select {
		if err := apperrors.ValidateTerm(term); err != nil {
			return err
		}
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
// The selection is part of the key because it changes highlighting.
func (o *Options) ArtifactKeyOpts(selection []int) map[string]any {
	return map[string]any{
		"detailed":  o.Detailed,
		"selection": slices.Clone(selection),
	}
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}
