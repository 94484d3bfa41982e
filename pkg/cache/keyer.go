package cache

import "strings"

// Keyer derives cache keys for generated layouts.
type Keyer interface {
	// LayoutKey returns the key for a layout kind, requested size and options bag.
	LayoutKey(layout string, size int, opts map[string]any) string

	// ArtifactKey returns the key for a rendered artifact of a layout,
	// identified by the layout's content hash, the output format and the
	// render options.
	ArtifactKey(layoutHash, format string, opts map[string]any) string
}

// DefaultKeyer hashes requests into "layout:<sha256>" and
// "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey implements Keyer. Layout names are case-folded so "Grid" and
// "grid" share an entry. Map keys are serialized in sorted order, so the
// key does not depend on option insertion order.
func (DefaultKeyer) LayoutKey(layout string, size int, opts map[string]any) string {
	if opts == nil {
		opts = map[string]any{}
	}
	return hashKey("layout", strings.ToLower(strings.TrimSpace(layout)), size, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(layoutHash, format string, opts map[string]any) string {
	if opts == nil {
		opts = map[string]any{}
	}
	return hashKey("artifact", layoutHash, format, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = DefaultKeyer{}
