package cache

// ScopedKeyer wraps a Keyer with a prefix so several tools or versions can
// share one backend without their keys colliding.
//
// Example usage:
//
//	// Keep entries from different releases apart
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(layout string, size int, opts map[string]any) string {
	return k.prefix + k.inner.LayoutKey(layout, size, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(layoutHash, format string, opts map[string]any) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, format, opts)
}
