package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/missionlayout/pkg/cache"
	"github.com/matzehuels/missionlayout/pkg/graph"
	"github.com/matzehuels/missionlayout/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// The CLI and library callers use it so caching behaves the same everywhere.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete generate → select → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Generate
	generateStart := time.Now()
	doc, hit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Layout = doc
	result.Stats.GenerateTime = time.Since(generateStart)
	result.Stats.SlotCount = len(doc.Slots)
	result.Stats.EdgeCount = doc.EdgeCount()
	result.CacheInfo.LayoutHit = hit

	r.Logger.Info("generated layout",
		"layout", doc.Layout,
		"size", doc.EffectiveSize,
		"slots", result.Stats.SlotCount,
		"edges", result.Stats.EdgeCount,
		"duration", result.Stats.GenerateTime)

	// Stage 2: Select
	selection, err := Select(doc, opts.Select...)
	if len(opts.Select) > 0 {
		observability.Pipeline().OnSelect(ctx, doc.Layout, opts.Select, len(selection), err)
	}
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	result.Selection = selection
	if len(opts.Select) > 0 {
		r.Logger.Debug("resolved selection", "terms", opts.Select, "indices", selection)
	}

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, doc, selection, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateWithCacheInfo generates a layout with caching and returns cache hit info.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, opts Options) (graph.Layout, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForGenerate(); err != nil {
		return graph.Layout{}, false, err
	}

	cacheKey := r.Keyer.LayoutKey(opts.Layout, opts.Size, opts.LayoutOptions)

	hooks := observability.Cache()

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cached, err := graph.UnmarshalLayout(data)
			if err == nil && graph.Validate(cached) == nil {
				r.Logger.Debug("layout cache hit", "layout", opts.Layout, "size", opts.Size)
				hooks.OnCacheHit(ctx, observability.KeyTypeLayout)
				return cached, true, nil // Cache hit
			}
			// Corrupt entries fall through to regeneration
			r.Logger.Warn("discarding invalid cached layout", "key", cacheKey)
		} else if err != nil {
			r.Logger.Warn("cache lookup failed", "error", err)
		}
	}

	hooks.OnCacheMiss(ctx, observability.KeyTypeLayout)

	observability.Pipeline().OnGenerateStart(ctx, opts.Layout, opts.Size)
	start := time.Now()
	doc, err := GenerateLayout(opts)
	observability.Pipeline().OnGenerateComplete(ctx, opts.Layout, len(doc.Slots), time.Since(start), err)
	if err != nil {
		return graph.Layout{}, false, err
	}
	for key, value := range doc.Unused {
		r.Logger.Warn("unused layout option", "layout", doc.Layout, "key", key, "value", value)
	}

	// Cache the result
	if data, err := graph.MarshalLayout(doc); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout); err != nil {
			r.Logger.Warn("cache store failed", "error", err)
		} else {
			hooks.OnCacheSet(ctx, observability.KeyTypeLayout, len(data))
		}
	}

	return doc, false, nil // Cache miss
}

// Generate is a convenience wrapper that calls GenerateWithCacheInfo and discards the cache hit info.
func (r *Runner) Generate(ctx context.Context, opts Options) (graph.Layout, error) {
	doc, _, err := r.GenerateWithCacheInfo(ctx, opts)
	return doc, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
// JSON and text outputs are cheap and never cached; SVG and DOT are keyed by
// the layout hash, the format and the render options.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, doc graph.Layout, selection []int, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	if doc.Hash == "" {
		hash, err := contentHash(doc)
		if err != nil {
			return nil, false, err
		}
		doc.Hash = hash
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	cachedAny := false
	for _, format := range opts.Formats {
		if !cacheable(format) {
			missing = append(missing, format)
			continue
		}
		key := r.Keyer.ArtifactKey(doc.Hash, format, opts.ArtifactKeyOpts(selection))
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			artifacts[format] = data
			cachedAny = true
			observability.Cache().OnCacheHit(ctx, observability.KeyTypeArtifact)
		} else {
			missing = append(missing, format)
			observability.Cache().OnCacheMiss(ctx, observability.KeyTypeArtifact)
		}
	}

	if len(missing) == 0 {
		return artifacts, cachedAny, nil // All artifacts from cache
	}

	renderOpts := opts
	renderOpts.Formats = missing
	observability.Pipeline().OnRenderStart(ctx, missing)
	start := time.Now()
	rendered, err := Render(ctx, doc, selection, renderOpts)
	observability.Pipeline().OnRenderComplete(ctx, missing, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		artifacts[format] = data
		if cacheable(format) {
			key := r.Keyer.ArtifactKey(doc.Hash, format, opts.ArtifactKeyOpts(selection))
			if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
				observability.Cache().OnCacheSet(ctx, observability.KeyTypeArtifact, len(data))
			}
		}
	}

	return artifacts, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, doc graph.Layout, selection []int, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, doc, selection, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func cacheable(format string) bool {
	return format == FormatSVG || format == FormatDOT
}
