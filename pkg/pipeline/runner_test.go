package pipeline

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/missionlayout/pkg/cache"
	apperrors "github.com/matzehuels/missionlayout/pkg/errors"
	"github.com/matzehuels/missionlayout/pkg/graph"
)

func newTestRunner(t *testing.T) (*Runner, cache.Cache) {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	r := NewRunner(c, nil, log.New(io.Discard))
	t.Cleanup(func() { _ = r.Close() })
	return r, c
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	assert.NotNil(t, r.Cache)
	assert.NotNil(t, r.Keyer)
	assert.NotNil(t, r.Logger)
	assert.NoError(t, r.Close())
}

func TestRunnerGenerateCaches(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRunner(t)
	opts := Options{Layout: "hopscotch", Size: 11}

	first, hit, err := r.GenerateWithCacheInfo(ctx, opts)
	require.NoError(t, err)
	assert.False(t, hit, "first run should miss")

	second, hit, err := r.GenerateWithCacheInfo(ctx, opts)
	require.NoError(t, err)
	assert.True(t, hit, "second run should hit")
	assert.Equal(t, first.Hash, second.Hash)
	assert.Equal(t, first.Slots, second.Slots)

	opts.Refresh = true
	_, hit, err = r.GenerateWithCacheInfo(ctx, opts)
	require.NoError(t, err)
	assert.False(t, hit, "refresh should skip the cache")
}

func TestRunnerGenerateDiscardsCorruptEntry(t *testing.T) {
	ctx := context.Background()
	r, c := newTestRunner(t)
	opts := Options{Layout: "grid", Size: 5}

	key := r.Keyer.LayoutKey("grid", 5, nil)
	require.NoError(t, c.Set(ctx, key, []byte(`{"layout":"grid","slots":[]}`), 0))

	doc, hit, err := r.GenerateWithCacheInfo(ctx, opts)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, graph.Validate(doc))

	// The regenerated layout replaced the corrupt entry.
	_, hit, err = r.GenerateWithCacheInfo(ctx, opts)
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestRunnerGenerateNormalizesCacheKey(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRunner(t)

	_, hit, err := r.GenerateWithCacheInfo(ctx, Options{Layout: "Blitz", Size: 9})
	require.NoError(t, err)
	assert.False(t, hit)

	_, hit, err = r.GenerateWithCacheInfo(ctx, Options{Layout: "blitz", Size: 9})
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestRunnerGenerateInvalid(t *testing.T) {
	r, _ := newTestRunner(t)
	_, err := r.Generate(context.Background(), Options{Layout: "grid", Size: -1})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidSize))
}

func TestRunnerExecute(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRunner(t)

	result, err := r.Execute(ctx, Options{
		Layout:        "grid",
		Size:          12,
		LayoutOptions: map[string]any{"width": 4},
		Select:        []string{"rect(0,0,2,2)"},
		Formats:       []string{FormatJSON, FormatDOT, FormatText},
	})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 4, 5}, result.Selection)
	assert.Equal(t, 12, result.Stats.SlotCount)
	assert.Equal(t, result.Layout.EdgeCount(), result.Stats.EdgeCount)
	assert.False(t, result.CacheInfo.LayoutHit)
	assert.Len(t, result.Artifacts, 3)

	doc, err := graph.UnmarshalLayout(result.Artifacts[FormatJSON])
	require.NoError(t, err)
	assert.Equal(t, result.Layout.Hash, doc.Hash)

	assert.Contains(t, string(result.Artifacts[FormatDOT]), `"5" [label="5", penwidth=4, color=orange]`)
	assert.Equal(t, 3, strings.Count(string(result.Artifacts[FormatText]), "\n"))
}

func TestRunnerExecuteBadTerm(t *testing.T) {
	r, _ := newTestRunner(t)
	_, err := r.Execute(context.Background(), Options{Layout: "column", Size: 3, Select: []string{"row(1)"}})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidTerm))
	assert.Contains(t, err.Error(), "select:")
}

func TestRunnerRenderCaches(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRunner(t)
	opts := Options{Layout: "gauntlet", Size: 9, Formats: []string{FormatDOT}}

	doc, err := r.Generate(ctx, opts)
	require.NoError(t, err)

	first, hit, err := r.RenderWithCacheInfo(ctx, doc, nil, opts)
	require.NoError(t, err)
	assert.False(t, hit)

	second, hit, err := r.RenderWithCacheInfo(ctx, doc, nil, opts)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, first, second)

	// A different selection is a different artifact.
	_, hit, err = r.RenderWithCacheInfo(ctx, doc, []int{0}, opts)
	require.NoError(t, err)
	assert.False(t, hit)

	// Uncacheable formats always render.
	opts.Formats = []string{FormatDOT, FormatText}
	_, hit, err = r.RenderWithCacheInfo(ctx, doc, nil, opts)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRunnerRenderHashesUnhashedDocuments(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRunner(t)
	opts := Options{Formats: []string{FormatDOT}}

	doc, err := GenerateLayout(Options{Layout: "column", Size: 2})
	require.NoError(t, err)
	doc.Hash = ""

	_, hit, err := r.RenderWithCacheInfo(ctx, doc, nil, opts)
	require.NoError(t, err)
	assert.False(t, hit)
	_, hit, err = r.RenderWithCacheInfo(ctx, doc, nil, opts)
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestRenderSVG(t *testing.T) {
	doc, err := GenerateLayout(Options{Layout: "column", Size: 3})
	require.NoError(t, err)

	artifacts, err := Render(context.Background(), doc, []int{1}, Options{Formats: []string{FormatSVG}})
	require.NoError(t, err)
	assert.Contains(t, string(artifacts[FormatSVG]), "<svg")
}

func TestRenderInvalidFormat(t *testing.T) {
	doc, err := GenerateLayout(Options{Layout: "column", Size: 3})
	require.NoError(t, err)

	_, err = Render(context.Background(), doc, nil, Options{Formats: []string{"bmp"}})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidFormat))
}
