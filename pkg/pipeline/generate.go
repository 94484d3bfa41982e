package pipeline

import (
	"maps"

	"github.com/matzehuels/missionlayout/pkg/cache"
	apperrors "github.com/matzehuels/missionlayout/pkg/errors"
	"github.com/matzehuels/missionlayout/pkg/graph"
	"github.com/matzehuels/missionlayout/pkg/layout"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout builds the requested layout and freezes it into a validated,
// content-hashed document. It does not touch any cache; see
// [Runner.GenerateWithCacheInfo] for the cached variant.
//
// Option keys the layout does not recognize are kept in Layout.Unused.
func GenerateLayout(opts Options) (graph.Layout, error) {
	if err := opts.ValidateForGenerate(); err != nil {
		return graph.Layout{}, err
	}

	kind, err := layout.ParseKind(opts.Layout)
	if err != nil {
		return graph.Layout{}, apperrors.Wrap(apperrors.ErrCodeInvalidLayout, err, "invalid layout")
	}
	l, err := layout.New(kind, opts.Size)
	if err != nil {
		return graph.Layout{}, apperrors.Wrap(apperrors.ErrCodeInvalidSize, err, "invalid size")
	}

	requested := layout.Options(maps.Clone(opts.LayoutOptions))
	unused := l.SetOptions(requested)
	doc := graph.Export(l, opts.Size, requested, unused, l.MakeSlots(nil))

	if err := graph.Validate(doc); err != nil {
		return graph.Layout{}, apperrors.Wrap(apperrors.ErrCodeInternal, err,
			"generated %s layout of size %d is invalid", doc.Layout, opts.Size)
	}

	hash, err := contentHash(doc)
	if err != nil {
		return graph.Layout{}, err
	}
	doc.Hash = hash

	opts.Logger.Debug("built layout",
		"layout", doc.Layout,
		"requested", doc.Size,
		"effective", doc.EffectiveSize,
		"slots", len(doc.Slots),
		"visual_columns", doc.Columns())
	return doc, nil
}

// contentHash hashes the document without its Hash field.
func contentHash(doc graph.Layout) (string, error) {
	doc.Hash = ""
	data, err := graph.MarshalLayout(doc)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeInternal, err, "serialize layout")
	}
	return cache.Hash(data), nil
}
