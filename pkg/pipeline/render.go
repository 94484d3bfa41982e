package pipeline

import (
	"context"
	"fmt"

	apperrors "github.com/matzehuels/missionlayout/pkg/errors"
	"github.com/matzehuels/missionlayout/pkg/graph"
	"github.com/matzehuels/missionlayout/pkg/render/grid"
	"github.com/matzehuels/missionlayout/pkg/render/nodelink"
)

// Render generates output artifacts in the requested formats. selection is
// highlighted in the DOT, SVG and text outputs.
func Render(ctx context.Context, doc graph.Layout, selection []int, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(ctx, doc, selection, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, doc graph.Layout, selection []int, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatJSON:
		return graph.MarshalLayout(doc)
	case FormatDOT:
		return []byte(toDOT(doc, selection, opts)), nil
	case FormatSVG:
		return nodelink.RenderSVG(ctx, toDOT(doc, selection, opts))
	case FormatText:
		return []byte(grid.Render(doc, grid.Options{Highlight: selection}) + "\n"), nil
	default:
		return nil, apperrors.New(apperrors.ErrCodeUnsupported, "unsupported format: %s", format)
	}
}

func toDOT(doc graph.Layout, selection []int, opts Options) string {
	return nodelink.ToDOT(doc, nodelink.Options{Detailed: opts.Detailed, Highlight: selection})
}
