package pipeline

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"

	apperrors "github.com/matzehuels/missionlayout/pkg/errors"
	"github.com/matzehuels/missionlayout/pkg/graph"
	"github.com/matzehuels/missionlayout/pkg/layout"
)

// Reserved selection keywords. They are resolved from slot flags and never
// reach a layout's index parser.
const (
	KeywordEntrances = "entrances"
	KeywordExits     = "exits"
	KeywordAll       = "all"
)

// Rebuild recreates the engine layout a document was generated from, so index
// terms can be resolved against stored or cached documents.
func Rebuild(doc graph.Layout) (layout.Layout, error) {
	kind, err := doc.Kind()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidLayout, err, "rebuild layout")
	}
	l, err := layout.New(kind, doc.Size)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidSize, err, "rebuild layout")
	}
	l.SetOptions(doc.Options)
	if l.Size() != doc.EffectiveSize {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput,
			"rebuilt %s layout has size %d, document says %d", doc.Layout, l.Size(), doc.EffectiveSize)
	}
	return l, nil
}

// Select resolves index terms against a document and returns the union of
// all resolved indices in ascending order. Terms are trimmed; the reserved
// keywords entrances, exits and all are resolved from slot flags, everything
// else through the layout's index functions.
//
// A term that does not resolve is an INVALID_TERM error.
func Select(doc graph.Layout, terms ...string) ([]int, error) {
	var l layout.Layout
	set := treeset.NewWithIntComparator()

	for _, raw := range terms {
		if err := apperrors.ValidateTerm(raw); err != nil {
			return nil, err
		}
		term := strings.TrimSpace(raw)

		if indices, ok := resolveKeyword(doc, term); ok {
			addAll(set, indices)
			continue
		}

		if l == nil {
			var err error
			if l, err = Rebuild(doc); err != nil {
				return nil, err
			}
		}
		indices, ok := l.ParseIndex(term)
		if !ok {
			return nil, apperrors.New(apperrors.ErrCodeInvalidTerm,
				"cannot resolve %q for %s layout (index functions: %s)",
				term, doc.Layout, describeFunctions(l.IndexFunctions()))
		}
		addAll(set, indices)
	}

	out := make([]int, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(int))
	}
	return out, nil
}

func resolveKeyword(doc graph.Layout, term string) ([]int, bool) {
	switch term {
	case KeywordEntrances:
		return doc.Entrances(), true
	case KeywordExits:
		return doc.Exits(), true
	case KeywordAll:
		return doc.All(), true
	}
	return nil, false
}

func addAll(set *treeset.Set, indices []int) {
	for _, i := range indices {
		set.Add(i)
	}
}

func describeFunctions(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}
