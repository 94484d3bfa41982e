package layout

import (
	"slices"
	"strconv"
	"strings"
)

// indexFunc resolves parsed integer arguments against a layout of type L.
// It reports false for out-of-range or otherwise unusable arguments.
type indexFunc[L any] struct {
	name    string
	arity   int
	resolve func(l L, args []int) ([]int, bool)
}

// indexTable is the static, ordered set of index functions for one layout
// type. Tables are package-level values shared by every instance.
type indexTable[L any] []indexFunc[L]

func (t indexTable[L]) names() []string {
	names := make([]string, len(t))
	for i, fn := range t {
		names[i] = fn.name
	}
	return names
}

func (t indexTable[L]) lookup(name string) (indexFunc[L], bool) {
	for _, fn := range t {
		if fn.name == name {
			return fn, true
		}
	}
	return indexFunc[L]{}, false
}

// splitTerm splits "name(a, b)" into its name and trimmed arguments. A term
// without parentheses is a call with no arguments. The first '(' and the first
// ')' delimit the argument list and anything after ')' is ignored, so "f()"
// carries a single empty argument. Exactly one parenthesis is malformed.
func splitTerm(term string) (name string, args []string, ok bool) {
	left := strings.IndexByte(term, '(')
	right := strings.IndexByte(term, ')')
	switch {
	case left == -1 && right == -1:
		return strings.TrimSpace(term), nil, true
	case left == -1 || right == -1:
		return "", nil, false
	}

	var inner string
	if right > left {
		inner = term[left+1 : right]
	}
	parts := strings.Split(inner, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.TrimSpace(term[:left]), parts, true
}

// parseIndex resolves term through table. Every failure, including a panic
// inside a resolver, is reported as unresolved.
func parseIndex[L any](l L, table indexTable[L], term string) (indices []int, ok bool) {
	name, rawArgs, ok := splitTerm(term)
	if !ok {
		return nil, false
	}
	fn, found := table.lookup(name)
	if !found || len(rawArgs) != fn.arity {
		return nil, false
	}

	args := make([]int, len(rawArgs))
	for i, raw := range rawArgs {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, false
		}
		args[i] = n
	}

	defer func() {
		if r := recover(); r != nil {
			indices, ok = nil, false
		}
	}()
	indices, ok = fn.resolve(l, args)
	if !ok {
		return nil, false
	}
	if indices == nil {
		indices = []int{}
	}
	slices.Sort(indices)
	return slices.Compact(indices), true
}

// strided returns start, start+step, ... for count values, keeping those
// below limit.
func strided(start, step, count, limit int) []int {
	indices := make([]int, 0, count)
	for k := 0; k < count; k++ {
		if idx := start + k*step; idx < limit {
			indices = append(indices, idx)
		}
	}
	return indices
}
