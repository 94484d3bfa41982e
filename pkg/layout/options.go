package layout

import (
	"maps"
	"math"
	"strconv"
	"strings"
)

// Option keys understood by the layouts.
const (
	// OptionTwoStartPositions adds one slot and opens two entrances
	// (Grid, Hopscotch).
	OptionTwoStartPositions = "two_start_positions"

	// OptionWidth sets the number of columns (Grid, Hopscotch, Gauntlet, Blitz).
	OptionWidth = "width"
)

// Options is a loosely typed, string-keyed option bag.
//
// Values may come from flags, TOML, YAML or JSON, so integers are accepted as
// any Go integer type, integral floats or decimal strings, and booleans as
// bool, integers, or the strings true/false/yes/no/1/0.
type Options map[string]any

// Clone returns a shallow copy. Cloning nil yields an empty, non-nil map.
func (o Options) Clone() Options {
	c := make(Options, len(o))
	maps.Copy(c, o)
	return c
}

// popBool removes key and returns its boolean value. Missing or uncoercible
// values return def, and uncoercible values stay in the map.
func (o Options) popBool(key string, def bool) bool {
	v, ok := o[key]
	if !ok {
		return def
	}
	b, ok := toBool(v)
	if !ok {
		return def
	}
	delete(o, key)
	return b
}

// popInt removes key and returns its integer value. Missing or uncoercible
// values return def, and uncoercible values stay in the map.
func (o Options) popInt(key string, def int) int {
	v, ok := o[key]
	if !ok {
		return def
	}
	n, ok := toInt(v)
	if !ok {
		return def
	}
	delete(o, key)
	return n
}

func toBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "yes", "on":
			return true, true
		case "no", "off":
			return false, true
		}
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		return parsed, err == nil
	}
	if n, ok := toInt(v); ok {
		return n != 0, true
	}
	return false, false
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		return parsed, err == nil
	}
	return 0, false
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
