package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/matzehuels/missionlayout/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"json", false},
		{"dot", false},
		{"svg", false},
		{"text", false},
		{"png", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if tt.wantErr {
			assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidFormat), "format %q", tt.format)
		} else {
			assert.NoError(t, err, "format %q", tt.format)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	assert.NoError(t, ValidateFormats([]string{"svg", "json"}))
	assert.Error(t, ValidateFormats([]string{"svg", "invalid"}))
	assert.NoError(t, ValidateFormats(nil), "empty formats should pass")
}

func TestValidateLayout(t *testing.T) {
	for _, name := range []string{"column", "grid", "hopscotch", "gauntlet", "blitz", " Grid "} {
		assert.NoError(t, ValidateLayout(name), name)
	}
	err := ValidateLayout("maze")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidLayout))
	assert.Contains(t, err.Error(), "column, grid, hopscotch, gauntlet, blitz")
}

func TestValidateSize(t *testing.T) {
	assert.NoError(t, ValidateSize(1))
	assert.NoError(t, ValidateSize(MaxSize))
	for _, size := range []int{0, -3, MaxSize + 1} {
		assert.True(t, apperrors.Is(ValidateSize(size), apperrors.ErrCodeInvalidSize), "size %d", size)
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{Size: 9}
	require.NoError(t, opts.ValidateAndSetDefaults())

	assert.Equal(t, DefaultLayout, opts.Layout)
	assert.Equal(t, []string{FormatJSON}, opts.Formats)
	assert.NotNil(t, opts.Logger)

	// Idempotent
	opts.Formats = []string{"bogus"}
	assert.NoError(t, opts.ValidateAndSetDefaults())
}

func TestValidateAndSetDefaultsNormalizesLayout(t *testing.T) {
	opts := Options{Layout: "  HopScotch", Size: 4}
	require.NoError(t, opts.ValidateAndSetDefaults())
	assert.Equal(t, "hopscotch", opts.Layout)
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code apperrors.Code
	}{
		{"missing size", Options{Layout: "grid"}, apperrors.ErrCodeInvalidSize},
		{"unknown layout", Options{Layout: "spiral", Size: 3}, apperrors.ErrCodeInvalidLayout},
		{"bad option key", Options{Size: 3, LayoutOptions: map[string]any{"Width": 3}}, apperrors.ErrCodeInvalidOption},
		{"empty term", Options{Size: 3, Select: []string{" "}}, apperrors.ErrCodeInvalidTerm},
		{"bad format", Options{Size: 3, Formats: []string{"gif"}}, apperrors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			require.Error(t, err)
			assert.Equal(t, tt.code, apperrors.GetCode(err))
		})
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{Detailed: true}
	sel := []int{1, 2}
	got := opts.ArtifactKeyOpts(sel)
	sel[0] = 9
	assert.Equal(t, map[string]any{"detailed": true, "selection": []int{1, 2}}, got)
}
