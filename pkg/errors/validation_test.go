package errors

import (
	"strings"
	"testing"
)

func TestValidateTerm(t *testing.T) {
	tests := []struct {
		name    string
		term    string
		wantErr bool
	}{
		{"function call", "rect(0,0,2,2)", false},
		{"bare name", "top", false},
		{"reserved keyword", "entrances", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"control character", "row(1)\x00", true},
		{"newline", "row(1)\nrow(2)", true},
		{"too long", strings.Repeat("a", 257), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTerm(tt.term)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTerm(%q) error = %v, wantErr %v", tt.term, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidTerm) {
				t.Errorf("ValidateTerm(%q) code = %v, want %v", tt.term, GetCode(err), ErrCodeInvalidTerm)
			}
		})
	}
}

func TestValidateOptionKey(t *testing.T) {
	tests := []struct {
		key     string
		wantErr bool
	}{
		{"width", false},
		{"two_start_positions", false},
		{"w2", false},
		{"", true},
		{"Width", true},
		{"2width", true},
		{"with space", true},
		{"dash-key", true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := ValidateOptionKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOptionKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
		})
	}
}

func TestParseOptionAssignment(t *testing.T) {
	key, value, err := ParseOptionAssignment(" width = 5 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "width" || value != "5" {
		t.Errorf("got (%q, %q), want (\"width\", \"5\")", key, value)
	}

	key, value, err = ParseOptionAssignment("label=a=b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "label" || value != "a=b" {
		t.Errorf("got (%q, %q), want (\"label\", \"a=b\")", key, value)
	}

	for _, bad := range []string{"width", "=5", "Bad=1"} {
		if _, _, err := ParseOptionAssignment(bad); !Is(err, ErrCodeInvalidOption) {
			t.Errorf("ParseOptionAssignment(%q) error = %v, want %s", bad, err, ErrCodeInvalidOption)
		}
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidSize,
		ErrCodeInvalidLayout,
		ErrCodeInvalidOption,
		ErrCodeInvalidTerm,
		ErrCodeInvalidConfig,
		ErrCodeInvalidFormat,
		ErrCodeFileNotFound,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
