package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout converts a Layout to indented JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeLayoutTo(l, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteLayoutFile writes a Layout to a JSON file.
// The file is created with 0644 permissions.
func WriteLayoutFile(l Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeLayoutTo(l, f)
}

// WriteLayout writes a Layout as JSON to an io.Writer.
// Use MarshalLayout for in-memory serialization or WriteLayoutFile for files.
func WriteLayout(l Layout, w io.Writer) error {
	return writeLayoutTo(l, w)
}

// ReadLayoutFile reads a JSON file and returns the decoded, validated Layout.
func ReadLayoutFile(path string) (Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return Layout{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readLayoutFrom(f)
}

// ReadLayout decodes and validates a JSON layout from an io.Reader.
// Use ReadLayoutFile for files or pass bytes.NewReader for in-memory data.
func ReadLayout(r io.Reader) (Layout, error) {
	return readLayoutFrom(r)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeLayoutTo(l Layout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readLayoutFrom(r io.Reader) (Layout, error) {
	var l Layout
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		return Layout{}, fmt.Errorf("decode: %w", err)
	}
	if err := Validate(l); err != nil {
		return Layout{}, err
	}
	return l, nil
}
