// Package config loads generation settings from TOML, YAML or JSON files.
//
// A generation file names the layout, the requested size and the layout
// options; it may also list index terms to select and output formats:
//
//	# mission.toml
//	layout = "grid"
//	size = 12
//	select = ["entrances", "rect(0,0,2,2)"]
//
//	[options]
//	width = 4
//	two_start_positions = true
//
// The same shape is accepted as YAML (.yaml, .yml) and JSON (.json). Unknown
// top-level keys are rejected so typos surface early; keys inside options are
// passed to the layout untouched.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	apperrors "github.com/matzehuels/missionlayout/pkg/errors"
	"github.com/matzehuels/missionlayout/pkg/pipeline"
)

// CurrentVersion is the newest supported file version. A missing version
// means the current one.
const CurrentVersion = 1

// Supported file formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// File is a generation file.
type File struct {
	Version  int            `toml:"version" yaml:"version" json:"version,omitempty"`
	Layout   string         `toml:"layout" yaml:"layout" json:"layout,omitempty"`
	Size     int            `toml:"size" yaml:"size" json:"size,omitempty"`
	Options  map[string]any `toml:"options" yaml:"options" json:"options,omitempty"`
	Select   []string       `toml:"select" yaml:"select" json:"select,omitempty"`
	Formats  []string       `toml:"formats" yaml:"formats" json:"formats,omitempty"`
	Detailed bool           `toml:"detailed" yaml:"detailed" json:"detailed,omitempty"`
}

// FormatForPath returns the file format implied by a path's extension.
func FormatForPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", apperrors.New(apperrors.ErrCodeInvalidConfig,
			"unsupported config extension %q (use .toml, .yaml, .yml or .json)", ext)
	}
}

// Load reads and parses the generation file at path.
func Load(path string) (*File, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "config file not found: %s", path)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	f, err := Parse(data, format)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return f, nil
}

// Parse decodes a generation file in the given format and validates its
// version.
func Parse(data []byte, format string) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	if f.Version == 0 {
		f.Version = CurrentVersion
	}
	if f.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported version: %d", f.Version)
	}
	return &f, nil
}

// PipelineOptions converts the file into pipeline options. The options map
// is copied.
func (f *File) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		Layout:        f.Layout,
		Size:          f.Size,
		LayoutOptions: maps.Clone(f.Options),
		Select:        slices.Clone(f.Select),
		Formats:       slices.Clone(f.Formats),
		Detailed:      f.Detailed,
	}
}
