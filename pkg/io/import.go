package io

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/erdgraph/pkg/diagram"
	"github.com/matzehuels/erdgraph/pkg/errors"
)

// Format identifies a diagram file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ParseFormat validates a format name such as "json" or "TOML".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatTOML:
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported diagram format %q (want json or toml)", s)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer diagram format of %q", path)
	}
	return ParseFormat(ext)
}

// ReadDiagram decodes a diagram in the given format from r and validates it.
// ReadDiagram does not close r.
func ReadDiagram(r io.Reader, format Format) (*diagram.Diagram, error) {
	var d diagram.Diagram
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&d); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json diagram")
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&d); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode toml diagram")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported diagram format %q", format)
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// ImportDiagram reads the diagram file at path, choosing the format from its
// extension.
func ImportDiagram(path string) (*diagram.Diagram, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadDiagram(f, format)
}
