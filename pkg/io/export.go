package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/erdgraph/pkg/diagram"
	"github.com/matzehuels/erdgraph/pkg/errors"
)

// WriteDiagram encodes d to w in the given format. JSON output is indented
// with two spaces.
func WriteDiagram(d *diagram.Diagram, w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode json diagram")
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(d); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode toml diagram")
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported diagram format %q", format)
	}
	return nil
}

// ExportDiagram writes d to path, choosing the format from its extension.
func ExportDiagram(d *diagram.Diagram, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create %s", path)
	}
	if err := WriteDiagram(d, f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
