package graph

import (
	"encoding/json"
	"fmt"
	"os"
)

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
// The view box must be non-empty and every edge must carry a path.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Validate checks the structural requirements of a decoded layout.
func (l *Layout) Validate() error {
	if l.ViewBox.Width <= 0 || l.ViewBox.Height <= 0 {
		return fmt.Errorf("layout must have a non-empty view box")
	}
	for i, e := range l.Edges {
		if e.Path == "" || len(e.Commands) == 0 {
			return fmt.Errorf("edge %d has no path", i)
		}
		if e.Commands[0].Op != "M" {
			return fmt.Errorf("edge %d: path must begin with a move-to", i)
		}
	}
	return nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
