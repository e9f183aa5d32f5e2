package layout

import (
	"fmt"
	"math"

	"github.com/matzehuels/erdgraph/pkg/geometry"
)

// Default layout values.
const (
	DefaultOriginX      = 50.0
	DefaultOriginY      = 80.0
	DefaultRowHeight    = 35.0
	DefaultRecordWidth  = 300.0
	DefaultRecordSpace  = 80.0
	DefaultCornerRadius = 6.0
)

// Config holds the fixed spacing used by every stage.
type Config struct {
	OriginX      float64 `json:"origin_x" toml:"origin_x"`
	OriginY      float64 `json:"origin_y" toml:"origin_y"`
	RowHeight    float64 `json:"row_height" toml:"row_height"`
	RecordWidth  float64 `json:"record_width" toml:"record_width"`
	RecordSpace  float64 `json:"record_space" toml:"record_space"`
	CornerRadius float64 `json:"corner_radius" toml:"corner_radius"`
}

// DefaultConfig returns the standard spacing.
func DefaultConfig() Config {
	return Config{
		OriginX:      DefaultOriginX,
		OriginY:      DefaultOriginY,
		RowHeight:    DefaultRowHeight,
		RecordWidth:  DefaultRecordWidth,
		RecordSpace:  DefaultRecordSpace,
		CornerRadius: DefaultCornerRadius,
	}
}

// Origin returns the top-left corner of the first record.
func (c Config) Origin() geometry.Point { return geometry.Pt(c.OriginX, c.OriginY) }

// JunctionMargin is how far records are expanded when mapping junctions:
// half the gap between neighbouring records.
func (c Config) JunctionMargin() float64 { return c.RecordSpace / 2 }

// Validate rejects spacing that cannot produce a sensible layout.
func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"origin x", c.OriginX},
		{"origin y", c.OriginY},
		{"row height", c.RowHeight},
		{"record width", c.RecordWidth},
		{"record space", c.RecordSpace},
		{"corner radius", c.CornerRadius},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s must be finite, got %g", f.name, f.v)
		}
	}
	if c.RowHeight <= 0 {
		return fmt.Errorf("row height must be positive, got %g", c.RowHeight)
	}
	if c.RecordWidth <= 0 {
		return fmt.Errorf("record width must be positive, got %g", c.RecordWidth)
	}
	if c.RecordSpace < 0 {
		return fmt.Errorf("record space must not be negative, got %g", c.RecordSpace)
	}
	if c.CornerRadius < 0 {
		return fmt.Errorf("corner radius must not be negative, got %g", c.CornerRadius)
	}
	return nil
}
