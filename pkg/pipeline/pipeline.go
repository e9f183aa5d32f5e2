// Package pipeline runs the diagram → scene → layout → export pipeline with
// caching. The CLI and the HTTP API both go through it so they produce the
// same geometry for the same input.
//
// # Stages
//
//  1. Build: convert the [diagram.Diagram] into a scene graph
//  2. Place: position records and fields
//  3. Anchors: add connection points
//  4. Route: choose anchor pairs and build connector paths
//  5. Junctions: record advisory routing candidates (skippable)
//  6. Export: flatten into a [graph.Layout]
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, d, pipeline.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	graph.WriteLayoutFile(result.Layout, "shop.layout.json")
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/erdgraph/pkg/cache"
	"github.com/matzehuels/erdgraph/pkg/errors"
	"github.com/matzehuels/erdgraph/pkg/graph"
	"github.com/matzehuels/erdgraph/pkg/layout"
)

// Stage names reported to observability hooks.
const (
	StagePlace     = "place"
	StageAnchors   = "anchors"
	StageRoute     = "route"
	StageJunctions = "junctions"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a pipeline run. It decodes from JSON (API requests) and
// TOML (the CLI config file).
type Options struct {
	// Layout overrides the engine spacing. Zero fields take the defaults.
	Layout layout.Config `json:"layout" toml:"layout"`

	// SkipJunctions disables the junction-mapping stage.
	SkipJunctions bool `json:"skip_junctions,omitempty" toml:"skip_junctions"`

	// Refresh recomputes the layout even when it is cached.
	Refresh bool `json:"refresh,omitempty" toml:"-"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the exported geometry.
	Layout graph.Layout

	// DiagramHash is the SHA-256 of the diagram's JSON encoding.
	DiagramHash string

	// Stats contains counts and timing.
	Stats Stats

	// CacheHit reports whether Layout came from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Records          int
	Fields           int
	Edges            int
	ConnectionPoints int
	Junctions        int
	LayoutTime       time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills zero layout values and a discard logger. It is
// idempotent.
func (o *Options) SetDefaults() {
	def := layout.DefaultConfig()
	if o.Layout.OriginX == 0 {
		o.Layout.OriginX = def.OriginX
	}
	if o.Layout.OriginY == 0 {
		o.Layout.OriginY = def.OriginY
	}
	if o.Layout.RowHeight == 0 {
		o.Layout.RowHeight = def.RowHeight
	}
	if o.Layout.RecordWidth == 0 {
		o.Layout.RecordWidth = def.RecordWidth
	}
	if o.Layout.RecordSpace == 0 {
		o.Layout.RecordSpace = def.RecordSpace
	}
	if o.Layout.CornerRadius == 0 {
		o.Layout.CornerRadius = def.CornerRadius
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateAndSetDefaults applies defaults and checks the layout values.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := o.Layout.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid layout options")
	}
	o.validated = true
	return nil
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		OriginX:      o.Layout.OriginX,
		OriginY:      o.Layout.OriginY,
		RowHeight:    o.Layout.RowHeight,
		RecordWidth:  o.Layout.RecordWidth,
		RecordSpace:  o.Layout.RecordSpace,
		CornerRadius: o.Layout.CornerRadius,
		Junctions:    !o.SkipJunctions,
	}
}
