package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/erdgraph/pkg/diagram"
	"github.com/matzehuels/erdgraph/pkg/errors"
	"github.com/matzehuels/erdgraph/pkg/graph"
	"github.com/matzehuels/erdgraph/pkg/layout"
	"github.com/matzehuels/erdgraph/pkg/observability"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout builds the scene for d and runs every layout stage in order,
// logging each one. It does not touch the cache.
//
// The stages themselves cannot be interrupted; ctx is checked between them.
func GenerateLayout(ctx context.Context, d *diagram.Diagram, opts Options) (graph.Layout, Stats, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return graph.Layout{}, Stats{}, err
	}
	logger := opts.Logger
	hooks := observability.Pipeline()

	doc, _, err := d.ToScene()
	if err != nil {
		return graph.Layout{}, Stats{}, err
	}

	records := doc.Records()
	var stats Stats
	stats.Records = len(records)
	for _, r := range records {
		stats.Fields += r.ChildCount()
	}
	stats.Edges = len(doc.Edges())

	start := time.Now()
	hooks.OnLayoutStart(ctx, stats.Records, stats.Edges)
	fail := func(err error) (graph.Layout, Stats, error) {
		hooks.OnLayoutComplete(ctx, stats.Records, time.Since(start), err)
		return graph.Layout{}, Stats{}, err
	}

	engine := layout.New(opts.Layout)

	t := time.Now()
	viewBox := engine.PlaceNodes(doc)
	hooks.OnStageComplete(ctx, StagePlace, stats.Records+stats.Fields, time.Since(t))
	logger.Debug("placed nodes", "records", stats.Records, "fields", stats.Fields,
		"width", viewBox.Width(), "height", viewBox.Height())
	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	t = time.Now()
	stats.ConnectionPoints = engine.PlaceConnectionPoints(doc)
	hooks.OnStageComplete(ctx, StageAnchors, stats.ConnectionPoints, time.Since(t))
	logger.Debug("placed connection points", "count", stats.ConnectionPoints)
	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	t = time.Now()
	routed := engine.RouteEdges(doc)
	hooks.OnStageComplete(ctx, StageRoute, routed, time.Since(t))
	logger.Debug("routed edges", "routed", routed, "edges", stats.Edges)
	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	if !opts.SkipJunctions {
		t = time.Now()
		stats.Junctions = engine.MapJunctions(doc)
		hooks.OnStageComplete(ctx, StageJunctions, stats.Junctions, time.Since(t))
		logger.Debug("mapped junctions", "count", stats.Junctions)
	}

	l, err := graph.FromDocument(doc, viewBox)
	if err != nil {
		return fail(errors.Wrap(errors.ErrCodeInternal, err, "export layout"))
	}
	l.Title = d.Title

	stats.LayoutTime = time.Since(start)
	hooks.OnLayoutComplete(ctx, stats.Records, stats.LayoutTime, nil)
	return l, stats, nil
}
