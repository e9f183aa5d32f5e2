package pipeline

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/erdgraph/pkg/cache"
	"github.com/matzehuels/erdgraph/pkg/diagram"
	"github.com/matzehuels/erdgraph/pkg/errors"
	"github.com/matzehuels/erdgraph/pkg/graph"
	"github.com/matzehuels/erdgraph/pkg/observability"
)

const keyTypeLayout = "layout"

// Runner executes the pipeline with caching.
// Both the CLI and the API use it so caching logic lives in one place.
//
// The Runner keeps no per-run state. Multiple goroutines can safely share
// one Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute lays out d, reusing a cached layout when one exists for the same
// diagram and options.
func (r *Runner) Execute(ctx context.Context, d *diagram.Diagram, opts Options) (*Result, error) {
	if d == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "diagram is required")
	}
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	hash, err := cache.HashJSON(d)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "hash diagram")
	}
	key := r.Keyer.LayoutKey(hash, opts.LayoutKeyOpts())
	hooks := observability.Cache()

	result := &Result{DiagramHash: hash}

	if !opts.Refresh {
		start := time.Now()
		err := cache.GetJSON(ctx, r.Cache, key, &result.Layout)
		if err == nil {
			err = result.Layout.Validate()
		}
		if err == nil {
			hooks.OnCacheHit(ctx, keyTypeLayout)
			result.CacheHit = true
			result.Stats = statsFromLayout(result)
			result.Stats.LayoutTime = time.Since(start)
			r.Logger.Info("loaded cached layout",
				"records", result.Stats.Records,
				"edges", result.Stats.Edges)
			return result, nil
		}
		hooks.OnCacheMiss(ctx, keyTypeLayout)
		if !stderrors.Is(err, cache.ErrCacheMiss) {
			r.Logger.Debug("cache lookup failed", "error", err)
		}
	}

	l, stats, err := GenerateLayout(ctx, d, opts)
	if err != nil {
		return nil, err
	}
	result.Layout = l
	result.Stats = stats

	r.Logger.Info("computed layout",
		"records", stats.Records,
		"edges", stats.Edges,
		"junctions", stats.Junctions,
		"duration", stats.LayoutTime)

	data, err := graph.MarshalLayout(l)
	switch {
	case err != nil:
		r.Logger.Warn("encode layout for cache failed", "error", err)
	default:
		if err := r.Cache.Set(ctx, key, data, cache.TTLLayout); err != nil {
			r.Logger.Warn("cache write failed", "error", err)
		} else {
			hooks.OnCacheSet(ctx, keyTypeLayout, len(data))
		}
	}

	return result, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// statsFromLayout recovers counts from a cached layout.
func statsFromLayout(res *Result) Stats {
	l := res.Layout
	s := Stats{
		Records:   len(l.Records),
		Fields:    l.FieldCount(),
		Edges:     len(l.Edges),
		Junctions: len(l.Junctions),
	}
	for _, rec := range l.Records {
		s.ConnectionPoints += len(rec.Anchors)
		for _, f := range rec.Fields {
			s.ConnectionPoints += len(f.Anchors)
		}
	}
	return s
}
