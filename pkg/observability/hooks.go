// Package observability lets the layout pipeline, the cache and the HTTP
// API report events without depending on a metrics or tracing backend.
//
// Every hook defaults to a no-op. Binaries install real implementations
// once at startup:
//
//	observability.SetPipelineHooks(observability.NewLogHooks(logger))
//
// and library code reports through the accessors:
//
//	observability.Pipeline().OnLayoutStart(ctx, records, edges)
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// PipelineHooks observes a layout run and each of its stages
// (place, anchors, route, junctions).
type PipelineHooks interface {
	OnLayoutStart(ctx context.Context, records, edges int)
	OnStageComplete(ctx context.Context, stage string, count int, duration time.Duration)
	OnLayoutComplete(ctx context.Context, records int, duration time.Duration, err error)
}

// CacheHooks observes layout cache lookups and writes. keyType names the
// kind of entry, currently always "layout".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// APIHooks observes HTTP requests. route is the matched chi pattern such
// as "/api/layouts/{id}", never the raw path.
type APIHooks interface {
	OnRequest(ctx context.Context, method, route string)
	OnResponse(ctx context.Context, method, route string, status int, duration time.Duration)
}

type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLayoutStart(context.Context, int, int)                     {}
func (NoopPipelineHooks) OnStageComplete(context.Context, string, int, time.Duration) {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, time.Duration, error) {}

type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

type NoopAPIHooks struct{}

func (NoopAPIHooks) OnRequest(context.Context, string, string)                      {}
func (NoopAPIHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// hookSet is replaced as a whole on every Set call, so readers never lock.
type hookSet struct {
	pipeline PipelineHooks
	cache    CacheHooks
	api      APIHooks
}

func noopSet() *hookSet {
	return &hookSet{NoopPipelineHooks{}, NoopCacheHooks{}, NoopAPIHooks{}}
}

var current atomic.Pointer[hookSet]

func init() { current.Store(noopSet()) }

// update applies fn to a copy of the current set and publishes it.
func update(fn func(*hookSet)) {
	for {
		old := current.Load()
		next := *old
		fn(&next)
		if current.CompareAndSwap(old, &next) {
			return
		}
	}
}

// SetPipelineHooks installs h. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		update(func(s *hookSet) { s.pipeline = h })
	}
}

// SetCacheHooks installs h. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		update(func(s *hookSet) { s.cache = h })
	}
}

// SetAPIHooks installs h. A nil h is ignored.
func SetAPIHooks(h APIHooks) {
	if h != nil {
		update(func(s *hookSet) { s.api = h })
	}
}

func Pipeline() PipelineHooks { return current.Load().pipeline }
func Cache() CacheHooks       { return current.Load().cache }
func API() APIHooks           { return current.Load().api }

// Reset reinstalls the no-op hooks.
func Reset() { current.Store(noopSet()) }
