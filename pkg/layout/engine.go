package layout

import (
	"github.com/matzehuels/erdgraph/pkg/geometry"
	"github.com/matzehuels/erdgraph/pkg/scene"
)

// Engine lays out scene graphs with a fixed [Config].
type Engine struct {
	cfg Config
}

// New returns an engine using cfg. The configuration is not validated here;
// callers that accept user input should call [Config.Validate] first.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// Stats counts what a full run produced.
type Stats struct {
	Records          int
	Fields           int
	ConnectionPoints int
	RoutedEdges      int
	Junctions        int
}

// Result is the outcome of [Engine.Run].
type Result struct {
	ViewBox geometry.Rect
	Stats   Stats
}

// Run places nodes, anchors and edges in order and, when junctions is true,
// maps junctions afterwards.
func (e *Engine) Run(doc *scene.Document, junctions bool) Result {
	var res Result
	res.ViewBox = e.PlaceNodes(doc)
	res.Stats.ConnectionPoints = e.PlaceConnectionPoints(doc)
	res.Stats.RoutedEdges = e.RouteEdges(doc)
	if junctions {
		res.Stats.Junctions = e.MapJunctions(doc)
	}
	for _, rec := range doc.Records() {
		res.Stats.Records++
		res.Stats.Fields += rec.ChildCount()
	}
	return res
}
