package layout

import (
	"math"

	"github.com/matzehuels/erdgraph/pkg/geometry"
	"github.com/matzehuels/erdgraph/pkg/scene"
)

// RouteEdges gives every edge whose endpoints both carry anchors a path and
// records the chosen anchors. It returns the number of edges routed.
func (e *Engine) RouteEdges(doc *scene.Document) int {
	var routed int
	for _, edge := range doc.Edges() {
		start, ok := doc.Node(edge.Start)
		if !ok {
			continue
		}
		end, ok := doc.Node(edge.End)
		if !ok {
			continue
		}
		from, to, ok := closestPair(start.ConnectionPoints(), end.ConnectionPoints())
		if !ok {
			continue
		}
		edge.StartAnchor = from.ID
		edge.EndAnchor = to.ID
		edge.Path = connector(from.Location, to.Location, e.cfg.CornerRadius)
		routed++
	}
	return routed
}

// closestPair returns the anchor pair with the smallest distance. Only a
// strictly shorter distance replaces the current best, so ties keep the
// first pair in start-outer, end-inner order.
func closestPair(starts, ends []scene.ConnectionPoint) (scene.ConnectionPoint, scene.ConnectionPoint, bool) {
	var from, to scene.ConnectionPoint
	best := math.Inf(1)
	found := false
	for _, s := range starts {
		for _, t := range ends {
			if d := s.Location.Distance(t.Location); d < best {
				best, from, to, found = d, s, t, true
			}
		}
	}
	return from, to, found
}

// connector builds the S/Z-shaped connector from s to t through the
// vertical line halfway between them, rounding both bends with radius r.
func connector(s, t geometry.Point, r float64) *geometry.Path {
	midX := math.Min(s.X, t.X) + math.Abs(s.X-t.X)/2

	ctrl1X, ctrl2X := midX+r, midX-r
	if s.X < t.X {
		ctrl1X, ctrl2X = midX-r, midX+r
	}
	ctrl1Y, ctrl2Y := s.Y-r, t.Y+r
	if s.Y < t.Y {
		ctrl1Y, ctrl2Y = s.Y+r, t.Y-r
	}

	p := geometry.NewPath(s)
	p.LineTo(geometry.Pt(ctrl1X, s.Y))
	p.QuadTo(geometry.Pt(midX, s.Y), geometry.Pt(midX, ctrl1Y))
	p.LineTo(geometry.Pt(midX, ctrl2Y))
	p.QuadTo(geometry.Pt(midX, t.Y), geometry.Pt(ctrl2X, t.Y))
	p.LineTo(t)
	return p
}
