package layout

import (
	"math"

	"github.com/matzehuels/erdgraph/pkg/geometry"
	"github.com/matzehuels/erdgraph/pkg/scene"
)

// MapJunctions records candidate routing points on doc and returns how many
// new junctions were added.
//
// Every record is expanded by [Config.JunctionMargin]. The expanded corners
// are candidates, and so are the projections of those corners onto the ray
// leaving each anchor of every node an edge touches, up to the first
// expanded record the ray hits. Candidates strictly inside an expanded
// record are dropped. The anchors chosen by routing are appended last.
// Junctions at an already recorded location are ignored.
//
// Routing does not read the result.
func (e *Engine) MapJunctions(doc *scene.Document) int {
	obstacles := e.obstacles(doc)

	var corners []geometry.Point
	for _, r := range obstacles {
		c := r.Corners()
		corners = append(corners, c[:]...)
	}

	candidates := make([]scene.Junction, 0, len(corners))
	for _, c := range corners {
		candidates = append(candidates, scene.Junction{Location: c, Kind: scene.JunctionCorner})
	}
	for _, n := range incidentNodes(doc) {
		frame, ok := n.Frame()
		if !ok {
			continue
		}
		for _, cp := range n.ConnectionPoints() {
			for _, p := range crossings(frame.Center(), cp.Location, obstacles, corners) {
				candidates = append(candidates, scene.Junction{Location: p, Kind: scene.JunctionCrossing})
			}
		}
	}

	var added int
	for _, j := range candidates {
		if insideAny(j.Location, obstacles) {
			continue
		}
		if doc.AppendJunction(j) {
			added++
		}
	}
	for _, edge := range doc.Edges() {
		if !edge.Routed() {
			continue
		}
		for _, id := range []scene.ConnectionPointID{edge.StartAnchor, edge.EndAnchor} {
			cp, ok := doc.ConnectionPoint(id)
			if !ok {
				continue
			}
			if doc.AppendJunction(scene.Junction{Location: cp.Location, Kind: scene.JunctionAnchor}) {
				added++
			}
		}
	}
	return added
}

func (e *Engine) obstacles(doc *scene.Document) []geometry.Rect {
	margin := e.cfg.JunctionMargin()
	var out []geometry.Rect
	for _, rec := range doc.Records() {
		if frame, ok := rec.Frame(); ok {
			out = append(out, frame.InsetBy(-margin, -margin))
		}
	}
	return out
}

// incidentNodes returns the distinct edge endpoints in edge order.
func incidentNodes(doc *scene.Document) []*scene.Node {
	seen := make(map[scene.NodeID]bool)
	var out []*scene.Node
	for _, edge := range doc.Edges() {
		for _, id := range []scene.NodeID{edge.Start, edge.End} {
			if seen[id] {
				continue
			}
			seen[id] = true
			if n, ok := doc.Node(id); ok {
				out = append(out, n)
			}
		}
	}
	return out
}

// crossings casts a ray from p away from center and projects every corner
// lying past p, up to the nearest obstacle boundary the ray meets, onto
// the ray. Without an obstacle the ray is unbounded.
func crossings(center, p geometry.Point, obstacles []geometry.Rect, corners []geometry.Point) []geometry.Point {
	dir, ok := geometry.OrthogonalDirection(center, p)
	if !ok {
		return nil
	}

	far := rayEnd(p, dir)
	bound := math.Inf(1)
	if dir == geometry.Left || dir == geometry.Up {
		bound = math.Inf(-1)
	}
	for _, r := range obstacles {
		if !beyond(r, p, dir) || !r.IntersectsLine(p, far) {
			continue
		}
		switch dir {
		case geometry.Right:
			bound = math.Min(bound, r.MinX())
		case geometry.Left:
			bound = math.Max(bound, r.MaxX())
		case geometry.Down:
			bound = math.Min(bound, r.MinY())
		case geometry.Up:
			bound = math.Max(bound, r.MaxY())
		}
	}

	var out []geometry.Point
	for _, c := range corners {
		switch dir {
		case geometry.Right:
			if c.X > p.X && c.X <= bound {
				out = append(out, geometry.Pt(c.X, p.Y))
			}
		case geometry.Left:
			if c.X < p.X && c.X >= bound {
				out = append(out, geometry.Pt(c.X, p.Y))
			}
		case geometry.Down:
			if c.Y > p.Y && c.Y <= bound {
				out = append(out, geometry.Pt(p.X, c.Y))
			}
		case geometry.Up:
			if c.Y < p.Y && c.Y >= bound {
				out = append(out, geometry.Pt(p.X, c.Y))
			}
		}
	}
	return out
}

func rayEnd(p geometry.Point, dir geometry.Direction) geometry.Point {
	switch dir {
	case geometry.Right:
		return geometry.Pt(math.MaxFloat64, p.Y)
	case geometry.Left:
		return geometry.Pt(-math.MaxFloat64, p.Y)
	case geometry.Down:
		return geometry.Pt(p.X, math.MaxFloat64)
	default:
		return geometry.Pt(p.X, -math.MaxFloat64)
	}
}

// beyond reports whether r lies entirely on the dir side of p.
func beyond(r geometry.Rect, p geometry.Point, dir geometry.Direction) bool {
	switch dir {
	case geometry.Right:
		return r.MinX() > p.X
	case geometry.Left:
		return r.MaxX() < p.X
	case geometry.Down:
		return r.MinY() > p.Y
	default:
		return r.MaxY() < p.Y
	}
}

func insideAny(p geometry.Point, rects []geometry.Rect) bool {
	for _, r := range rects {
		if r.ContainsPointInterior(p) {
			return true
		}
	}
	return false
}
