package layout

import (
	"github.com/matzehuels/erdgraph/pkg/geometry"
	"github.com/matzehuels/erdgraph/pkg/scene"
)

// PlaceConnectionPoints appends anchors to every placed record and field and
// returns how many were added. Nodes without a frame are skipped.
func (e *Engine) PlaceConnectionPoints(doc *scene.Document) int {
	var added int
	for _, rec := range doc.Records() {
		frame, ok := rec.Frame()
		if !ok {
			continue
		}
		added += addSides(rec, frame, geometry.Up, geometry.Right, geometry.Down, geometry.Left)

		children := rec.Children()
		for j, id := range children {
			field, ok := doc.Node(id)
			if !ok || field.Kind != scene.KindField {
				continue
			}
			frame, ok := field.Frame()
			if !ok {
				continue
			}
			added += addSides(field, frame, fieldSides(j, len(children))...)
		}
	}
	return added
}

// fieldSides returns the sides that get an anchor for the field at index i
// of n siblings.
func fieldSides(i, n int) []geometry.Direction {
	switch {
	case n == 1:
		return []geometry.Direction{geometry.Up, geometry.Right, geometry.Down, geometry.Left}
	case i == 0:
		return []geometry.Direction{geometry.Up, geometry.Right, geometry.Left}
	case i == n-1:
		return []geometry.Direction{geometry.Right, geometry.Down, geometry.Left}
	default:
		return []geometry.Direction{geometry.Right, geometry.Left}
	}
}

func addSides(n *scene.Node, frame geometry.Rect, sides ...geometry.Direction) int {
	for _, side := range sides {
		n.AddConnectionPoint(sideMidpoint(frame, side), side)
	}
	return len(sides)
}

func sideMidpoint(r geometry.Rect, side geometry.Direction) geometry.Point {
	switch side {
	case geometry.Up:
		return geometry.Pt(r.MidX(), r.MinY())
	case geometry.Right:
		return geometry.Pt(r.MaxX(), r.MidY())
	case geometry.Down:
		return geometry.Pt(r.MidX(), r.MaxY())
	default:
		return geometry.Pt(r.MinX(), r.MidY())
	}
}
