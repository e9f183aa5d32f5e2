package graph

import (
	"github.com/matzehuels/erdgraph/pkg/errors"
	"github.com/matzehuels/erdgraph/pkg/geometry"
	"github.com/matzehuels/erdgraph/pkg/scene"
)

// FromDocument converts a laid-out document into a [Layout].
//
// Every record and field must have been placed and every edge routed;
// anything missing is reported as an ErrCodeNotLaidOut error. Records keep
// body order, fields keep row order and edges keep insertion order, so equal
// documents always produce equal layouts.
func FromDocument(doc *scene.Document, viewBox geometry.Rect) (Layout, error) {
	l := Layout{
		ViewBox: ViewBox{
			X:      viewBox.MinX(),
			Y:      viewBox.MinY(),
			Width:  viewBox.Width(),
			Height: viewBox.Height(),
		},
		Records: make([]Record, 0, len(doc.Records())),
	}

	for _, rec := range doc.Records() {
		frame, ok := rec.Frame()
		if !ok {
			return Layout{}, errors.New(errors.ErrCodeNotLaidOut, "record %d (%s) has no position", rec.ID, rec.Label())
		}
		r := Record{
			ID:      int(rec.ID),
			Label:   rec.Label(),
			X:       frame.MinX(),
			Y:       frame.MinY(),
			Width:   frame.Width(),
			Height:  frame.Height(),
			Anchors: exportAnchors(rec),
		}
		if rec.Record != nil {
			r.Rounded = rec.Record.Rounded
			r.BorderColor = string(rec.Record.BorderColor)
			r.BgColor = string(rec.Record.BgColor)
		}

		for _, id := range rec.Children() {
			n, ok := doc.Node(id)
			if !ok || n.Kind != scene.KindField {
				continue
			}
			f, err := exportField(n)
			if err != nil {
				return Layout{}, err
			}
			r.Fields = append(r.Fields, f)
		}
		l.Records = append(l.Records, r)
	}

	for i, e := range doc.Edges() {
		if !e.Routed() {
			return Layout{}, errors.New(errors.ErrCodeNotLaidOut, "edge %d (%d -> %d) has no path", i, e.Start, e.End)
		}
		l.Edges = append(l.Edges, Edge{
			From:     int(e.Start),
			To:       int(e.End),
			Start:    AnchorRef{Node: int(e.StartAnchor.Node), Index: e.StartAnchor.Index},
			End:      AnchorRef{Node: int(e.EndAnchor.Node), Index: e.EndAnchor.Index},
			Path:     e.Path.String(),
			Commands: exportCommands(e.Path),
			Length:   e.Path.Length(),
		})
	}

	for _, j := range doc.Junctions() {
		l.Junctions = append(l.Junctions, Junction{X: j.Location.X, Y: j.Location.Y, Kind: j.Kind.String()})
	}
	return l, nil
}

func exportField(n *scene.Node) (Field, error) {
	frame, ok := n.Frame()
	if !ok {
		return Field{}, errors.New(errors.ErrCodeNotLaidOut, "field %d (%s) has no position", n.ID, n.Label())
	}
	f := Field{
		ID:      int(n.ID),
		Name:    n.Label(),
		X:       frame.MinX(),
		Y:       frame.MinY(),
		Width:   frame.Width(),
		Height:  frame.Height(),
		Anchors: exportAnchors(n),
	}
	if n.Field != nil {
		if n.Field.Subtitle != nil {
			f.Subtitle = n.Field.Subtitle.Text
		}
		f.Badge = n.Field.Badge
		f.BorderColor = string(n.Field.BorderColor)
		f.BgColor = string(n.Field.BgColor)
	}
	return f, nil
}

func exportAnchors(n *scene.Node) []Anchor {
	points := n.ConnectionPoints()
	out := make([]Anchor, len(points))
	for i, cp := range points {
		out[i] = Anchor{
			Index: cp.ID.Index,
			X:     cp.Location.X,
			Y:     cp.Location.Y,
			Side:  sideName(cp.Orientation),
		}
	}
	return out
}

func sideName(d geometry.Direction) string {
	switch d {
	case geometry.Up:
		return SideTop
	case geometry.Right:
		return SideRight
	case geometry.Down:
		return SideBottom
	default:
		return SideLeft
	}
}

func exportCommands(p *geometry.Path) []Command {
	cmds := p.Commands()
	out := make([]Command, len(cmds))
	for i, c := range cmds {
		pts := c.Points()
		cp := make([]Point, len(pts))
		for j, pt := range pts {
			cp[j] = Point{X: pt.X, Y: pt.Y}
		}
		out[i] = Command{Op: c.Op.String(), Points: cp}
	}
	return out
}
