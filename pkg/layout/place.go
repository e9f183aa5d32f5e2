package layout

import (
	"github.com/matzehuels/erdgraph/pkg/geometry"
	"github.com/matzehuels/erdgraph/pkg/scene"
)

// PlaceNodes assigns an origin and size to every record and field and
// returns the view box enclosing the drawing plus its margins.
//
// Record i sits at OriginX + i*(RecordWidth+RecordSpace) and is
// RowHeight tall per field. Fields share their record's x and width and are
// stacked at RowHeight intervals from its top.
func (e *Engine) PlaceNodes(doc *scene.Document) geometry.Rect {
	records := doc.Records()
	step := e.cfg.RecordWidth + e.cfg.RecordSpace

	var maxHeight float64
	for i, rec := range records {
		x := e.cfg.OriginX + float64(i)*step
		y := e.cfg.OriginY
		height := e.cfg.RowHeight * float64(rec.ChildCount())
		rec.SetFrame(geometry.R(x, y, e.cfg.RecordWidth, height))
		if height > maxHeight {
			maxHeight = height
		}

		for j, id := range rec.Children() {
			field, ok := doc.Node(id)
			if !ok || field.Kind != scene.KindField {
				continue
			}
			field.SetFrame(geometry.R(x, y+float64(j)*e.cfg.RowHeight, e.cfg.RecordWidth, e.cfg.RowHeight))
		}
	}

	width := 2 * e.cfg.OriginX
	if n := len(records); n > 0 {
		width += float64(n)*e.cfg.RecordWidth + float64(n-1)*e.cfg.RecordSpace
	}
	return geometry.R(0, 0, width, 2*e.cfg.OriginY+maxHeight)
}
