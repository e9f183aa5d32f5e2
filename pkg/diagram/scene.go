package diagram

import (
	"github.com/matzehuels/erdgraph/pkg/errors"
	"github.com/matzehuels/erdgraph/pkg/scene"
)

// Style holds the colors applied when building a scene.
type Style struct {
	HeaderColor   scene.Color
	SubtitleColor scene.Color
	Record        scene.Record
	Field         scene.Field
}

// DefaultStyle returns the stock colors.
func DefaultStyle() Style {
	return Style{
		HeaderColor:   "#111827",
		SubtitleColor: "#6b7280",
		Record:        scene.DefaultRecord(),
		Field:         scene.DefaultField(""),
	}
}

// Refs maps diagram elements to the scene nodes built for them.
type Refs struct {
	Tables  map[string]scene.NodeID
	Columns map[Endpoint]scene.NodeID
}

// Resolve returns the node an endpoint refers to.
func (r Refs) Resolve(e Endpoint) (scene.NodeID, bool) {
	if e.Column == "" {
		id, ok := r.Tables[e.Table]
		return id, ok
	}
	id, ok := r.Columns[e]
	return id, ok
}

// ToScene validates d and builds its scene graph using [DefaultStyle].
func (d *Diagram) ToScene() (*scene.Document, Refs, error) {
	return d.ToSceneWithStyle(DefaultStyle())
}

// ToSceneWithStyle validates d and builds its scene graph.
func (d *Diagram) ToSceneWithStyle(style Style) (*scene.Document, Refs, error) {
	if err := d.Validate(); err != nil {
		return nil, Refs{}, err
	}

	doc := scene.New()
	refs := Refs{
		Tables:  make(map[string]scene.NodeID, len(d.Tables)),
		Columns: make(map[Endpoint]scene.NodeID),
	}

	for _, t := range d.Tables {
		rec := style.Record
		rec.Header = &scene.TextSpan{Text: t.Name, Color: style.HeaderColor, Bold: true}
		recID := doc.AddRecord(rec)
		refs.Tables[t.Name] = recID

		for _, c := range t.Columns {
			f := style.Field
			f.Name = scene.TextSpan{Text: c.Name}
			if c.Type != "" {
				f.Subtitle = &scene.TextSpan{Text: c.Type, Color: style.SubtitleColor}
			}
			f.Badge = string(c.Key)
			id, err := doc.AddField(recID, f)
			if err != nil {
				return nil, Refs{}, errors.Wrap(errors.ErrCodeInternal, err, "add column %s.%s", t.Name, c.Name)
			}
			refs.Columns[Endpoint{Table: t.Name, Column: c.Name}] = id
		}
	}

	for i, r := range d.Relations {
		from, ok := refs.Resolve(r.From)
		if !ok {
			return nil, Refs{}, errors.New(errors.ErrCodeUnknownReference, "relation %d: unknown endpoint %q", i, r.From.String())
		}
		to, ok := refs.Resolve(r.To)
		if !ok {
			return nil, Refs{}, errors.New(errors.ErrCodeUnknownReference, "relation %d: unknown endpoint %q", i, r.To.String())
		}
		if _, err := doc.AddEdge(from, to); err != nil {
			return nil, Refs{}, errors.Wrap(errors.ErrCodeInternal, err, "add relation %d", i)
		}
	}
	return doc, refs, nil
}
