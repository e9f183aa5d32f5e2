package scene

import "github.com/matzehuels/erdgraph/pkg/geometry"

// NodeID addresses a node inside a [Document]. IDs are dense and assigned in
// creation order starting from [BodyID].
type NodeID int

const (
	// BodyID is the pseudo-root whose children are the top-level records.
	BodyID NodeID = 0
	// NoNode marks the absence of a parent.
	NoNode NodeID = -1
)

// Kind distinguishes the shapes a node can take.
type Kind int

const (
	KindBody Kind = iota
	KindRecord
	KindField
)

func (k Kind) String() string {
	switch k {
	case KindBody:
		return "body"
	case KindRecord:
		return "record"
	case KindField:
		return "field"
	}
	return "unknown"
}

// Color is an opaque color value handed through to the serializer
// (for example "#ffffff" or "slategray").
type Color string

// TextSpan is a run of styled text.
type TextSpan struct {
	Text     string  `json:"text"`
	Color    Color   `json:"color,omitempty"`
	Bold     bool    `json:"bold,omitempty"`
	FontSize float64 `json:"font_size,omitempty"`
}

// Record styles a box-shaped node.
type Record struct {
	Rounded     bool      `json:"rounded"`
	BorderColor Color     `json:"border_color"`
	BgColor     Color     `json:"bg_color"`
	Header      *TextSpan `json:"header,omitempty"`
}

// DefaultRecord returns the record style used when nothing else is given.
func DefaultRecord() Record {
	return Record{
		Rounded:     true,
		BorderColor: "#4b5563",
		BgColor:     "#ffffff",
	}
}

// Field styles a row inside a record.
type Field struct {
	Name        TextSpan  `json:"name"`
	Subtitle    *TextSpan `json:"subtitle,omitempty"`
	Badge       string    `json:"badge,omitempty"`
	BorderColor Color     `json:"border_color"`
	BgColor     Color     `json:"bg_color"`
}

// DefaultField returns a field named name with the default row colors.
func DefaultField(name string) Field {
	return Field{
		Name:        TextSpan{Text: name},
		BorderColor: "#d1d5db",
		BgColor:     "#f9fafb",
	}
}

// Node is a single shape in the scene graph.
//
// Exactly one of Record and Field is set for record and field nodes; the
// body node has neither.
type Node struct {
	ID     NodeID
	Parent NodeID
	Kind   Kind
	Record *Record
	Field  *Field

	origin   *geometry.Point
	size     *geometry.Size
	children []NodeID
	points   []ConnectionPoint
}

// HasParent reports whether the node hangs below another node.
func (n *Node) HasParent() bool { return n.Parent != NoNode }

// Children returns the node's children in visual order.
func (n *Node) Children() []NodeID {
	out := make([]NodeID, len(n.children))
	copy(out, n.children)
	return out
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// Frame returns the node's rectangle once it has been placed.
func (n *Node) Frame() (geometry.Rect, bool) {
	if n.origin == nil || n.size == nil {
		return geometry.Rect{}, false
	}
	return geometry.Rect{Origin: *n.origin, Size: *n.size}, true
}

// SetFrame assigns the node's origin and size.
func (n *Node) SetFrame(r geometry.Rect) {
	origin, size := r.Origin, r.Size
	n.origin = &origin
	n.size = &size
}

// ConnectionPoints returns the node's anchors in append order.
func (n *Node) ConnectionPoints() []ConnectionPoint {
	out := make([]ConnectionPoint, len(n.points))
	copy(out, n.points)
	return out
}

// AddConnectionPoint appends an anchor at loc facing orientation and returns
// its identifier.
func (n *Node) AddConnectionPoint(loc geometry.Point, orientation geometry.Direction) ConnectionPointID {
	id := ConnectionPointID{Node: n.ID, Index: len(n.points)}
	n.points = append(n.points, ConnectionPoint{ID: id, Location: loc, Orientation: orientation})
	return id
}

// Label returns the text that identifies the node to a human: the record
// header or the field name.
func (n *Node) Label() string {
	switch {
	case n.Record != nil && n.Record.Header != nil:
		return n.Record.Header.Text
	case n.Field != nil:
		return n.Field.Name.Text
	}
	return ""
}

func (n *Node) clone() *Node {
	c := *n
	if n.Record != nil {
		r := *n.Record
		if r.Header != nil {
			h := *r.Header
			r.Header = &h
		}
		c.Record = &r
	}
	if n.Field != nil {
		f := *n.Field
		if f.Subtitle != nil {
			s := *f.Subtitle
			f.Subtitle = &s
		}
		c.Field = &f
	}
	if n.origin != nil {
		o := *n.origin
		c.origin = &o
	}
	if n.size != nil {
		s := *n.size
		c.size = &s
	}
	c.children = n.Children()
	c.points = n.ConnectionPoints()
	return &c
}
