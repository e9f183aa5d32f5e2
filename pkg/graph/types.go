package graph

// Side names used for anchors.
const (
	SideTop    = "top"
	SideRight  = "right"
	SideBottom = "bottom"
	SideLeft   = "left"
)

// Layout is the serialization format for a laid-out diagram.
type Layout struct {
	Title     string     `json:"title,omitempty" bson:"title,omitempty"`
	ViewBox   ViewBox    `json:"view_box" bson:"view_box"`
	Records   []Record   `json:"records" bson:"records"`
	Edges     []Edge     `json:"edges,omitempty" bson:"edges,omitempty"`
	Junctions []Junction `json:"junctions,omitempty" bson:"junctions,omitempty"`
}

// ViewBox is the drawing area including margins.
type ViewBox struct {
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Record is a placed table.
type Record struct {
	ID          int      `json:"id" bson:"id"`
	Label       string   `json:"label" bson:"label"`
	X           float64  `json:"x" bson:"x"`
	Y           float64  `json:"y" bson:"y"`
	Width       float64  `json:"width" bson:"width"`
	Height      float64  `json:"height" bson:"height"`
	Rounded     bool     `json:"rounded,omitempty" bson:"rounded,omitempty"`
	BorderColor string   `json:"border_color,omitempty" bson:"border_color,omitempty"`
	BgColor     string   `json:"bg_color,omitempty" bson:"bg_color,omitempty"`
	Fields      []Field  `json:"fields,omitempty" bson:"fields,omitempty"`
	Anchors     []Anchor `json:"anchors" bson:"anchors"`
}

// Field is a placed row of a record.
type Field struct {
	ID          int      `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name"`
	Subtitle    string   `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	Badge       string   `json:"badge,omitempty" bson:"badge,omitempty"`
	X           float64  `json:"x" bson:"x"`
	Y           float64  `json:"y" bson:"y"`
	Width       float64  `json:"width" bson:"width"`
	Height      float64  `json:"height" bson:"height"`
	BorderColor string   `json:"border_color,omitempty" bson:"border_color,omitempty"`
	BgColor     string   `json:"bg_color,omitempty" bson:"bg_color,omitempty"`
	Anchors     []Anchor `json:"anchors" bson:"anchors"`
}

// Anchor is a connection point on a record or field.
type Anchor struct {
	Index int     `json:"index" bson:"index"`
	X     float64 `json:"x" bson:"x"`
	Y     float64 `json:"y" bson:"y"`
	Side  string  `json:"side" bson:"side"`
}

// AnchorRef addresses an anchor by node and index.
type AnchorRef struct {
	Node  int `json:"node" bson:"node"`
	Index int `json:"index" bson:"index"`
}

// Edge is a routed connector.
type Edge struct {
	From     int       `json:"from" bson:"from"`
	To       int       `json:"to" bson:"to"`
	Start    AnchorRef `json:"start" bson:"start"`
	End      AnchorRef `json:"end" bson:"end"`
	Path     string    `json:"path" bson:"path"`
	Commands []Command `json:"commands" bson:"commands"`
	Length   float64   `json:"length" bson:"length"`
}

// Command is one drawing step of an edge path. Points holds the control
// point first for quadratic curves.
type Command struct {
	Op     string  `json:"op" bson:"op"`
	Points []Point `json:"points" bson:"points"`
}

// Point is a coordinate pair.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Junction is an advisory routing candidate.
type Junction struct {
	X    float64 `json:"x" bson:"x"`
	Y    float64 `json:"y" bson:"y"`
	Kind string  `json:"kind" bson:"kind"`
}

// Record returns the record with the given label.
func (l *Layout) Record(label string) (Record, bool) {
	for _, r := range l.Records {
		if r.Label == label {
			return r, true
		}
	}
	return Record{}, false
}

// FieldCount returns the number of fields across all records.
func (l *Layout) FieldCount() int {
	var n int
	for _, r := range l.Records {
		n += len(r.Fields)
	}
	return n
}
