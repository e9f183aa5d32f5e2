package scene

import "github.com/matzehuels/erdgraph/pkg/geometry"

// ConnectionPointID addresses an anchor by owning node and append position.
type ConnectionPointID struct {
	Node  NodeID `json:"node"`
	Index int    `json:"index"`
}

// ConnectionPoint is a spot on a shape's boundary where a connector may
// attach. Orientation is the side of the shape the point sits on.
type ConnectionPoint struct {
	ID          ConnectionPointID
	Location    geometry.Point
	Orientation geometry.Direction
}

// Edge connects two nodes. Path and the chosen anchors are filled in by the
// routing stage.
type Edge struct {
	Start NodeID
	End   NodeID

	Path        *geometry.Path
	StartAnchor ConnectionPointID
	EndAnchor   ConnectionPointID
}

// Routed reports whether the routing stage has produced a path.
func (e *Edge) Routed() bool { return e.Path != nil }

// JunctionKind records how a junction was derived.
type JunctionKind int

const (
	// JunctionCorner is a corner of a margin-expanded record.
	JunctionCorner JunctionKind = iota
	// JunctionCrossing is a corner projected onto an anchor's ray.
	JunctionCrossing
	// JunctionAnchor is a connection point used by a routed edge.
	JunctionAnchor
)

func (k JunctionKind) String() string {
	switch k {
	case JunctionCorner:
		return "corner"
	case JunctionCrossing:
		return "crossing"
	case JunctionAnchor:
		return "anchor"
	}
	return "unknown"
}

// Junction is an auxiliary candidate point for obstacle-aware routing.
type Junction struct {
	Location geometry.Point
	Kind     JunctionKind
}
