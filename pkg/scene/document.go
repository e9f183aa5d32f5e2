package scene

import (
	"errors"
	"fmt"

	"github.com/matzehuels/erdgraph/pkg/geometry"
)

var (
	// ErrUnknownNode is returned when an operation names a NodeID that does
	// not exist in the document.
	ErrUnknownNode = errors.New("unknown node")

	// ErrInvalidParent is returned by [Document.AddField] when the parent is
	// not a record.
	ErrInvalidParent = errors.New("fields must be added to a record")
)

// Document owns the node arena, the edge list and the junctions recorded by
// the mapping pass.
//
// The zero value is not usable; create documents with [New].
type Document struct {
	nodes     []*Node
	edges     []*Edge
	junctions []Junction
	seen      map[geometry.Point]struct{}
}

// New returns a document containing only the body node.
func New() *Document {
	return &Document{
		nodes: []*Node{{ID: BodyID, Parent: NoNode, Kind: KindBody}},
		seen:  make(map[geometry.Point]struct{}),
	}
}

// Body returns the pseudo-root node.
func (d *Document) Body() *Node { return d.nodes[BodyID] }

// Node returns the node with the given ID.
func (d *Document) Node(id NodeID) (*Node, bool) {
	if id < 0 || int(id) >= len(d.nodes) {
		return nil, false
	}
	return d.nodes[id], true
}

// Nodes returns every node in ID order, body first.
func (d *Document) Nodes() []*Node {
	out := make([]*Node, len(d.nodes))
	copy(out, d.nodes)
	return out
}

// NodeCount returns the number of nodes, including the body.
func (d *Document) NodeCount() int { return len(d.nodes) }

// Records returns the body's record children in visual order.
func (d *Document) Records() []*Node {
	out := make([]*Node, 0, len(d.Body().children))
	for _, id := range d.Body().children {
		if n := d.nodes[id]; n.Kind == KindRecord {
			out = append(out, n)
		}
	}
	return out
}

// AddRecord appends a record under the body and returns its ID.
func (d *Document) AddRecord(r Record) NodeID {
	id := d.push(&Node{Parent: BodyID, Kind: KindRecord, Record: &r})
	d.Body().children = append(d.Body().children, id)
	return id
}

// AddField appends a field as the last row of record parent.
func (d *Document) AddField(parent NodeID, f Field) (NodeID, error) {
	p, ok := d.Node(parent)
	if !ok {
		return NoNode, fmt.Errorf("%w: %d", ErrUnknownNode, parent)
	}
	if p.Kind != KindRecord {
		return NoNode, fmt.Errorf("%w: node %d is a %s", ErrInvalidParent, parent, p.Kind)
	}
	id := d.push(&Node{Parent: parent, Kind: KindField, Field: &f})
	p.children = append(p.children, id)
	return id, nil
}

// AddEdge connects start to end. Both nodes must exist; an edge may connect
// a node to itself.
func (d *Document) AddEdge(start, end NodeID) (*Edge, error) {
	if _, ok := d.Node(start); !ok {
		return nil, fmt.Errorf("%w: edge start %d", ErrUnknownNode, start)
	}
	if _, ok := d.Node(end); !ok {
		return nil, fmt.Errorf("%w: edge end %d", ErrUnknownNode, end)
	}
	e := &Edge{Start: start, End: end}
	d.edges = append(d.edges, e)
	return e, nil
}

// Edges returns the edges in insertion order.
func (d *Document) Edges() []*Edge {
	out := make([]*Edge, len(d.edges))
	copy(out, d.edges)
	return out
}

// ConnectionPoint resolves an anchor identifier.
func (d *Document) ConnectionPoint(id ConnectionPointID) (ConnectionPoint, bool) {
	n, ok := d.Node(id.Node)
	if !ok || id.Index < 0 || id.Index >= len(n.points) {
		return ConnectionPoint{}, false
	}
	return n.points[id.Index], true
}

// AppendJunction records j unless a junction already sits at the same
// location. It reports whether j was added.
func (d *Document) AppendJunction(j Junction) bool {
	if _, dup := d.seen[j.Location]; dup {
		return false
	}
	d.seen[j.Location] = struct{}{}
	d.junctions = append(d.junctions, j)
	return true
}

// Junctions returns the recorded junctions in append order.
func (d *Document) Junctions() []Junction {
	out := make([]Junction, len(d.junctions))
	copy(out, d.junctions)
	return out
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	c := &Document{
		nodes:     make([]*Node, len(d.nodes)),
		edges:     make([]*Edge, len(d.edges)),
		junctions: d.Junctions(),
		seen:      make(map[geometry.Point]struct{}, len(d.seen)),
	}
	for i, n := range d.nodes {
		c.nodes[i] = n.clone()
	}
	for i, e := range d.edges {
		ec := *e
		if e.Path != nil {
			ec.Path = e.Path.Clone()
		}
		c.edges[i] = &ec
	}
	for p := range d.seen {
		c.seen[p] = struct{}{}
	}
	return c
}

func (d *Document) push(n *Node) NodeID {
	n.ID = NodeID(len(d.nodes))
	d.nodes = append(d.nodes, n)
	return n.ID
}
