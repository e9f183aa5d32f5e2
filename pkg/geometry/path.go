package geometry

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Op identifies a path drawing command.
type Op int

const (
	// MoveTo starts a new contour at To.
	MoveTo Op = iota
	// LineTo draws a straight line from the current point to To.
	LineTo
	// QuadTo draws a quadratic Bézier curve through Ctrl to To.
	QuadTo
)

var opLetters = [...]string{"M", "L", "Q"}

func (o Op) String() string {
	if o < MoveTo || o > QuadTo {
		return "?"
	}
	return opLetters[o]
}

// Command is a single drawing step. Ctrl is only meaningful for QuadTo.
type Command struct {
	Op   Op
	Ctrl Point
	To   Point
}

// Points returns the points the command references, control point first.
func (c Command) Points() []Point {
	if c.Op == QuadTo {
		return []Point{c.Ctrl, c.To}
	}
	return []Point{c.To}
}

// Path is an ordered list of drawing commands. A Path built with [NewPath]
// always starts with a MoveTo that establishes its start point.
//
// The zero Path is malformed; [Path.StartPoint] and [Path.EndPoint] panic on it.
type Path struct {
	commands []Command
}

// NewPath returns a path that begins at start.
func NewPath(start Point) *Path {
	return &Path{commands: []Command{{Op: MoveTo, To: start}}}
}

// MoveTo starts a new contour.
func (p *Path) MoveTo(pt Point) {
	p.commands = append(p.commands, Command{Op: MoveTo, To: pt})
}

// LineTo appends a straight segment.
func (p *Path) LineTo(pt Point) {
	p.commands = append(p.commands, Command{Op: LineTo, To: pt})
}

// QuadTo appends a quadratic curve with control point ctrl.
func (p *Path) QuadTo(ctrl, to Point) {
	p.commands = append(p.commands, Command{Op: QuadTo, Ctrl: ctrl, To: to})
}

// Commands returns a copy of the command list.
func (p *Path) Commands() []Command {
	out := make([]Command, len(p.commands))
	copy(out, p.commands)
	return out
}

// Clone returns an independent copy of p.
func (p *Path) Clone() *Path {
	return &Path{commands: p.Commands()}
}

// Len returns the number of commands, including the leading MoveTo.
func (p *Path) Len() int { return len(p.commands) }

// StartPoint returns the point established by the leading MoveTo.
// It panics if the path does not begin with a MoveTo.
func (p *Path) StartPoint() Point {
	if len(p.commands) == 0 || p.commands[0].Op != MoveTo {
		panic("geometry: a Path must begin with a MoveTo command")
	}
	return p.commands[0].To
}

// EndPoint returns the terminal point of the last command.
// It panics on an empty path.
func (p *Path) EndPoint() Point {
	if len(p.commands) == 0 {
		panic("geometry: empty Path has no end point")
	}
	return p.commands[len(p.commands)-1].To
}

// Length returns the length of the polyline through every command's
// control and end points. Curves are approximated by their control polygon.
func (p *Path) Length() float64 {
	var total float64
	var cur Point
	for i, c := range p.commands {
		if i == 0 || c.Op == MoveTo {
			cur = c.To
			continue
		}
		for _, pt := range c.Points() {
			total += cur.Distance(pt)
			cur = pt
		}
	}
	return total
}

// String formats the path in SVG path-data notation, e.g. "M0 0 L10 0".
func (p *Path) String() string {
	var b strings.Builder
	for i, c := range p.commands {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.Op.String())
		for j, pt := range c.Points() {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%g %g", pt.X, pt.Y)
		}
	}
	return b.String()
}

type jsonCommand struct {
	Op     string  `json:"op"`
	Points []Point `json:"points"`
}

// MarshalJSON encodes the path as a list of {op, points} objects.
func (p *Path) MarshalJSON() ([]byte, error) {
	out := make([]jsonCommand, len(p.commands))
	for i, c := range p.commands {
		out[i] = jsonCommand{Op: c.Op.String(), Points: c.Points()}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the format written by MarshalJSON. The first
// command must be a move-to.
func (p *Path) UnmarshalJSON(data []byte) error {
	var in []jsonCommand
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if len(in) == 0 || in[0].Op != "M" {
		return fmt.Errorf("path must begin with a move-to command")
	}
	cmds := make([]Command, 0, len(in))
	for i, jc := range in {
		var c Command
		switch jc.Op {
		case "M", "L":
			if len(jc.Points) != 1 {
				return fmt.Errorf("command %d (%s): want 1 point, got %d", i, jc.Op, len(jc.Points))
			}
			c = Command{Op: MoveTo, To: jc.Points[0]}
			if jc.Op == "L" {
				c.Op = LineTo
			}
		case "Q":
			if len(jc.Points) != 2 {
				return fmt.Errorf("command %d (Q): want 2 points, got %d", i, len(jc.Points))
			}
			c = Command{Op: QuadTo, Ctrl: jc.Points[0], To: jc.Points[1]}
		default:
			return fmt.Errorf("command %d: unknown op %q", i, jc.Op)
		}
		cmds = append(cmds, c)
	}
	p.commands = cmds
	return nil
}
