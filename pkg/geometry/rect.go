package geometry

import "math"

// Rect is an axis-aligned rectangle defined by its top-left origin and size.
//
//	       minX      midX      maxX
//	(origin) *---------*---------*  minY
//	         |                   |
//	         *      (center)     *  midY
//	         |                   |
//	         *---------*---------*  maxY
type Rect struct {
	Origin Point `json:"origin"`
	Size   Size  `json:"size"`
}

// R builds a rectangle from an origin and a size.
func R(x, y, w, h float64) Rect {
	return Rect{Origin: Pt(x, y), Size: Sz(w, h)}
}

func (r Rect) MinX() float64   { return r.Origin.X }
func (r Rect) MidX() float64   { return r.Origin.X + r.Size.Width/2 }
func (r Rect) MaxX() float64   { return r.Origin.X + r.Size.Width }
func (r Rect) MinY() float64   { return r.Origin.Y }
func (r Rect) MidY() float64   { return r.Origin.Y + r.Size.Height/2 }
func (r Rect) MaxY() float64   { return r.Origin.Y + r.Size.Height }
func (r Rect) Width() float64  { return r.Size.Width }
func (r Rect) Height() float64 { return r.Size.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point { return Pt(r.MidX(), r.MidY()) }

// Corners returns the four corners clockwise from the origin.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		r.Origin,
		Pt(r.MaxX(), r.MinY()),
		Pt(r.MaxX(), r.MaxY()),
		Pt(r.MinX(), r.MaxY()),
	}
}

// InsetBy returns a rectangle shrunk by dx on the left and right and by dy
// on the top and bottom. Negative values grow the rectangle.
//
// The origin always moves by (dx, dy). When the requested inset exceeds half
// of a dimension that dimension becomes zero; the result never has a
// negative width or height.
func (r Rect) InsetBy(dx, dy float64) Rect {
	return Rect{
		Origin: Pt(r.Origin.X+dx, r.Origin.Y+dy),
		Size: Sz(
			math.Max(r.Size.Width-dx*2, 0),
			math.Max(r.Size.Height-dy*2, 0),
		),
	}
}

// ContainsPoint reports whether p lies inside r or on any of its four edges.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.MinX() && p.X <= r.MaxX() &&
		p.Y >= r.MinY() && p.Y <= r.MaxY()
}

// ContainsPointInterior reports whether p lies strictly inside r. Points on
// an edge are not contained.
func (r Rect) ContainsPointInterior(p Point) bool {
	return p.X > r.MinX() && p.X < r.MaxX() &&
		p.Y > r.MinY() && p.Y < r.MaxY()
}

// IntersectsLine reports whether the segment a-b crosses the boundary of r.
// See [Rect.IntersectedLine].
func (r Rect) IntersectsLine(a, b Point) bool {
	_, _, ok := r.IntersectedLine(a, b)
	return ok
}

// IntersectedLine clips the segment a-b against r using the Liang–Barsky
// algorithm and returns the clipped endpoints.
//
// The segment is first normalized so the endpoint with the smaller X comes
// first; the returned points follow that order. A segment lying entirely
// inside r needs no clipping and is reported as not intersecting, as is a
// segment parallel to an axis that sits outside the matching bounds, or one
// whose entry fraction exceeds its exit fraction.
//
// Fractions are folded with NaN-tolerant max/min: a NaN candidate never
// replaces the running value.
func (r Rect) IntersectedLine(a, b Point) (Point, Point, bool) {
	if b.X < a.X {
		a, b = b, a
	}

	if r.ContainsPoint(a) && r.ContainsPoint(b) {
		return Point{}, Point{}, false
	}

	dx := b.X - a.X
	dy := b.Y - a.Y

	if dx == 0 && (a.X < r.MinX() || a.X > r.MaxX()) {
		return Point{}, Point{}, false
	}
	if dy == 0 && (a.Y < r.MinY() || a.Y > r.MaxY()) {
		return Point{}, Point{}, false
	}

	// Lower bounds (entry) start at 0, upper bounds (exit) at 1, so the
	// result never extends past the original endpoints.
	lower := []float64{0}
	upper := []float64{1}

	if dx != 0 {
		t1 := (a.X - r.MinX()) / -dx
		t2 := (r.MaxX() - a.X) / dx
		if -dx < 0 {
			lower = append(lower, t1)
			upper = append(upper, t2)
		} else {
			lower = append(lower, t2)
			upper = append(upper, t1)
		}
	}
	if dy != 0 {
		t3 := (a.Y - r.MinY()) / -dy
		t4 := (r.MaxY() - a.Y) / dy
		if -dy < 0 {
			lower = append(lower, t3)
			upper = append(upper, t4)
		} else {
			lower = append(lower, t4)
			upper = append(upper, t3)
		}
	}

	enter := foldMax(-math.MaxFloat64, lower)
	exit := foldMin(math.MaxFloat64, upper)
	if enter > exit {
		return Point{}, Point{}, false
	}

	p := Pt(a.X+dx*enter, a.Y+dy*enter)
	q := Pt(a.X+dx*exit, a.Y+dy*exit)
	return p, q, true
}

// foldMax returns the largest non-NaN value in xs, or seed if none is larger.
func foldMax(seed float64, xs []float64) float64 {
	m := seed
	for _, x := range xs {
		if x > m {
			m = x
		}
	}
	return m
}

// foldMin returns the smallest non-NaN value in xs, or seed if none is smaller.
func foldMin(seed float64, xs []float64) float64 {
	m := seed
	for _, x := range xs {
		if x < m {
			m = x
		}
	}
	return m
}
