package geometry

// Direction is one of the four axis directions. Up points toward smaller Y.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

var directionNames = [...]string{"up", "right", "down", "left"}

func (d Direction) String() string {
	if d < Up || d > Left {
		return "unknown"
	}
	return directionNames[d]
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// IsHorizontal reports whether d is Left or Right.
func (d Direction) IsHorizontal() bool { return d == Left || d == Right }

// OrthogonalDirection classifies where to lies relative to from.
//
// The X axis is decided first: any nonzero X difference yields Left or
// Right and the Y coordinates are not consulted. Only when the X values are
// equal does the Y difference pick Up or Down. Identical points have no
// direction and report false.
func OrthogonalDirection(from, to Point) (Direction, bool) {
	switch {
	case to.X < from.X:
		return Left, true
	case to.X > from.X:
		return Right, true
	case to.Y < from.Y:
		return Up, true
	case to.Y > from.Y:
		return Down, true
	}
	return Up, false
}
