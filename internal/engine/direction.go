package engine

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every accepted move direction.
var Directions = []Direction{DirUp, DirLeft, DirDown, DirRight}

// Valid reports whether d is one of the four accepted directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}
