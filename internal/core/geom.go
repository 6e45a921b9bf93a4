// Package core provides rendering primitives shared by the game and the
// terminal platform. It has no dependency on Bubble Tea so that rendering
// stays testable without a terminal.
package core

// Rect is an axis-aligned area on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Within reports whether r lies entirely inside a screen of the given size.
func (r Rect) Within(width, height int) bool {
	return r.X >= 0 && r.Y >= 0 && r.Right() <= width && r.Bottom() <= height
}

// CenterIn returns a w x h rectangle centered on a screen of the given size.
// The origin is clamped to zero when the screen is too small.
func CenterIn(w, h, screenW, screenH int) Rect {
	return Rect{
		X: Max((screenW-w)/2, 0),
		Y: Max((screenH-h)/2, 0),
		W: w,
		H: h,
	}
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
