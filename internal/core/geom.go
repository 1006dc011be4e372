// Package core holds the terminal drawing primitives shared by the
// interactive front ends. It has no Bubble Tea dependency so views can be
// tested as plain character grids.
package core

// Rect is an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Scale maps used/total onto a bar of the given width, rounding down.
// Any nonzero amount shows at least one cell.
func Scale(used, total, width int) int {
	if used <= 0 || total <= 0 || width <= 0 {
		return 0
	}
	n := used * width / total
	if n == 0 {
		n = 1
	}
	return Clamp(n, 0, width)
}
