package common

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned rectangle in world units with Y growing downward.
// X/Y is the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectFromBB converts a Chipmunk bounding box (L,B = min corner) to a Rect.
func RectFromBB(bb cp.BB) Rect {
	return Rect{X: bb.L, Y: bb.B, Width: bb.R - bb.L, Height: bb.T - bb.B}
}

// BB returns the rect as a Chipmunk bounding box.
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.Width, T: r.Y + r.Height}
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.Width }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.Height }
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Center returns the rect center as a vector.
func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.CenterX(), Y: r.CenterY()}
}

// Intersects reports whether the rects overlap. Touching edges do not count,
// so a body resting on a floor does not overlap it.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// ContainsPoint reports whether the point is inside the rect. Left and top
// edges are inclusive, right and bottom edges exclusive.
func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Offset returns the rect translated by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}
