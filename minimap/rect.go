package minimap

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned screen rectangle. UV rectangles use the same type
// with coordinates normalized to the texture size.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectAround returns a w by h rectangle centered on p.
func RectAround(p cp.Vector, w, h float64) Rect {
	return Rect{X: p.X - w/2, Y: p.Y - h/2, Width: w, Height: h}
}

// Center returns the midpoint of r.
func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Inflate grows r by dx on the left and right and by dy on the top and
// bottom. Negative values shrink it around the same center.
func (r *Rect) Inflate(dx, dy float64) {
	r.X -= dx
	r.Y -= dy
	r.Width += 2 * dx
	r.Height += 2 * dy
}

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}
