package layout

import "math"

// Rect represents a rectangle in design-space coordinates.
// X and Y are the top-left corner; Width and Height are dimensions.
type Rect struct {
	X      float64 `json:"x" yaml:"x" toml:"x" msgpack:"x"`
	Y      float64 `json:"y" yaml:"y" toml:"y" msgpack:"y"`
	Width  float64 `json:"width" yaml:"width" toml:"width" msgpack:"width"`
	Height float64 `json:"height" yaml:"height" toml:"height" msgpack:"height"`
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromSize returns a Rect at the origin with the given size.
func RectFromSize(s Size) Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Size returns the dimensions of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the area of the rectangle.
func (r Rect) Area() float64 {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// Contains returns true if the point is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsRect returns true if other lies within r, edges included.
// Empty rects are compared by position too: a zero-size rect outside r is
// not contained.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// ContainsRectApprox is ContainsRect with every edge comparison relaxed by tol.
func (r Rect) ContainsRectApprox(other Rect, tol float64) bool {
	return other.X >= r.X-tol && other.Y >= r.Y-tol &&
		other.Right() <= r.Right()+tol && other.Bottom() <= r.Bottom()+tol
}

// Inset returns a new Rect shrunk by the given Padding.
// Positive values shrink the rectangle; negative values expand it.
// The result may have negative dimensions; callers that need a valid rect
// should use [ApplyPadding].
func (r Rect) Inset(p Padding) Rect {
	return Rect{
		X:      r.X + p.Left,
		Y:      r.Y + p.Top,
		Width:  r.Width - p.Left - p.Right,
		Height: r.Height - p.Top - p.Bottom,
	}
}

// Outset returns a new Rect expanded outward by the given Padding.
func (r Rect) Outset(p Padding) Rect {
	return Rect{
		X:      r.X - p.Left,
		Y:      r.Y - p.Top,
		Width:  r.Width + p.Left + p.Right,
		Height: r.Height + p.Top + p.Bottom,
	}
}

// Intersect returns the intersection of two rectangles.
// If the rectangles don't overlap, returns an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())

	width := right - x
	height := bottom - y

	if width <= 0 || height <= 0 {
		return Rect{}
	}

	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Union returns the smallest rectangle that contains both rectangles.
// If either rectangle is empty, returns the other rectangle.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}

	x := min(r.X, other.X)
	y := min(r.Y, other.Y)
	right := max(r.Right(), other.Right())
	bottom := max(r.Bottom(), other.Bottom())

	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Intersects returns true if the two rectangles overlap.
// Touching edges do not count as overlapping.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// Approx reports whether every component of r is within tol of other.
func (r Rect) Approx(other Rect, tol float64) bool {
	return math.Abs(r.X-other.X) <= tol &&
		math.Abs(r.Y-other.Y) <= tol &&
		math.Abs(r.Width-other.Width) <= tol &&
		math.Abs(r.Height-other.Height) <= tol
}
