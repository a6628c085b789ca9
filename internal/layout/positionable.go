package layout

import "reflect"

// Positionable is the capability every node placed by the engine must provide.
// Position is the node's top-left corner in design space; Size is its extent.
type Positionable interface {
	// Position returns the current top-left corner.
	Position() Point

	// SetPosition moves the node. Only [Place] and the layout root call it.
	SetPosition(Point)

	// Size returns the node's width and height.
	Size() Size
}

// IsNil reports whether p is nil or wraps a nil pointer, map, slice, func
// or channel.
func IsNil(p Positionable) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Bounds returns the rectangle occupied by p.
func Bounds(p Positionable) Rect {
	pos := p.Position()
	size := p.Size()
	return Rect{X: pos.X, Y: pos.Y, Width: size.Width, Height: size.Height}
}

// Box is a minimal Positionable backed by a Rect.
type Box struct {
	Rect
}

// NewBox creates a Box of the given size at the origin.
func NewBox(width, height float64) *Box {
	return &Box{Rect: Rect{Width: width, Height: height}}
}

// Position implements Positionable.
func (b *Box) Position() Point {
	return Point{X: b.X, Y: b.Y}
}

// SetPosition implements Positionable.
func (b *Box) SetPosition(p Point) {
	b.X = p.X
	b.Y = p.Y
}

// Size implements Positionable.
func (b *Box) Size() Size {
	return Size{Width: b.Width, Height: b.Height}
}
