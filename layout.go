// layout.go re-exports geometry types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package safearea

import "github.com/grindlemire/go-safearea/internal/layout"

// Rect represents a rectangle in design-space coordinates.
type Rect = layout.Rect

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// Padding represents values for four sides of a box.
type Padding = layout.Padding

// Overflow is the signed per-side spill of an element past a rect.
type Overflow = layout.Overflow

// Positionable is the capability every anchored node must provide.
type Positionable = layout.Positionable

// Box is a minimal Positionable backed by a Rect.
type Box = layout.Box

// Anchor names one of the nine reference points of a rectangle.
type Anchor = layout.Anchor

const (
	TopLeft      = layout.TopLeft
	TopCenter    = layout.TopCenter
	TopRight     = layout.TopRight
	CenterLeft   = layout.CenterLeft
	Center       = layout.Center
	CenterRight  = layout.CenterRight
	BottomLeft   = layout.BottomLeft
	BottomCenter = layout.BottomCenter
	BottomRight  = layout.BottomRight
)

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// NewSize creates a Size.
func NewSize(width, height float64) Size {
	return layout.NewSize(width, height)
}

// NewBox creates a Box of the given size at the origin.
func NewBox(width, height float64) *Box {
	return layout.NewBox(width, height)
}

// PadAll creates Padding with the same value on all sides.
func PadAll(n float64) Padding {
	return layout.PadAll(n)
}

// PadTRBL creates Padding following CSS order: Top, Right, Bottom, Left.
func PadTRBL(t, r, b, l float64) Padding {
	return layout.PadTRBL(t, r, b, l)
}

// ParseAnchor parses an anchor name such as "top-right" or "TOP_RIGHT".
func ParseAnchor(s string) (Anchor, error) {
	return layout.ParseAnchor(s)
}

// AnchorPoint returns the point of r named by anchor.
func AnchorPoint(r Rect, anchor Anchor) Point {
	return layout.AnchorPoint(r, anchor)
}

// Place moves element to the anchor point of r plus the offset.
func Place(element Positionable, r Rect, anchor Anchor, offsetX, offsetY float64) {
	layout.Place(element, r, anchor, offsetX, offsetY)
}

// ApplyPadding returns r shrunk by padding, never with negative size.
func ApplyPadding(r Rect, padding Padding) Rect {
	return layout.ApplyPadding(r, padding)
}

// ClampToRect constrains p so an element of size stays inside r.
func ClampToRect(p Point, r Rect, size Size) Point {
	return layout.ClampToRect(p, r, size)
}

// IsInRect reports whether element lies fully inside r.
func IsInRect(element Positionable, r Rect) bool {
	return layout.IsInRect(element, r)
}

// CalculateOverflow measures how far bounds extends beyond r on each side.
func CalculateOverflow(bounds, r Rect) Overflow {
	return layout.CalculateOverflow(bounds, r)
}

// Distribute returns evenly spaced positions for elements along one axis.
func Distribute(elements []Positionable, start, end float64, horizontal bool) []Point {
	return layout.Distribute(elements, start, end, horizontal)
}

// Align returns sequential positions for elements separated by spacing.
func Align(elements []Positionable, startPos, spacing float64, horizontal bool) []Point {
	return layout.Align(elements, startPos, spacing, horizontal)
}
