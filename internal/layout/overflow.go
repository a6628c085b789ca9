package layout

// Overflow is the signed distance an element spills past each edge of a rect.
// Positive values mean the element extends outside that edge; zero or
// negative values mean it is inside by that much.
type Overflow struct {
	Top    float64 `json:"top" yaml:"top" msgpack:"top"`
	Right  float64 `json:"right" yaml:"right" msgpack:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom" msgpack:"bottom"`
	Left   float64 `json:"left" yaml:"left" msgpack:"left"`
}

// Any reports whether any side overflows by more than tol.
func (o Overflow) Any(tol float64) bool {
	return o.Top > tol || o.Right > tol || o.Bottom > tol || o.Left > tol
}

// Worst returns the largest overflow across all sides.
func (o Overflow) Worst() float64 {
	return max(o.Top, o.Right, o.Bottom, o.Left)
}

// CalculateOverflow measures how far bounds extends beyond r on each side.
func CalculateOverflow(bounds, r Rect) Overflow {
	return Overflow{
		Top:    r.Y - bounds.Y,
		Right:  bounds.Right() - r.Right(),
		Bottom: bounds.Bottom() - r.Bottom(),
		Left:   r.X - bounds.X,
	}
}

// IsInRect reports whether element lies fully inside r, edges included.
func IsInRect(element Positionable, r Rect) bool {
	return !CalculateOverflow(Bounds(element), r).Any(0)
}
