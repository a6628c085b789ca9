package layout

// Padding represents values for four sides of a box.
type Padding struct {
	Top    float64 `json:"top" yaml:"top" toml:"top" msgpack:"top"`
	Right  float64 `json:"right" yaml:"right" toml:"right" msgpack:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom" toml:"bottom" msgpack:"bottom"`
	Left   float64 `json:"left" yaml:"left" toml:"left" msgpack:"left"`
}

// PadAll creates Padding with the same value on all sides.
func PadAll(n float64) Padding {
	return Padding{Top: n, Right: n, Bottom: n, Left: n}
}

// PadSymmetric creates Padding with vertical (top/bottom) and horizontal (left/right) values.
func PadSymmetric(v, h float64) Padding {
	return Padding{Top: v, Right: h, Bottom: v, Left: h}
}

// PadTRBL creates Padding following CSS order: Top, Right, Bottom, Left.
func PadTRBL(t, r, b, l float64) Padding {
	return Padding{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns the sum of Left and Right.
func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

// IsZero returns true if all edge values are zero.
func (p Padding) IsZero() bool {
	return p.Top == 0 && p.Right == 0 && p.Bottom == 0 && p.Left == 0
}

// NonNegative returns p with negative sides replaced by zero.
func (p Padding) NonNegative() Padding {
	return Padding{
		Top:    max(p.Top, 0),
		Right:  max(p.Right, 0),
		Bottom: max(p.Bottom, 0),
		Left:   max(p.Left, 0),
	}
}

// Max returns the per-side maximum of p and other.
func (p Padding) Max(other Padding) Padding {
	return Padding{
		Top:    max(p.Top, other.Top),
		Right:  max(p.Right, other.Right),
		Bottom: max(p.Bottom, other.Bottom),
		Left:   max(p.Left, other.Left),
	}
}
