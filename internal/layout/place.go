package layout

// AnchorPoint returns the point of r named by anchor.
func AnchorPoint(r Rect, anchor Anchor) Point {
	nx, ny := anchor.Normalized()
	return Point{
		X: r.X + r.Width*nx,
		Y: r.Y + r.Height*ny,
	}
}

// Place moves element so its position is the anchor point of r plus the offset.
// This is the only function in the package that writes a position. A nil
// element, including a typed nil pointer, is left alone.
func Place(element Positionable, r Rect, anchor Anchor, offsetX, offsetY float64) {
	if IsNil(element) {
		return
	}
	element.SetPosition(AnchorPoint(r, anchor).Add(Point{X: offsetX, Y: offsetY}))
}

// ApplyPadding returns r shrunk by padding. Negative padding sides are
// treated as zero and the result never has negative dimensions: when the
// padding on an axis exceeds the available extent, the result collapses to
// zero size at the padded start edge, clamped to r.
func ApplyPadding(r Rect, padding Padding) Rect {
	p := padding.NonNegative()
	out := r.Inset(p)
	if out.Width < 0 {
		out.Width = 0
		out.X = min(out.X, r.Right())
	}
	if out.Height < 0 {
		out.Height = 0
		out.Y = min(out.Y, r.Bottom())
	}
	return out
}

// ClampToRect constrains p so an element of the given size placed at p stays
// inside r. A zero size clamps the point itself. When the element is larger
// than r on an axis, it is pinned to r's start edge on that axis.
func ClampToRect(p Point, r Rect, size Size) Point {
	return Point{
		X: clampAxis(p.X, r.X, r.Right()-max(size.Width, 0)),
		Y: clampAxis(p.Y, r.Y, r.Bottom()-max(size.Height, 0)),
	}
}

func clampAxis(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
