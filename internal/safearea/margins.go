package safearea

import "github.com/grindlemire/go-safearea/internal/layout"

// percentMargins converts fractional margins into design units of view.
func percentMargins(view layout.Rect, pct layout.Padding) layout.Padding {
	p := pct.NonNegative()
	return layout.Padding{
		Top:    p.Top * view.Height,
		Right:  p.Right * view.Width,
		Bottom: p.Bottom * view.Height,
		Left:   p.Left * view.Width,
	}
}

// enforceMinimum shrinks margins so view minus margins is at least minSize
// on each axis. When the view has room, both margins of an axis scale by
// the same factor; when it does not (or the axis has no margin to give),
// both margins of that axis drop to zero. The result never exceeds the
// input margins and is never negative.
//
// A view smaller than minSize yields zero margins and a safe extent equal to
// the view, which is still below the minimum. The minimum is a target, not
// a guarantee.
func enforceMinimum(view layout.Rect, m layout.Padding, minSize layout.Size) layout.Padding {
	m = m.NonNegative()
	m.Left, m.Right = fitAxis(view.Width, m.Left, m.Right, max(minSize.Width, 0))
	m.Top, m.Bottom = fitAxis(view.Height, m.Top, m.Bottom, max(minSize.Height, 0))
	return m
}

func fitAxis(extent, start, end, minExtent float64) (float64, float64) {
	if extent-start-end >= minExtent {
		return start, end
	}

	available := extent - minExtent
	total := start + end
	if total > 0 && available > 0 {
		f := available / total
		return start * f, end * f
	}
	return 0, 0
}

// shrink applies margins that enforceMinimum has already fitted to view.
func shrink(view layout.Rect, m layout.Padding) layout.Rect {
	r := view.Inset(m)
	r.Width = max(r.Width, 0)
	r.Height = max(r.Height, 0)
	return r
}
