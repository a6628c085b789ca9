// Package resolution maps a fixed design canvas onto a display surface.
//
// [Resolve] is a pure function: given the design size, the display size and
// a policy it returns the scale factor and the part of the design canvas
// that is visible on the display. Degenerate sizes are clamped, never
// rejected.
package resolution

import (
	"github.com/grindlemire/go-safearea/internal/layout"
)

// DefaultEpsilon is the aspect-ratio tolerance used by Auto when
// Options.Epsilon is not positive.
const DefaultEpsilon = 0.01

// minDimension is the floor applied to every design and display dimension.
const minDimension = 1

// Options selects the resolution policy.
type Options struct {
	Mode Mode

	// Epsilon is the aspect-ratio tolerance for Auto. Values <= 0 mean
	// DefaultEpsilon.
	Epsilon float64
}

func (o Options) epsilon() float64 {
	if o.Epsilon <= 0 {
		return DefaultEpsilon
	}
	return o.Epsilon
}

// Info is an immutable snapshot of one resolution.
type Info struct {
	// Requested is the mode the caller asked for, possibly Auto.
	Requested Mode
	// Policy is the concrete mode used; never Auto.
	Policy Mode
	// Scale maps one design unit to display units.
	Scale float64

	// WindowRect is the display surface expressed in design space, centred
	// on the canvas. It extends past the canvas on letterboxed axes.
	WindowRect layout.Rect
	// ViewRect is the visible part of the canvas: WindowRect clipped to
	// DesignRect.
	ViewRect layout.Rect
	// DesignRect is the whole canvas, anchored at the origin.
	DesignRect layout.Rect

	DesignSize  layout.Size
	DisplaySize layout.Size
}

// ResolveMode returns the concrete policy for opts. Non-Auto modes are
// returned unchanged. Auto compares the display aspect ratio with the
// design aspect ratio: a narrower display fixes the width, a wider display
// fixes the height, and ratios within epsilon show everything.
func ResolveMode(design, display layout.Size, opts Options) Mode {
	if opts.Mode != Auto {
		return opts.Mode
	}

	design = design.Floor(minDimension)
	display = display.Floor(minDimension)
	eps := opts.epsilon()

	designRatio := design.Ratio()
	displayRatio := display.Ratio()

	switch {
	case displayRatio < designRatio-eps:
		return FixedWidth
	case displayRatio > designRatio+eps:
		return FixedHeight
	default:
		return ShowAll
	}
}

// Resolve computes the scale and visible design-space window for a display.
func Resolve(design, display layout.Size, opts Options) Info {
	design = design.Floor(minDimension)
	display = display.Floor(minDimension)
	policy := ResolveMode(design, display, opts)

	scaleX := display.Width / design.Width
	scaleY := display.Height / design.Height

	var scale float64
	switch policy {
	case NoBorder:
		scale = max(scaleX, scaleY)
	case FixedWidth:
		scale = scaleX
	case FixedHeight:
		scale = scaleY
	default:
		policy = ShowAll
		scale = min(scaleX, scaleY)
	}

	viewWidth := display.Width / scale
	viewHeight := display.Height / scale

	designRect := layout.RectFromSize(design)
	window := layout.Rect{
		X:      (design.Width - viewWidth) / 2,
		Y:      (design.Height - viewHeight) / 2,
		Width:  viewWidth,
		Height: viewHeight,
	}

	view := window.Intersect(designRect)
	if view.IsEmpty() {
		view = designRect
	}

	return Info{
		Requested:   opts.Mode,
		Policy:      policy,
		Scale:       scale,
		WindowRect:  window,
		ViewRect:    view,
		DesignRect:  designRect,
		DesignSize:  design,
		DisplaySize: display,
	}
}

// ToDisplay converts a design-space point to display units.
func (i Info) ToDisplay(p layout.Point) layout.Point {
	return layout.Point{
		X: (p.X - i.WindowRect.X) * i.Scale,
		Y: (p.Y - i.WindowRect.Y) * i.Scale,
	}
}

// ToDesign converts a display-space point to design units.
func (i Info) ToDesign(p layout.Point) layout.Point {
	if i.Scale == 0 {
		return i.WindowRect.Center()
	}
	return layout.Point{
		X: p.X/i.Scale + i.WindowRect.X,
		Y: p.Y/i.Scale + i.WindowRect.Y,
	}
}
