package safearea

import "github.com/grindlemire/go-safearea/internal/layout"

// Host is the rendering surface a Manager follows.
type Host interface {
	// DisplaySize returns the current viewport size in display units.
	DisplaySize() layout.Size

	// OnResize registers fn for viewport resizes and returns a function
	// that removes it.
	OnResize(fn func(layout.Size)) (unsubscribe func())

	// OnOrientationChange registers fn for orientation changes and returns
	// a function that removes it.
	OnOrientationChange(fn func()) (unsubscribe func())

	// ProbeInsets reports the device's unusable margins in display units.
	// It is best effort: an error means "unsupported" and is treated as
	// zero insets.
	ProbeInsets() (Insets, error)
}

// InsetProbe reports device insets. See Host.ProbeInsets.
type InsetProbe func() (Insets, error)
