package safearea

import (
	"math"

	"github.com/grindlemire/go-safearea/internal/layout"
	"github.com/grindlemire/go-safearea/internal/resolution"
)

// Config holds the authored inputs of the safe-area model.
type Config struct {
	// DesignSize is the virtual canvas every UI element is authored against.
	DesignSize layout.Size

	// Policy selects how the canvas maps onto the display.
	Policy resolution.Options

	// MarginPercent holds per-side margins as fractions of the view
	// dimension on that axis (Top/Bottom of the height, Left/Right of the
	// width). Negative values are treated as zero.
	MarginPercent layout.Padding

	// MinSafeArea is the size FinalSafe is relaxed towards, in design units.
	MinSafeArea layout.Size
}

// DefaultConfig returns a portrait 1080x1920 canvas with Auto policy and no
// margins.
func DefaultConfig() Config {
	return Config{
		DesignSize: layout.NewSize(1080, 1920),
		Policy:     resolution.Options{Mode: resolution.Auto, Epsilon: resolution.DefaultEpsilon},
	}
}

// Insets are hardware-reported unusable margins in display units.
type Insets struct {
	Top    float64 `json:"top" yaml:"top" toml:"top" msgpack:"top"`
	Bottom float64 `json:"bottom" yaml:"bottom" toml:"bottom" msgpack:"bottom"`
	Left   float64 `json:"left" yaml:"left" toml:"left" msgpack:"left"`
	Right  float64 `json:"right" yaml:"right" toml:"right" msgpack:"right"`
}

// IsZero reports whether no side has an inset.
func (i Insets) IsZero() bool {
	return i == Insets{}
}

// Sanitize replaces negative, NaN and infinite sides with zero.
func (i Insets) Sanitize() Insets {
	return Insets{
		Top:    finiteNonNegative(i.Top),
		Bottom: finiteNonNegative(i.Bottom),
		Left:   finiteNonNegative(i.Left),
		Right:  finiteNonNegative(i.Right),
	}
}

// Rotate returns the insets after turning the device a quarter turn. The
// physical edge carrying each inset moves with the hardware: turning
// clockwise brings the top inset to the right side.
func (i Insets) Rotate(clockwise bool) Insets {
	if clockwise {
		return Insets{Top: i.Left, Right: i.Top, Bottom: i.Right, Left: i.Bottom}
	}
	return Insets{Top: i.Right, Right: i.Bottom, Bottom: i.Left, Left: i.Top}
}

// toDesign converts display-unit insets to design units.
func (i Insets) toDesign(scale float64) layout.Padding {
	if !(scale > 0) || math.IsInf(scale, 0) {
		return layout.Padding{}
	}
	s := i.Sanitize()
	return layout.Padding{
		Top:    s.Top / scale,
		Right:  s.Right / scale,
		Bottom: s.Bottom / scale,
		Left:   s.Left / scale,
	}
}

func finiteNonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
