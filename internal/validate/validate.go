// Package validate checks layout results against the safe-area model.
//
// The engine never validates itself at runtime: a containment failure is a
// logic bug. These checks exist for assertions, tests and the CLI's check
// command. Every failure is a [*Violation], which unwraps to an
// errors.Error carrying OUT_OF_BOUNDS for element checks or
// INVARIANT_VIOLATION for snapshot checks.
package validate

import (
	"fmt"
	"math"

	"github.com/grindlemire/go-safearea/internal/errors"
	"github.com/grindlemire/go-safearea/internal/layout"
	"github.com/grindlemire/go-safearea/internal/safearea"
)

// DefaultTolerance absorbs floating-point noise in edge comparisons.
const DefaultTolerance = 1e-6

// Violation describes one rect that is not where it should be.
type Violation struct {
	// Name identifies the offending element or snapshot rect.
	Name string
	// Bounds is the offending rect.
	Bounds layout.Rect
	// Container is the rect Bounds should lie inside.
	Container layout.Rect
	// Overflow is the signed per-side spill of Bounds past Container.
	Overflow layout.Overflow

	err *errors.Error
}

// Error implements error.
func (v *Violation) Error() string {
	return v.err.Error()
}

// Unwrap exposes the coded error.
func (v *Violation) Unwrap() error {
	return v.err
}

// Code returns the violation's error code.
func (v *Violation) Code() errors.Code {
	return v.err.Code
}

// Named pairs an element with the name it is reported under.
type Named struct {
	Name    string
	Element layout.Positionable
}

// Element returns a violation when element is not fully inside safe, or nil.
func Element(name string, element layout.Positionable, safe layout.Rect) *Violation {
	return checkBounds(name, layout.Bounds(element), safe, DefaultTolerance)
}

// Elements checks every element against safe and returns the violations in
// input order.
func Elements(safe layout.Rect, elements []Named) []*Violation {
	var out []*Violation
	for _, e := range elements {
		if e.Element == nil {
			continue
		}
		if v := Element(e.Name, e.Element, safe); v != nil {
			out = append(out, v)
		}
	}
	return out
}

// InSafeArea reports whether element lies inside the snapshot's final safe
// rect.
func InSafeArea(element layout.Positionable, s safearea.Snapshot) bool {
	return Element("", element, s.FinalSafe) == nil
}

func checkBounds(name string, bounds, container layout.Rect, tol float64) *Violation {
	o := layout.CalculateOverflow(bounds, container)
	if !o.Any(tol) {
		return nil
	}
	return &Violation{
		Name:      name,
		Bounds:    bounds,
		Container: container,
		Overflow:  o,
		err: errors.New(errors.ErrCodeOutOfBounds,
			"%s spills %.3f outside %s", label(name), o.Worst(), formatRect(container)),
	}
}

// Snapshot checks the structural invariants of s: every rect has finite,
// non-negative dimensions, FinalSafe lies in View, View lies in Design,
// and DesignSafe and DeviceSafe lie in View. A tol <= 0 means
// DefaultTolerance. The result joins every violation found, or is nil.
func Snapshot(s safearea.Snapshot, tol float64) error {
	if tol <= 0 {
		tol = DefaultTolerance
	}

	var errs []error
	rects := []struct {
		name string
		r    layout.Rect
	}{
		{"design", s.Design},
		{"view", s.View},
		{"design safe", s.DesignSafe},
		{"device safe", s.DeviceSafe},
		{"final safe", s.FinalSafe},
	}
	for _, nr := range rects {
		if !wellFormed(nr.r) {
			errs = append(errs, invariant(nr.name, nr.r, layout.Rect{},
				"%s has invalid dimensions %s", nr.name, formatRect(nr.r)))
		}
	}

	contain := []struct {
		inner, outer string
		r, in        layout.Rect
	}{
		{"view", "design", s.View, s.Design},
		{"final safe", "view", s.FinalSafe, s.View},
		{"design safe", "view", s.DesignSafe, s.View},
		{"device safe", "view", s.DeviceSafe, s.View},
	}
	for _, c := range contain {
		if c.in.ContainsRectApprox(c.r, tol) {
			continue
		}
		errs = append(errs, invariant(c.inner, c.r, c.in,
			"%s %s is not inside %s %s", c.inner, formatRect(c.r), c.outer, formatRect(c.in)))
	}

	return errors.Join(errs...)
}

// MinimumMet reports whether FinalSafe honours minSize as far as the view
// allows: each axis is at least min(minSize, view) within tol.
func MinimumMet(s safearea.Snapshot, minSize layout.Size, tol float64) bool {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	w := min(max(minSize.Width, 0), s.View.Width)
	h := min(max(minSize.Height, 0), s.View.Height)
	return s.FinalSafe.Width >= w-tol && s.FinalSafe.Height >= h-tol
}

func invariant(name string, r, container layout.Rect, format string, args ...any) *Violation {
	return &Violation{
		Name:      name,
		Bounds:    r,
		Container: container,
		Overflow:  layout.CalculateOverflow(r, container),
		err:       errors.New(errors.ErrCodeInvariant, format, args...),
	}
}

func wellFormed(r layout.Rect) bool {
	for _, v := range []float64{r.X, r.Y, r.Width, r.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.Width >= 0 && r.Height >= 0
}

func label(name string) string {
	if name == "" {
		return "element"
	}
	return fmt.Sprintf("element %q", name)
}

func formatRect(r layout.Rect) string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}
