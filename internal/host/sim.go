// Package host provides in-process implementations of safearea.Host.
//
// [Sim] is a scriptable surface: callers set the display size, rotate the
// device and change its insets, and every change is delivered synchronously
// to subscribers, the way a single-threaded platform event loop would.
// It backs the tests, the CLI commands, and the terminal preview, where
// bubbletea window-size messages drive Resize.
package host

import (
	"sync"

	"github.com/grindlemire/go-safearea/internal/layout"
	"github.com/grindlemire/go-safearea/internal/notify"
	"github.com/grindlemire/go-safearea/internal/safearea"
)

// Sim is a simulated display surface.
type Sim struct {
	mu       sync.Mutex
	size     layout.Size
	insets   safearea.Insets
	probeErr error
	probes   int

	resize notify.Bus[layout.Size]
	orient notify.Bus[struct{}]
}

var _ safearea.Host = (*Sim)(nil)

// NewSim creates a surface of the given display size with no insets.
func NewSim(width, height float64) *Sim {
	return &Sim{size: layout.NewSize(width, height)}
}

// DisplaySize implements safearea.Host.
func (s *Sim) DisplaySize() layout.Size {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

// OnResize implements safearea.Host.
func (s *Sim) OnResize(fn func(layout.Size)) func() {
	return s.resize.Subscribe(fn)
}

// OnOrientationChange implements safearea.Host.
func (s *Sim) OnOrientationChange(fn func()) func() {
	return s.orient.Subscribe(func(struct{}) { fn() })
}

// ProbeInsets implements safearea.Host. It fails with the error set by
// FailProbe, if any.
func (s *Sim) ProbeInsets() (safearea.Insets, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.probes++
	if s.probeErr != nil {
		return safearea.Insets{}, s.probeErr
	}
	return s.insets, nil
}

// Resize changes the display size and notifies resize listeners.
func (s *Sim) Resize(width, height float64) {
	size := layout.NewSize(width, height)
	s.mu.Lock()
	s.size = size
	s.mu.Unlock()
	s.resize.Emit(size)
}

// Rotate turns the device a quarter turn: width and height swap and the
// insets follow their physical edges. Only orientation listeners are
// notified.
func (s *Sim) Rotate(clockwise bool) {
	s.mu.Lock()
	s.size = s.size.Swap()
	s.insets = s.insets.Rotate(clockwise)
	s.mu.Unlock()
	s.orient.Emit(struct{}{})
}

// SetInsets changes the device insets reported by the next probe. No event
// is fired; hardware insets only change together with orientation.
func (s *Sim) SetInsets(insets safearea.Insets) {
	s.mu.Lock()
	s.insets = insets
	s.mu.Unlock()
}

// Insets returns the insets the next successful probe will report.
func (s *Sim) Insets() safearea.Insets {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insets
}

// FailProbe makes every following probe return err. A nil err restores
// normal probing.
func (s *Sim) FailProbe(err error) {
	s.mu.Lock()
	s.probeErr = err
	s.mu.Unlock()
}

// Probes returns how many times the insets were probed.
func (s *Sim) Probes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.probes
}

// Listeners returns the number of live resize and orientation subscriptions.
func (s *Sim) Listeners() int {
	return s.resize.Len() + s.orient.Len()
}
