package safearea

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-safearea/internal/debug"
	"github.com/grindlemire/go-safearea/internal/layout"
	"github.com/grindlemire/go-safearea/internal/notify"
	"github.com/grindlemire/go-safearea/internal/resolution"
)

// Snapshot is one complete, consistent result of Compute.
type Snapshot struct {
	Design     layout.Rect
	View       layout.Rect
	DesignSafe layout.Rect
	DeviceSafe layout.Rect
	FinalSafe  layout.Rect

	Resolution resolution.Info

	// Insets are the raw device insets in display units.
	Insets Insets
	// Margins are the per-side margins applied to View to produce FinalSafe.
	Margins layout.Padding

	// Seq increases by one with every Compute.
	Seq uint64
}

// ToSafeX maps n in [0, 1] linearly onto the horizontal extent of FinalSafe.
func (s Snapshot) ToSafeX(n float64) float64 {
	return s.FinalSafe.X + n*s.FinalSafe.Width
}

// ToSafeY maps n in [0, 1] linearly onto the vertical extent of FinalSafe.
func (s Snapshot) ToSafeY(n float64) float64 {
	return s.FinalSafe.Y + n*s.FinalSafe.Height
}

// Option is a functional option for configuring a Manager.
type Option func(*Manager) error

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) error {
		if l == nil {
			return fmt.Errorf("safearea: nil logger")
		}
		m.logger = l
		return nil
	}
}

// WithInsetProbe overrides the host's inset probe.
func WithInsetProbe(p InsetProbe) Option {
	return func(m *Manager) error {
		m.probe = p
		return nil
	}
}

// Manager owns the safe-area rectangles of one rendering surface.
type Manager struct {
	host   Host
	probe  InsetProbe
	logger *log.Logger

	mu   sync.RWMutex
	cfg  Config
	snap Snapshot
	seq  uint64

	changed notify.Bus[Snapshot]

	unsubscribe []func()
	destroyed   bool
}

// NewManager creates a Manager for host, computes the initial snapshot, and
// subscribes to the host's resize and orientation events. Call Destroy to
// release the subscriptions.
func NewManager(host Host, cfg Config, opts ...Option) (*Manager, error) {
	if host == nil {
		return nil, fmt.Errorf("safearea: nil host")
	}

	m := &Manager{
		host:   host,
		probe:  host.ProbeInsets,
		logger: debug.Logger(),
		cfg:    cfg,
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	m.Compute()

	m.unsubscribe = append(m.unsubscribe,
		host.OnResize(m.HandleResize),
		host.OnOrientationChange(m.HandleOrientationChange),
	)
	return m, nil
}

// Compute recomputes every rectangle from the host's current display size
// and device insets, stores the result, and notifies subscribers once.
func (m *Manager) Compute() Snapshot {
	return m.computeFor(m.host.DisplaySize())
}

// HandleResize recomputes for a new display size.
func (m *Manager) HandleResize(size layout.Size) {
	m.logger.Debug("resize", "width", size.Width, "height", size.Height)
	m.computeFor(size)
}

// HandleOrientationChange re-probes the device insets and recomputes. The
// probe runs first because rotation moves the notch to another edge.
func (m *Manager) HandleOrientationChange() {
	m.logger.Debug("orientation change")
	m.Compute()
}

// Reconfigure replaces the authored configuration and recomputes.
func (m *Manager) Reconfigure(cfg Config) Snapshot {
	m.mu.Lock()
	m.cfg = cfg
	m.mu.Unlock()
	return m.Compute()
}

func (m *Manager) computeFor(display layout.Size) Snapshot {
	insets := m.probeInsets()

	m.mu.Lock()
	snap := build(m.cfg, display, insets)
	m.seq++
	snap.Seq = m.seq
	m.snap = snap
	m.mu.Unlock()

	m.logger.Debug("safe area computed",
		"seq", snap.Seq,
		"policy", snap.Resolution.Policy,
		"scale", snap.Resolution.Scale,
		"view", snap.View,
		"final", snap.FinalSafe,
	)

	m.changed.Emit(snap)
	return snap
}

// build derives a snapshot. It is pure: equal inputs give equal snapshots.
func build(cfg Config, display layout.Size, insets Insets) Snapshot {
	info := resolution.Resolve(cfg.DesignSize, display, cfg.Policy)
	view := info.ViewRect
	insets = insets.Sanitize()

	rawPct := percentMargins(view, cfg.MarginPercent)
	rawDevice := insets.toDesign(info.Scale)

	// DesignSafe and DeviceSafe fit their own source. The merge takes the
	// per-side max of the raw margins and is fitted once.
	pct := enforceMinimum(view, rawPct, layout.Size{})
	device := enforceMinimum(view, rawDevice, layout.Size{})
	merged := enforceMinimum(view, rawPct.Max(rawDevice), cfg.MinSafeArea)

	return Snapshot{
		Design:     info.DesignRect,
		View:       view,
		DesignSafe: shrink(view, pct),
		DeviceSafe: shrink(view, device),
		FinalSafe:  shrink(view, merged),
		Resolution: info,
		Insets:     insets,
		Margins:    merged,
	}
}

// probeInsets queries the device insets. Errors and panics from the probe
// are logged and replaced with zero insets.
func (m *Manager) probeInsets() (insets Insets) {
	if m.probe == nil {
		return Insets{}
	}

	defer func() {
		if r := recover(); r != nil {
			m.logger.Warn("device inset probe panicked; using zero insets", "panic", r)
			insets = Insets{}
		}
	}()

	got, err := m.probe()
	if err != nil {
		m.logger.Warn("device inset probe failed; using zero insets", "err", err)
		return Insets{}
	}
	return got.Sanitize()
}

// Subscribe registers fn to receive every future snapshot. It is the
// safeAreaChanged notification: one call per Compute, carrying the whole
// snapshot.
func (m *Manager) Subscribe(fn func(Snapshot)) notify.Unbind {
	return m.changed.Subscribe(fn)
}

// Snapshot returns a copy of the current snapshot.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap
}

// Config returns the current authored configuration.
func (m *Manager) Config() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg
}

// DesignRect returns the whole design canvas.
func (m *Manager) DesignRect() layout.Rect { return m.Snapshot().Design }

// ViewRect returns the visible part of the canvas.
func (m *Manager) ViewRect() layout.Rect { return m.Snapshot().View }

// DesignSafeRect returns the view shrunk by the authored margins.
func (m *Manager) DesignSafeRect() layout.Rect { return m.Snapshot().DesignSafe }

// DeviceSafeRect returns the view shrunk by the device insets.
func (m *Manager) DeviceSafeRect() layout.Rect { return m.Snapshot().DeviceSafe }

// FinalSafeRect returns the rect safe for interactive content.
func (m *Manager) FinalSafeRect() layout.Rect { return m.Snapshot().FinalSafe }

// ResolutionInfo returns the resolution used by the current snapshot.
func (m *Manager) ResolutionInfo() resolution.Info { return m.Snapshot().Resolution }

// ToSafeX maps n in [0, 1] onto the current final safe rect's x extent.
func (m *Manager) ToSafeX(n float64) float64 { return m.Snapshot().ToSafeX(n) }

// ToSafeY maps n in [0, 1] onto the current final safe rect's y extent.
func (m *Manager) ToSafeY(n float64) float64 { return m.Snapshot().ToSafeY(n) }

// Destroy releases the host subscriptions and drops every subscriber.
// It is safe to call more than once.
func (m *Manager) Destroy() {
	m.mu.Lock()
	if m.destroyed {
		m.mu.Unlock()
		return
	}
	m.destroyed = true
	unsubscribe := m.unsubscribe
	m.unsubscribe = nil
	m.mu.Unlock()

	for _, fn := range unsubscribe {
		if fn != nil {
			fn()
		}
	}
	m.changed.Clear()
	m.logger.Debug("safe area manager destroyed")
}
