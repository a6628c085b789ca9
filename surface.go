package safearea

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-safearea/internal/layoutroot"
	"github.com/grindlemire/go-safearea/internal/notify"
	"github.com/grindlemire/go-safearea/internal/resolution"
	core "github.com/grindlemire/go-safearea/internal/safearea"
)

// Config holds the authored inputs of the safe-area model.
type Config = core.Config

// Insets are hardware-reported unusable margins in display units.
type Insets = core.Insets

// Host is the platform surface a Surface follows.
type Host = core.Host

// InsetProbe reports the current device insets.
type InsetProbe = core.InsetProbe

// Snapshot is one consistent set of safe-area rectangles.
type Snapshot = core.Snapshot

// Unbind removes a subscription.
type Unbind = notify.Unbind

// Mode is a resolution policy.
type Mode = resolution.Mode

// PolicyOptions selects the resolution policy and its tolerance.
type PolicyOptions = resolution.Options

// ResolutionInfo describes how the design canvas maps onto the display.
type ResolutionInfo = resolution.Info

const (
	Auto        = resolution.Auto
	ShowAll     = resolution.ShowAll
	NoBorder    = resolution.NoBorder
	FixedWidth  = resolution.FixedWidth
	FixedHeight = resolution.FixedHeight
)

// DefaultEpsilon is the aspect-ratio tolerance used by Auto.
const DefaultEpsilon = resolution.DefaultEpsilon

// DefaultConfig returns a portrait 1080x1920 canvas with Auto policy and no
// margins.
func DefaultConfig() Config {
	return core.DefaultConfig()
}

// ParseMode parses a resolution policy name such as "show-all".
func ParseMode(s string) (Mode, error) {
	return resolution.ParseMode(s)
}

// Resolve maps design onto display without any safe-area state.
func Resolve(design, display Size, opts PolicyOptions) ResolutionInfo {
	return resolution.Resolve(design, display, opts)
}

// Option is a functional option for configuring a Surface.
type Option func(*surfaceOptions) error

type surfaceOptions struct {
	logger *log.Logger
	probe  InsetProbe
}

// WithLogger sets the logger shared by the Surface's manager and root.
func WithLogger(l *log.Logger) Option {
	return func(o *surfaceOptions) error {
		if l == nil {
			return fmt.Errorf("safearea: nil logger")
		}
		o.logger = l
		return nil
	}
}

// WithInsetProbe overrides the host's inset probe.
func WithInsetProbe(p InsetProbe) Option {
	return func(o *surfaceOptions) error {
		o.probe = p
		return nil
	}
}

// Surface is the safe-area state of one rendering surface: a Manager that
// follows the host and a layout root that keeps anchored nodes inside the
// final safe rect.
type Surface struct {
	*core.Manager
	root *layoutroot.Root
}

// NewSurface builds a Surface for host. Call Destroy when the surface goes
// away.
func NewSurface(host Host, cfg Config, opts ...Option) (*Surface, error) {
	var o surfaceOptions
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	var managerOpts []core.Option
	var rootOpts []layoutroot.Option
	if o.logger != nil {
		managerOpts = append(managerOpts, core.WithLogger(o.logger))
		rootOpts = append(rootOpts, layoutroot.WithLogger(o.logger))
	}
	if o.probe != nil {
		managerOpts = append(managerOpts, core.WithInsetProbe(o.probe))
	}

	m, err := core.NewManager(host, cfg, managerOpts...)
	if err != nil {
		return nil, err
	}
	root, err := layoutroot.New(m, rootOpts...)
	if err != nil {
		m.Destroy()
		return nil, err
	}
	return &Surface{Manager: m, root: root}, nil
}

// AddWithAnchor registers element under id and places it immediately.
func (s *Surface) AddWithAnchor(id string, element Positionable, anchor Anchor, offsetX, offsetY float64) {
	s.root.AddWithAnchor(id, element, anchor, offsetX, offsetY)
}

// Track registers element under a generated id and returns the id.
func (s *Surface) Track(element Positionable, anchor Anchor, offsetX, offsetY float64) string {
	return s.root.Track(element, anchor, offsetX, offsetY)
}

// RemoveChild stops tracking id without touching the element.
func (s *Surface) RemoveChild(id string) {
	s.root.RemoveChild(id)
}

// GetChild returns the element registered under id.
func (s *Surface) GetChild(id string) (Positionable, bool) {
	return s.root.GetChild(id)
}

// SetAnchor changes the anchor and offset of id and repositions it.
func (s *Surface) SetAnchor(id string, anchor Anchor, offsetX, offsetY float64) {
	s.root.SetAnchor(id, anchor, offsetX, offsetY)
}

// UpdateChildPosition repositions id against the current safe rect.
func (s *Surface) UpdateChildPosition(id string) {
	s.root.UpdateChildPosition(id)
}

// IDs returns the tracked ids in registration order.
func (s *Surface) IDs() []string {
	return s.root.IDs()
}

// LayoutRect returns the rect tracked nodes are placed against.
func (s *Surface) LayoutRect() Rect {
	return s.root.Rect()
}

// Destroy detaches the root, then releases the manager's host
// subscriptions. It is safe to call more than once.
func (s *Surface) Destroy() {
	s.root.Destroy()
	s.Manager.Destroy()
}
