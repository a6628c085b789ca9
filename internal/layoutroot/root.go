// Package layoutroot keeps anchored UI nodes inside the safe area.
//
// A [Root] is a registry of nodes keyed by caller-supplied id. Each node has
// an anchor and an offset; the Root places it relative to the current safe
// rect on registration and again on every safe-area change, without the
// caller rebuilding anything. The Root tracks placement metadata only: the
// node's lifetime belongs to whoever created it.
package layoutroot

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/grindlemire/go-safearea/internal/debug"
	"github.com/grindlemire/go-safearea/internal/layout"
	"github.com/grindlemire/go-safearea/internal/notify"
	"github.com/grindlemire/go-safearea/internal/safearea"
)

// Source supplies safe-area snapshots and change notifications.
// *safearea.Manager implements it.
type Source interface {
	Snapshot() safearea.Snapshot
	Subscribe(fn func(safearea.Snapshot)) notify.Unbind
}

var _ Source = (*safearea.Manager)(nil)

// trackedNode is the placement metadata of one registered node.
type trackedNode struct {
	element layout.Positionable
	anchor  layout.Anchor
	offsetX float64
	offsetY float64
}

// Option is a functional option for configuring a Root.
type Option func(*Root) error

// WithLogger sets the logger used for misuse diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(r *Root) error {
		if l == nil {
			return fmt.Errorf("layoutroot: nil logger")
		}
		r.logger = l
		return nil
	}
}

// Root repositions its tracked nodes whenever the safe area changes.
//
// Every placement happens under the Root's lock, so a node's position always
// matches the latest layout rect. Elements must not call back into the Root
// from SetPosition.
type Root struct {
	source Source
	logger *log.Logger

	mu    sync.Mutex
	nodes map[string]*trackedNode
	order []string
	rect  layout.Rect

	unbind    notify.Unbind
	destroyed bool
}

// New creates a Root following source. Call Destroy to stop following it.
func New(source Source, opts ...Option) (*Root, error) {
	if source == nil {
		return nil, fmt.Errorf("layoutroot: nil source")
	}

	r := &Root{
		source: source,
		logger: debug.Logger(),
		nodes:  make(map[string]*trackedNode),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	r.rect = LayoutRect(source.Snapshot())
	r.unbind = source.Subscribe(r.handleChange)
	return r, nil
}

// LayoutRect returns the rect nodes are placed against: the final safe rect
// clipped to the view, or the final safe rect alone if the two do not
// intersect.
func LayoutRect(s safearea.Snapshot) layout.Rect {
	if !s.FinalSafe.Intersects(s.View) {
		return s.FinalSafe
	}
	return s.FinalSafe.Intersect(s.View)
}

// AddWithAnchor registers element under id and places it immediately.
// Registering an id again replaces the previous node and anchor.
func (r *Root) AddWithAnchor(id string, element layout.Positionable, anchor layout.Anchor, offsetX, offsetY float64) {
	if layout.IsNil(element) {
		r.logger.Warn("ignoring nil element", "id", id)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	node := &trackedNode{element: element, anchor: anchor, offsetX: offsetX, offsetY: offsetY}
	if _, exists := r.nodes[id]; !exists {
		r.order = append(r.order, id)
	} else {
		r.logger.Debug("replacing tracked node", "id", id)
	}
	r.nodes[id] = node
	layout.Place(element, r.rect, anchor, offsetX, offsetY)
}

// Track registers element under a generated id and returns the id.
func (r *Root) Track(element layout.Positionable, anchor layout.Anchor, offsetX, offsetY float64) string {
	id := uuid.NewString()
	r.AddWithAnchor(id, element, anchor, offsetX, offsetY)
	return id
}

// RemoveChild stops tracking id. The element itself is left untouched.
func (r *Root) RemoveChild(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.nodes[id]; !ok {
		r.logger.Warn("remove of unknown tracked node", "id", id)
		return
	}
	delete(r.nodes, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// GetChild returns the element registered under id.
func (r *Root) GetChild(id string) (layout.Positionable, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	node, ok := r.nodes[id]
	if !ok {
		return nil, false
	}
	return node.element, true
}

// Placement returns the anchor and offset registered under id.
func (r *Root) Placement(id string) (anchor layout.Anchor, offsetX, offsetY float64, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	node, ok := r.nodes[id]
	if !ok {
		return 0, 0, 0, false
	}
	return node.anchor, node.offsetX, node.offsetY, true
}

// SetAnchor changes the anchor and offset of id in place and repositions it.
func (r *Root) SetAnchor(id string, anchor layout.Anchor, offsetX, offsetY float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	node, ok := r.nodes[id]
	if !ok {
		r.logger.Warn("re-anchor of unknown tracked node", "id", id)
		return
	}
	node.anchor = anchor
	node.offsetX = offsetX
	node.offsetY = offsetY
	layout.Place(node.element, r.rect, anchor, offsetX, offsetY)
}

// UpdateChildPosition repositions id against the current layout rect.
func (r *Root) UpdateChildPosition(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	node, ok := r.nodes[id]
	if !ok {
		r.logger.Warn("update of unknown tracked node", "id", id)
		return
	}
	layout.Place(node.element, r.rect, node.anchor, node.offsetX, node.offsetY)
}

// IDs returns the tracked ids in registration order.
func (r *Root) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

// Len returns the number of tracked nodes.
func (r *Root) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.nodes)
}

// Rect returns the rect nodes are currently placed against.
func (r *Root) Rect() layout.Rect {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rect
}

// handleChange repositions every tracked node for a new snapshot.
func (r *Root) handleChange(s safearea.Snapshot) {
	rect := LayoutRect(s)

	r.mu.Lock()
	r.rect = rect
	for _, id := range r.order {
		node := r.nodes[id]
		layout.Place(node.element, rect, node.anchor, node.offsetX, node.offsetY)
	}
	count := len(r.order)
	r.mu.Unlock()

	r.logger.Debug("repositioned tracked nodes", "count", count, "rect", rect, "seq", s.Seq)
}

// Destroy stops following the source and forgets every node. Elements are
// not modified. It is safe to call more than once.
func (r *Root) Destroy() {
	r.mu.Lock()
	if r.destroyed {
		r.mu.Unlock()
		return
	}
	r.destroyed = true
	unbind := r.unbind
	r.unbind = nil
	r.nodes = make(map[string]*trackedNode)
	r.order = nil
	r.mu.Unlock()

	if unbind != nil {
		unbind()
	}
}
