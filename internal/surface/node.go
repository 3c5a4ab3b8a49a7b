package surface

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/gestures/internal/input"
)

// Rect is an axis-aligned rectangle in surface coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W &&
		y >= r.Y && y < r.Y+r.H
}

// Node is an element that input events are dispatched to.
type Node struct {
	id     string
	label  string
	bounds Rect
	touch  bool

	mu        sync.RWMutex
	listeners map[input.EventKind][]input.Listener
}

// NodeOption configures a Node.
type NodeOption func(*Node)

// WithBounds sets the node's hit area.
func WithBounds(r Rect) NodeOption {
	return func(n *Node) {
		n.bounds = r
	}
}

// WithTouch marks the node as living on a touch-capable device.
func WithTouch(touch bool) NodeOption {
	return func(n *Node) {
		n.touch = touch
	}
}

// WithLabel sets the text shown for the node.
func WithLabel(label string) NodeOption {
	return func(n *Node) {
		n.label = label
	}
}

// NewNode creates a node. An empty id is replaced by a random UUID.
func NewNode(id string, opts ...NodeOption) *Node {
	if id == "" {
		id = uuid.NewString()
	}
	n := &Node{
		id:        id,
		label:     id,
		listeners: make(map[input.EventKind][]input.Listener),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// ID returns the node identifier.
func (n *Node) ID() string {
	return n.id
}

// Label returns the display label.
func (n *Node) Label() string {
	return n.label
}

// Bounds returns the node's hit area.
func (n *Node) Bounds() Rect {
	return n.bounds
}

// SupportsTouch reports whether the node receives touch input.
func (n *Node) SupportsTouch() bool {
	return n.touch
}

// AddListener attaches l for events of the given kind.
func (n *Node) AddListener(kind input.EventKind, l input.Listener) {
	if l == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners[kind] = append(n.listeners[kind], l)
}

// Listeners returns how many listeners are attached for kind.
func (n *Node) Listeners(kind input.EventKind) int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.listeners[kind])
}

// Dispatch delivers ev to every listener for its kind, in attachment order.
// The listener list is snapshotted first, so listeners may attach more
// listeners without deadlocking.
func (n *Node) Dispatch(ev *input.Event) {
	if ev == nil {
		return
	}
	n.mu.RLock()
	ls := make([]input.Listener, len(n.listeners[ev.Kind]))
	copy(ls, n.listeners[ev.Kind])
	n.mu.RUnlock()

	ev.Target = n
	for _, l := range ls {
		l(ev)
	}
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return fmt.Sprintf("node(%s)", n.id)
}
