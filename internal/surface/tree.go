package surface

import (
	"sync"
)

// Tree is an ordered collection of nodes. Later nodes are drawn on top of
// earlier ones and win hit tests.
type Tree struct {
	mu    sync.RWMutex
	nodes []*Node
	byID  map[string]*Node
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{
		byID: make(map[string]*Node),
	}
}

// Add appends n and returns it. A node with the same id replaces the
// previous one in place.
func (t *Tree) Add(n *Node) *Node {
	t.mu.Lock()
	defer t.mu.Unlock()

	if old, ok := t.byID[n.ID()]; ok {
		for i, existing := range t.nodes {
			if existing == old {
				t.nodes[i] = n
				break
			}
		}
	} else {
		t.nodes = append(t.nodes, n)
	}
	t.byID[n.ID()] = n
	return n
}

// Get returns the node with the given id.
func (t *Tree) Get(id string) (*Node, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n, ok := t.byID[id]
	return n, ok
}

// Nodes returns the nodes in drawing order.
func (t *Tree) Nodes() []*Node {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*Node, len(t.nodes))
	copy(out, t.nodes)
	return out
}

// HitTest returns the topmost node containing (x, y), or nil.
func (t *Tree) HitTest(x, y float64) *Node {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i := len(t.nodes) - 1; i >= 0; i-- {
		if t.nodes[i].bounds.Contains(x, y) {
			return t.nodes[i]
		}
	}
	return nil
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.nodes)
}
