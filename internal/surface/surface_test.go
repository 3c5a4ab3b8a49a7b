package surface

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/gestures/internal/input"
	"github.com/dshills/gestures/internal/input/pointer"
)

func TestNewNodeGeneratesID(t *testing.T) {
	n := NewNode("")
	_, err := uuid.Parse(n.ID())
	require.NoError(t, err)
	assert.Equal(t, n.ID(), n.Label())

	named := NewNode("board", WithLabel("Board"), WithTouch(true))
	assert.Equal(t, "board", named.ID())
	assert.Equal(t, "Board", named.Label())
	assert.True(t, named.SupportsTouch())
}

func TestDispatchOrderAndTarget(t *testing.T) {
	n := NewNode("a")
	var order []int
	n.AddListener(input.EventClick, func(ev *input.Event) {
		assert.Same(t, n, ev.Target)
		order = append(order, 1)
	})
	n.AddListener(input.EventClick, func(*input.Event) { order = append(order, 2) })
	n.AddListener(input.EventKeyDown, func(*input.Event) { order = append(order, 99) })
	n.AddListener(input.EventClick, nil)

	n.Dispatch(input.NewClickEvent(pointer.Position{}))
	n.Dispatch(nil)

	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, 2, n.Listeners(input.EventClick))
	assert.Equal(t, 0, n.Listeners(input.EventContactEnd))
}

func TestDispatchAllowsListenerToAttach(t *testing.T) {
	n := NewNode("a")
	n.AddListener(input.EventClick, func(*input.Event) {
		n.AddListener(input.EventClick, func(*input.Event) {})
	})

	n.Dispatch(input.NewClickEvent(pointer.Position{}))
	assert.Equal(t, 2, n.Listeners(input.EventClick))
}

func TestTreeHitTest(t *testing.T) {
	tree := NewTree()
	back := tree.Add(NewNode("back", WithBounds(Rect{X: 0, Y: 0, W: 100, H: 100})))
	front := tree.Add(NewNode("front", WithBounds(Rect{X: 10, Y: 10, W: 20, H: 20})))

	assert.Same(t, front, tree.HitTest(15, 15))
	assert.Same(t, back, tree.HitTest(5, 5))
	assert.Same(t, back, tree.HitTest(30, 30), "right edge is exclusive")
	assert.Nil(t, tree.HitTest(150, 5))
}

func TestTreeReplaceKeepsOrder(t *testing.T) {
	tree := NewTree()
	tree.Add(NewNode("a"))
	tree.Add(NewNode("b"))
	replacement := tree.Add(NewNode("a", WithLabel("A2")))

	nodes := tree.Nodes()
	require.Len(t, nodes, 2)
	assert.Same(t, replacement, nodes[0])
	assert.Equal(t, 2, tree.Len())

	got, ok := tree.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "A2", got.Label())

	_, ok = tree.Get("missing")
	assert.False(t, ok)
}
