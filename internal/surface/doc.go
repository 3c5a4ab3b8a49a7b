// Package surface provides element nodes that receive input events.
//
// A Node is the unit gestures are registered on. Front-ends find the node
// under a pointer with Tree.HitTest and call Node.Dispatch; the node runs
// every listener attached for the event kind, in attachment order.
//
//	tree := surface.NewTree()
//	board := tree.Add(surface.NewNode("board", surface.WithBounds(surface.Rect{W: 40, H: 10})))
//	board.AddListener(input.EventClick, func(ev *input.Event) { ... })
//	if n := tree.HitTest(3, 4); n != nil {
//	    n.Dispatch(input.NewClickEvent(pointer.Position{X: 3, Y: 4}))
//	}
//
// Nodes are safe for concurrent use.
package surface
