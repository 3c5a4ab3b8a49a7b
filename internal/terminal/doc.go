// Package terminal drives a surface tree from a tcell screen.
//
// Mouse button 1 produces contact events: pressing starts a contact on the
// node under the pointer, dragging moves it and releasing ends it. A release
// over the node the contact started on also produces a click.
//
// Terminals do not report key releases, so each key event is expanded into a
// key down for every held modifier (ctrl, alt, shift, meta), a key down for
// the key itself and a key up that ends the chord. Keys go to the node that
// was last pressed, or to the first node before any press.
//
// Escape and Ctrl-C quit.
package terminal
