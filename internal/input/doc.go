// Package input defines the events that flow from a front-end into gesture
// recognition.
//
// Front-ends (a terminal, a trace replay, tests) translate their native
// input into Events and dispatch them to element nodes. Each Event carries
// one of a small set of kinds:
//
//   - EventContactStart, EventContactMove, EventContactEnd: a pointer or
//     finger touching, moving across and leaving a surface
//   - EventClick: a discrete activation (mouse click)
//   - EventKeyDown, EventKeyUp: key press and release
//
// Listeners receive a pointer to the Event so they can call PreventDefault.
//
// # Subpackages
//
//   - key: key identities, modifiers, canonical chord tokens
//   - pointer: positions, contact phases and the contact tracker
package input
