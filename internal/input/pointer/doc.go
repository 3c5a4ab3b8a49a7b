// Package pointer provides pointer and touch contact types for the input
// system.
//
// A contact is a single pointer in contact with a surface: a held mouse
// button, a pen, or one finger. Contacts go through three phases:
//
//	PhaseStart -> PhaseMove* -> PhaseEnd
//
// Tracker records where a contact started and reports the delta of later
// positions, which is what swipe detection works from. Only one contact is
// tracked at a time; multi-touch is not modelled.
package pointer
