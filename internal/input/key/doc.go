// Package key provides key identities, key events and chord tokens for the
// input system.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (modifier keys, named keys, function keys, or runes)
//   - Modifier: Represents modifier state carried by terminal events
//   - Event: A single key press or release
//   - Chord: An ordered list of canonical key tokens
//
// # Tokens
//
// Chord matching compares canonical tokens rather than raw key names.
// Modifier and named keys map to fixed lowercase tokens ("ctrl", "meta",
// "alt", "shift", "tab", "up", "down", "left", "right", "enter", ...).
// Every other key maps to its lowercased literal, so "A" and "a" are the
// same token and "F12" becomes "f12".
//
// # Chord Specifications
//
// Chords can be written as a list of names or as a single string:
//
//   - List: []string{"ctrl", "alt", "a"}
//   - Plus form: "Ctrl+Alt+A"
//   - Space form: "ctrl alt a"
//
// Chords are order-sensitive: "ctrl+alt+a" and "alt+ctrl+a" are different.
package key
