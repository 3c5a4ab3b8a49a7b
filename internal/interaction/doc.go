// Package interaction recognizes swipes, repeated clicks and key chords on
// element nodes and runs the callbacks registered for them.
//
// # Architecture
//
// The engine is built from a few small parts:
//
//   - Store: merges registrations into one Entry per (element, gesture type),
//     keeping callbacks in registration order
//   - Categorize: groups entries by element and recognition family
//     (swipe, click, keystroke)
//   - Swipe recognizer: tracks a contact's origin and fires start callbacks
//     when the delta passes the swipe offset, end callbacks when it lifts
//   - Click recognizer: counts activations and resolves the count to a
//     callback once the debounce window passes without a new activation
//   - Chord recognizer: keeps the held keys in press order and fires a
//     chord's callback when the held keys equal it position by position
//
// Recognizer state is kept per (element, family), so two elements never
// share counters, held keys or contacts.
//
// # Usage
//
//	engine, err := interaction.New(interaction.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	err = engine.Register(interaction.Registration{
//	    Element:     board,
//	    Type:        interaction.NumberedClicks,
//	    Count:       3,
//	    ClickAction: func(el interaction.Element) { ... },
//	})
//	...
//	if err := engine.Load(); err != nil {
//	    return err
//	}
//
// Load attaches listeners to every registered element and must be called
// once, after all registrations. Registrations made after Load are stored
// but never attached.
//
// # Swipe Behavior
//
// Each move event checks the four directions independently. A diagonal
// move past the offset on both axes fires a vertical and a horizontal swipe
// in the same event, and every further qualifying move fires again. Both
// are kept deliberately; callbacks that want one firing per contact must
// debounce themselves.
//
// # Thread Safety
//
// Engine is safe for concurrent use. Callbacks are never invoked while the
// engine or a recognizer holds a lock, so they may call back into the engine.
package interaction
