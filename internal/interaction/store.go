package interaction

import (
	"time"

	"github.com/dshills/gestures/internal/input/key"
)

// Entry is the merged registration for one (element, gesture type) pair.
// Each slice grows by one per Register call for the pair, in call order,
// and that order is the dispatch order.
type Entry struct {
	Element Element
	Type    GestureType

	// StartActions and EndActions hold swipe callbacks.
	StartActions []Action
	EndActions   []Action

	// Clicks holds NumberedClicks callbacks.
	Clicks []ClickAction

	// Chords holds Keystroke callbacks.
	Chords []ChordAction

	// Window is the click debounce window, captured when the entry is
	// created.
	Window time.Duration
}

// Family returns the entry's recognition family.
func (e *Entry) Family() Family {
	return e.Type.Family()
}

// entryKey identifies an entry.
type entryKey struct {
	el Element
	gt GestureType
}

// Store holds merged registrations. It only grows; there is no removal.
// Store is not safe for concurrent use; Engine serializes access.
type Store struct {
	window  time.Duration
	entries []*Entry
	index   map[entryKey]*Entry
}

// NewStore creates an empty store. New click entries take window as their
// debounce window.
func NewStore(window time.Duration) *Store {
	return &Store{
		window: window,
		index:  make(map[entryKey]*Entry),
	}
}

// Add validates r and merges it into the entry for its (element, type),
// creating the entry on first use. A rejected registration leaves the store
// unchanged.
func (s *Store) Add(r Registration) error {
	chord, err := validate(r)
	if err != nil {
		return err
	}

	k := entryKey{el: r.Element, gt: r.Type}
	e, ok := s.index[k]
	if !ok {
		e = &Entry{Element: r.Element, Type: r.Type}
		if r.Type == NumberedClicks {
			e.Window = s.window
		}
		s.index[k] = e
		s.entries = append(s.entries, e)
	}

	switch r.Type.Family() {
	case FamilySwipe:
		e.StartActions = append(e.StartActions, r.StartAction)
		e.EndActions = append(e.EndActions, r.EndAction)
	case FamilyClick:
		e.Clicks = append(e.Clicks, ClickAction{Count: r.Count, Action: r.ClickAction})
	case FamilyKeystroke:
		e.Chords = append(e.Chords, ChordAction{Keys: chord, Action: r.KeysAction})
	}
	return nil
}

// Lookup returns the entry for (el, gt).
func (s *Store) Lookup(el Element, gt GestureType) (*Entry, bool) {
	if isNilElement(el) || !isComparable(el) {
		return nil, false
	}
	e, ok := s.index[entryKey{el: el, gt: gt}]
	return e, ok
}

// Entries returns entries in the order their pair was first registered.
func (s *Store) Entries() []*Entry {
	out := make([]*Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// validate checks r and returns the canonical chord for keystroke
// registrations.
func validate(r Registration) (key.Chord, error) {
	if isNilElement(r.Element) {
		return nil, &ValidationError{Field: "Element", Reason: "missing element"}
	}
	if r.Type == "" {
		return nil, &ValidationError{Field: "Type", Reason: "missing gesture type"}
	}
	if !r.Type.Valid() {
		return nil, &ValidationError{Field: "Type", Reason: "unknown gesture type " + string(r.Type), Err: ErrUnknownGesture}
	}
	if !isComparable(r.Element) {
		return nil, &ValidationError{Field: "Element", Reason: "element type is not comparable"}
	}

	switch r.Type.Family() {
	case FamilySwipe:
		if r.StartAction == nil && r.EndAction == nil {
			return nil, &ValidationError{Field: "StartAction", Reason: "swipe needs a start or end action"}
		}
	case FamilyClick:
		if r.Count < 1 {
			return nil, &ValidationError{Field: "Count", Reason: "must be a positive integer"}
		}
		if r.ClickAction == nil {
			return nil, &ValidationError{Field: "ClickAction", Reason: "missing action"}
		}
	case FamilyKeystroke:
		if r.KeysAction == nil {
			return nil, &ValidationError{Field: "KeysAction", Reason: "missing action"}
		}
		chord, err := key.NewChord(r.Keys...)
		if err != nil {
			return nil, &ValidationError{Field: "Keys", Reason: err.Error(), Err: err}
		}
		return chord, nil
	}
	return nil, nil
}
