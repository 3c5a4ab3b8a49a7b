package key

import (
	"strings"
)

// Chord is an ordered list of canonical key tokens that must be held
// together, pressed in this order.
// Examples: "ctrl alt a", "ctrl f12", "shift up"
type Chord []string

// NewChord canonicalizes a list of key names into a chord.
func NewChord(names ...string) (Chord, error) {
	if len(names) == 0 {
		return nil, ErrEmptyChord
	}
	chord := make(Chord, 0, len(names))
	for _, name := range names {
		tok, err := CanonicalToken(name)
		if err != nil {
			return nil, err
		}
		chord = append(chord, tok)
	}
	return chord, nil
}

// ParseChord parses a chord specification such as "Ctrl+Alt+A" or
// "ctrl alt a". A lone "+" names the plus key.
func ParseChord(spec string) (Chord, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, ErrEmptyChord
	}
	if spec == "+" {
		return NewChord("+")
	}

	var parts []string
	if strings.Contains(spec, "+") {
		parts = strings.Split(spec, "+")
		// "ctrl++" names ctrl followed by the plus key
		if strings.HasSuffix(spec, "++") {
			parts = append(parts[:len(parts)-2], "+")
		}
	} else {
		parts = strings.Fields(spec)
	}
	return NewChord(parts...)
}

// Len returns the number of keys in the chord.
func (c Chord) Len() int {
	return len(c)
}

// Matches reports whether held equals the chord position by position.
func (c Chord) Matches(held []string) bool {
	if len(c) != len(held) {
		return false
	}
	for i, tok := range c {
		if held[i] != tok {
			return false
		}
	}
	return true
}

// String returns the chord joined with "+".
func (c Chord) String() string {
	return strings.Join(c, "+")
}
