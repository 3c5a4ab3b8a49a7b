package key

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Token errors
var (
	ErrEmptyChord = errors.New("empty chord specification")
	ErrUnknownKey = errors.New("unknown key name")
)

// Fixed tokens for modifier and named keys.
const (
	TokenCtrl      = "ctrl"
	TokenAlt       = "alt"
	TokenShift     = "shift"
	TokenMeta      = "meta"
	TokenTab       = "tab"
	TokenUp        = "up"
	TokenDown      = "down"
	TokenLeft      = "left"
	TokenRight     = "right"
	TokenEnter     = "enter"
	TokenBackspace = "backspace"
	TokenEscape    = "escape"
	TokenSpace     = "space"
	TokenDelete    = "delete"
)

// keyTokens maps named keys to their canonical tokens. Keys missing here
// use their lowercased name (function keys become "f1".."f12").
var keyTokens = map[Key]string{
	KeyCtrl:      TokenCtrl,
	KeyAlt:       TokenAlt,
	KeyShift:     TokenShift,
	KeyMeta:      TokenMeta,
	KeyTab:       TokenTab,
	KeyUp:        TokenUp,
	KeyDown:      TokenDown,
	KeyLeft:      TokenLeft,
	KeyRight:     TokenRight,
	KeyEnter:     TokenEnter,
	KeyBackspace: TokenBackspace,
	KeyEscape:    TokenEscape,
	KeySpace:     TokenSpace,
	KeyDelete:    TokenDelete,
}

// lower lowercases a key literal. A fresh Caser is used per call since
// Casers are stateful.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// CanonicalToken converts a key name as a user would write it in a chord
// ("Control", "ArrowUp", "A", "F12", "@") to its canonical token.
func CanonicalToken(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrUnknownKey)
	}
	ev, err := FromName(name)
	if err != nil {
		return "", err
	}
	return ev.Token(), nil
}
