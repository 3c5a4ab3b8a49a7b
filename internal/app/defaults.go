package app

import "github.com/dshills/gestures/internal/config"

// DefaultElements is the layout used when the configuration declares none.
func DefaultElements() []config.Element {
	return []config.Element{
		{ID: "board", Label: "Board (click, ctrl+s)", X: 1, Y: 1, W: 44, H: 14},
		{ID: "pad", Label: "Pad (touch, swipe)", X: 47, Y: 1, W: 30, H: 14, Touch: true},
	}
}

// DefaultBindings go with DefaultElements.
func DefaultBindings() []config.Binding {
	return []config.Binding{
		{Element: "board", Gesture: "numbered-clicks", Count: 2, Message: "double click on board"},
		{Element: "board", Gesture: "numbered-clicks", Count: 3, Message: "triple click on board"},
		{Element: "board", Gesture: "keystroke", Keys: "ctrl+s", Message: "ctrl+s on board"},
		{Element: "pad", Gesture: "numbered-clicks", Count: 2, Message: "double tap on pad"},
		{Element: "pad", Gesture: "swipe-up", Message: "swipe up on pad"},
		{Element: "pad", Gesture: "swipe-down", Message: "swipe down on pad"},
		{Element: "pad", Gesture: "swipe-left", Message: "swipe left on pad"},
		{Element: "pad", Gesture: "swipe-right", Message: "swipe right on pad"},
	}
}
