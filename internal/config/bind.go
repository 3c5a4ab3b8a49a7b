package config

import (
	"fmt"

	"github.com/dshills/gestures/internal/input/key"
	"github.com/dshills/gestures/internal/interaction"
)

// Notify is called when a binding's gesture is recognized on el.
type Notify func(b Binding, el interaction.Element)

// Resolver finds the element declared under id.
type Resolver func(id string) (interaction.Element, bool)

// Bind registers every binding with r. Bindings are registered in file
// order, so their callbacks run in that order too.
func (s *Settings) Bind(r interaction.Registrar, resolve Resolver, notify Notify) error {
	for i, b := range s.Bindings {
		el, ok := resolve(b.Element)
		if !ok {
			return &ValidationError{
				Path:    fmt.Sprintf("bindings[%d].element", i),
				Message: "no element " + b.Element,
				Err:     ErrUnknownElement,
			}
		}
		reg, err := s.registration(i, b, el, notify)
		if err != nil {
			return err
		}
		if err := r.Register(reg); err != nil {
			return fmt.Errorf("binding %d: %w", i, err)
		}
	}
	return nil
}

// registration converts b into an engine registration. With a nil el it
// only validates.
func (s *Settings) registration(i int, b Binding, el interaction.Element, notify Notify) (interaction.Registration, error) {
	path := fmt.Sprintf("bindings[%d]", i)

	if el == nil {
		if _, ok := s.Element(b.Element); !ok {
			return interaction.Registration{}, &ValidationError{
				Path: path + ".element", Message: "no element " + b.Element, Err: ErrUnknownElement,
			}
		}
	}
	gt, err := interaction.ParseGestureType(b.Gesture)
	if err != nil {
		return interaction.Registration{}, &ValidationError{Path: path + ".gesture", Message: err.Error(), Err: err}
	}

	var action interaction.Action
	if notify != nil {
		action = func(el interaction.Element) { notify(b, el) }
	} else {
		action = func(interaction.Element) {}
	}

	reg := interaction.Registration{Element: el, Type: gt}
	switch gt.Family() {
	case interaction.FamilySwipe:
		switch b.On {
		case "", "end":
			reg.EndAction = action
		case "start":
			reg.StartAction = action
		default:
			return reg, &ValidationError{Path: path + ".on", Message: "must be start or end"}
		}
	case interaction.FamilyClick:
		if b.Count < 1 {
			return reg, &ValidationError{Path: path + ".count", Message: "must be a positive integer"}
		}
		reg.Count = b.Count
		reg.ClickAction = action
	case interaction.FamilyKeystroke:
		chord, err := key.ParseChord(b.Keys)
		if err != nil {
			return reg, &ValidationError{Path: path + ".keys", Message: err.Error(), Err: err}
		}
		reg.Keys = chord
		reg.KeysAction = action
	}
	return reg, nil
}
