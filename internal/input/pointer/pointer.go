package pointer

import "math"

// Device identifies the kind of pointing device that produced an event.
type Device uint8

const (
	// DeviceMouse is a mouse or trackpad.
	DeviceMouse Device = iota
	// DeviceTouch is a touch screen.
	DeviceTouch
	// DevicePen is a stylus.
	DevicePen
)

// String returns a string representation of the device.
func (d Device) String() string {
	switch d {
	case DeviceTouch:
		return "touch"
	case DevicePen:
		return "pen"
	default:
		return "mouse"
	}
}

// Phase represents the lifecycle stage of a contact.
type Phase uint8

const (
	// PhaseNone indicates no contact phase.
	PhaseNone Phase = iota
	// PhaseStart indicates the contact began.
	PhaseStart
	// PhaseMove indicates the contact moved.
	PhaseMove
	// PhaseEnd indicates the contact was lifted.
	PhaseEnd
)

// String returns a string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	default:
		return "none"
	}
}

// Position represents surface coordinates in distance units.
type Position struct {
	X float64
	Y float64
}

// Sub returns p - other.
func (p Position) Sub(other Position) Position {
	return Position{X: p.X - other.X, Y: p.Y - other.Y}
}

// Distance returns the Euclidean distance between two positions.
func (p Position) Distance(other Position) float64 {
	d := p.Sub(other)
	return math.Hypot(d.X, d.Y)
}
