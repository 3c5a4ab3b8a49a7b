package pointer

// Tracker tracks a single active contact.
type Tracker struct {
	// active indicates a contact is in progress.
	active bool

	// origin is where the contact started.
	origin Position

	// current is the last reported position.
	current Position
}

// Start begins tracking a new contact at pos, replacing any previous one.
func (t *Tracker) Start(pos Position) {
	t.active = true
	t.origin = pos
	t.current = pos
}

// Move records a new position and returns its delta from the origin.
// ok is false when no contact is being tracked.
func (t *Tracker) Move(pos Position) (delta Position, ok bool) {
	if !t.active {
		return Position{}, false
	}
	t.current = pos
	return pos.Sub(t.origin), true
}

// End stops tracking the current contact.
func (t *Tracker) End() {
	t.active = false
	t.origin = Position{}
	t.current = Position{}
}

// Active returns true if a contact is in progress.
func (t *Tracker) Active() bool {
	return t.active
}

// Origin returns where the current contact started.
func (t *Tracker) Origin() Position {
	return t.origin
}

// Delta returns the distance moved from the origin.
func (t *Tracker) Delta() Position {
	return t.current.Sub(t.origin)
}
