package movement

// Control identifies a logical movement control.
type Control int

const (
	ControlJump Control = iota
	ControlLeft
	ControlRight
	controlCount
)

// Source supplies raw per-tick key state for a control: whether it is
// currently down plus the press/release edges for this tick.
type Source interface {
	Down(Control) bool
	Pressed(Control) bool
	Released(Control) bool
}

// Actions are the latched flags a single physics step consumes.
type Actions struct {
	Jump, Left, Right bool
}

// Latch folds a higher-frequency input poll into flags consumed once per
// physics step. Poll may run any number of times between steps; a tap that
// is pressed and released between two steps is still observed. The physics
// step clears the latched flags unconditionally at its end.
type Latch struct {
	held    [controlCount]bool
	latched [controlCount]bool
}

// Poll updates the held bits from raw key state and ORs them into the
// latched flags.
func (l *Latch) Poll(src Source) {
	for c := Control(0); c < controlCount; c++ {
		l.held[c] = src.Down(c) || src.Pressed(c) || (l.held[c] && !src.Released(c))
		if l.held[c] {
			l.latched[c] = true
		}
	}
}

// Actions returns the currently latched flags.
func (l *Latch) Actions() Actions {
	return Actions{
		Jump:  l.latched[ControlJump],
		Left:  l.latched[ControlLeft],
		Right: l.latched[ControlRight],
	}
}

// Clear resets the latched flags. The held bits persist so a key that stays
// down keeps latching on the next poll.
func (l *Latch) Clear() {
	l.latched = [controlCount]bool{}
}
