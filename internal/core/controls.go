package core

// Control is one continuous control that a physical source can hold.
type Control int

const (
	ControlLeft Control = iota
	ControlRight
	ControlThrust
	ControlFire
	controlCount
)

// Source identifies a physical input device feeding the Controls.
type Source int

const (
	SourceKeyboard Source = iota
	SourceButtons         // On-screen buttons
	SourceJoystick        // Virtual joystick inferred from pointer position
	sourceCount
)

// Controls unions held state from several sources into a single Intent.
//
// Fire is edge-triggered: a press that starts while fire was not held by any
// source yields exactly one FirePulse, no matter how long it stays held or
// how many sources join in.
type Controls struct {
	held      [sourceCount][controlCount]bool
	fireHeld  bool
	firePulse bool
}

// NewControls creates an empty control set.
func NewControls() *Controls {
	return &Controls{}
}

// Press marks a control as held by a source.
func (c *Controls) Press(src Source, ctl Control) {
	c.held[src][ctl] = true
	c.refreshFire()
}

// Release marks a control as no longer held by a source.
func (c *Controls) Release(src Source, ctl Control) {
	c.held[src][ctl] = false
	c.refreshFire()
}

// ReleaseSource drops everything a source holds (pointer up, focus loss).
func (c *Controls) ReleaseSource(src Source) {
	c.held[src] = [controlCount]bool{}
	c.refreshFire()
}

// Held reports whether any source holds the control.
func (c *Controls) Held(ctl Control) bool {
	for src := range c.held {
		if c.held[src][ctl] {
			return true
		}
	}
	return false
}

// DiscardPulse drops a pending fire edge, e.g. when the press that produced
// it was consumed as a start tap.
func (c *Controls) DiscardPulse() {
	c.firePulse = false
}

// Snapshot returns the current intent and consumes the fire edge.
func (c *Controls) Snapshot() Intent {
	in := Intent{
		Left:      c.Held(ControlLeft),
		Right:     c.Held(ControlRight),
		Thrust:    c.Held(ControlThrust),
		FireHeld:  c.fireHeld,
		FirePulse: c.firePulse,
	}
	c.firePulse = false
	return in
}

// Reset releases every control and drops pending edges.
func (c *Controls) Reset() {
	*c = Controls{}
}

func (c *Controls) refreshFire() {
	held := c.Held(ControlFire)
	if held && !c.fireHeld {
		c.firePulse = true
	}
	c.fireHeld = held
}
