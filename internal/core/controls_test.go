package core

import "testing"

func TestControlsUnionAcrossSources(t *testing.T) {
	c := NewControls()
	c.Press(SourceKeyboard, ControlLeft)
	c.Press(SourceJoystick, ControlThrust)

	in := c.Snapshot()
	if !in.Left || !in.Thrust || in.Right {
		t.Errorf("Snapshot() = %+v, expected left+thrust", in)
	}

	// Releasing one source keeps the other's hold
	c.Press(SourceButtons, ControlLeft)
	c.Release(SourceKeyboard, ControlLeft)
	if !c.Snapshot().Left {
		t.Error("left should stay held by the button source")
	}

	c.ReleaseSource(SourceButtons)
	c.ReleaseSource(SourceJoystick)
	in = c.Snapshot()
	if in.Left || in.Thrust {
		t.Errorf("Snapshot() after releases = %+v, expected idle", in)
	}
}

func TestControlsFireIsEdgeTriggered(t *testing.T) {
	c := NewControls()
	c.Press(SourceKeyboard, ControlFire)

	pulses := 0
	for i := 0; i < 10; i++ {
		// Key repeat re-presses while held
		c.Press(SourceKeyboard, ControlFire)
		in := c.Snapshot()
		if !in.FireHeld {
			t.Fatalf("tick %d: fire should be held", i)
		}
		if in.FirePulse {
			pulses++
		}
	}
	if pulses != 1 {
		t.Errorf("held fire produced %d pulses, expected 1", pulses)
	}

	// A second source joining does not re-trigger
	c.Press(SourceButtons, ControlFire)
	if c.Snapshot().FirePulse {
		t.Error("second source joining a held fire should not pulse")
	}

	// Release everything, press again: one new pulse
	c.ReleaseSource(SourceKeyboard)
	c.ReleaseSource(SourceButtons)
	c.Snapshot()
	c.Press(SourceButtons, ControlFire)
	if !c.Snapshot().FirePulse {
		t.Error("new press after release should pulse")
	}
}

func TestControlsDiscardPulse(t *testing.T) {
	c := NewControls()
	c.Press(SourceKeyboard, ControlFire)
	c.DiscardPulse()
	in := c.Snapshot()
	if in.FirePulse {
		t.Error("discarded pulse should not be reported")
	}
	if !in.FireHeld {
		t.Error("discarding the pulse should not release fire")
	}
}
