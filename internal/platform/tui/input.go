package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blasters/internal/core"
)

// Terminals report key presses and auto-repeats but never releases. A key
// counts as held until its hold window lapses without another repeat. The
// first window covers the usual delay before auto-repeat kicks in.
const (
	holdInitial = 550 * time.Millisecond
	holdRepeat  = 140 * time.Millisecond
)

// Input feeds keyboard and mouse messages into core.Controls.
//
// The mouse acts as a two-zone virtual joystick: while the left button is
// down the pointer's side of the ship steers and the ship thrusts. The right
// button fires.
type Input struct {
	controls *core.Controls
	keys     GameKeyMap
	until    [4]time.Time // keyboard hold deadline per control
	dead     int          // joystick dead zone in columns around the ship
}

// NewInput creates an input mapper with the given bindings.
func NewInput(keys GameKeyMap) *Input {
	return &Input{controls: core.NewControls(), keys: keys, dead: 1}
}

// Key applies a key press at time now and returns its discrete action.
func (in *Input) Key(msg tea.KeyMsg, now time.Time) core.Action {
	if ctl, ok := in.keys.control(msg); ok {
		window := holdRepeat
		if !in.until[ctl].After(now) {
			window = holdInitial
		}
		in.until[ctl] = now.Add(window)
		in.controls.Press(core.SourceKeyboard, ctl)
	}
	return in.keys.action(msg)
}

// Mouse applies a mouse event. shipCol is the ship's screen column.
// It reports whether the event was a press, which also serves as a start tap.
func (in *Input) Mouse(msg tea.MouseMsg, shipCol int) bool {
	c := in.controls
	switch msg.Button {
	case tea.MouseButtonLeft:
		switch msg.Action {
		case tea.MouseActionPress, tea.MouseActionMotion:
			in.steer(msg.X, shipCol)
			return msg.Action == tea.MouseActionPress
		case tea.MouseActionRelease:
			c.ReleaseSource(core.SourceJoystick)
		}
	case tea.MouseButtonRight:
		switch msg.Action {
		case tea.MouseActionPress:
			c.Press(core.SourceButtons, core.ControlFire)
			return true
		case tea.MouseActionRelease:
			c.Release(core.SourceButtons, core.ControlFire)
		}
	case tea.MouseButtonNone:
		// Some terminals report releases without a button.
		if msg.Action == tea.MouseActionRelease {
			c.ReleaseSource(core.SourceJoystick)
			c.ReleaseSource(core.SourceButtons)
		}
	}
	return false
}

func (in *Input) steer(x, shipCol int) {
	c := in.controls
	c.Press(core.SourceJoystick, core.ControlThrust)
	switch {
	case x < shipCol-in.dead:
		c.Press(core.SourceJoystick, core.ControlLeft)
		c.Release(core.SourceJoystick, core.ControlRight)
	case x > shipCol+in.dead:
		c.Press(core.SourceJoystick, core.ControlRight)
		c.Release(core.SourceJoystick, core.ControlLeft)
	default:
		c.Release(core.SourceJoystick, core.ControlLeft)
		c.Release(core.SourceJoystick, core.ControlRight)
	}
}

// Snapshot releases lapsed keys and returns the intent for this tick.
func (in *Input) Snapshot(now time.Time) core.Intent {
	for ctl, t := range in.until {
		if !t.IsZero() && !t.After(now) {
			in.until[ctl] = time.Time{}
			in.controls.Release(core.SourceKeyboard, core.Control(ctl))
		}
	}
	return in.controls.Snapshot()
}

// Reset releases everything, e.g. on focus loss or restart.
func (in *Input) Reset() {
	in.controls.Reset()
	in.until = [4]time.Time{}
}
