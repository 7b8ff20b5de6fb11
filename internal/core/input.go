package core

// Action represents a discrete game action, abstracted from physical key presses.
// Continuous steering/thrust/fire state travels separately as an Intent.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // Space, Enter, mouse tap - leave menu / game over
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R key - restart game after game over
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Intent is the device-independent control state for one tick.
type Intent struct {
	Left      bool // Steer counter-clockwise
	Right     bool // Steer clockwise
	Thrust    bool // Accelerate along heading
	FireHeld  bool // Fire control is currently held
	FirePulse bool // Fire was pressed since the previous tick (edge)
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all discrete actions that were triggered during this frame plus
// the continuous intent snapshot.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
	Intent  Intent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and intent for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Intent = Intent{}
}
