package sim

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-blasters/internal/core"
)

// Trigger is an input or simulation condition that may move the session
// between phases.
type Trigger int

const (
	TriggerStart      Trigger = iota // start/tap input
	TriggerPause                     // pause toggle while playing
	TriggerResume                    // pause toggle while paused
	TriggerLevelClear                // free-roam field emptied
	TriggerDefeat                    // last life lost
	TriggerVictory                   // objective destroyed
	TriggerRestart                   // restart input after the run ended
)

// String returns the trigger name.
func (t Trigger) String() string {
	switch t {
	case TriggerStart:
		return "start"
	case TriggerPause:
		return "pause"
	case TriggerResume:
		return "resume"
	case TriggerLevelClear:
		return "level-clear"
	case TriggerDefeat:
		return "defeat"
	case TriggerVictory:
		return "victory"
	case TriggerRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// ErrIllegalTransition is returned when a trigger has no edge from the current phase.
var ErrIllegalTransition = errors.New("illegal phase transition")

var transitions = map[core.Phase]map[Trigger]core.Phase{
	core.PhaseMenu: {
		TriggerStart: core.PhasePlaying,
	},
	core.PhasePlaying: {
		TriggerPause:      core.PhasePaused,
		TriggerLevelClear: core.PhaseMenu,
		TriggerDefeat:     core.PhaseOver,
		TriggerVictory:    core.PhaseOver,
	},
	core.PhasePaused: {
		TriggerResume: core.PhasePlaying,
	},
	core.PhaseOver: {
		TriggerRestart: core.PhasePlaying,
	},
}

// Transition returns the phase reached from `from` on trigger t.
// Unknown edges leave the phase unchanged and return ErrIllegalTransition.
func Transition(from core.Phase, t Trigger) (core.Phase, error) {
	if to, ok := transitions[from][t]; ok {
		return to, nil
	}
	return from, fmt.Errorf("%w: %s on %s", ErrIllegalTransition, from, t)
}

// Active reports whether the simulation advances in the phase.
func Active(p core.Phase) bool {
	return p == core.PhasePlaying
}
