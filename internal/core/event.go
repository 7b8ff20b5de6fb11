package core

// EventKind identifies a side effect emitted by a simulation tick.
type EventKind int

const (
	EventNone             EventKind = iota
	EventScore                      // Value = points awarded
	EventObstacleHit                // Obstacle damaged but not destroyed
	EventExplosion                  // Obstacle destroyed at X, Y
	EventShipDestroyed              // Ship lost a life at X, Y
	EventLifeGained                 // Supply pickup granted a life
	EventFired                      // Bullet created
	EventThrust                     // Ship thrusting; X, Y is the exhaust point
	EventWaveCleared                // Free-roam level cleared; Value = next level
	EventSectionAdvanced            // Corridor section advanced; Value = new section
	EventObjectiveSpawned           // Objective obstacle entered play
	EventGameOver                   // Lives exhausted
	EventVictory                    // Objective destroyed
	EventGameplayStarted            // Simulation became active
	EventGameplayStopped            // Simulation became inactive
	EventBreakRequested             // Spawning suspended until the platform resumes it
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventScore:
		return "Score"
	case EventObstacleHit:
		return "ObstacleHit"
	case EventExplosion:
		return "Explosion"
	case EventShipDestroyed:
		return "ShipDestroyed"
	case EventLifeGained:
		return "LifeGained"
	case EventFired:
		return "Fired"
	case EventThrust:
		return "Thrust"
	case EventWaveCleared:
		return "WaveCleared"
	case EventSectionAdvanced:
		return "SectionAdvanced"
	case EventObjectiveSpawned:
		return "ObjectiveSpawned"
	case EventGameOver:
		return "GameOver"
	case EventVictory:
		return "Victory"
	case EventGameplayStarted:
		return "GameplayStarted"
	case EventGameplayStopped:
		return "GameplayStopped"
	case EventBreakRequested:
		return "BreakRequested"
	default:
		return "None"
	}
}

// Event is a fire-and-forget notification from the simulation.
// Consumers (particles, toasts, storage, break orchestration) never feed
// anything back into simulation state through events.
type Event struct {
	Kind  EventKind
	X, Y  float64
	Value int
}

// Events is an append-only event buffer reused across ticks.
type Events []Event

// Emit appends an event.
func (e *Events) Emit(kind EventKind, x, y float64, value int) {
	*e = append(*e, Event{Kind: kind, X: x, Y: y, Value: value})
}

// Has reports whether an event of the given kind was emitted.
func (e Events) Has(kind EventKind) bool {
	for _, ev := range e {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}
