package fx

import (
	"fmt"

	"github.com/vovakirdan/tui-blasters/internal/core"
)

// Severity selects toast styling.
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
)

// DefaultToastSeconds is how long a toast stays up.
const DefaultToastSeconds = 1.6

// Toast is a transient message shown over the playfield.
type Toast struct {
	Message   string
	Severity  Severity
	Remaining float64
}

// Toasts is a FIFO of messages; only the head is visible.
type Toasts struct {
	queue []Toast
	// WaveLabel names the wave counter in messages ("LEVEL", "SECTION").
	WaveLabel string
}

// Push queues a message.
func (t *Toasts) Push(msg string, sev Severity, seconds float64) {
	if seconds <= 0 {
		seconds = DefaultToastSeconds
	}
	// Repeats of the head extend it instead of stacking.
	if len(t.queue) > 0 && t.queue[len(t.queue)-1].Message == msg {
		t.queue[len(t.queue)-1].Remaining = seconds
		return
	}
	t.queue = append(t.queue, Toast{Message: msg, Severity: sev, Remaining: seconds})
}

// Observe queues the message for events that have one.
func (t *Toasts) Observe(ev core.Event) {
	label := t.WaveLabel
	if label == "" {
		label = "WAVE"
	}
	switch ev.Kind {
	case core.EventWaveCleared, core.EventSectionAdvanced:
		t.Push(fmt.Sprintf("%s %d", label, ev.Value), SeverityInfo, 0)
	case core.EventLifeGained:
		t.Push("+1 LIFE", SeveritySuccess, 0)
	case core.EventObjectiveSpawned:
		t.Push("TARGET AHEAD", SeverityWarning, 2.5)
	case core.EventBreakRequested:
		t.Push("INTERMISSION", SeverityInfo, 0)
	case core.EventVictory:
		t.Push("TARGET DESTROYED", SeveritySuccess, 3)
	}
}

// Update counts down the visible toast.
func (t *Toasts) Update(dt float64) {
	if len(t.queue) == 0 {
		return
	}
	t.queue[0].Remaining -= dt
	if t.queue[0].Remaining <= 0 {
		t.queue = t.queue[1:]
	}
}

// Current returns the visible toast, if any.
func (t *Toasts) Current() (Toast, bool) {
	if len(t.queue) == 0 {
		return Toast{}, false
	}
	return t.queue[0], true
}

// Clear drops all pending toasts.
func (t *Toasts) Clear() { t.queue = t.queue[:0] }
