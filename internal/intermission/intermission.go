// Package intermission coordinates optional breaks between waves.
// Providers are best-effort collaborators: a missing, failing or panicking
// provider must never affect play, so every call goes through an
// Orchestrator that swallows errors and recovers panics.
package intermission

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Provider receives gameplay boundaries and serves breaks.
type Provider interface {
	GameplayStarted(ctx context.Context) error
	GameplayStopped(ctx context.Context) error
	// RequestBreak blocks until the break is over.
	RequestBreak(ctx context.Context) error
}

// Nop is a provider that does nothing; breaks end immediately.
type Nop struct{}

// GameplayStarted does nothing.
func (Nop) GameplayStarted(context.Context) error { return nil }

// GameplayStopped does nothing.
func (Nop) GameplayStopped(context.Context) error { return nil }

// RequestBreak returns at once.
func (Nop) RequestBreak(context.Context) error { return nil }

// Timed holds each break for a fixed duration.
type Timed struct {
	Duration time.Duration
}

// GameplayStarted does nothing; timed breaks ignore play boundaries.
func (Timed) GameplayStarted(context.Context) error { return nil }

// GameplayStopped does nothing.
func (Timed) GameplayStopped(context.Context) error { return nil }

// RequestBreak waits for the duration or until ctx is done.
func (t Timed) RequestBreak(ctx context.Context) error {
	if t.Duration <= 0 {
		return nil
	}
	timer := time.NewTimer(t.Duration)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// DefaultBreakTimeout bounds how long a provider may hold a break.
const DefaultBreakTimeout = 30 * time.Second

// Stats counts orchestrator outcomes.
type Stats struct {
	Breaks   int
	Failures int
}

// Orchestrator forwards to a Provider and absorbs its failures.
type Orchestrator struct {
	provider Provider
	logger   *log.Logger
	timeout  time.Duration

	mu      sync.Mutex
	playing bool
	stats   Stats
}

// New creates an orchestrator. A nil provider behaves like Nop and a nil
// logger discards.
func New(p Provider, logger *log.Logger) *Orchestrator {
	if p == nil {
		p = Nop{}
	}
	return &Orchestrator{provider: p, logger: logger, timeout: DefaultBreakTimeout}
}

// SetTimeout changes the break timeout.
func (o *Orchestrator) SetTimeout(d time.Duration) {
	if d > 0 {
		o.timeout = d
	}
}

// Started reports that gameplay became active. Repeats are collapsed.
func (o *Orchestrator) Started(ctx context.Context) {
	o.mu.Lock()
	if o.playing {
		o.mu.Unlock()
		return
	}
	o.playing = true
	o.mu.Unlock()
	o.call("gameplay started", func() error { return o.provider.GameplayStarted(ctx) })
}

// Stopped reports that gameplay became inactive. Repeats are collapsed.
func (o *Orchestrator) Stopped(ctx context.Context) {
	o.mu.Lock()
	if !o.playing {
		o.mu.Unlock()
		return
	}
	o.playing = false
	o.mu.Unlock()
	o.call("gameplay stopped", func() error { return o.provider.GameplayStopped(ctx) })
}

// Break runs a break and returns once it is over, failed or timed out.
// The caller resumes spawning unconditionally afterwards.
func (o *Orchestrator) Break(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	o.mu.Lock()
	o.stats.Breaks++
	o.mu.Unlock()
	o.call("break", func() error { return o.provider.RequestBreak(ctx) })
}

// Stats returns a copy of the counters.
func (o *Orchestrator) Stats() Stats {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.stats
}

func (o *Orchestrator) call(what string, fn func() error) {
	err := safely(fn)
	if err == nil {
		return
	}
	o.mu.Lock()
	o.stats.Failures++
	o.mu.Unlock()
	if o.logger != nil {
		o.logger.Warn("intermission provider failed", "call", what, "error", err)
	}
}

func safely(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider panic: %v", r)
		}
	}()
	return fn()
}
