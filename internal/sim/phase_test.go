package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-blasters/internal/core"
)

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		from core.Phase
		trig Trigger
		want core.Phase
		ok   bool
	}{
		{core.PhaseMenu, TriggerStart, core.PhasePlaying, true},
		{core.PhaseMenu, TriggerPause, core.PhaseMenu, false},
		{core.PhaseMenu, TriggerRestart, core.PhaseMenu, false},
		{core.PhasePlaying, TriggerPause, core.PhasePaused, true},
		{core.PhasePlaying, TriggerLevelClear, core.PhaseMenu, true},
		{core.PhasePlaying, TriggerDefeat, core.PhaseOver, true},
		{core.PhasePlaying, TriggerVictory, core.PhaseOver, true},
		{core.PhasePlaying, TriggerStart, core.PhasePlaying, false},
		{core.PhasePlaying, TriggerRestart, core.PhasePlaying, false},
		{core.PhasePaused, TriggerResume, core.PhasePlaying, true},
		{core.PhasePaused, TriggerDefeat, core.PhasePaused, false},
		{core.PhaseOver, TriggerRestart, core.PhasePlaying, true},
		{core.PhaseOver, TriggerPause, core.PhaseOver, false},
	}

	for _, tt := range tests {
		got, err := Transition(tt.from, tt.trig)
		assert.Equal(t, tt.want, got, "%s on %s", tt.from, tt.trig)
		if tt.ok {
			assert.NoError(t, err)
		} else {
			assert.ErrorIs(t, err, ErrIllegalTransition)
		}
	}
}

func TestTogglePauseOutsidePlayIsRejected(t *testing.T) {
	s := NewSession(FreeRoamTuning(testAsteroids()), testW, testH, 1)
	assert.ErrorIs(t, s.TogglePause(), ErrIllegalTransition)
	assert.Equal(t, core.PhaseMenu, s.Phase())
	assert.Empty(t, s.DrainEvents())
}

func TestKindTraitsAreExhaustive(t *testing.T) {
	assert.Equal(t, BehaviorSplit, KindAsteroid.Behavior())
	assert.Equal(t, BehaviorGrantLife, KindSupply.Behavior())
	assert.Equal(t, BehaviorObjective, KindPort.Behavior())
	assert.True(t, KindTurret.FiresBack())
	assert.True(t, KindAsteroid.Round())
	for _, k := range []Kind{KindCrate, KindPillar, KindTurret} {
		assert.Equal(t, BehaviorNone, k.Behavior(), k.String())
		assert.False(t, k.Round(), k.String())
	}
	assert.Equal(t, BehaviorNone, Kind(99).Behavior())
}
