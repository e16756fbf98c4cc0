package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func TestHeldKeyExpires(t *testing.T) {
	h := NewHeldKeys(3)
	h.Press(core.ActionThrust)

	for i := 0; i < 3; i++ {
		assert.True(t, h.Frame().Has(core.ActionThrust), "tick %d", i)
		h.Advance()
	}
	assert.False(t, h.Frame().Has(core.ActionThrust))
}

func TestRepeatKeepsKeyHeld(t *testing.T) {
	h := NewHeldKeys(2)
	h.Press(core.ActionTurnLeft)

	for i := 0; i < 10; i++ {
		assert.True(t, h.Frame().Has(core.ActionTurnLeft))
		h.Advance()
		h.Press(core.ActionTurnLeft)
	}
}

// fireEdges counts Fire presses seen by the game while a key is held down:
// one press, the first auto-repeat 30 ticks later, then a repeat every
// other tick.
func fireEdges(hold int) int {
	h := NewHeldKeys(hold)
	edges, held := 0, false
	for tick := 0; tick < 60; tick++ {
		if tick == 0 || (tick >= 30 && tick%2 == 0) {
			h.Press(core.ActionFire)
		}
		now := h.Frame().Has(core.ActionFire)
		if now && !held {
			edges++
		}
		held = now
		h.Advance()
	}
	return edges
}

func TestRepeatDelayVersusHold(t *testing.T) {
	assert.Equal(t, 2, fireEdges(DefaultHoldTicks), "the gap before the first repeat releases the key")
	assert.Equal(t, 1, fireEdges(36), "a hold longer than the repeat delay keeps one press")
}

func TestPauseIsOneShot(t *testing.T) {
	h := NewHeldKeys(4)
	h.Press(core.ActionPause)

	assert.True(t, h.Frame().Has(core.ActionPause))
	h.Advance()
	assert.False(t, h.Frame().Has(core.ActionPause))
}

func TestQuitAndNoneAreNeverHeld(t *testing.T) {
	h := NewHeldKeys(4)
	h.Press(core.ActionQuit)
	h.Press(core.ActionNone)

	assert.Empty(t, h.Frame().Actions)
}

func TestHeldKeysDefaultsAndReset(t *testing.T) {
	h := NewHeldKeys(0)
	h.Press(core.ActionFire)
	h.Press(core.ActionPause)

	for i := 0; i < DefaultHoldTicks-1; i++ {
		h.Advance()
	}
	assert.True(t, h.Frame().Has(core.ActionFire))

	h.Reset()
	assert.Empty(t, h.Frame().Actions)
}
