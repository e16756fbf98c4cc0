package tui

import "github.com/vovakirdan/tui-asteroids/internal/core"

// DefaultHoldTicks is used when no hold duration is configured.
const DefaultHoldTicks = 4

// HeldKeys emulates key-up events. Terminals report presses and auto-repeats
// but never releases, so an action counts as held for a number of ticks
// after its last press. Once auto-repeat is running it refreshes the counter
// and the key stays held.
//
// Terminals wait 250-600ms before the first repeat. A hold shorter than
// that delay releases the key in between, so holding Fire shoots twice and
// held thrust stutters once. Raising the hold covers the delay, at the cost
// of merging quick taps that land inside it.
type HeldKeys struct {
	hold      int
	remaining map[core.Action]int
	taps      map[core.Action]bool
}

// NewHeldKeys creates a tracker that holds keys for hold ticks.
func NewHeldKeys(hold int) *HeldKeys {
	if hold <= 0 {
		hold = DefaultHoldTicks
	}
	return &HeldKeys{
		hold:      hold,
		remaining: make(map[core.Action]int),
		taps:      make(map[core.Action]bool),
	}
}

// oneShot lists actions delivered for exactly one frame per press.
// Holding pause must not toggle it on every tick.
var oneShot = map[core.Action]bool{
	core.ActionPause: true,
}

// Press records a key press or auto-repeat.
func (h *HeldKeys) Press(a core.Action) {
	if a == core.ActionNone || a == core.ActionQuit {
		return
	}
	if oneShot[a] {
		h.taps[a] = true
		return
	}
	h.remaining[a] = h.hold
}

// Frame returns the actions active for the coming tick.
func (h *HeldKeys) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for a, n := range h.remaining {
		if n > 0 {
			frame.Set(a)
		}
	}
	for a := range h.taps {
		frame.Set(a)
	}
	return frame
}

// Advance ages every held key by one tick and drops one-shot actions.
func (h *HeldKeys) Advance() {
	for a, n := range h.remaining {
		if n <= 1 {
			delete(h.remaining, a)
			continue
		}
		h.remaining[a] = n - 1
	}
	clear(h.taps)
}

// Reset releases every key.
func (h *HeldKeys) Reset() {
	clear(h.remaining)
	clear(h.taps)
}
