package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// KeyMap defines the key bindings for playing.
type KeyMap struct {
	TurnLeft  key.Binding
	TurnRight key.Binding
	Thrust    key.Binding
	Reverse   key.Binding
	Fire      key.Binding
	Restart   key.Binding
	Pause     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TurnLeft, k.TurnRight, k.Thrust, k.Fire, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TurnLeft, k.TurnRight, k.Thrust, k.Reverse},
		{k.Fire, k.Restart, k.Pause},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		TurnLeft: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "turn left"),
		),
		TurnRight: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "turn right"),
		),
		Thrust: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "thrust"),
		),
		Reverse: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "reverse"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Restart: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter/r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.TurnLeft):
		return core.ActionTurnLeft, false
	case key.Matches(msg, k.TurnRight):
		return core.ActionTurnRight, false
	case key.Matches(msg, k.Thrust):
		return core.ActionThrust, false
	case key.Matches(msg, k.Reverse):
		return core.ActionReverseThrust, false
	case key.Matches(msg, k.Fire):
		return core.ActionFire, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	}
	return core.ActionNone, false
}

// IsHelp reports whether msg toggles the full help view.
func (km *KeyMapper) IsHelp(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Help)
}
