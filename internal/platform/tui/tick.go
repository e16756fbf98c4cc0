// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTickRate is the simulation rate when none is configured.
const DefaultTickRate = 60

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval returns the time between ticks for a rate in ticks per second.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
