// Package tui provides the Bubble Tea integration for the blasters games.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. It carries the frame
// time the clock derives dt from.
type TickMsg time.Time

// tickCmd schedules the next frame at the requested rate. The simulation
// never depends on the rate; dt comes from the frame timestamps.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
