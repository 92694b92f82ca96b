// Package tui provides the Bubble Tea front end for Balloon Pop.
// It handles the terminal UI loop, input mapping and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the round by one frame.
type TickMsg time.Time

// frameInterval is the wall-clock length of one frame at tickRate frames per
// second. Non-positive rates fall back to 60.
func frameInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(frameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
