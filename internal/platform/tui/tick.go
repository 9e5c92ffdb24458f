// Package tui drives a Pig Pong game in the terminal with Bubble Tea.
// It owns the timestamp feed, translates mouse and keys into paddle input,
// and draws game snapshots.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameMs returns the frame duration in milliseconds for a tick rate.
func frameMs(tickRate int) float64 {
	if tickRate <= 0 {
		tickRate = 60
	}
	return 1000 / float64(tickRate)
}
