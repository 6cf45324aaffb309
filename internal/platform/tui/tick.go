// Package tui runs the flappy world inside Bubble Tea, locally or per SSH
// session. It owns the frame loop, input mapping and terminal rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to advance the world by one update pass.
type TickMsg time.Time

// tickCmd schedules the next TickMsg fps times per second.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
