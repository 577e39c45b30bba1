package quiz

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// timerTickMsg is sent every second to refresh the elapsed display.
type timerTickMsg time.Time

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
