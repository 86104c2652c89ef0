package quiz

import (
	"time"

	tea "charm.land/bubbletea/v2"

	qz "github.com/abhisek/binomen/internal/quiz"
)

// feedbackElapsedMsg is sent when a scheduled feedback window ends.
type feedbackElapsedMsg struct {
	ID uint64
}

// scheduleCmd turns an engine transition into a one-shot timer.
func scheduleCmd(tr qz.Transition) tea.Cmd {
	id := tr.ID
	return tea.Tick(tr.Delay, func(time.Time) tea.Msg {
		return feedbackElapsedMsg{ID: id}
	})
}
