package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/binomen/internal/corpus"
	"github.com/abhisek/binomen/internal/router"
	"github.com/abhisek/binomen/internal/screen"
	"github.com/abhisek/binomen/internal/store"
	"github.com/abhisek/binomen/internal/ui/layout"
	"github.com/abhisek/binomen/internal/ui/theme"
)

// historyLimit caps how many past runs are listed.
const historyLimit = 50

type historyLoadedMsg struct {
	Sessions []store.SessionRecord
	Err      error
}

// HistoryScreen lists past quiz runs, newest first.
type HistoryScreen struct {
	sessions store.SessionRepo
	records  []store.SessionRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(sessions store.SessionRepo) *HistoryScreen {
	return &HistoryScreen{
		sessions: sessions,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.sessions
	return func() tea.Msg {
		if repo == nil {
			return historyLoadedMsg{}
		}
		records, err := repo.RecentSessions(context.Background(), historyLimit)
		return historyLoadedMsg{Sessions: records, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Start a quiz!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.records {
		dateStr := rec.Timestamp.Local().Format("Jan 02, 2006 15:04")

		var accuracy float64
		if rec.QuestionsTotal > 0 {
			accuracy = float64(rec.CorrectAnswers) / float64(rec.QuestionsTotal) * 100
		}

		mark := "✓"
		if !rec.Completed {
			mark = "…"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %d/%d  %.0f%%  %s",
			prefix, dateStr, corpus.Label(rec.Range), rec.CorrectAnswers, rec.QuestionsTotal, accuracy, mark)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
					Render(detailLine(rec))))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func detailLine(rec store.SessionRecord) string {
	status := "abandoned"
	if rec.Completed {
		status = "completed"
	}
	mins := rec.DurationSecs / 60
	secs := rec.DurationSecs % 60
	return fmt.Sprintf("    %s in %d:%02d, %d skipped", status, mins, secs, rec.Skipped)
}
