package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/binomen/internal/corpus"
	qz "github.com/abhisek/binomen/internal/quiz"
	"github.com/abhisek/binomen/internal/ui/components"
	"github.com/abhisek/binomen/internal/ui/theme"
)

// Feedback lines.
const (
	correctText   = "Correct!"
	incorrectText = "Not quite. Try again."
	emptyText     = "No questions in the selected range"
	resetPrompt   = "Reset the quiz? Progress will be lost."
)

func (s *QuizScreen) View(width, height int) string {
	if s.confirmReset {
		return renderResetConfirm(width, height)
	}
	switch s.engine.Phase() {
	case qz.PhaseEmpty:
		return renderEmpty(width, height)
	case qz.PhaseCompleted:
		return renderCompleted(s.engine.Result(), s.engine.Range(), width, height)
	}
	return s.renderQuestionView(width)
}

// renderQuestionView renders the active question display.
func (s *QuizScreen) renderQuestionView(width int) string {
	q, ok := s.engine.Current()
	if !ok {
		return ""
	}
	prog := s.engine.Progress()

	var b strings.Builder

	// Range and score line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + corpus.Label(s.engine.Range()))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d",
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			prog.TotalCorrect,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	bar := components.NewProgressBar(prog.CurrentIndex+1, s.engine.TotalQuestions(), max(width-8, 20))
	b.WriteString("  " + bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString(center.Foreground(theme.Text).Bold(true).Render(q.Question))
	b.WriteString("\n\n")

	if s.engine.ShowHint() && q.HasHint() {
		b.WriteString(center.Render(theme.Hint.Render("Hint: " + q.Hint)))
		b.WriteString("\n\n")
	}

	b.WriteString(center.Render("Answer: " + s.input.View()))
	b.WriteString("\n\n")

	switch s.engine.Outcome() {
	case qz.OutcomeCorrect:
		b.WriteString(center.Render(theme.Correct.Render(correctText)))
	case qz.OutcomeIncorrect:
		b.WriteString(center.Render(theme.Incorrect.Render(incorrectText)))
	}

	return b.String()
}

func renderCompleted(r qz.Result, descriptor string, width, height int) string {
	var lines []string
	lines = append(lines, theme.Title.Render("Quiz complete"))
	lines = append(lines, "")
	lines = append(lines, theme.Body.Render(fmt.Sprintf("%d of %d correct", r.Correct, r.Total)))
	if r.AllCorrect {
		lines = append(lines, theme.Correct.Render("All correct!"))
	} else {
		lines = append(lines, theme.Body.Render(fmt.Sprintf("Accuracy: %d%%", r.Percent)))
	}
	if r.Skipped > 0 {
		lines = append(lines, theme.Hint.Render(fmt.Sprintf("Skipped: %d", r.Skipped)))
	}
	lines = append(lines, "")
	lines = append(lines, theme.Subtitle.Render(corpus.Label(descriptor)))

	card := theme.Card.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func renderEmpty(width, height int) string {
	msg := lipgloss.JoinVertical(lipgloss.Center,
		theme.Body.Render(emptyText),
		"",
		theme.Hint.Render("Press any key to go back"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

func renderResetConfirm(width, height int) string {
	msg := lipgloss.JoinVertical(lipgloss.Center,
		theme.Body.Bold(true).Render(resetPrompt),
		"",
		theme.Hint.Render("y: reset   n: cancel"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Render(msg))
}
