package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/binomen/internal/ui/theme"
)

// ProgressBar shows how far a run has got: "Question i/N" followed by a
// bar of passed questions.
type ProgressBar struct {
	Current int // 1-based position, 0 before the first question
	Total   int
	Width   int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(current, total, width int) ProgressBar {
	return ProgressBar{
		Current: current,
		Total:   total,
		Width:   width,
	}
}

// Label is the textual counter.
func (p ProgressBar) Label() string {
	return fmt.Sprintf("Question %d/%d", p.Current, p.Total)
}

// Fraction is the share of the run already passed, in [0, 1].
func (p ProgressBar) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	f := float64(p.Current-1) / float64(p.Total)
	return min(max(f, 0), 1)
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	label := lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label()) + "  "

	barWidth := p.Width - lipgloss.Width(label)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Fraction())
	filled = min(max(filled, 0), barWidth)
	empty := barWidth - filled

	return label +
		theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty))
}
