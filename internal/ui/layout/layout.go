// Package layout draws the chrome around every screen: the title bar, the
// key hint bar and the undersized-terminal notice.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/binomen/internal/ui/theme"
)

// Smallest terminal the quiz can be laid out in.
const (
	MinWidth  = 60
	MinHeight = 20
)

const (
	appName       = "Binomen"
	hintSeparator = "  ·  "
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below MinWidth x MinHeight.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage centers a resize request in the terminal.
func RenderMinSizeMessage(width, height int) string {
	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(appName)
	body := lipgloss.NewStyle().Foreground(theme.Text).Render(
		fmt.Sprintf("needs at least %dx%d", MinWidth, MinHeight),
	)
	now := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("window is %dx%d", width, height),
	)
	block := lipgloss.JoinVertical(lipgloss.Center, title, body, now)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}

func bar() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)
}

// RenderHeader draws the app name on the left, the screen title in the
// middle and status on the right.
func RenderHeader(title, status string, width int) string {
	style := bar().Width(width)
	inner := max(width-style.GetHorizontalFrameSize(), 0)

	name := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(appName)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status)
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)

	side := max(lipgloss.Width(name), lipgloss.Width(right))
	mid := max(inner-2*side, lipgloss.Width(center))

	row := lipgloss.PlaceHorizontal(side, lipgloss.Left, name) +
		lipgloss.PlaceHorizontal(mid, lipgloss.Center, center) +
		lipgloss.PlaceHorizontal(side, lipgloss.Right, right)
	return style.Render(row)
}

// RenderFooter draws key hints left to right, dropping the trailing ones
// that do not fit on one line.
func RenderFooter(hints []KeyHint, width int) string {
	style := bar().Width(width)
	inner := max(width-style.GetHorizontalFrameSize(), 0)

	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	sep := descStyle.Render(hintSeparator)

	var b strings.Builder
	used := 0
	for i, h := range hints {
		part := keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
		w := lipgloss.Width(part)
		if i > 0 {
			w += lipgloss.Width(sep)
		}
		if used+w > inner {
			break
		}
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(part)
		used += w
	}
	return style.Render(b.String())
}

// ContentHeight is the number of rows left between header and footer.
func ContentHeight(header, footer string, height int) int {
	return max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
}

// RenderFrame stacks header, content and footer into exactly height rows.
// Content that runs long is cut off rather than pushing the footer down.
func RenderFrame(header, content, footer string, width, height int) string {
	body := lipgloss.NewStyle().
		Width(width).
		Height(ContentHeight(header, footer, height)).
		MaxHeight(ContentHeight(header, footer, height)).
		Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
