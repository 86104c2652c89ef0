package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/binomen/internal/corpus"
	"github.com/abhisek/binomen/internal/settings"
	"github.com/abhisek/binomen/internal/ui/theme"
)

const titleText = "B · I · N · O · M · E · N"

const subtitleText = "Scientific names of crops"

// sampleSize is how many questions the range preview lists.
const sampleSize = 5

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	// Leave room for frame border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

func renderTitle(cw int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(titleText)
	sub := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(subtitleText)
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(title + "\n" + sub)
}

// renderRangePicker shows the selected preset between arrows with the
// number of questions it covers.
func renderRangePicker(p corpus.Preset, count, cw int) string {
	arrow := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	label := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(p.Label)
	n := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("(%d questions)", count))

	line := arrow.Render("◂ ") + label + arrow.Render(" ▸") + "  " + n

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Render(line)
}

// renderSample lists the first questions of the selected range.
func renderSample(qs []corpus.Question, cw int) string {
	shown, more := corpus.Sample(qs, sampleSize)
	if len(shown) == 0 {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No questions in this range")
	}

	var lines []string
	for _, q := range shown {
		lines = append(lines, fmt.Sprintf("%3s. %s", q.ID, q.Question))
	}
	if more > 0 {
		lines = append(lines, fmt.Sprintf("     ... and %d more", more))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.TextDim).
		Render(strings.Join(lines, "\n"))
}

// renderSettingsLine summarizes the preferences a new run will use.
func renderSettingsLine(s settings.Settings, cw int) string {
	text := fmt.Sprintf("Shuffle %s · Hints %s", onOff(s.ShuffleQuestions), onOff(s.ShowHints))
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Render(text)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgCard).
		Background(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderFrame wraps content in a rounded frame centered in the area.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).   // account for border chars
		Height(height - 2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
