package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/binomen/internal/ui/theme"
)

// Toggle is a labelled on/off switch.
type Toggle struct {
	Label       string
	Description string
	On          bool
	Focused     bool
	OnChange    func(on bool) tea.Cmd
}

// NewToggle creates a toggle.
func NewToggle(label, description string, on bool, onChange func(bool) tea.Cmd) Toggle {
	return Toggle{
		Label:       label,
		Description: description,
		On:          on,
		OnChange:    onChange,
	}
}

// Update flips the toggle on enter or space while focused.
func (t Toggle) Update(msg tea.Msg) (Toggle, tea.Cmd) {
	if !t.Focused {
		return t, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "space", " ":
			t.On = !t.On
			if t.OnChange != nil {
				return t, t.OnChange(t.On)
			}
		}
	}

	return t, nil
}

// View renders the toggle on one line with its description below.
func (t Toggle) View() string {
	state := theme.ButtonInactive.Render("OFF")
	if t.On {
		state = theme.ButtonActive.Render("ON ")
	}

	label := theme.Unselected.Render("    " + t.Label)
	if t.Focused {
		label = theme.Selected.Render("  ▸ " + t.Label)
	}

	view := lipgloss.JoinHorizontal(lipgloss.Center, label, "  ", state)
	if t.Description != "" {
		view += "\n" + theme.Hint.Render("      "+t.Description)
	}
	return view
}
