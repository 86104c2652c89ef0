// Package settings is the preferences screen.
package settings

import (
	"context"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/binomen/internal/corpus"
	"github.com/abhisek/binomen/internal/router"
	"github.com/abhisek/binomen/internal/screen"
	quizscreen "github.com/abhisek/binomen/internal/screens/quiz"
	prefs "github.com/abhisek/binomen/internal/settings"
	"github.com/abhisek/binomen/internal/store"
	"github.com/abhisek/binomen/internal/ui/components"
	"github.com/abhisek/binomen/internal/ui/layout"
	"github.com/abhisek/binomen/internal/ui/theme"
)

// Deps are what the settings screen needs to edit preferences and to start
// a quiz from them.
type Deps struct {
	Questions []corpus.Question
	Range     string
	Settings  *prefs.Provider
	Sessions  store.SessionRepo
	Logger    *slog.Logger
}

type field struct {
	name        string
	label       string
	description string
}

var fields = []field{
	{prefs.FieldShowHints, "Show hints", "Reveal the hint after a wrong answer"},
	{prefs.FieldShuffleQuestions, "Shuffle questions", "Randomize the order at start and on reset"},
	{prefs.FieldDarkMode, "Dark mode", "Use the dark color palette"},
}

const startLabel = "Start quiz with these settings"

// SettingsScreen lists the preference toggles and a start action.
type SettingsScreen struct {
	deps    Deps
	toggles []components.Toggle
	focus   int // len(toggles) is the start action
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a SettingsScreen showing the provider's current values.
func New(deps Deps) *SettingsScreen {
	if deps.Settings == nil {
		deps.Settings = prefs.NewProvider(nil, deps.Logger)
	}
	s := &SettingsScreen{deps: deps}
	s.syncToggles()
	return s
}

// syncToggles rebuilds the toggles from the provider.
func (s *SettingsScreen) syncToggles() {
	cur := s.deps.Settings.Current()
	s.toggles = s.toggles[:0]
	for i, f := range fields {
		on, _ := cur.Get(f.name)
		name := f.name
		t := components.NewToggle(f.label, f.description, on, func(v bool) tea.Cmd {
			s.set(name, v)
			return nil
		})
		t.Focused = i == s.focus
		s.toggles = append(s.toggles, t)
	}
}

func (s *SettingsScreen) set(name string, v bool) {
	next := s.deps.Settings.Set(context.Background(), name, v)
	if name == prefs.FieldDarkMode {
		theme.Apply(next.DarkMode)
	}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Space", Description: "Toggle"},
		{Key: "S", Description: "Start quiz"},
		{Key: "D", Description: "Defaults"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.focus > 0 {
			s.setFocus(s.focus - 1)
		}
		return s, nil
	case "down", "j":
		if s.focus < len(s.toggles) {
			s.setFocus(s.focus + 1)
		}
		return s, nil
	case "s", "S":
		return s, s.startQuiz()
	case "d", "D":
		next := s.deps.Settings.Replace(context.Background(), prefs.Defaults())
		theme.Apply(next.DarkMode)
		s.syncToggles()
		return s, nil
	}

	if s.focus == len(s.toggles) {
		if kmsg.String() == "enter" {
			return s, s.startQuiz()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.toggles[s.focus], cmd = s.toggles[s.focus].Update(msg)
	return s, cmd
}

func (s *SettingsScreen) setFocus(i int) {
	s.focus = i
	for j := range s.toggles {
		s.toggles[j].Focused = j == i
	}
}

// startQuiz replaces this screen with a quiz run on the settings shown here.
func (s *SettingsScreen) startQuiz() tea.Cmd {
	q := quizscreen.New(quizscreen.Params{
		Questions: s.deps.Questions,
		Range:     s.deps.Range,
		Settings:  s.deps.Settings.Current(),
		Sessions:  s.deps.Sessions,
		Logger:    s.deps.Logger,
	})
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: q}
	}
}

func (s *SettingsScreen) View(width, height int) string {
	var rows []string
	rows = append(rows, theme.Title.Render("Settings"))
	rows = append(rows, "")
	for _, t := range s.toggles {
		rows = append(rows, t.View())
		rows = append(rows, "")
	}

	start := theme.ButtonInactive.Render(startLabel)
	if s.focus == len(s.toggles) {
		start = theme.ButtonActive.Render("▸ " + startLabel)
	}
	rows = append(rows, start)
	rows = append(rows, theme.Hint.Render(corpus.Label(s.deps.Range)))

	body := lipgloss.NewStyle().Align(lipgloss.Left).Render(strings.Join(rows, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
