package home

import (
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/binomen/internal/corpus"
	"github.com/abhisek/binomen/internal/router"
	"github.com/abhisek/binomen/internal/screen"
	"github.com/abhisek/binomen/internal/screens/history"
	quizscreen "github.com/abhisek/binomen/internal/screens/quiz"
	settingsscreen "github.com/abhisek/binomen/internal/screens/settings"
	"github.com/abhisek/binomen/internal/settings"
	"github.com/abhisek/binomen/internal/store"
	"github.com/abhisek/binomen/internal/ui/components"
	"github.com/abhisek/binomen/internal/ui/layout"
)

// Deps are the services the home screen hands to the screens it opens.
type Deps struct {
	Questions []corpus.Question
	Settings  *settings.Provider
	Sessions  store.SessionRepo // optional
	Logger    *slog.Logger      // optional
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps       Deps
	presets    []corpus.Preset
	rangeIdx   int
	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.StatusProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	if deps.Settings == nil {
		deps.Settings = settings.NewProvider(nil, deps.Logger)
	}
	h := &HomeScreen{
		deps:       deps,
		presets:    corpus.Presets(),
		menuLabels: []string{"START QUIZ", "SETTINGS", "HISTORY", "EXIT"},
	}

	items := []components.MenuItem{
		{Label: h.menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: h.newQuiz()}
			}
		}},
		{Label: h.menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settingsscreen.New(settingsscreen.Deps{
					Questions: h.deps.Questions,
					Range:     h.SelectedRange(),
					Settings:  h.deps.Settings,
					Sessions:  h.deps.Sessions,
					Logger:    h.deps.Logger,
				})}
			}
		}},
		{Label: h.menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(h.deps.Sessions)}
			}
		}},
		{Label: h.menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) newQuiz() *quizscreen.QuizScreen {
	return quizscreen.New(quizscreen.Params{
		Questions: h.deps.Questions,
		Range:     h.SelectedRange(),
		Settings:  h.deps.Settings.Current(),
		Sessions:  h.deps.Sessions,
		Logger:    h.deps.Logger,
	})
}

// SelectedRange is the descriptor of the highlighted preset.
func (h *HomeScreen) SelectedRange() string {
	return h.presets[h.rangeIdx].Descriptor
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "left", "h":
			h.rangeIdx = (h.rangeIdx - 1 + len(h.presets)) % len(h.presets)
			return h, nil
		case "right", "l":
			h.rangeIdx = (h.rangeIdx + 1) % len(h.presets)
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := contentWidth(width)
	preset := h.presets[h.rangeIdx]
	selected := corpus.SelectRange(h.deps.Questions, preset.Descriptor)

	sections := []string{
		renderTitle(cw),
		renderRangePicker(preset, len(selected), cw),
		renderSample(selected, cw),
		renderSettingsLine(h.deps.Settings.Current(), cw),
		renderMenu(h.menuLabels, h.menu.Selected, cw),
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Status() string {
	return corpus.Label(h.SelectedRange())
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Range"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
