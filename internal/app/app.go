package app

import (
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/binomen/internal/corpus"
	"github.com/abhisek/binomen/internal/router"
	"github.com/abhisek/binomen/internal/screen"
	"github.com/abhisek/binomen/internal/screens/home"
	quizscreen "github.com/abhisek/binomen/internal/screens/quiz"
	"github.com/abhisek/binomen/internal/settings"
	"github.com/abhisek/binomen/internal/store"
	"github.com/abhisek/binomen/internal/ui/layout"
	"github.com/abhisek/binomen/internal/ui/theme"
)

// StartParams launch straight into a quiz instead of the home screen.
type StartParams struct {
	Range     string
	Overrides settings.Overrides
}

// Options holds the dependencies for the TUI.
type Options struct {
	Questions []corpus.Question
	Settings  *settings.Provider
	Sessions  store.SessionRepo
	Logger    *slog.Logger
	Start     *StartParams
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	initCmd tea.Cmd
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen, and the quiz on
// top of it when opts.Start is set.
func newAppModel(opts Options) AppModel {
	if opts.Questions == nil {
		opts.Questions = corpus.All()
	}
	if opts.Settings == nil {
		opts.Settings = settings.NewProvider(nil, opts.Logger)
	}
	theme.Apply(opts.Settings.Current().DarkMode)

	homeScreen := home.New(home.Deps{
		Questions: opts.Questions,
		Settings:  opts.Settings,
		Sessions:  opts.Sessions,
		Logger:    opts.Logger,
	})
	m := AppModel{router: router.New(homeScreen)}

	if opts.Start != nil {
		m.initCmd = m.router.Push(quizscreen.New(quizscreen.Params{
			Questions: opts.Questions,
			Range:     opts.Start.Range,
			Settings:  settings.Resolve(opts.Settings.Current(), opts.Start.Overrides),
			Sessions:  opts.Sessions,
			Logger:    opts.Logger,
		}))
	}

	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Sequence(m.router.CloseAll(), tea.Quit)
		case "esc":
			if c, ok := m.router.Active().(screen.EscCapturer); ok && c.CapturesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
