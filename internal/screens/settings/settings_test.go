package settings

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/binomen/internal/corpus"
	"github.com/abhisek/binomen/internal/logging"
	"github.com/abhisek/binomen/internal/router"
	quizscreen "github.com/abhisek/binomen/internal/screens/quiz"
	prefs "github.com/abhisek/binomen/internal/settings"
	"github.com/abhisek/binomen/internal/ui/theme"
)

// memRepo implements prefs.Repo in memory.
type memRepo struct {
	saved []prefs.Settings
}

func (m *memRepo) Load(context.Context) prefs.Settings {
	if len(m.saved) == 0 {
		return prefs.Defaults()
	}
	return m.saved[len(m.saved)-1]
}

func (m *memRepo) Save(_ context.Context, s prefs.Settings) error {
	m.saved = append(m.saved, s)
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testSettingsScreen(t *testing.T) (*SettingsScreen, *memRepo) {
	t.Helper()
	t.Cleanup(func() { theme.Apply(true) })
	repo := &memRepo{}
	p := prefs.NewProvider(repo, logging.Discard())
	p.Load(context.Background())
	return New(Deps{
		Questions: corpus.All(),
		Range:     "1-13",
		Settings:  p,
		Logger:    logging.Discard(),
	}), repo
}

func TestSettingsScreen_ShowsCurrentValues(t *testing.T) {
	s, _ := testSettingsScreen(t)

	if s.toggles[0].On {
		t.Error("show hints defaults off")
	}
	if !s.toggles[1].On {
		t.Error("shuffle defaults on")
	}
	view := s.View(80, 30)
	for _, want := range []string{"Show hints", "Shuffle questions", "Dark mode", startLabel} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSettingsScreen_TogglePersists(t *testing.T) {
	s, repo := testSettingsScreen(t)

	s.Update(specialKey(tea.KeyEnter))

	if !s.deps.Settings.Current().ShowHints {
		t.Error("expected show hints on")
	}
	if len(repo.saved) != 1 || !repo.saved[0].ShowHints {
		t.Errorf("expected one save with hints on, got %+v", repo.saved)
	}
}

func TestSettingsScreen_DarkModeAppliesTheme(t *testing.T) {
	s, _ := testSettingsScreen(t)
	theme.Apply(false)

	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeySpace))

	if !s.deps.Settings.Current().DarkMode {
		t.Fatal("expected dark mode on")
	}
	if !theme.IsDark() {
		t.Error("expected dark palette applied")
	}
}

func TestSettingsScreen_Defaults(t *testing.T) {
	s, _ := testSettingsScreen(t)
	s.Update(specialKey(tea.KeyEnter))
	s.Update(keyPress('d'))

	if s.deps.Settings.Current() != prefs.Defaults() {
		t.Errorf("expected defaults, got %+v", s.deps.Settings.Current())
	}
	if s.toggles[0].On {
		t.Error("toggles not refreshed")
	}
}

func TestSettingsScreen_StartQuiz(t *testing.T) {
	s, _ := testSettingsScreen(t)
	s.Update(specialKey(tea.KeyEnter)) // hints on

	_, cmd := s.Update(keyPress('s'))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	q, ok := msg.Screen.(*quizscreen.QuizScreen)
	if !ok {
		t.Fatalf("expected quiz screen, got %T", msg.Screen)
	}
	got := q.Engine().Settings()
	if !got.ShowHints || !got.ShuffleQuestions {
		t.Errorf("quiz did not get the shown settings: %+v", got)
	}
	if q.Engine().Range() != "1-13" || q.Engine().TotalQuestions() != 13 {
		t.Errorf("unexpected range %q/%d", q.Engine().Range(), q.Engine().TotalQuestions())
	}
}

func TestSettingsScreen_StartQuizShuffleOff(t *testing.T) {
	s, _ := testSettingsScreen(t)
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyEnter)) // shuffle off

	_, cmd := s.Update(keyPress('s'))
	msg := cmd().(router.ReplaceScreenMsg)
	q := msg.Screen.(*quizscreen.QuizScreen)

	if got := q.Engine().Settings(); got.ShuffleQuestions || got.ShowHints {
		t.Errorf("quiz settings = %+v, want shuffle and hints off", got)
	}
	first, _ := q.Engine().Current()
	if first.ID != "1" {
		t.Errorf("unshuffled run should start at question 1, got %s", first.ID)
	}
}

func TestSettingsScreen_StartItem(t *testing.T) {
	s, _ := testSettingsScreen(t)
	for i := 0; i < 5; i++ {
		s.Update(specialKey(tea.KeyDown))
	}
	if s.focus != len(s.toggles) {
		t.Fatalf("expected focus on start item, got %d", s.focus)
	}
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected start command")
	}
}
