// Package quiz is the screen that runs a quiz session on top of the
// quiz engine.
package quiz

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/binomen/internal/corpus"
	qz "github.com/abhisek/binomen/internal/quiz"
	"github.com/abhisek/binomen/internal/router"
	"github.com/abhisek/binomen/internal/screen"
	"github.com/abhisek/binomen/internal/settings"
	"github.com/abhisek/binomen/internal/store"
	"github.com/abhisek/binomen/internal/ui/components"
	"github.com/abhisek/binomen/internal/ui/layout"
)

// Params configures a quiz screen.
type Params struct {
	Questions []corpus.Question
	Range     string
	// Settings are already resolved against any launch overrides.
	Settings settings.Settings
	Sessions store.SessionRepo // optional
	Logger   *slog.Logger      // optional
	Rand     *rand.Rand        // optional, for deterministic order
}

// QuizScreen implements screen.Screen for an active quiz run.
type QuizScreen struct {
	engine   *qz.Engine
	sessions store.SessionRepo
	logger   *slog.Logger
	input    components.TextInput

	sessionID string
	startedAt time.Time
	ended     bool

	// lastSubmitted is the input value at the last wrong answer; the input
	// is only cleared afterwards if the learner has not started retyping.
	lastSubmitted string
	confirmReset  bool

	now func() time.Time
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ screen.Closer = (*QuizScreen)(nil)
var _ screen.EscCapturer = (*QuizScreen)(nil)

// New creates a QuizScreen and builds its engine.
func New(p Params) *QuizScreen {
	var opts []qz.Option
	if p.Rand != nil {
		opts = append(opts, qz.WithRand(p.Rand))
	}
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizScreen{
		engine:   qz.New(p.Questions, p.Range, p.Settings, opts...),
		sessions: p.Sessions,
		logger:   logger,
		input:    components.NewTextInput("Scientific name...", 80),
		now:      time.Now,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.engine.Phase() != qz.PhaseEmpty {
		s.startSession()
	}
	return s.input.Init()
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

// Status shows the label of the active range.
func (s *QuizScreen) Status() string {
	return corpus.Label(s.engine.Range())
}

// Engine exposes the underlying engine.
func (s *QuizScreen) Engine() *qz.Engine {
	return s.engine
}

// SessionID is the ID of the run being recorded, empty before Init.
func (s *QuizScreen) SessionID() string {
	return s.sessionID
}

func (s *QuizScreen) CapturesEsc() bool {
	return s.confirmReset
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.confirmReset {
		return []layout.KeyHint{
			{Key: "Y", Description: "Reset"},
			{Key: "N", Description: "Cancel"},
		}
	}
	switch s.engine.Phase() {
	case qz.PhaseEmpty:
		return []layout.KeyHint{
			{Key: "any key", Description: "Back"},
		}
	case qz.PhaseCompleted:
		return []layout.KeyHint{
			{Key: "R", Description: "Try again"},
			{Key: "Enter", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Tab", Description: "Hint"},
		{Key: "Ctrl+S", Description: "Skip"},
		{Key: "Ctrl+R", Description: "Reset"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackElapsedMsg:
		return s.handleFeedbackElapsed(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.acceptsInput() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// Close ends the run when the screen leaves the stack. Timers still in
// flight are ignored from here on.
func (s *QuizScreen) Close() tea.Cmd {
	if s.engine.Discarded() {
		return nil
	}
	s.endSession()
	s.engine.Discard()
	return nil
}

func (s *QuizScreen) acceptsInput() bool {
	if s.confirmReset {
		return false
	}
	p := s.engine.Phase()
	return p == qz.PhaseActive || p == qz.PhaseFeedbackIncorrect
}

func (s *QuizScreen) handleFeedbackElapsed(msg feedbackElapsedMsg) (screen.Screen, tea.Cmd) {
	before := s.engine.Phase()
	if !s.engine.Fire(msg.ID) {
		return s, nil
	}

	switch before {
	case qz.PhaseFeedbackCorrect:
		s.input.Reset()
		if s.engine.Phase() == qz.PhaseCompleted {
			s.endSession()
		}
	case qz.PhaseFeedbackIncorrect:
		if s.input.Value() == s.lastSubmitted {
			s.input.Reset()
		} else {
			s.input.Clear()
		}
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmReset {
		switch key {
		case "y", "Y":
			s.confirmReset = false
			s.restart()
		case "n", "N", "esc":
			s.confirmReset = false
		}
		return s, nil
	}

	switch s.engine.Phase() {
	case qz.PhaseEmpty:
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case qz.PhaseCompleted:
		switch key {
		case "r", "R":
			s.restart()
			return s, s.input.Init()
		case "enter", "h", "H":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
		return s, nil
	}

	switch key {
	case "enter":
		return s.submit()
	case "tab":
		s.engine.ToggleHint()
		return s, nil
	case "ctrl+s":
		s.engine.Skip()
		s.input.Reset()
		if s.engine.Phase() == qz.PhaseCompleted {
			s.endSession()
		}
		return s, nil
	case "ctrl+r":
		s.confirmReset = true
		return s, nil
	}

	if s.acceptsInput() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	value := s.input.Value()
	tr, ok := s.engine.Submit(value)
	if !ok {
		return s, nil
	}

	correct := s.engine.Outcome() == qz.OutcomeCorrect
	s.input.Submit(correct)
	if !correct {
		s.lastSubmitted = value
	}
	return s, scheduleCmd(tr)
}

// restart resets the engine. An unfinished run is recorded as abandoned
// and a new session begins.
func (s *QuizScreen) restart() {
	s.endSession()
	s.engine.Reset()
	s.input.Reset()
	s.lastSubmitted = ""
	if s.engine.Phase() != qz.PhaseEmpty {
		s.startSession()
	}
}

func (s *QuizScreen) startSession() {
	s.sessionID = uuid.New().String()
	s.startedAt = s.now()
	s.ended = false

	s.logger.Info("quiz started",
		"session", s.sessionID,
		"range", s.engine.Range(),
		"questions", s.engine.TotalQuestions(),
		"shuffle", s.engine.Settings().ShuffleQuestions,
	)
	if s.sessions == nil {
		return
	}
	err := s.sessions.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID:      s.sessionID,
		Action:         store.ActionStart,
		Range:          s.engine.Range(),
		QuestionsTotal: s.engine.TotalQuestions(),
	})
	if err != nil {
		s.logger.Warn("record session start", "session", s.sessionID, "err", err)
	}
}

// endSession records the end of the current run once.
func (s *QuizScreen) endSession() {
	if s.sessionID == "" || s.ended {
		return
	}
	s.ended = true

	r := s.engine.Result()
	completed := s.engine.Phase() == qz.PhaseCompleted
	duration := int(s.now().Sub(s.startedAt).Seconds())

	s.logger.Info("quiz ended",
		"session", s.sessionID,
		"correct", r.Correct,
		"total", r.Total,
		"completed", completed,
	)
	if s.sessions == nil {
		return
	}
	err := s.sessions.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID:      s.sessionID,
		Action:         store.ActionEnd,
		Range:          s.engine.Range(),
		QuestionsTotal: r.Total,
		CorrectAnswers: r.Correct,
		Skipped:        r.Skipped,
		Completed:      completed,
		DurationSecs:   duration,
	})
	if err != nil {
		s.logger.Warn("record session end", "session", s.sessionID, "err", err)
	}
}
