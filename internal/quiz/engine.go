// Package quiz is the session engine: it builds the question list for a
// run, grades answers, tracks score and hint state, and exposes the timed
// feedback transitions as explicit, cancellable steps.
package quiz

import (
	"math"
	"math/rand/v2"
	"slices"
	"sync/atomic"
	"time"

	"github.com/abhisek/binomen/internal/corpus"
	"github.com/abhisek/binomen/internal/settings"
	"github.com/abhisek/binomen/internal/shuffle"
)

// transitionIDs numbers transitions across every engine in the process, so
// a timer left over from a discarded engine never matches a live one.
var transitionIDs atomic.Uint64

// Engine runs one quiz over a range of the corpus. It is not safe for
// concurrent use; all calls come from the UI event loop.
type Engine struct {
	descriptor string
	settings   settings.Settings
	rng        *rand.Rand

	// filtered is the range in corpus order; active is the run order.
	filtered []corpus.Question
	active   []corpus.Question

	index        int
	totalCorrect int
	outcome      Outcome
	showHint     bool
	skipped      map[int]bool
	phase        Phase

	// pending is the ID of the one outstanding transition, 0 for none.
	pending   uint64
	discarded bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for shuffling.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// New builds the active question list from questions, the range descriptor
// and the resolved settings, and starts the run.
func New(questions []corpus.Question, descriptor string, s settings.Settings, opts ...Option) *Engine {
	if descriptor == "" {
		descriptor = corpus.RangeAll
	}
	e := &Engine{
		descriptor: descriptor,
		settings:   s,
		filtered:   corpus.SelectRange(questions, descriptor),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.start()
	return e
}

// start (re)builds the run from the filtered set.
func (e *Engine) start() {
	if e.settings.ShuffleQuestions {
		e.active = shuffle.Shuffle(e.filtered, e.rng)
	} else {
		e.active = slices.Clone(e.filtered)
	}
	e.index = 0
	e.totalCorrect = 0
	e.outcome = OutcomeUnset
	e.showHint = false
	e.skipped = make(map[int]bool)
	e.pending = 0

	if len(e.active) == 0 {
		e.phase = PhaseEmpty
	} else {
		e.phase = PhaseActive
	}
}

// Submit grades raw against the current question.
//
// It is accepted in PhaseActive and PhaseFeedbackIncorrect (resubmission);
// blank input is ignored. ok is false when nothing happened. On success the
// returned Transition must be scheduled by the caller.
func (e *Engine) Submit(raw string) (tr Transition, ok bool) {
	if e.phase != PhaseActive && e.phase != PhaseFeedbackIncorrect {
		return Transition{}, false
	}
	if Normalize(raw) == "" {
		return Transition{}, false
	}

	q := e.active[e.index]
	if Grade(raw, q.Answer) {
		e.outcome = OutcomeCorrect
		e.totalCorrect++
		e.phase = PhaseFeedbackCorrect
		return e.schedule(TransitionAdvance, CorrectFeedbackDelay), true
	}

	e.outcome = OutcomeIncorrect
	e.phase = PhaseFeedbackIncorrect
	if e.settings.ShowHints {
		e.showHint = true
	}
	return e.schedule(TransitionClearOutcome, IncorrectFeedbackDelay), true
}

func (e *Engine) schedule(kind TransitionKind, delay time.Duration) Transition {
	e.pending = transitionIDs.Add(1)
	return Transition{ID: e.pending, Kind: kind, Delay: delay}
}

// Fire applies the scheduled transition with the given ID. Stale IDs
// (superseded by another submit, an advance or a reset) and any transition
// after Discard are ignored. It reports whether state changed.
func (e *Engine) Fire(id uint64) bool {
	if e.discarded || id == 0 || id != e.pending {
		return false
	}
	e.pending = 0

	switch e.phase {
	case PhaseFeedbackCorrect:
		e.Advance()
		return true
	case PhaseFeedbackIncorrect:
		// The hint stays as it is.
		e.outcome = OutcomeUnset
		e.phase = PhaseActive
		return true
	}
	return false
}

// Advance moves to the next question, clearing the outcome and the hint.
// Passing the last question completes the run.
func (e *Engine) Advance() {
	if e.phase.Terminal() {
		return
	}
	e.pending = 0
	e.index++
	e.outcome = OutcomeUnset
	e.showHint = false
	if e.index >= len(e.active) {
		e.phase = PhaseCompleted
	} else {
		e.phase = PhaseActive
	}
}

// Skip records the current question as skipped and advances.
func (e *Engine) Skip() {
	if e.phase.Terminal() {
		return
	}
	e.skipped[e.index] = true
	e.Advance()
}

// ToggleHint flips hint visibility for the current question. It works
// regardless of the ShowHints setting.
func (e *Engine) ToggleHint() bool {
	if _, ok := e.Current(); !ok {
		return false
	}
	e.showHint = !e.showHint
	return true
}

// Reset restarts the run over the same range: counters, outcome, hint and
// skips are cleared, and the order is reshuffled when shuffling is on or
// restored to corpus order when it is off.
func (e *Engine) Reset() {
	e.start()
}

// Discard ends the engine's lifetime. Pending transitions become no-ops.
func (e *Engine) Discard() {
	e.discarded = true
	e.pending = 0
}

// Discarded reports whether Discard has been called.
func (e *Engine) Discarded() bool {
	return e.discarded
}

// Current returns the question awaiting an answer, if any.
func (e *Engine) Current() (corpus.Question, bool) {
	if e.index < 0 || e.index >= len(e.active) {
		return corpus.Question{}, false
	}
	return e.active[e.index], true
}

// Phase returns the current state.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Outcome returns the grade of the last answer, or OutcomeUnset.
func (e *Engine) Outcome() Outcome {
	return e.outcome
}

// ShowHint reports whether the hint is visible.
func (e *Engine) ShowHint() bool {
	return e.showHint
}

// Progress returns the cursor, score and completion flag.
func (e *Engine) Progress() Progress {
	return Progress{
		CurrentIndex: e.index,
		TotalCorrect: e.totalCorrect,
		Completed:    e.index >= len(e.active),
	}
}

// TotalQuestions is the length of the active list.
func (e *Engine) TotalQuestions() int {
	return len(e.active)
}

// Questions returns a copy of the active list in run order.
func (e *Engine) Questions() []corpus.Question {
	return slices.Clone(e.active)
}

// Skipped returns the skipped indices in ascending order.
func (e *Engine) Skipped() []int {
	out := make([]int, 0, len(e.skipped))
	for i := range e.skipped {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

// Range returns the descriptor the run was built from.
func (e *Engine) Range() string {
	return e.descriptor
}

// Settings returns the settings in effect for this run.
func (e *Engine) Settings() settings.Settings {
	return e.settings
}

// Pending returns the ID of the outstanding transition, 0 if none.
func (e *Engine) Pending() uint64 {
	return e.pending
}

// Result summarizes the score so far.
func (e *Engine) Result() Result {
	r := Result{
		Total:   len(e.active),
		Correct: e.totalCorrect,
		Skipped: len(e.skipped),
	}
	if r.Total > 0 {
		r.Percent = int(math.Round(float64(r.Correct) / float64(r.Total) * 100))
		r.AllCorrect = r.Correct == r.Total
	}
	return r
}
