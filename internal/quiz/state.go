package quiz

import "time"

// Phase is the engine's position in the run state machine.
type Phase int

const (
	PhaseActive            Phase = iota // Awaiting an answer to the current question
	PhaseFeedbackCorrect                // Correct answer shown; advance pending
	PhaseFeedbackIncorrect              // Wrong answer shown; clear pending, resubmission allowed
	PhaseCompleted                      // Every question has been passed
	PhaseEmpty                          // The selected range has no questions
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseFeedbackCorrect:
		return "feedback-correct"
	case PhaseFeedbackIncorrect:
		return "feedback-incorrect"
	case PhaseCompleted:
		return "completed"
	case PhaseEmpty:
		return "empty"
	}
	return "unknown"
}

// Terminal reports whether no further answers can be taken in this run.
func (p Phase) Terminal() bool {
	return p == PhaseCompleted || p == PhaseEmpty
}

// Outcome is the grade of the last submitted answer.
type Outcome int

const (
	OutcomeUnset Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	}
	return "unset"
}

// Feedback windows.
const (
	CorrectFeedbackDelay   = 1000 * time.Millisecond
	IncorrectFeedbackDelay = 1500 * time.Millisecond
)

// TransitionKind is what a scheduled transition does when it fires.
type TransitionKind int

const (
	TransitionAdvance      TransitionKind = iota + 1 // move to the next question
	TransitionClearOutcome                           // drop the incorrect marker, stay put
)

// Transition is a delayed state change the caller must schedule. When Delay
// has elapsed the caller passes ID to Engine.Fire.
type Transition struct {
	ID    uint64
	Kind  TransitionKind
	Delay time.Duration
}

// Progress is the position summary shown alongside the question.
type Progress struct {
	CurrentIndex int
	TotalCorrect int
	Completed    bool
}

// Result is the score for the completion screen.
type Result struct {
	Total      int
	Correct    int
	Skipped    int
	Percent    int  // rounded 100*Correct/Total, 0 when Total is 0
	AllCorrect bool // every question answered correctly
}
