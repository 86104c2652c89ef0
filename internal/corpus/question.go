package corpus

import (
	"fmt"
	"strconv"
)

// Question is a single corpus entry: a common name and its scientific name.
type Question struct {
	// ID is a positive integer in string form; corpus order is ascending ID.
	ID string

	// Question is the prompt shown to the learner (a common name).
	Question string

	// Answer is the canonical scientific name.
	Answer string

	// Hint is optional. Empty means there is nothing to reveal.
	Hint string
}

// HasHint reports whether the question carries a hint.
func (q Question) HasHint() bool {
	return q.Hint != ""
}

// All returns a copy of the bundled corpus in ascending ID order.
func All() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// Count returns the number of bundled questions.
func Count() int {
	return len(questions)
}

// Validate checks the corpus invariants: every ID parses as a positive
// integer, IDs are unique and ascending, and every answer is non-empty.
func Validate(qs []Question) error {
	seen := make(map[string]bool, len(qs))
	prev := 0
	for i, q := range qs {
		n, err := strconv.Atoi(q.ID)
		if err != nil {
			return fmt.Errorf("question %d: id %q is not an integer", i, q.ID)
		}
		if n <= 0 {
			return fmt.Errorf("question %d: id %d is not positive", i, n)
		}
		if seen[q.ID] {
			return fmt.Errorf("question %d: duplicate id %q", i, q.ID)
		}
		seen[q.ID] = true
		if n <= prev {
			return fmt.Errorf("question %d: id %d out of order (after %d)", i, n, prev)
		}
		prev = n
		if q.Answer == "" {
			return fmt.Errorf("question %s: empty answer", q.ID)
		}
	}
	return nil
}
