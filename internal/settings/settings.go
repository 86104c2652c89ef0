// Package settings holds the learner's quiz preferences and their
// persistence: a fail-soft Store over a key-value backend, a Provider that
// owns the in-memory copy, and per-session overrides.
package settings

// Settings are the preferences that shape a quiz run.
type Settings struct {
	// ShowHints reveals the hint automatically after a wrong answer.
	ShowHints bool `json:"showHints"`

	// ShuffleQuestions randomizes question order at start and on reset.
	ShuffleQuestions bool `json:"shuffleQuestions"`

	// DarkMode selects the dark terminal palette.
	DarkMode bool `json:"darkMode"`
}

// Defaults returns the documented default settings.
func Defaults() Settings {
	return Settings{
		ShowHints:        false,
		ShuffleQuestions: true,
		DarkMode:         false,
	}
}

// Field names as they appear in the persisted record and on the CLI.
const (
	FieldShowHints        = "showHints"
	FieldShuffleQuestions = "shuffleQuestions"
	FieldDarkMode         = "darkMode"
)

// Fields lists the settable field names in display order.
func Fields() []string {
	return []string{FieldShowHints, FieldShuffleQuestions, FieldDarkMode}
}

// Get returns the value of the named field.
func (s Settings) Get(field string) (bool, bool) {
	switch field {
	case FieldShowHints:
		return s.ShowHints, true
	case FieldShuffleQuestions:
		return s.ShuffleQuestions, true
	case FieldDarkMode:
		return s.DarkMode, true
	}
	return false, false
}

// With returns a copy of s with the named field set to v.
// Unknown fields leave s unchanged and report false.
func (s Settings) With(field string, v bool) (Settings, bool) {
	switch field {
	case FieldShowHints:
		s.ShowHints = v
	case FieldShuffleQuestions:
		s.ShuffleQuestions = v
	case FieldDarkMode:
		s.DarkMode = v
	default:
		return s, false
	}
	return s, true
}
