package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/binomen/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider supplies the text on the right of the header.
type StatusProvider interface {
	Status() string
}

// Closer is implemented by screens that hold resources or timers. The
// router calls Close when the screen leaves the stack.
type Closer interface {
	Close() tea.Cmd
}

// EscCapturer screens handle Esc themselves while CapturesEsc is true,
// instead of the app popping them.
type EscCapturer interface {
	CapturesEsc() bool
}
