package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is one set of UI colors.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgCard    color.Color
	Border    color.Color
}

// Dark is the default palette.
var Dark = Palette{
	Primary:   lipgloss.Color("#22C55E"), // Leaf Green
	Secondary: lipgloss.Color("#14B8A6"), // Teal
	Accent:    lipgloss.Color("#EAB308"), // Grain Gold
	Success:   lipgloss.Color("#22C55E"), // Green
	Error:     lipgloss.Color("#F43F5E"), // Rose
	Text:      lipgloss.Color("#F8FAFC"), // White
	TextDim:   lipgloss.Color("#94A3B8"), // Slate
	BgCard:    lipgloss.Color("#1E293B"), // Dark Slate
	Border:    lipgloss.Color("#334155"), // Slate
}

// Light is used when dark mode is off.
var Light = Palette{
	Primary:   lipgloss.Color("#15803D"),
	Secondary: lipgloss.Color("#0F766E"),
	Accent:    lipgloss.Color("#A16207"),
	Success:   lipgloss.Color("#16A34A"),
	Error:     lipgloss.Color("#E11D48"),
	Text:      lipgloss.Color("#0F172A"),
	TextDim:   lipgloss.Color("#64748B"),
	BgCard:    lipgloss.Color("#F1F5F9"),
	Border:    lipgloss.Color("#CBD5E1"),
}

// Current colors. Set through Apply.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgCard    color.Color
	Border    color.Color
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
)

// Components
var (
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
)

var dark = true

func init() {
	Apply(true)
}

// IsDark reports which palette is active.
func IsDark() bool {
	return dark
}

// Apply switches to the dark or light palette and rebuilds every style.
func Apply(useDark bool) {
	dark = useDark
	p := Light
	if useDark {
		p = Dark
	}
	use(p)
}

func use(p Palette) {
	Primary, Secondary, Accent = p.Primary, p.Secondary, p.Accent
	Success, Error = p.Success, p.Error
	Text, TextDim = p.Text, p.TextDim
	BgCard, Border = p.BgCard, p.Border

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	ProgressFilled = lipgloss.NewStyle().
		Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
		Background(Border)

	ButtonActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(Text).
		Bold(true).
		Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
}
