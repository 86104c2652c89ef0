package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestRenderHeader(t *testing.T) {
	out := ansi.Strip(RenderHeader("Quiz", "Questions 1-13", 80))
	for _, want := range []string{"Binomen", "Quiz", "Questions 1-13"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q:\n%s", want, out)
		}
	}
	if w := lipgloss.Width(out); w != 80 {
		t.Errorf("header width = %d, want 80", w)
	}
}

func TestRenderFooter(t *testing.T) {
	out := ansi.Strip(RenderFooter([]KeyHint{{"Enter", "Submit"}, {"Tab", "Hint"}}, 80))
	if !strings.Contains(out, "Enter Submit"+hintSeparator+"Tab Hint") {
		t.Errorf("footer missing hints:\n%s", out)
	}
}

func TestRenderFooter_DropsHintsThatDoNotFit(t *testing.T) {
	hints := []KeyHint{
		{"Enter", "Submit"},
		{"Tab", "Hint"},
		{"Ctrl+S", "Skip"},
		{"Ctrl+R", "Reset"},
		{"Esc", "Quit"},
	}
	out := ansi.Strip(RenderFooter(hints, MinWidth))
	if !strings.Contains(out, "Enter Submit") {
		t.Errorf("first hint must survive:\n%s", out)
	}
	if strings.Contains(out, "Esc Quit") {
		t.Errorf("last hint should be dropped at %d columns:\n%s", MinWidth, out)
	}
	if h := lipgloss.Height(out); h != 3 {
		t.Errorf("footer wrapped to %d lines", h)
	}
}

func TestRenderFrame_Height(t *testing.T) {
	header := RenderHeader("Home", "", 80)
	footer := RenderFooter(nil, 80)

	frame := RenderFrame(header, "body", footer, 80, 24)
	if got := lipgloss.Height(frame); got != 24 {
		t.Errorf("frame height = %d, want 24", got)
	}

	long := strings.Repeat("line\n", 40)
	frame = RenderFrame(header, long, footer, 80, 24)
	if got := lipgloss.Height(frame); got != 24 {
		t.Errorf("overflowing frame height = %d, want 24", got)
	}
}

func TestContentHeight(t *testing.T) {
	header := RenderHeader("Home", "", 80)
	footer := RenderFooter(nil, 80)
	if got := ContentHeight(header, footer, 24); got != 18 {
		t.Errorf("content height = %d, want 18", got)
	}
	if got := ContentHeight(header, footer, 2); got != 0 {
		t.Errorf("content height must not go negative, got %d", got)
	}
}

func TestSizeChecks(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) {
		t.Error("narrow terminal should be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("minimum size should fit")
	}
}

func TestRenderMinSizeMessage(t *testing.T) {
	out := ansi.Strip(RenderMinSizeMessage(40, 10))
	if !strings.Contains(out, "needs at least 60x20") || !strings.Contains(out, "window is 40x10") {
		t.Errorf("unexpected message:\n%s", out)
	}
	if h := lipgloss.Height(out); h != 10 {
		t.Errorf("message height = %d, want 10", h)
	}
}
