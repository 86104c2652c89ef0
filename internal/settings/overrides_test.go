package settings

import "testing"

func TestParseOverrides(t *testing.T) {
	tests := []struct {
		shuffle, hints     string
		wantShuffle, wantH *bool
	}{
		{"", "", nil, nil},
		{"true", "false", ptr(true), ptr(false)},
		{"false", "true", ptr(false), ptr(true)},
		{"TRUE", "1", nil, nil},
		{"yes", "", nil, nil},
	}
	for _, tt := range tests {
		o := ParseOverrides(tt.shuffle, tt.hints)
		if !sameBool(o.Shuffle, tt.wantShuffle) || !sameBool(o.ShowHints, tt.wantH) {
			t.Errorf("ParseOverrides(%q, %q) = %s/%s", tt.shuffle, tt.hints, show(o.Shuffle), show(o.ShowHints))
		}
	}
}

func TestResolve_Precedence(t *testing.T) {
	stored := Settings{ShowHints: true, ShuffleQuestions: false, DarkMode: true}

	// No overrides: stored wins.
	if got := Resolve(stored, Overrides{}); got != stored {
		t.Errorf("Resolve(no overrides) = %+v, want %+v", got, stored)
	}

	// Overrides win for their fields only.
	got := Resolve(stored, Overrides{Shuffle: ptr(true)})
	want := Settings{ShowHints: true, ShuffleQuestions: true, DarkMode: true}
	if got != want {
		t.Errorf("Resolve(shuffle) = %+v, want %+v", got, want)
	}

	got = Resolve(stored, Overrides{Shuffle: ptr(true), ShowHints: ptr(false)})
	want = Settings{ShowHints: false, ShuffleQuestions: true, DarkMode: true}
	if got != want {
		t.Errorf("Resolve(both) = %+v, want %+v", got, want)
	}

	// Stored value is untouched.
	if !stored.ShowHints || stored.ShuffleQuestions {
		t.Error("Resolve modified the stored settings")
	}
}

func TestResolve_DefaultsWhenNothingStored(t *testing.T) {
	got := Resolve(Defaults(), ParseOverrides("", ""))
	if got != Defaults() {
		t.Errorf("Resolve = %+v, want defaults", got)
	}
}

func ptr(b bool) *bool { return &b }

func sameBool(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func show(b *bool) string {
	switch {
	case b == nil:
		return "<nil>"
	case *b:
		return "true"
	default:
		return "false"
	}
}
