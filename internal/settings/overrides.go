package settings

// Overrides are per-session values supplied at launch. A nil field means
// "not given"; the stored value applies.
type Overrides struct {
	Shuffle   *bool
	ShowHints *bool
}

// ParseOverrides reads the string-encoded launch parameters. Only the exact
// strings "true" and "false" count; anything else is treated as absent.
func ParseOverrides(shuffle, showHints string) Overrides {
	return Overrides{
		Shuffle:   parseFlag(shuffle),
		ShowHints: parseFlag(showHints),
	}
}

// Resolve applies o on top of stored for one session. stored is never
// modified.
func Resolve(stored Settings, o Overrides) Settings {
	resolved := stored
	if o.Shuffle != nil {
		resolved.ShuffleQuestions = *o.Shuffle
	}
	if o.ShowHints != nil {
		resolved.ShowHints = *o.ShowHints
	}
	return resolved
}

func parseFlag(s string) *bool {
	var v bool
	switch s {
	case "true":
		v = true
	case "false":
		v = false
	default:
		return nil
	}
	return &v
}
