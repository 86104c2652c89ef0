package corpus

// Preset is a named range offered on the home screen.
type Preset struct {
	Descriptor string
	Label      string
}

var presets = []Preset{
	{Descriptor: RangeAll, Label: "All questions"},
	{Descriptor: "1-13", Label: "Questions 1-13"},
	{Descriptor: "14-26", Label: "Questions 14-26"},
	{Descriptor: "27-45", Label: "Questions 27-45"},
	{Descriptor: "46-61", Label: "Questions 46-61"},
	{Descriptor: "62-74", Label: "Questions 62-74"},
}

// Presets returns the fixed range menu, "all" first.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// Sample returns up to max leading questions of qs and how many were left out.
func Sample(qs []Question, max int) (shown []Question, more int) {
	if max < 0 {
		max = 0
	}
	if len(qs) <= max {
		return clone(qs), 0
	}
	return clone(qs[:max]), len(qs) - max
}
