package corpus

import (
	"regexp"
	"strconv"
	"strings"
)

// RangeAll selects the whole corpus.
const RangeAll = "all"

var boundsPattern = regexp.MustCompile(`(\d+)-(\d+)`)

// SelectRange returns the sub-list of qs selected by descriptor.
//
// Descriptors:
//   - "all" (or anything unrecognized): every question, order preserved
//   - "<start>-<end>", matched anywhere in the string: questions whose
//     integer ID lies in [start, end]
//   - a bare integer: questions whose ID equals the descriptor exactly
//
// The result may be empty. The input slice is never modified.
func SelectRange(qs []Question, descriptor string) []Question {
	if descriptor == RangeAll {
		return clone(qs)
	}

	if m := boundsPattern.FindStringSubmatch(descriptor); m != nil {
		start, errStart := strconv.Atoi(m[1])
		end, errEnd := strconv.Atoi(m[2])
		if errStart == nil && errEnd == nil {
			return filter(qs, func(q Question) bool {
				id, err := strconv.Atoi(q.ID)
				return err == nil && id >= start && id <= end
			})
		}
	}

	if isNumber(descriptor) {
		return filter(qs, func(q Question) bool { return q.ID == descriptor })
	}

	return clone(qs)
}

// Label returns the display label for a descriptor.
func Label(descriptor string) string {
	for _, p := range presets {
		if p.Descriptor == descriptor {
			return p.Label
		}
	}
	if descriptor == "" {
		return presets[0].Label
	}
	return "Range: " + descriptor
}

// isNumber reports whether s is a bare integer, surrounding spaces allowed.
func isNumber(s string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil
}

func filter(qs []Question, keep func(Question) bool) []Question {
	out := make([]Question, 0, len(qs))
	for _, q := range qs {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}

func clone(qs []Question) []Question {
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}
