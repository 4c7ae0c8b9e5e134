package layout

import (
	"strings"

	"tinyview/pkg/text"
)

// WrapText greedily wraps text to fit maxWidth under the given measurer.
//
// Explicit newlines split the text into groups first; an empty group stays
// an empty line, which keeps preformatted-adjacent content honest. Within
// a group, words accumulate onto the current line until adding the next
// word would overflow, at which point the line closes and the word starts a new
// one. A single word wider than maxWidth is never split: it goes on its
// own line and overflows.
func WrapText(s string, maxWidth float64, fontSize float64, m text.Measurer) []string {
	var lines []string

	for _, group := range strings.Split(s, "\n") {
		words := strings.Fields(group)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if m.Width(candidate, fontSize) > maxWidth {
				lines = append(lines, current)
				current = word
			} else {
				current = candidate
			}
		}
		lines = append(lines, current)
	}

	return lines
}
