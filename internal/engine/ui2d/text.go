package ui2d

import "strings"

// WrapText breaks text into lines of at most maxChars characters, splitting
// on spaces where possible. Existing newlines are kept.
func WrapText(text string, maxChars int) []string {
	if maxChars <= 0 {
		return []string{text}
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		var line []rune
		for _, w := range words {
			word := []rune(w)
			for len(word) > maxChars {
				if len(line) > 0 {
					lines = append(lines, string(line))
					line = nil
				}
				lines = append(lines, string(word[:maxChars]))
				word = word[maxChars:]
			}
			switch {
			case len(line) == 0:
				line = append(line, word...)
			case len(line)+1+len(word) <= maxChars:
				line = append(append(line, ' '), word...)
			default:
				lines = append(lines, string(line))
				line = append([]rune(nil), word...)
			}
		}
		if len(line) > 0 {
			lines = append(lines, string(line))
		}
	}
	return lines
}
