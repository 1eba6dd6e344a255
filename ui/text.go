package ui

import "strings"

// Reflow wraps s on word boundaries so no line is longer than width
// characters. Words longer than width are split. Existing newlines are kept.
func Reflow(s string, width int) string {
	if width <= 0 {
		return s
	}
	var out strings.Builder
	for i, para := range strings.Split(s, "\n") {
		if i > 0 {
			out.WriteByte('\n')
		}
		col := 0
		for _, word := range strings.Fields(para) {
			for len(word) > width {
				if col > 0 {
					out.WriteByte('\n')
					col = 0
				}
				out.WriteString(word[:width])
				out.WriteByte('\n')
				word = word[width:]
			}
			if word == "" {
				continue
			}
			switch {
			case col == 0:
			case col+1+len(word) > width:
				out.WriteByte('\n')
				col = 0
			default:
				out.WriteByte(' ')
				col++
			}
			out.WriteString(word)
			col += len(word)
		}
	}
	return strings.TrimRight(out.String(), "\n")
}

// TextDimensions returns the pixel size of s when printed.
func TextDimensions(s string) (int, int) {
	if s == "" {
		return 0, 0
	}
	lines := strings.Split(s, "\n")
	w := 0
	for _, line := range lines {
		w = max(w, len(line))
	}
	return w * FontAdvance, len(lines) * FontSize
}
