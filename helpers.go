package main

import (
	"fmt"
	"strings"
)

// truncate truncates a string to maxLen, padding with spaces if shorter
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= maxLen {
		return s + strings.Repeat(" ", maxLen-len(r))
	}
	return string(r[:maxLen-1]) + "…"
}

// formatNames joins names for a one-line prompt, replacing whatever does
// not fit in maxWidth with a "+N" suffix.
func formatNames(names []string, maxWidth int) string {
	if len(names) == 0 {
		return ""
	}

	result := names[0]
	shown := 1
	for i := 1; i < len(names); i++ {
		next := ", " + names[i]
		remaining := len(names) - i - 1

		// Space needed for the "+N" suffix if we stop after this name
		suffixLen := 0
		if remaining > 0 {
			suffixLen = len(fmt.Sprintf(" +%d", remaining))
		}

		if len(result)+len(next)+suffixLen > maxWidth {
			break
		}

		result += next
		shown++
	}

	if rest := len(names) - shown; rest > 0 {
		result += fmt.Sprintf(" +%d", rest)
	}
	return result
}
