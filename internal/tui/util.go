package tui

import "strings"

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// firstLine returns s up to its first newline.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
