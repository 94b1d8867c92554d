// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates a string to fit within maxWidth visual columns,
// appending an ellipsis when it had to cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// Wrap breaks s into lines no wider than width visual columns, splitting on
// whitespace. A single word wider than width is truncated.
func Wrap(s string, width int) string {
	words := strings.Fields(s)
	if width <= 0 || len(words) == 0 {
		return strings.Join(words, " ")
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, w := range words {
		w = Truncate(w, width)
		ww := VisualWidth(w)
		if lineWidth > 0 && lineWidth+1+ww > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(w)
		lineWidth += ww
	}
	lines = append(lines, line.String())
	return strings.Join(lines, "\n")
}
