package format

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// LineCount returns the newline count plus one for non-empty text, zero for
// empty text. A trailing newline therefore counts as an extra blank line.
func LineCount(text string) int {
	if text == "" {
		return 0
	}
	return strings.Count(text, "\n") + 1
}

// ImageStatus produces the status bar line for a loaded image.
func ImageStatus(path string, width, height int) string {
	return fmt.Sprintf("%s — %dx%d px", path, width, height)
}

// TextStatus produces the status bar line for loaded text.
func TextStatus(path string, content string) string {
	return fmt.Sprintf("%s — %d lines", path, LineCount(content))
}

// MatchCount labels the find result count.
func MatchCount(n int) string {
	return fmt.Sprintf("%d match(es)", n)
}

// ZoomPercent formats a zoom percentage.
func ZoomPercent(percent int) string {
	return fmt.Sprintf("%d%%", percent)
}

// FileSize formats a byte count as B, KB or MB.
func FileSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d B", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
}

// LineColumn converts a byte offset in text to a 0-based line and a rune
// column on that line, as used by grid widgets.
func LineColumn(text string, offset int) (line, col int) {
	if offset > len(text) {
		offset = len(text)
	}
	if offset < 0 {
		offset = 0
	}
	before := text[:offset]
	line = strings.Count(before, "\n")
	start := strings.LastIndexByte(before, '\n') + 1
	col = len([]rune(before[start:]))
	return line, col
}

// Position formats a byte offset as "Ln L, Col C" (1-based). The column is a
// display column, so wide runes occupy two cells.
func Position(text string, offset int) string {
	if offset > len(text) {
		offset = len(text)
	}
	if offset < 0 {
		offset = 0
	}
	before := text[:offset]
	line := strings.Count(before, "\n") + 1
	start := strings.LastIndexByte(before, '\n') + 1
	col := runewidth.StringWidth(before[start:]) + 1
	return fmt.Sprintf("Ln %d, Col %d", line, col)
}
