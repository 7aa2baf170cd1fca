package viewer

import "strings"

// Match is a byte range [Start, End) inside the text content.
type Match struct {
	Start, End int
}

// TextState is the text view's model: content, font zoom and find state.
type TextState struct {
	Content     string
	Zoom        Zoom
	LineNumbers bool
	// Wrap breaks long lines at the pane width instead of scrolling sideways.
	Wrap bool

	// Cursor is a byte offset; after a successful find it sits at the end of
	// the selected match.
	Cursor     int
	Selection  *Match
	Needle     string
	MatchCount int
}

// NewTextState returns an empty text state at 100% with word wrap on.
func NewTextState() *TextState {
	return &TextState{Zoom: NewTextZoom(), Wrap: true}
}

// SetText replaces the content and moves the cursor to the start. Zoom is kept.
func (s *TextState) SetText(content string) {
	s.Content = content
	s.Cursor = 0
	s.Selection = nil
	s.MatchCount = CountMatches(content, s.Needle)
}

// FindNext selects the next occurrence of needle at or after the cursor,
// wrapping to the start once. It reports whether a match is selected.
func (s *TextState) FindNext(needle string) bool {
	if needle == "" {
		return false
	}
	s.Needle = needle
	s.MatchCount = CountMatches(s.Content, needle)

	if m, ok := indexFrom(s.Content, needle, s.Cursor); ok {
		s.selectMatch(m)
		return true
	}
	s.Cursor = 0
	s.Selection = nil
	if m, ok := indexFrom(s.Content, needle, 0); ok {
		s.selectMatch(m)
		return true
	}
	return false
}

// FindPrev selects the last occurrence of needle that ends before the current
// selection (or the cursor), wrapping to the end once.
func (s *TextState) FindPrev(needle string) bool {
	if needle == "" {
		return false
	}
	s.Needle = needle
	s.MatchCount = CountMatches(s.Content, needle)

	anchor := s.Cursor
	if s.Selection != nil {
		anchor = s.Selection.Start
	}
	if m, ok := lastIndexBefore(s.Content, needle, anchor); ok {
		s.selectMatch(m)
		return true
	}
	if m, ok := lastIndexBefore(s.Content, needle, len(s.Content)); ok {
		s.selectMatch(m)
		return true
	}
	s.Cursor = 0
	s.Selection = nil
	return false
}

func (s *TextState) selectMatch(m Match) {
	s.Selection = &m
	s.Cursor = m.End
}

// ResetZoom restores the base font size.
func (s *TextState) ResetZoom() { s.Zoom.Reset() }

func indexFrom(content, needle string, from int) (Match, bool) {
	if from < 0 || from > len(content) {
		return Match{}, false
	}
	i := strings.Index(content[from:], needle)
	if i < 0 {
		return Match{}, false
	}
	start := from + i
	return Match{Start: start, End: start + len(needle)}, true
}

func lastIndexBefore(content, needle string, before int) (Match, bool) {
	if before < 0 || before > len(content) {
		return Match{}, false
	}
	i := strings.LastIndex(content[:before], needle)
	if i < 0 {
		return Match{}, false
	}
	return Match{Start: i, End: i + len(needle)}, true
}

// CountMatches counts non-overlapping occurrences of needle; an empty needle
// has no matches.
func CountMatches(content, needle string) int {
	if needle == "" {
		return 0
	}
	return strings.Count(content, needle)
}
