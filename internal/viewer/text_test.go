package viewer

import "testing"

func TestFindNext_CyclesAndWraps(t *testing.T) {
	s := NewTextState()
	s.SetText("ab ab ab")

	wantStarts := []int{0, 3, 6, 0, 3}
	for i, want := range wantStarts {
		if !s.FindNext("ab") {
			t.Fatalf("call %d: FindNext() = false", i)
		}
		if s.Selection == nil || s.Selection.Start != want {
			t.Fatalf("call %d: selection = %+v, want start %d", i, s.Selection, want)
		}
		if s.MatchCount != 3 {
			t.Errorf("call %d: MatchCount = %d, want 3", i, s.MatchCount)
		}
	}
}

func TestFindNext_CursorAtEndOfMatch(t *testing.T) {
	s := NewTextState()
	s.SetText("xx needle yy")
	s.FindNext("needle")
	if s.Cursor != 9 {
		t.Errorf("Cursor = %d, want 9", s.Cursor)
	}
}

func TestFindNext_CaseSensitive(t *testing.T) {
	s := NewTextState()
	s.SetText("Go go GO")
	if !s.FindNext("go") || s.Selection.Start != 3 {
		t.Errorf("selection = %+v, want start 3", s.Selection)
	}
	if s.MatchCount != 1 {
		t.Errorf("MatchCount = %d, want 1", s.MatchCount)
	}
}

func TestFindNext_NoMatch(t *testing.T) {
	s := NewTextState()
	s.SetText("hello")
	if s.FindNext("zz") {
		t.Error("FindNext() = true for missing needle")
	}
	if s.Selection != nil || s.Cursor != 0 || s.MatchCount != 0 {
		t.Errorf("state after miss: sel=%+v cursor=%d count=%d", s.Selection, s.Cursor, s.MatchCount)
	}
}

func TestFindNext_EmptyNeedleIsNoop(t *testing.T) {
	s := NewTextState()
	s.SetText("abc")
	s.FindNext("b")
	if s.FindNext("") {
		t.Error("FindNext(\"\") = true")
	}
	if s.Needle != "b" || s.Selection == nil {
		t.Error("empty needle changed find state")
	}
}

func TestSetText_RecountsAndKeepsZoom(t *testing.T) {
	s := NewTextState()
	s.SetText("aaa")
	s.FindNext("a")
	s.Zoom.In()

	s.SetText("a b a b a")
	if s.MatchCount != 3 {
		t.Errorf("MatchCount = %d, want 3", s.MatchCount)
	}
	if s.Cursor != 0 || s.Selection != nil {
		t.Error("SetText() should move the cursor to the start")
	}
	if s.Zoom.Factor == 1 {
		t.Error("SetText() reset the zoom")
	}
}

func TestCountMatches_NonOverlapping(t *testing.T) {
	if got := CountMatches("aaaa", "aa"); got != 2 {
		t.Errorf("CountMatches() = %d, want 2", got)
	}
	if got := CountMatches("abc", ""); got != 0 {
		t.Errorf("CountMatches(empty needle) = %d, want 0", got)
	}
}

func TestFindPrev_CyclesBackwardsAndWraps(t *testing.T) {
	s := NewTextState()
	s.SetText("ab ab ab")

	wantStarts := []int{6, 3, 0, 6}
	for i, want := range wantStarts {
		if !s.FindPrev("ab") {
			t.Fatalf("call %d: FindPrev() = false", i)
		}
		if s.Selection == nil || s.Selection.Start != want {
			t.Fatalf("call %d: selection = %+v, want start %d", i, s.Selection, want)
		}
	}
	if s.MatchCount != 3 {
		t.Errorf("MatchCount = %d, want 3", s.MatchCount)
	}
}

func TestFindPrev_AfterFindNext(t *testing.T) {
	s := NewTextState()
	s.SetText("ab ab ab")
	s.FindNext("ab")
	s.FindNext("ab")
	if !s.FindPrev("ab") || s.Selection.Start != 0 {
		t.Fatalf("selection = %+v, want start 0", s.Selection)
	}
	if !s.FindNext("ab") || s.Selection.Start != 3 {
		t.Errorf("selection = %+v, want start 3", s.Selection)
	}
}

func TestFindPrev_NoMatch(t *testing.T) {
	s := NewTextState()
	s.SetText("hello")
	if s.FindPrev("zz") {
		t.Error("FindPrev() = true, want false")
	}
	if s.Selection != nil || s.MatchCount != 0 {
		t.Errorf("selection = %+v count = %d", s.Selection, s.MatchCount)
	}
	if s.FindPrev("") {
		t.Error("FindPrev(\"\") = true")
	}
}
