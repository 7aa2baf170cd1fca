package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// findEntry is the single-line find input. A focused Entry swallows canvas
// shortcuts, so custom shortcuts are offered to Forward first. Enter submits;
// Shift+Enter calls OnPrevious instead.
type findEntry struct {
	widget.Entry
	Forward    func(*desktop.CustomShortcut) bool
	OnPrevious func()

	shift bool
}

func newFindEntry() *findEntry {
	e := &findEntry{}
	e.PlaceHolder = "Find… (Ctrl+F)"
	e.ExtendBaseWidget(e)
	return e
}

// TypedShortcut hands window shortcuts to Forward and everything else, such
// as copy and paste, to the Entry.
func (e *findEntry) TypedShortcut(s fyne.Shortcut) {
	if cs, ok := s.(*desktop.CustomShortcut); ok && e.Forward != nil {
		if e.Forward(cs) {
			return
		}
	}
	e.Entry.TypedShortcut(s)
}

// TypedKey clears the input on Escape and searches backwards on Shift+Enter.
func (e *findEntry) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyEscape:
		e.SetText("")
		return
	case fyne.KeyReturn, fyne.KeyEnter:
		if e.shift && e.OnPrevious != nil {
			e.OnPrevious()
			return
		}
	}
	e.Entry.TypedKey(ev)
}

// KeyDown tracks Shift for Shift+Enter.
func (e *findEntry) KeyDown(ev *fyne.KeyEvent) {
	if isShift(ev.Name) {
		e.shift = true
	}
	e.Entry.KeyDown(ev)
}

// KeyUp tracks Shift for Shift+Enter.
func (e *findEntry) KeyUp(ev *fyne.KeyEvent) {
	if isShift(ev.Name) {
		e.shift = false
	}
	e.Entry.KeyUp(ev)
}

func isShift(k fyne.KeyName) bool {
	return k == desktop.KeyShiftLeft || k == desktop.KeyShiftRight
}
