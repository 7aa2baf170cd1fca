package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

type shortcutBinding struct {
	shortcut *desktop.CustomShortcut
	action   func()
}

// shortcutTable maps window shortcuts to actions. It is registered on the
// canvas and consulted directly by the find input.
type shortcutTable struct {
	bindings []shortcutBinding
}

// bind maps Ctrl+key (Cmd+key on macOS) to action.
func (t *shortcutTable) bind(key fyne.KeyName, action func()) {
	t.bindWith(key, fyne.KeyModifierShortcutDefault, action)
}

func (t *shortcutTable) bindWith(key fyne.KeyName, mod fyne.KeyModifier, action func()) {
	t.bindings = append(t.bindings, shortcutBinding{
		shortcut: &desktop.CustomShortcut{KeyName: key, Modifier: mod},
		action:   action,
	})
}

// register adds every binding to c.
func (t *shortcutTable) register(c fyne.Canvas) {
	for _, b := range t.bindings {
		action := b.action
		c.AddShortcut(b.shortcut, func(fyne.Shortcut) { action() })
	}
}

// dispatch runs the action bound to s and reports whether there was one.
func (t *shortcutTable) dispatch(s *desktop.CustomShortcut) bool {
	for _, b := range t.bindings {
		if b.shortcut.KeyName == s.KeyName && b.shortcut.Modifier == s.Modifier {
			b.action()
			return true
		}
	}
	return false
}

// wheelModifierHeld reports whether Ctrl (or Cmd) is down, as seen by the
// desktop driver.
func wheelModifierHeld() bool {
	app := fyne.CurrentApp()
	if app == nil {
		return false
	}
	d, ok := app.Driver().(desktop.Driver)
	if !ok {
		return false
	}
	mods := d.CurrentKeyModifiers()
	return mods&(fyne.KeyModifierControl|fyne.KeyModifierSuper) != 0
}
