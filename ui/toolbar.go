package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"file-viewer/internal/viewer"
)

// toolbarActions is what the toolbar buttons trigger.
type toolbarActions interface {
	Open()
	ShowRecent(anchor fyne.CanvasObject)
	SetFit(fit bool)
	SetWrap(wrap bool)
	SetDark(dark bool)
	ZoomIn()
	ZoomOut()
	ResetZoom()
	Clear()
	About()
}

// toolbarState is the controller and window state the toolbar mirrors.
type toolbarState struct {
	Fit         bool
	ImageActive bool
	Wrap        bool
	Dark        bool
}

// Toolbar holds the Open/Recent/zoom/view/Clear controls.
type Toolbar struct {
	openBtn      *widget.Button
	filterSelect *widget.Select
	recentBtn    *widget.Button
	fitCheck     *widget.Check
	zoomOutBtn   *widget.Button
	zoomInBtn    *widget.Button
	resetBtn     *widget.Button
	wrapCheck    *widget.Check
	darkCheck    *widget.Check
	clearBtn     *widget.Button
	aboutBtn     *widget.Button

	groups    []viewer.FilterGroup
	container *fyne.Container
}

// NewToolbar creates the toolbar wired to actions.
func NewToolbar(actions toolbarActions) *Toolbar {
	tb := &Toolbar{groups: viewer.FilterGroups()}

	names := make([]string, len(tb.groups))
	for i, g := range tb.groups {
		names[i] = g.Name
	}

	tb.openBtn = widget.NewButton("Open…", actions.Open)
	tb.filterSelect = widget.NewSelect(names, nil)
	tb.filterSelect.SetSelected(names[0])

	tb.recentBtn = widget.NewButton("Recent", nil)
	tb.recentBtn.OnTapped = func() { actions.ShowRecent(tb.recentBtn) }

	tb.fitCheck = widget.NewCheck("Fit to Window", actions.SetFit)
	tb.zoomOutBtn = widget.NewButton("Zoom -", actions.ZoomOut)
	tb.zoomInBtn = widget.NewButton("Zoom +", actions.ZoomIn)
	tb.resetBtn = widget.NewButton("100%", actions.ResetZoom)
	tb.wrapCheck = widget.NewCheck("Word Wrap", actions.SetWrap)
	tb.darkCheck = widget.NewCheck("Dark Mode", actions.SetDark)
	tb.clearBtn = widget.NewButton("Clear", actions.Clear)
	tb.aboutBtn = widget.NewButton("About", actions.About)

	tb.container = container.NewHBox(
		tb.openBtn,
		tb.filterSelect,
		tb.recentBtn,
		widget.NewSeparator(),
		tb.fitCheck,
		tb.zoomOutBtn,
		tb.zoomInBtn,
		tb.resetBtn,
		widget.NewSeparator(),
		tb.wrapCheck,
		tb.darkCheck,
		widget.NewSeparator(),
		tb.clearBtn,
		tb.aboutBtn,
	)
	return tb
}

// Container returns the toolbar container.
func (tb *Toolbar) Container() *fyne.Container {
	return tb.container
}

// FilterGroup returns the selected open-dialog filter group.
func (tb *Toolbar) FilterGroup() viewer.FilterGroup {
	for _, g := range tb.groups {
		if g.Name == tb.filterSelect.Selected {
			return g
		}
	}
	return tb.groups[0]
}

// Sync mirrors the state onto the checkboxes and buttons.
func (tb *Toolbar) Sync(st toolbarState) {
	syncCheck(tb.fitCheck, st.Fit)
	syncCheck(tb.wrapCheck, st.Wrap)
	syncCheck(tb.darkCheck, st.Dark)
	if st.ImageActive {
		tb.zoomInBtn.Enable()
		tb.zoomOutBtn.Enable()
	} else {
		tb.zoomInBtn.Disable()
		tb.zoomOutBtn.Disable()
	}
}

func syncCheck(c *widget.Check, v bool) {
	if c.Checked != v {
		c.SetChecked(v)
	}
}
