package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"file-viewer/internal/format"
	"file-viewer/internal/logging"
	"file-viewer/internal/viewer"
)

// MainWindow is the viewer window: toolbar, find bar, the image and text
// panes and the status bar, all driven by one viewer.Controller.
type MainWindow struct {
	app  fyne.App
	win  fyne.Window
	ctrl *viewer.Controller
	log  *slog.Logger

	toolbar   *Toolbar
	imageView *ImageView
	textView  *TextView
	imagePane fyne.CanvasObject
	textPane  fyne.CanvasObject
	welcome   fyne.CanvasObject

	findInput     *findEntry
	findPrevBtn   *widget.Button
	findNextBtn   *widget.Button
	findCount     *widget.Label
	positionLabel *widget.Label

	status    *widget.Label
	zoomLabel *widget.Label
	sizeLabel *widget.Label
	copyBtn   *widget.Button

	recentMenu *fyne.Menu
	shortcuts  shortcutTable

	dark bool
}

// BuildMainWindow creates and configures the main application window.
func BuildMainWindow(app fyne.App) fyne.Window {
	return NewMainWindow(app).Window()
}

// NewMainWindow builds the window and its widgets.
func NewMainWindow(app fyne.App) *MainWindow {
	mw := &MainWindow{
		app:  app,
		ctrl: viewer.NewController(),
		log:  logging.New("ui"),
	}
	mw.applyTheme(true)
	mw.win = app.NewWindow("File Viewer")
	mw.win.Resize(NewWindowSize())

	mw.toolbar = NewToolbar(mw)

	mw.imageView = NewImageView(mw.ctrl.Image())
	mw.imageView.OnWheel = mw.onWheel
	mw.imageView.OnPan = mw.onPan
	mw.textView = NewTextView(mw.ctrl.Text())
	mw.textView.OnWheel = mw.onWheel
	mw.imagePane = clip(mw.imageView)
	mw.textPane = clip(mw.textView)
	mw.welcome = container.NewCenter(widget.NewLabel("Open a file to get started."))

	mw.findInput = newFindEntry()
	mw.findInput.OnSubmitted = func(string) { mw.FindNext() }
	mw.findInput.OnPrevious = mw.FindPrev
	mw.findInput.Forward = mw.shortcuts.dispatch
	mw.findPrevBtn = widget.NewButtonWithIcon("", theme.MoveUpIcon(), mw.FindPrev)
	mw.findNextBtn = widget.NewButtonWithIcon("", theme.MoveDownIcon(), mw.FindNext)
	mw.findCount = widget.NewLabel("")
	mw.positionLabel = widget.NewLabel("")
	findBar := container.NewBorder(nil, nil, nil,
		container.NewHBox(mw.findPrevBtn, mw.findNextBtn, mw.findCount, mw.positionLabel),
		mw.findInput,
	)

	mw.status = widget.NewLabel("")
	mw.status.Truncation = fyne.TextTruncateEllipsis
	mw.zoomLabel = widget.NewLabel("")
	mw.sizeLabel = widget.NewLabel("")
	mw.copyBtn = widget.NewButton("Copy Path", mw.CopyPath)
	statusBar := container.NewBorder(nil, nil, nil,
		container.NewHBox(mw.zoomLabel, mw.sizeLabel, mw.copyBtn),
		mw.status,
	)

	center := container.NewStack(mw.welcome, mw.imagePane, mw.textPane)
	content := container.NewBorder(
		container.NewVBox(mw.toolbar.Container(), findBar),
		statusBar,
		nil, nil,
		center,
	)
	mw.win.SetContent(content)

	mw.recentMenu = fyne.NewMenu("Recent")
	mw.win.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("File",
			fyne.NewMenuItem("Open…", mw.Open),
			&fyne.MenuItem{Label: "Recent", ChildMenu: mw.recentMenu},
			fyne.NewMenuItemSeparator(),
			fyne.NewMenuItem("Clear", mw.Clear),
		),
		fyne.NewMenu("Help", fyne.NewMenuItem("About", mw.About)),
	))

	mw.bindShortcuts()
	mw.refresh()
	return mw
}

// Window returns the Fyne window.
func (mw *MainWindow) Window() fyne.Window { return mw.win }

// Controller returns the controller behind the window.
func (mw *MainWindow) Controller() *viewer.Controller { return mw.ctrl }

func (mw *MainWindow) bindShortcuts() {
	mw.shortcuts.bind(fyne.KeyO, mw.Open)
	mw.shortcuts.bind(fyne.KeyF, mw.FocusFind)
	mw.shortcuts.bind(fyne.KeyPlus, mw.ZoomIn)
	mw.shortcuts.bind(fyne.KeyEqual, mw.ZoomIn)
	// Ctrl++ on layouts where + is Shift+=.
	mw.shortcuts.bindWith(fyne.KeyEqual, fyne.KeyModifierShortcutDefault|fyne.KeyModifierShift, mw.ZoomIn)
	mw.shortcuts.bind(fyne.KeyMinus, mw.ZoomOut)
	mw.shortcuts.bind(fyne.Key0, mw.ResetZoom)
	mw.shortcuts.bind(fyne.KeyL, mw.ToggleLineNumbers)
	mw.shortcuts.bind(fyne.KeyW, mw.ToggleWrap)
	mw.shortcuts.bind(fyne.KeyD, mw.ToggleDark)
	mw.shortcuts.register(mw.win.Canvas())
}

// Open shows the file dialog filtered by the toolbar's filter group.
func (mw *MainWindow) Open() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mw.log.Error("open dialog failed", "error", err)
			dialog.ShowError(err, mw.win)
			return
		}
		if reader == nil {
			return
		}
		mw.openReader(reader)
	}, mw.win)
	fd.SetFilter(storage.NewExtensionFileFilter(mw.toolbar.FilterGroup().DottedExtensions()))
	fd.Show()
}

// openReader loads the file picked in the open dialog. Only the path is used;
// the reader is closed before loading.
func (mw *MainWindow) openReader(reader fyne.URIReadCloser) {
	path := reader.URI().Path()
	if err := reader.Close(); err != nil {
		mw.log.Warn("close dialog reader failed", "path", path, "error", err)
	}
	mw.LoadPath(path)
}

// LoadPath loads path and updates the window. Errors are shown in a modal
// dialog and leave the window unchanged.
func (mw *MainWindow) LoadPath(path string) {
	if err := mw.ctrl.LoadPath(path); err != nil {
		dialog.ShowError(err, mw.win)
		return
	}
	mw.refresh()
}

// ShowRecent pops the recent-files menu up below anchor.
func (mw *MainWindow) ShowRecent(anchor fyne.CanvasObject) {
	menu := fyne.NewMenu("", mw.recentItems()...)
	pos := mw.app.Driver().AbsolutePositionForObject(anchor)
	pos = pos.Add(fyne.NewPos(0, anchor.Size().Height))
	widget.ShowPopUpMenuAtPosition(menu, mw.win.Canvas(), pos)
}

func (mw *MainWindow) recentItems() []*fyne.MenuItem {
	return recentMenuItems(mw.ctrl.Recent().MostRecentFirst(), mw.LoadPath, mw.ClearRecent)
}

// ClearRecent empties the recent-files list.
func (mw *MainWindow) ClearRecent() {
	mw.ctrl.ClearRecent()
	mw.refresh()
}

// SetFit switches fit-to-window.
func (mw *MainWindow) SetFit(fit bool) {
	mw.ctrl.SetFit(fit)
	mw.refresh()
}

// ZoomIn steps the image zoom up.
func (mw *MainWindow) ZoomIn() {
	if mw.ctrl.ZoomIn() {
		mw.refresh()
	}
}

// ZoomOut steps the image zoom down.
func (mw *MainWindow) ZoomOut() {
	if mw.ctrl.ZoomOut() {
		mw.refresh()
	}
}

// ResetZoom returns the active view to 100%.
func (mw *MainWindow) ResetZoom() {
	mw.ctrl.ResetZoom()
	mw.refresh()
}

// ToggleLineNumbers shows or hides the text gutter.
func (mw *MainWindow) ToggleLineNumbers() {
	mw.ctrl.ToggleLineNumbers()
	mw.refresh()
}

// SetWrap switches word wrap in the text pane.
func (mw *MainWindow) SetWrap(wrap bool) {
	mw.ctrl.SetWrap(wrap)
	mw.refresh()
}

// ToggleWrap flips word wrap.
func (mw *MainWindow) ToggleWrap() {
	mw.ctrl.ToggleWrap()
	mw.refresh()
}

// SetDark switches between the dark and light theme. The choice is not
// persisted.
func (mw *MainWindow) SetDark(dark bool) {
	if dark == mw.dark {
		return
	}
	mw.applyTheme(dark)
	mw.refresh()
}

// ToggleDark flips the theme variant.
func (mw *MainWindow) ToggleDark() { mw.SetDark(!mw.dark) }

func (mw *MainWindow) applyTheme(dark bool) {
	mw.dark = dark
	mw.app.Settings().SetTheme(newVariantTheme(dark))
	mw.log.Debug("theme changed", "dark", dark)
}

// Clear unloads the file.
func (mw *MainWindow) Clear() {
	mw.ctrl.Clear()
	mw.refresh()
}

// FocusFind moves keyboard focus to the find input.
func (mw *MainWindow) FocusFind() {
	mw.win.Canvas().Focus(mw.findInput)
}

// FindNext searches for the find input's text in the text pane.
func (mw *MainWindow) FindNext() {
	mw.showFound(mw.ctrl.FindNext(mw.findInput.Text))
}

// FindPrev searches backwards for the find input's text.
func (mw *MainWindow) FindPrev() {
	mw.showFound(mw.ctrl.FindPrev(mw.findInput.Text))
}

func (mw *MainWindow) showFound(found bool) {
	mw.refresh()
	if found {
		mw.textView.ShowSelection()
	}
}

// CopyPath puts the loaded path on the clipboard.
func (mw *MainWindow) CopyPath() {
	if p := mw.ctrl.Path(); p != "" {
		mw.app.Clipboard().SetContent(p)
	}
}

// About lists the shortcuts.
func (mw *MainWindow) About() {
	dialog.ShowInformation("About File Viewer", shortcutsHelp, mw.win)
}

func (mw *MainWindow) onWheel(ev *fyne.ScrollEvent) bool {
	consumed := mw.ctrl.Wheel(viewer.WheelEvent{
		DeltaY: float64(ev.Scrolled.DY),
		Ctrl:   wheelModifierHeld(),
	})
	if consumed {
		mw.refresh()
	}
	return consumed
}

func (mw *MainWindow) onPan(dx, dy int) {
	if mw.ctrl.Pan(dx, dy) {
		mw.imageView.Refresh()
	}
}

// refresh pushes the controller state into the widgets.
func (mw *MainWindow) refresh() {
	active := mw.ctrl.Active()
	switch active {
	case viewer.ViewImage:
		mw.welcome.Hide()
		mw.textPane.Hide()
		mw.imagePane.Show()
		mw.imageView.Refresh()
	case viewer.ViewText:
		mw.welcome.Hide()
		mw.imagePane.Hide()
		mw.textPane.Show()
		mw.textView.Refresh()
	default:
		mw.imagePane.Hide()
		mw.textPane.Hide()
		mw.welcome.Show()
	}

	mw.toolbar.Sync(toolbarState{
		Fit:         mw.ctrl.Image().Fit,
		ImageActive: active == viewer.ViewImage,
		Wrap:        mw.ctrl.Text().Wrap,
		Dark:        mw.dark,
	})

	mw.status.SetText(mw.ctrl.Status())
	mw.findCount.SetText(mw.ctrl.MatchLabel())
	mw.positionLabel.SetText(mw.matchPosition())
	mw.zoomLabel.SetText(mw.zoomText())
	if mw.ctrl.Path() != "" {
		mw.sizeLabel.SetText(format.FileSize(mw.ctrl.FileSize()))
		mw.copyBtn.Enable()
	} else {
		mw.sizeLabel.SetText("")
		mw.copyBtn.Disable()
	}

	mw.recentMenu.Items = mw.recentItems()
	if mm := mw.win.MainMenu(); mm != nil {
		mm.Refresh()
	}
}

func (mw *MainWindow) zoomText() string {
	if mw.ctrl.Active() == viewer.ViewImage {
		scale := mw.ctrl.Image().Scale(mw.imageView.Viewport())
		return format.ZoomPercent(int(scale*100 + 0.5))
	}
	return mw.ctrl.ZoomLabel()
}

func (mw *MainWindow) matchPosition() string {
	t := mw.ctrl.Text()
	if mw.ctrl.Active() != viewer.ViewText || t.Selection == nil {
		return ""
	}
	return format.Position(t.Content, t.Selection.Start)
}

// clip wraps obj in a non-scrolling scroller so drawing outside its bounds
// is cut off.
func clip(obj fyne.CanvasObject) fyne.CanvasObject {
	s := container.NewScroll(obj)
	s.Direction = container.ScrollNone
	return s
}
