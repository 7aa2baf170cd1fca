package ui

import "fyne.io/fyne/v2"

// AppID identifies the application to Fyne.
const AppID = "com.file-viewer.gui"

// Window dimensions
const (
	WindowWidth  = 1000
	WindowHeight = 700
)

// Text pane
const (
	TabWidth          = 4
	TextViewMinWidth  = 200
	TextViewMinHeight = 100
)

// Image pane
const (
	ImageViewMinWidth  = 200
	ImageViewMinHeight = 100
)

// Recent menu
const (
	RecentEmptyLabel = "(empty)"
	RecentClearLabel = "Clear Recent Files"
)

const shortcutsHelp = `Ctrl+O — Open file
Ctrl+F — Focus find
Ctrl++ / Ctrl+= — Zoom in
Ctrl+- — Zoom out
Ctrl+0 — Reset zoom
Ctrl+L — Toggle line numbers
Ctrl+W — Toggle word wrap
Ctrl+D — Toggle dark mode
Enter / Shift+Enter — Find next / previous
Wheel — Zoom image
Ctrl+Wheel — Zoom text
Drag — Pan image`

// NewWindowSize returns the default window size
func NewWindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}
