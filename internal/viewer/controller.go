// Package viewer holds the toolkit-independent model of the file viewer: which
// view is active, the image and text view states, the recent-files list and
// routing of zoom and wheel input.
package viewer

import (
	"log/slog"

	"file-viewer/internal/format"
	"file-viewer/internal/loader"
	"file-viewer/internal/logging"
)

// View is the active view. Exactly one value holds at a time, so the image and
// text views can never both be shown.
type View int

const (
	ViewEmpty View = iota
	ViewImage
	ViewText
)

func (v View) String() string {
	switch v {
	case ViewImage:
		return "image"
	case ViewText:
		return "text"
	default:
		return "empty"
	}
}

// WheelEvent is one wheel tick as seen by the window.
type WheelEvent struct {
	DeltaY float64
	Ctrl   bool
}

// Controller owns the loaded file and routes input to the active view.
type Controller struct {
	active   View
	path     string
	status   string
	fileSize int64

	image  *ImageState
	text   *TextState
	recent *RecentList

	log *slog.Logger
}

// NewController returns a controller in the empty state.
func NewController() *Controller {
	return &Controller{
		image:  NewImageState(),
		text:   NewTextState(),
		recent: NewRecentList(RecentCapacity),
		log:    logging.New("viewer"),
	}
}

// Active returns the active view.
func (c *Controller) Active() View { return c.active }

// Path returns the loaded path, or "" when empty.
func (c *Controller) Path() string { return c.path }

// Status returns the status bar text.
func (c *Controller) Status() string { return c.status }

// FileSize returns the size in bytes of the loaded file.
func (c *Controller) FileSize() int64 { return c.fileSize }

// Image returns the image view state. It is kept while hidden.
func (c *Controller) Image() *ImageState { return c.image }

// Text returns the text view state. It is kept while hidden.
func (c *Controller) Text() *TextState { return c.text }

// Recent returns the recent-files list.
func (c *Controller) Recent() *RecentList { return c.recent }

// LoadPath loads path into the view chosen by its extension. On error nothing
// changes and a *loader.Error is returned.
func (c *Controller) LoadPath(path string) error {
	switch Classify(path) {
	case KindImage:
		img, err := loader.LoadImage(path)
		if err != nil {
			c.log.Error("load image failed", "path", path, "error", err)
			return err
		}
		c.image.SetImage(img.Bitmap)
		c.active = ViewImage
		c.status = format.ImageStatus(path, img.Width(), img.Height())
		c.fileSize = img.Bytes
		c.log.Info("loaded image", "path", path, "format", img.Format,
			"width", img.Width(), "height", img.Height())
	default:
		txt, err := loader.LoadText(path)
		if err != nil {
			c.log.Error("load text failed", "path", path, "error", err)
			return err
		}
		c.text.SetText(txt.Content)
		c.active = ViewText
		c.status = format.TextStatus(path, txt.Content)
		c.fileSize = txt.Bytes
		c.log.Info("loaded text", "path", path, "bytes", txt.Bytes)
	}
	c.path = path
	c.recent.Touch(path)
	return nil
}

// Clear drops the loaded file, blanks both views and clears the status.
func (c *Controller) Clear() {
	c.active = ViewEmpty
	c.path = ""
	c.status = ""
	c.fileSize = 0
	c.image.SetImage(nil)
	c.text.SetText("")
}

// ClearRecent empties the recent-files list.
func (c *Controller) ClearRecent() { c.recent.Clear() }

// Wheel routes one wheel tick. The image view zooms on any tick; the text view
// zooms only with Ctrl held. It reports whether the tick was consumed.
func (c *Controller) Wheel(ev WheelEvent) bool {
	if ev.DeltaY == 0 {
		return false
	}
	switch c.active {
	case ViewImage:
		if ev.DeltaY > 0 {
			c.image.ZoomBy(ImageZoomStep)
		} else {
			c.image.ZoomBy(1 / ImageZoomStep)
		}
		c.log.Debug("image zoom", "factor", c.image.Zoom.Factor)
		return true
	case ViewText:
		if !ev.Ctrl {
			return false
		}
		if ev.DeltaY > 0 {
			c.text.Zoom.In()
		} else {
			c.text.Zoom.Out()
		}
		c.log.Debug("text zoom", "factor", c.text.Zoom.Factor)
		return true
	}
	return false
}

// ZoomIn steps the image zoom up. It is a no-op unless the image is shown.
func (c *Controller) ZoomIn() bool { return c.zoomImage(ImageZoomStep) }

// ZoomOut steps the image zoom down. It is a no-op unless the image is shown.
func (c *Controller) ZoomOut() bool { return c.zoomImage(1 / ImageZoomStep) }

func (c *Controller) zoomImage(m float64) bool {
	if c.active != ViewImage {
		return false
	}
	c.image.ZoomBy(m)
	return true
}

// ResetZoom returns the image to 100% when it is shown, otherwise restores the
// text font size.
func (c *Controller) ResetZoom() {
	if c.active == ViewImage {
		c.image.ResetZoom()
		return
	}
	c.text.ResetZoom()
}

// SetFit switches fit-to-window without touching the stored zoom factor.
func (c *Controller) SetFit(fit bool) { c.image.Fit = fit }

// Pan moves the image when it is shown.
func (c *Controller) Pan(dx, dy int) bool {
	if c.active != ViewImage {
		return false
	}
	c.image.Pan(dx, dy)
	return true
}

// ToggleLineNumbers flips the text gutter and returns the new setting.
func (c *Controller) ToggleLineNumbers() bool {
	c.text.LineNumbers = !c.text.LineNumbers
	return c.text.LineNumbers
}

// SetWrap switches word wrap in the text view.
func (c *Controller) SetWrap(wrap bool) { c.text.Wrap = wrap }

// ToggleWrap flips word wrap and returns the new setting.
func (c *Controller) ToggleWrap() bool {
	c.text.Wrap = !c.text.Wrap
	return c.text.Wrap
}

// FindNext searches the text view. It is a no-op for an empty needle or when
// the text view is not shown.
func (c *Controller) FindNext(needle string) bool {
	if needle == "" || c.active != ViewText {
		return false
	}
	return c.text.FindNext(needle)
}

// FindPrev searches the text view backwards, under the same conditions as
// FindNext.
func (c *Controller) FindPrev(needle string) bool {
	if needle == "" || c.active != ViewText {
		return false
	}
	return c.text.FindPrev(needle)
}

// MatchLabel returns the find count label, blank unless text is shown.
func (c *Controller) MatchLabel() string {
	if c.active != ViewText || c.text.Needle == "" {
		return ""
	}
	return format.MatchCount(c.text.MatchCount)
}

// ZoomLabel returns the zoom percentage of the active view.
func (c *Controller) ZoomLabel() string {
	switch c.active {
	case ViewImage:
		return format.ZoomPercent(c.image.Zoom.Percent())
	case ViewText:
		return format.ZoomPercent(c.text.Zoom.Percent())
	}
	return ""
}
