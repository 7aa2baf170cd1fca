package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"file-viewer/internal/viewer"
)

// ImageView draws the bitmap of a viewer.ImageState, zoomed or fitted and
// centred. Wheel ticks go to OnWheel; drags pan the image.
type ImageView struct {
	widget.BaseWidget
	state *viewer.ImageState

	OnWheel func(*fyne.ScrollEvent) bool
	OnPan   func(dx, dy int)

	dragX, dragY float32
}

// NewImageView creates a view over state.
func NewImageView(state *viewer.ImageState) *ImageView {
	v := &ImageView{state: state}
	v.ExtendBaseWidget(v)
	return v
}

// Viewport returns the widget size in whole pixels.
func (v *ImageView) Viewport() viewer.Size {
	s := v.Size()
	return viewer.Size{W: int(s.Width), H: int(s.Height)}
}

// Scrolled implements fyne.Scrollable.
func (v *ImageView) Scrolled(ev *fyne.ScrollEvent) {
	if v.OnWheel != nil {
		v.OnWheel(ev)
	}
}

// Dragged implements fyne.Draggable. Sub-pixel movement is carried over to
// the next event.
func (v *ImageView) Dragged(ev *fyne.DragEvent) {
	v.dragX += ev.Dragged.DX
	v.dragY += ev.Dragged.DY
	dx, dy := int(v.dragX), int(v.dragY)
	if dx == 0 && dy == 0 {
		return
	}
	v.dragX -= float32(dx)
	v.dragY -= float32(dy)
	if v.OnPan != nil {
		v.OnPan(dx, dy)
	}
}

// DragEnd implements fyne.Draggable.
func (v *ImageView) DragEnd() {
	v.dragX, v.dragY = 0, 0
}

// CreateRenderer returns the image renderer.
func (v *ImageView) CreateRenderer() fyne.WidgetRenderer {
	v.ExtendBaseWidget(v)

	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScaleSmooth
	img.Hide()

	return &imageViewRenderer{
		view:    v,
		img:     img,
		objects: []fyne.CanvasObject{img},
	}
}

type imageViewRenderer struct {
	view    *ImageView
	img     *canvas.Image
	objects []fyne.CanvasObject
}

func (r *imageViewRenderer) Layout(size fyne.Size) {
	rect, ok := r.view.state.Layout(viewer.Size{W: int(size.Width), H: int(size.Height)})
	if !ok || rect.W <= 0 || rect.H <= 0 {
		r.img.Hide()
		return
	}
	r.img.Move(fyne.NewPos(float32(rect.X), float32(rect.Y)))
	r.img.Resize(fyne.NewSize(float32(rect.W), float32(rect.H)))
	r.img.Show()
}

func (r *imageViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(ImageViewMinWidth, ImageViewMinHeight)
}

func (r *imageViewRenderer) Refresh() {
	if r.img.Image != r.view.state.Image {
		r.img.Image = r.view.state.Image
	}
	r.Layout(r.view.Size())
	r.img.Refresh()
	canvas.Refresh(r.view)
}

func (r *imageViewRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *imageViewRenderer) Destroy()                     {}
