package viewer

import (
	"image"
	"math"
)

// Size is a width/height pair in whole pixels.
type Size struct {
	W, H int
}

// Rect is the placement of a scaled bitmap inside a viewport.
// X and Y may be negative when the bitmap is larger than the viewport.
type Rect struct {
	X, Y, W, H int
}

// FitScale returns the scale that fits bitmap inside viewport, clamped to the
// image zoom limits. It reports false for a bitmap with no area.
func FitScale(viewport, bitmap Size) (float64, bool) {
	if bitmap.W <= 0 || bitmap.H <= 0 {
		return 0, false
	}
	sx := float64(viewport.W) / float64(bitmap.W)
	sy := float64(viewport.H) / float64(bitmap.H)
	return Clamp(math.Min(sx, sy), ImageZoomMin, ImageZoomMax), true
}

// PlaceImage computes where a bitmap is drawn in viewport. With fit set and a
// non-empty bitmap the scale comes from FitScale, otherwise from factor.
func PlaceImage(viewport, bitmap Size, factor float64, fit bool) Rect {
	scale := factor
	if fit {
		if s, ok := FitScale(viewport, bitmap); ok {
			scale = s
		}
	}
	w := int(math.Floor(float64(bitmap.W) * scale))
	h := int(math.Floor(float64(bitmap.H) * scale))
	return Rect{
		X: floorDiv(viewport.W-w, 2),
		Y: floorDiv(viewport.H-h, 2),
		W: w,
		H: h,
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// ImageState is the image view's model.
type ImageState struct {
	Image image.Image
	Zoom  Zoom
	Fit   bool
	PanX  int
	PanY  int
}

// NewImageState returns an empty image state at 100%.
func NewImageState() *ImageState {
	return &ImageState{Zoom: NewImageZoom()}
}

// SetImage replaces the bitmap and resets zoom and pan. Fit is kept.
func (s *ImageState) SetImage(img image.Image) {
	s.Image = img
	s.Zoom.Reset()
	s.PanX, s.PanY = 0, 0
}

// Bounds returns the bitmap dimensions, or zero without a bitmap.
func (s *ImageState) Bounds() Size {
	if s.Image == nil {
		return Size{}
	}
	b := s.Image.Bounds()
	return Size{W: b.Dx(), H: b.Dy()}
}

// Layout places the bitmap in viewport including the pan offset. It reports
// false when there is nothing to draw.
func (s *ImageState) Layout(viewport Size) (Rect, bool) {
	if s.Image == nil {
		return Rect{}, false
	}
	r := PlaceImage(viewport, s.Bounds(), s.Zoom.Factor, s.Fit)
	r.X += s.PanX
	r.Y += s.PanY
	return r, true
}

// Scale returns the scale the next Layout would use for viewport.
func (s *ImageState) Scale(viewport Size) float64 {
	if s.Fit {
		if f, ok := FitScale(viewport, s.Bounds()); ok {
			return f
		}
	}
	return s.Zoom.Factor
}

// ZoomBy applies one multiplicative step and leaves fit-to-window mode.
func (s *ImageState) ZoomBy(m float64) {
	s.Fit = false
	s.Zoom.Apply(m)
}

// ResetZoom returns to 100%, recentres and leaves fit-to-window mode.
func (s *ImageState) ResetZoom() {
	s.Fit = false
	s.Zoom.Reset()
	s.PanX, s.PanY = 0, 0
}

// Pan moves the drawn bitmap by (dx, dy).
func (s *ImageState) Pan(dx, dy int) {
	s.PanX += dx
	s.PanY += dy
}
