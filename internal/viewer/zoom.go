package viewer

import "math"

// Zoom limits and per-tick multipliers.
const (
	ImageZoomMin  = 0.1
	ImageZoomMax  = 6.0
	ImageZoomStep = 1.1

	TextZoomMin  = 0.6
	TextZoomMax  = 3.0
	TextZoomStep = 1.05
)

// Zoom is a multiplicative zoom factor bounded to [Min, Max].
type Zoom struct {
	Factor float64
	Min    float64
	Max    float64
	Step   float64
}

// NewImageZoom returns a zoom at 1.0 with the image limits.
func NewImageZoom() Zoom {
	return Zoom{Factor: 1, Min: ImageZoomMin, Max: ImageZoomMax, Step: ImageZoomStep}
}

// NewTextZoom returns a zoom at 1.0 with the text limits.
func NewTextZoom() Zoom {
	return Zoom{Factor: 1, Min: TextZoomMin, Max: TextZoomMax, Step: TextZoomStep}
}

// In multiplies the factor by Step.
func (z *Zoom) In() { z.Apply(z.Step) }

// Out divides the factor by Step.
func (z *Zoom) Out() { z.Apply(1 / z.Step) }

// Apply multiplies the factor by m and clamps the result.
func (z *Zoom) Apply(m float64) {
	z.Factor = Clamp(z.Factor*m, z.Min, z.Max)
}

// Reset returns the factor to 1.0.
func (z *Zoom) Reset() { z.Factor = 1 }

// Percent returns the factor as a rounded percentage.
func (z Zoom) Percent() int {
	return int(math.Round(z.Factor * 100))
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
