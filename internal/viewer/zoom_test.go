package viewer

import (
	"math/rand"
	"testing"
)

func TestZoom_ImageClampsUnderRepeatedSteps(t *testing.T) {
	z := NewImageZoom()
	for i := 0; i < 200; i++ {
		z.In()
	}
	if z.Factor != ImageZoomMax {
		t.Errorf("after 200 zoom-ins factor = %v, want %v", z.Factor, ImageZoomMax)
	}
	for i := 0; i < 200; i++ {
		z.Out()
	}
	if z.Factor != ImageZoomMin {
		t.Errorf("after 200 zoom-outs factor = %v, want %v", z.Factor, ImageZoomMin)
	}
}

func TestZoom_TextClampsUnderRepeatedSteps(t *testing.T) {
	z := NewTextZoom()
	for i := 0; i < 100; i++ {
		z.In()
	}
	if z.Factor != TextZoomMax {
		t.Errorf("factor = %v, want %v", z.Factor, TextZoomMax)
	}
	for i := 0; i < 100; i++ {
		z.Out()
	}
	if z.Factor != TextZoomMin {
		t.Errorf("factor = %v, want %v", z.Factor, TextZoomMin)
	}
}

func TestZoom_RandomWalkStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, z := range []Zoom{NewImageZoom(), NewTextZoom()} {
		for i := 0; i < 5000; i++ {
			if rng.Intn(2) == 0 {
				z.In()
			} else {
				z.Out()
			}
			if z.Factor < z.Min || z.Factor > z.Max {
				t.Fatalf("step %d: factor %v outside [%v, %v]", i, z.Factor, z.Min, z.Max)
			}
		}
	}
}

func TestZoom_ResetAndPercent(t *testing.T) {
	z := NewImageZoom()
	z.In()
	if got := z.Percent(); got != 110 {
		t.Errorf("Percent() = %d, want 110", got)
	}
	z.Reset()
	if z.Factor != 1 {
		t.Errorf("Reset() factor = %v, want 1", z.Factor)
	}
}
