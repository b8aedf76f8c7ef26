package colorspace

import (
	"math"
	"testing"
)

func TestRGBHSLRoundTrip(t *testing.T) {
	samples := []RGB{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 255, B: 255},
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
		{R: 128, G: 128, B: 128},
		{R: 200, G: 150, B: 50},
		{R: 17, G: 233, B: 90},
	}

	for _, rgb := range samples {
		hsl := RGBToHSL(rgb)
		back := HSLToRGB(hsl)

		if diff := math.Abs(float64(rgb.R) - float64(back.R)); diff > 1 {
			t.Errorf("RGB->HSL->RGB round trip for %v drifted R by %v", rgb, diff)
		}
		if diff := math.Abs(float64(rgb.G) - float64(back.G)); diff > 1 {
			t.Errorf("RGB->HSL->RGB round trip for %v drifted G by %v", rgb, diff)
		}
		if diff := math.Abs(float64(rgb.B) - float64(back.B)); diff > 1 {
			t.Errorf("RGB->HSL->RGB round trip for %v drifted B by %v", rgb, diff)
		}
	}
}

func TestRGBToHSLGrayHasZeroSaturation(t *testing.T) {
	hsl := RGBToHSL(RGB{R: 128, G: 128, B: 128})
	if hsl.S != 0 {
		t.Errorf("RGBToHSL(gray).S = %v, want 0", hsl.S)
	}
}

func TestHueToChannelWrapsNegativeAndOverflow(t *testing.T) {
	a := hueToChannel(0, 1, -10)
	b := hueToChannel(0, 1, 350)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("hueToChannel(-10) = %v, hueToChannel(350) = %v, want equal", a, b)
	}
}
