package colorspace

import (
	"math"
	"testing"
)

func TestRGBLabRoundTrip(t *testing.T) {
	samples := []RGB{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 255, B: 255},
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
		{R: 128, G: 64, B: 200},
		{R: 17, G: 200, B: 233},
		{R: 90, G: 90, B: 90},
	}

	for _, rgb := range samples {
		lab := RGBToLab(rgb)
		back := LabToRGB(lab)

		if diff := math.Abs(float64(rgb.R) - float64(back.R)); diff > 1 {
			t.Errorf("RGBToLab(%v).LabToRGB R channel drifted by %v", rgb, diff)
		}
		if diff := math.Abs(float64(rgb.G) - float64(back.G)); diff > 1 {
			t.Errorf("RGBToLab(%v).LabToRGB G channel drifted by %v", rgb, diff)
		}
		if diff := math.Abs(float64(rgb.B) - float64(back.B)); diff > 1 {
			t.Errorf("RGBToLab(%v).LabToRGB B channel drifted by %v", rgb, diff)
		}
	}
}

func TestRGBToXYZWhiteIsWhitePoint(t *testing.T) {
	x, y, z := RGBToXYZ(RGB{R: 255, G: 255, B: 255})
	if math.Abs(x-whiteX) > 0.01 || math.Abs(y-whiteY) > 0.01 || math.Abs(z-whiteZ) > 0.01 {
		t.Errorf("RGBToXYZ(white) = (%v,%v,%v), want close to D65 white (%v,%v,%v)",
			x, y, z, whiteX, whiteY, whiteZ)
	}
}

func TestRGBToXYZBlackIsOrigin(t *testing.T) {
	x, y, z := RGBToXYZ(RGB{R: 0, G: 0, B: 0})
	if x != 0 || y != 0 || z != 0 {
		t.Errorf("RGBToXYZ(black) = (%v,%v,%v), want (0,0,0)", x, y, z)
	}
}

func TestToRGBAClampsChannelsAndOpacity(t *testing.T) {
	got := ToRGBA(300, -10, 128, 2.5)
	want := RGBA{R: 255, G: 0, B: 128, A: 1}
	if got != want {
		t.Errorf("ToRGBA(300,-10,128,2.5) = %+v, want %+v", got, want)
	}

	got = ToRGBA(50, 50, 50, -1)
	if got.A != 0 {
		t.Errorf("ToRGBA(...,-1).A = %v, want 0", got.A)
	}
}

func TestSRGBCompandingRoundTrip(t *testing.T) {
	for u := 0.0; u <= 1.0; u += 0.05 {
		linear := srgbToLinear(u)
		back := linearToSRGB(linear)
		if diff := math.Abs(u - back); diff > 1e-9 {
			t.Errorf("srgbToLinear/linearToSRGB round trip for %v drifted by %v", u, diff)
		}
	}
}
