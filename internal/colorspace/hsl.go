package colorspace

import "math"

// HSL is a hue/saturation/lightness color. Hue is in [0,360), saturation
// and lightness are in [0,1].
type HSL struct {
	H, S, L float64
}

// RGBToHSL converts an 8-bit sRGB color to HSL.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2

	if delta == 0 {
		return HSL{H: 0, S: 0, L: l}
	}

	var s float64
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2 - maxVal - minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	h *= 60

	return HSL{H: h, S: s, L: l}
}

// HSLToRGB converts an HSL color to 8-bit sRGB.
func HSLToRGB(hsl HSL) RGB {
	if hsl.S == 0 {
		v := clampByte(hsl.L * 255)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if hsl.L < 0.5 {
		q = hsl.L * (1 + hsl.S)
	} else {
		q = hsl.L + hsl.S - hsl.L*hsl.S
	}
	p := 2*hsl.L - q

	r := hueToChannel(p, q, hsl.H+120)
	g := hueToChannel(p, q, hsl.H)
	b := hueToChannel(p, q, hsl.H-120)

	return RGB{
		R: clampByte(r * 255),
		G: clampByte(g * 255),
		B: clampByte(b * 255),
	}
}

// hueToChannel is the clock-face helper shared by HSLToRGB's three
// channel computations.
func hueToChannel(p, q, t float64) float64 {
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}

	switch {
	case t < 60:
		return p + (q-p)*t/60
	case t < 180:
		return q
	case t < 240:
		return p + (q-p)*(240-t)/60
	default:
		return p
	}
}
