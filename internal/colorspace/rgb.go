package colorspace

import "math"

// RGB is an 8-bit-per-channel sRGB color with no opacity.
type RGB struct {
	R, G, B uint8
}

// RGBA is an 8-bit-per-channel sRGB color with an opacity in [0,1].
type RGBA struct {
	R, G, B uint8
	A       float64
}

// clampByte clamps a float to [0,255] and rounds to the nearest integer
// before truncating to uint8.
func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}

// clampOpacity clamps an opacity value to [0,1].
func clampOpacity(v float64) float64 {
	return clamp(v, 0, 1)
}

// srgbToLinear applies the inverse sRGB companding function to a channel
// already scaled to [0,1].
func srgbToLinear(u float64) float64 {
	if u <= 0.04045 {
		return u / 12.92
	}
	return math.Pow((u+0.055)/1.055, 2.4)
}

// linearToSRGB applies sRGB companding to a linear channel in [0,1].
func linearToSRGB(u float64) float64 {
	if u <= 0.0031308 {
		return u * 12.92
	}
	return 1.055*math.Pow(u, 1/2.4) - 0.055
}

// RGBToXYZ converts an 8-bit sRGB color to CIE XYZ (D65), with Y scaled to
// [0,100].
func RGBToXYZ(rgb RGB) (x, y, z float64) {
	r := srgbToLinear(float64(rgb.R) / 255)
	g := srgbToLinear(float64(rgb.G) / 255)
	b := srgbToLinear(float64(rgb.B) / 255)

	x = (r*0.4124564 + g*0.3575761 + b*0.1804375) * 100
	y = (r*0.2126729 + g*0.7151522 + b*0.0721750) * 100
	z = (r*0.0193339 + g*0.1191920 + b*0.9503041) * 100
	return
}

// XYZToRGB converts CIE XYZ (D65, Y scaled to [0,100]) to an 8-bit sRGB
// color, clamping the final result to [0,255] per channel.
func XYZToRGB(x, y, z float64) RGB {
	x /= 100
	y /= 100
	z /= 100

	r := x*3.2404542 + y*-1.5371385 + z*-0.4985314
	g := x*-0.9692660 + y*1.8760108 + z*0.0415560
	b := x*0.0556434 + y*-0.2040259 + z*1.0572252

	return RGB{
		R: clampByte(linearToSRGB(r) * 255),
		G: clampByte(linearToSRGB(g) * 255),
		B: clampByte(linearToSRGB(b) * 255),
	}
}

// RGBToLab converts an 8-bit sRGB color directly to a Lab Color.
func RGBToLab(rgb RGB) Color {
	x, y, z := RGBToXYZ(rgb)
	return XYZToLab(x, y, z)
}

// LabToRGB converts a Lab Color directly to an 8-bit sRGB color. The round
// trip through Lab need not be exact; it is guaranteed within 1 RGB unit
// per channel for opaque, in-gamut colors.
func LabToRGB(c Color) RGB {
	x, y, z := LabToXYZ(c)
	return XYZToRGB(x, y, z)
}

// ToRGBA clamps raw RGB channels to [0,255] and opacity to [0,1], as
// required before any conversion per the spec's rgb_to_lab contract.
func ToRGBA(r, g, b float64, a float64) RGBA {
	return RGBA{
		R: clampByte(r),
		G: clampByte(g),
		B: clampByte(b),
		A: clampOpacity(a),
	}
}
