package colorspace

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHex parses a CSS-style hex color string in any of the four forms
// #RGB, #RGBA, #RRGGBB, #RRGGBBAA (case-insensitive), returning an RGBA
// with full opacity when no alpha digits are present.
func ParseHex(s string) (RGBA, error) {
	trimmed := strings.TrimPrefix(s, "#")
	if len(trimmed) != len(s)-1 {
		return RGBA{}, &ParseError{Input: s, Reason: "missing leading '#'"}
	}

	switch len(trimmed) {
	case 3:
		return expandShort(trimmed, "")
	case 4:
		return expandShort(trimmed[:3], trimmed[3:4])
	case 6:
		return expandLong(trimmed, "")
	case 8:
		return expandLong(trimmed[:6], trimmed[6:8])
	default:
		return RGBA{}, &ParseError{Input: s, Reason: fmt.Sprintf("unsupported length %d", len(trimmed))}
	}
}

func expandShort(rgb string, a string) (RGBA, error) {
	doubled := make([]byte, 0, 6)
	for i := 0; i < len(rgb); i++ {
		doubled = append(doubled, rgb[i], rgb[i])
	}
	alphaHex := ""
	if a != "" {
		alphaHex = string([]byte{a[0], a[0]})
	}
	return expandLong(string(doubled), alphaHex)
}

func expandLong(rgb string, alphaHex string) (RGBA, error) {
	r, err := parseByte(rgb[0:2])
	if err != nil {
		return RGBA{}, &ParseError{Input: rgb, Reason: "invalid red channel"}
	}
	g, err := parseByte(rgb[2:4])
	if err != nil {
		return RGBA{}, &ParseError{Input: rgb, Reason: "invalid green channel"}
	}
	b, err := parseByte(rgb[4:6])
	if err != nil {
		return RGBA{}, &ParseError{Input: rgb, Reason: "invalid blue channel"}
	}

	alpha := 1.0
	if alphaHex != "" {
		av, err := parseByte(alphaHex)
		if err != nil {
			return RGBA{}, &ParseError{Input: alphaHex, Reason: "invalid alpha channel"}
		}
		alpha = float64(av) / 255
	}

	return RGBA{R: r, G: g, B: b, A: alpha}, nil
}

func parseByte(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}

// ToHex renders an RGB color as "#RRGGBB", uppercase, matching the spec's
// canonical hex round-trip.
func (rgb RGB) ToHex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// ToHexAlpha renders an RGBA color as "#RRGGBBAA", uppercase.
func (rgba RGBA) ToHexAlpha() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", rgba.R, rgba.G, rgba.B, clampByte(rgba.A*255))
}
