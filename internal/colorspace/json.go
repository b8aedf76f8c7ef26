package colorspace

import "encoding/json"

// colorJSON mirrors the canonical swatch color shape: hex plus the three
// derived representations a caller might want without doing its own
// conversion.
type colorJSON struct {
	Hex string  `json:"hex"`
	RGB rgbJSON `json:"rgb"`
	HSL hslJSON `json:"hsl"`
	Lab labJSON `json:"lab"`
}

type rgbJSON struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

type hslJSON struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

type labJSON struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// MarshalJSON renders the color as hex plus its RGB, HSL, and Lab
// representations.
func (c Color) MarshalJSON() ([]byte, error) {
	rgb := LabToRGB(c)
	hsl := RGBToHSL(rgb)
	return json.Marshal(colorJSON{
		Hex: rgb.ToHex(),
		RGB: rgbJSON{R: rgb.R, G: rgb.G, B: rgb.B},
		HSL: hslJSON{H: hsl.H, S: hsl.S, L: hsl.L},
		Lab: labJSON{L: c.l, A: c.a, B: c.b},
	})
}

// UnmarshalJSON reconstructs a Color from its Lab field, the only
// lossless representation in the marshaled shape.
func (c *Color) UnmarshalJSON(data []byte) error {
	var cj colorJSON
	if err := json.Unmarshal(data, &cj); err != nil {
		return err
	}
	*c = NewLab(cj.Lab.L, cj.Lab.A, cj.Lab.B)
	return nil
}
