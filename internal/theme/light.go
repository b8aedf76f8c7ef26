package theme

import "github.com/jmylchreest/palettecore/internal/palette"

type light struct{}

// Light admits swatches with lightness above 50, scoring brighter
// swatches higher.
func Light() palette.Strategy {
	return light{}
}

func (light) Filter(s palette.Swatch) bool {
	return s.Color.Lightness() > 50
}

func (light) Score(s palette.Swatch) float64 {
	return s.Color.Lightness() / 100
}
