package theme

import "github.com/jmylchreest/palettecore/internal/palette"

type dark struct{}

// Dark admits swatches with lightness at or below 50, scoring darker
// swatches higher.
func Dark() palette.Strategy {
	return dark{}
}

func (dark) Filter(s palette.Swatch) bool {
	return s.Color.Lightness() <= 50
}

func (dark) Score(s palette.Swatch) float64 {
	return 1 - s.Color.Lightness()/100
}
