package theme

import "github.com/jmylchreest/palettecore/internal/palette"

type muted struct{}

// Muted admits swatches with normalized chroma below 0.35, scoring them
// higher the closer they are to neutral.
func Muted() palette.Strategy {
	return muted{}
}

func (muted) Filter(s palette.Swatch) bool {
	return s.NormalizedChroma() < chromaThreshold
}

func (muted) Score(s palette.Swatch) float64 {
	return 1 - s.NormalizedChroma()
}
