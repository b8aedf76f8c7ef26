package theme

import "github.com/jmylchreest/palettecore/internal/palette"

const chromaThreshold = 0.35

type vivid struct{}

// Vivid admits swatches with normalized chroma at or above 0.35, scoring
// them by that same normalized chroma.
func Vivid() palette.Strategy {
	return vivid{}
}

func (vivid) Filter(s palette.Swatch) bool {
	return s.NormalizedChroma() >= chromaThreshold
}

func (vivid) Score(s palette.Swatch) float64 {
	return s.NormalizedChroma()
}
