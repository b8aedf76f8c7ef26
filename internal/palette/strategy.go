package palette

// Strategy admits or rejects swatches and scores the ones it admits.
// Implementations live in the theme package; Palette only depends on
// this interface so the two packages don't import each other.
type Strategy interface {
	Filter(s Swatch) bool
	Score(s Swatch) float64
}
