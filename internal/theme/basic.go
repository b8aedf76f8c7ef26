// Package theme provides built-in palette strategies: capability records
// that filter and score swatches by intent (vivid, muted, light, dark, or
// no filtering at all).
package theme

import "github.com/jmylchreest/palettecore/internal/palette"

type basic struct{}

// Basic admits every swatch and scores them all equally.
func Basic() palette.Strategy {
	return basic{}
}

func (basic) Filter(palette.Swatch) bool   { return true }
func (basic) Score(palette.Swatch) float64 { return 1.0 }
