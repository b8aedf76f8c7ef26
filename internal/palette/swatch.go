// Package palette composes clustered colors into an ordered, queryable
// palette: swatches sorted by population, with dominant-swatch and
// maximally-distinct-subset queries.
package palette

import (
	"math"

	"github.com/jmylchreest/palettecore/internal/colorspace"
)

// Coordinate is the population-weighted mean pixel position of a swatch,
// in image coordinates.
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Swatch is a single extracted color together with how much of the
// source image it covers and where.
type Swatch struct {
	Color      colorspace.Color
	Population int
	Coordinate Coordinate
}

// MaxChroma is the practical upper bound on Lab chroma used to normalize
// chroma into [0,1] for theme scoring.
const MaxChroma = 180

// NormalizedChroma returns the swatch color's chroma divided by MaxChroma,
// capped at 1 (clamped Lab a*/b* allow chroma slightly above MaxChroma).
func (s Swatch) NormalizedChroma() float64 {
	return math.Min(s.Color.Chroma()/MaxChroma, 1)
}
