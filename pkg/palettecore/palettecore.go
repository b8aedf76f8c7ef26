// Package palettecore is the public API surface for automatic
// color-palette extraction. It re-exports the types callers need
// without exposing the internal packages that implement them.
package palettecore

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/palettecore/internal/cluster"
	"github.com/jmylchreest/palettecore/internal/colorspace"
	"github.com/jmylchreest/palettecore/internal/extract"
	"github.com/jmylchreest/palettecore/internal/palette"
	"github.com/jmylchreest/palettecore/internal/theme"
)

// ImageData is a packed RGBA8 pixel buffer, row-major, sRGB.
type ImageData = extract.ImageData

// Options configures Extract.
type Options = extract.Options

// Algorithm selects the clustering algorithm.
type Algorithm = extract.Algorithm

// FilterName identifies a built-in pixel filter.
type FilterName = extract.FilterName

// ThemeName selects a built-in theme strategy.
type ThemeName = theme.Name

// KMeansOptions configures the k-means algorithm.
type KMeansOptions = cluster.KMeansOptions

// DBSCANOptions configures the DBSCAN algorithm.
type DBSCANOptions = cluster.DBSCANOptions

// Swatch is a single extracted color plus its support population and
// mean image coordinate.
type Swatch = palette.Swatch

// Coordinate is a swatch's population-weighted mean pixel position.
type Coordinate = palette.Coordinate

// Color is an immutable CIE L*a*b* color value.
type Color = colorspace.Color

// RGB is an 8-bit-per-channel sRGB color with no opacity.
type RGB = colorspace.RGB

// Palette is an ordered, queryable sequence of swatches.
type Palette = palette.Palette

// DistinctnessReport summarizes how visually separated a palette's
// swatches are, as returned by Palette.Report.
type DistinctnessReport = palette.DistinctnessReport

const (
	AlgorithmKMeans = extract.AlgorithmKMeans
	AlgorithmDBSCAN = extract.AlgorithmDBSCAN
)

const (
	FilterAlpha     = extract.FilterAlpha
	FilterNearWhite = extract.FilterNearWhite
	FilterNearBlack = extract.FilterNearBlack
)

const (
	ThemeBasic = theme.NameBasic
	ThemeVivid = theme.NameVivid
	ThemeMuted = theme.NameMuted
	ThemeLight = theme.NameLight
	ThemeDark  = theme.NameDark
)

// Sentinel errors surfaced by Extract and Palette queries.
var (
	ErrEmptyImage   = extract.ErrEmptyImage
	ErrEmptyPalette = palette.ErrEmptyPalette
	ErrCancelled    = cluster.ErrCancelled
)

// ParseError and RangeError are the concrete error types returned for
// malformed hex strings and out-of-range parameters, respectively.
type ParseError = colorspace.ParseError
type RangeError = colorspace.RangeError

// DefaultOptions returns the options Extract uses when none are given:
// 8 colors, k-means, the basic theme.
func DefaultOptions() Options {
	return extract.DefaultOptions()
}

// Extract runs the full pipeline over img and returns the resulting
// Palette. A nil logger defaults to a no-op logger.
func Extract(ctx context.Context, img ImageData, opts Options, logger hclog.Logger) (*Palette, error) {
	return extract.Extract(ctx, img, opts, logger)
}

// ParseHex parses a CSS-style hex color string (#RGB, #RGBA, #RRGGBB,
// #RRGGBBAA) into an RGBA value.
func ParseHex(s string) (colorspace.RGBA, error) {
	return colorspace.ParseHex(s)
}

// LabToRGB converts a L*a*b* color to 8-bit sRGB for display.
func LabToRGB(c Color) RGB {
	return colorspace.LabToRGB(c)
}
