package extract

import "github.com/jmylchreest/palettecore/internal/colorspace"

// PixelFilter admits or rejects a pixel before it becomes a feature
// vector. Filters compose: a pixel survives only if every filter in the
// chain admits it.
type PixelFilter func(rgba colorspace.RGBA) bool

// FilterName identifies a built-in filter for the Options.Filters list.
type FilterName string

const (
	// FilterAlpha drops pixels with opacity < 1.0. It is applied by
	// default even when Options.Filters is empty.
	FilterAlpha FilterName = "alpha"

	// FilterNearWhite drops pixels within nearWhiteThreshold lightness
	// units of pure white.
	FilterNearWhite FilterName = "near_white"

	// FilterNearBlack drops pixels within nearBlackThreshold lightness
	// units of pure black.
	FilterNearBlack FilterName = "near_black"
)

const (
	nearWhiteThreshold = 2.0
	nearBlackThreshold = 2.0
)

func alphaFilter(rgba colorspace.RGBA) bool {
	return rgba.A >= 1.0
}

func nearWhiteFilter(rgba colorspace.RGBA) bool {
	rgb := colorspace.RGB{R: rgba.R, G: rgba.G, B: rgba.B}
	return colorspace.RGBToLab(rgb).L() < 100-nearWhiteThreshold
}

func nearBlackFilter(rgba colorspace.RGBA) bool {
	rgb := colorspace.RGB{R: rgba.R, G: rgba.G, B: rgba.B}
	return colorspace.RGBToLab(rgb).L() > nearBlackThreshold
}

// buildFilters resolves a list of FilterNames into PixelFilters, always
// including the alpha filter first.
func buildFilters(names []FilterName) ([]PixelFilter, error) {
	filters := []PixelFilter{alphaFilter}
	for _, name := range names {
		switch name {
		case FilterAlpha:
			// already applied unconditionally
		case FilterNearWhite:
			filters = append(filters, nearWhiteFilter)
		case FilterNearBlack:
			filters = append(filters, nearBlackFilter)
		default:
			return nil, &colorspace.ParseError{Input: string(name), Reason: "unknown filter name"}
		}
	}
	return filters, nil
}

func admitAll(filters []PixelFilter, rgba colorspace.RGBA) bool {
	for _, f := range filters {
		if !f(rgba) {
			return false
		}
	}
	return true
}
