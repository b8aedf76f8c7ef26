package palette

import "errors"

// ErrEmptyPalette is returned by DominantSwatch when the palette has no
// swatches (e.g. every swatch was rejected by its strategy's filter).
var ErrEmptyPalette = errors.New("palette: empty palette")
