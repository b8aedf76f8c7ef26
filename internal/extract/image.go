// Package extract turns a raw RGBA pixel buffer into a Palette: it walks
// the buffer, filters and converts surviving pixels into feature vectors,
// hands them to a clusterer, and converts the resulting clusters back into
// swatches.
package extract

import "errors"

// ErrEmptyImage is returned when ImageData's buffer is empty or its width
// or height is not positive.
var ErrEmptyImage = errors.New("extract: empty image")

// ImageData is a packed RGBA8 pixel buffer in sRGB, row-major, with pixel
// i occupying bytes [4i, 4i+4). Width and height describe its layout; the
// buffer length must equal 4*width*height.
type ImageData struct {
	Data   []byte
	Width  int
	Height int
}

// pixelAt returns the raw RGBA bytes of the pixel at index i.
func (img ImageData) pixelAt(i int) (r, g, b, a byte) {
	off := i * 4
	return img.Data[off], img.Data[off+1], img.Data[off+2], img.Data[off+3]
}

// coordinateOf returns the (x, y) image coordinate of pixel index i.
func (img ImageData) coordinateOf(i int) (x, y int) {
	return i % img.Width, i / img.Width
}

// pixelCount returns the number of pixels in the buffer.
func (img ImageData) pixelCount() int {
	return len(img.Data) / 4
}
