// paletteextract extracts a color palette from an image file using the
// palettecore library.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
