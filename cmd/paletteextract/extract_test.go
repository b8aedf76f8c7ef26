package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeSolidPNG writes a w x h solid-color PNG to dir and returns its path.
func writeSolidPNG(t *testing.T, dir string, w, h int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(dir, "solid.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test png: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test png: %v", err)
	}
	return path
}

func TestLoadImageDataDecodesPNG(t *testing.T) {
	dir := t.TempDir()
	path := writeSolidPNG(t, dir, 3, 2, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	img, err := loadImageData(path)
	if err != nil {
		t.Fatalf("loadImageData returned error: %v", err)
	}
	if img.Width != 3 || img.Height != 2 {
		t.Fatalf("dimensions = %dx%d, want 3x2", img.Width, img.Height)
	}
	if len(img.Data) != 3*2*4 {
		t.Fatalf("len(Data) = %d, want %d", len(img.Data), 3*2*4)
	}
	if img.Data[0] != 10 || img.Data[1] != 20 || img.Data[2] != 30 || img.Data[3] != 255 {
		t.Errorf("first pixel = %v, want [10 20 30 255]", img.Data[0:4])
	}
}

func TestLoadImageDataRejectsMissingFile(t *testing.T) {
	if _, err := loadImageData(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatalf("loadImageData(missing) returned nil error")
	}
}

func TestLoadImageDataRejectsDirectory(t *testing.T) {
	if _, err := loadImageData(t.TempDir()); err == nil {
		t.Fatalf("loadImageData(directory) returned nil error")
	}
}

func TestRunExtractEndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := writeSolidPNG(t, dir, 4, 4, color.RGBA{R: 200, G: 30, B: 30, A: 255})

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"extract", "-c", "2", "-f", "hex", path})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}
}

func TestRunExtractRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeSolidPNG(t, dir, 2, 2, color.RGBA{R: 0, G: 0, B: 0, A: 255})

	root := newRootCmd()
	root.SetArgs([]string{"extract", "-f", "xml", path})

	if err := root.Execute(); err == nil {
		t.Fatalf("Execute() with unknown format returned nil error")
	}
}
