package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/palettecore/pkg/palettecore"
)

const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	previewWidth = 4
)

var (
	optColors    int
	optAlgorithm string
	optFormat    string
	optOutput    string
	optTheme     string
	optFilters   []string
	optSeed      int64
	optPreview   bool
)

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Extract a color palette from an image file",
		Long: `extract reads a PNG or JPEG file, clusters its pixels in
CIE L*a*b* + position space, and prints the resulting swatches.

Examples:
  paletteextract extract wallpaper.png
  paletteextract extract --colors 6 --algorithm dbscan --preview photo.jpg
  paletteextract extract --theme vivid --format json photo.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: runExtract,
	}

	cmd.Flags().IntVarP(&optColors, "colors", "c", 8, "number of colors to extract (k-means target)")
	cmd.Flags().StringVarP(&optAlgorithm, "algorithm", "a", "kmeans", "clustering algorithm (kmeans, dbscan)")
	cmd.Flags().StringVarP(&optFormat, "format", "f", "hex", "output format (hex, rgb, json)")
	cmd.Flags().StringVarP(&optOutput, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&optTheme, "theme", "t", "basic", "theme strategy (basic, vivid, muted, light, dark)")
	cmd.Flags().StringSliceVar(&optFilters, "filter", nil, "pixel filters to apply (near_white, near_black)")
	cmd.Flags().Int64Var(&optSeed, "seed", 0, "RNG seed for deterministic clustering (0: random)")
	cmd.Flags().BoolVar(&optPreview, "preview", false, "show a color block before each swatch")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	path := args[0]
	logger := newLogger()

	img, err := loadImageData(path)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	logger.Debug("image loaded", "path", path, "width", img.Width, "height", img.Height)

	opts := palettecore.DefaultOptions()
	opts.MaxColors = optColors
	opts.Algorithm = palettecore.Algorithm(optAlgorithm)
	opts.Theme = palettecore.ThemeName(optTheme)
	for _, f := range optFilters {
		opts.Filters = append(opts.Filters, palettecore.FilterName(f))
	}
	if optSeed != 0 {
		seed := uint64(optSeed)
		opts.Seed = &seed
	}

	pal, err := palettecore.Extract(context.Background(), img, opts, logger)
	if err != nil {
		return fmt.Errorf("failed to extract palette: %w", err)
	}
	logger.Debug("extraction complete", "swatches", pal.Size())
	logger.Debug("palette distinctness", "report", pal.Report().String())

	output, err := formatPalette(pal, optFormat)
	if err != nil {
		return err
	}

	if optOutput != "" {
		return os.WriteFile(optOutput, []byte(output), 0644)
	}
	fmt.Print(output)
	return nil
}

// loadImageData decodes a PNG or JPEG file into a raw RGBA8 buffer.
func loadImageData(path string) (palettecore.ImageData, error) {
	info, err := os.Stat(path)
	if err != nil {
		return palettecore.ImageData{}, fmt.Errorf("cannot access %s: %w", path, err)
	}
	if info.IsDir() {
		return palettecore.ImageData{}, fmt.Errorf("%s is a directory, not a file", path)
	}

	f, err := os.Open(path) // #nosec G304 -- user-supplied path, intended to be read
	if err != nil {
		return palettecore.ImageData{}, err
	}
	defer f.Close()

	decoded, format, err := image.Decode(f)
	if err != nil {
		return palettecore.ImageData{}, fmt.Errorf("unsupported or invalid image format: %w", err)
	}
	_ = format

	bounds := decoded.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	data := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := decoded.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := 4 * (y*width + x)
			data[i] = byte(r >> 8)
			data[i+1] = byte(g >> 8)
			data[i+2] = byte(b >> 8)
			data[i+3] = byte(a >> 8)
		}
	}

	return palettecore.ImageData{Data: data, Width: width, Height: height}, nil
}

func formatPalette(pal *palettecore.Palette, format string) (string, error) {
	switch format {
	case "hex":
		return formatSwatches(pal.Swatches(), swatchHex), nil
	case "rgb":
		return formatSwatches(pal.Swatches(), swatchRGBString), nil
	case "json":
		return formatJSON(pal.Swatches())
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", format)
	}
}

func formatSwatches(swatches []palettecore.Swatch, render func(palettecore.Swatch) string) string {
	var b strings.Builder
	for _, s := range swatches {
		if optPreview && previewEnabled() {
			b.WriteString(colorBlock(s.Color))
			b.WriteString(" ")
		}
		b.WriteString(render(s))
		b.WriteString("\n")
	}
	return b.String()
}

func swatchHex(s palettecore.Swatch) string {
	rgb := palettecore.LabToRGB(s.Color)
	return fmt.Sprintf("%s  pop=%-6d  x=%.1f y=%.1f", hexString(rgb), s.Population, s.Coordinate.X, s.Coordinate.Y)
}

func swatchRGBString(s palettecore.Swatch) string {
	rgb := palettecore.LabToRGB(s.Color)
	return fmt.Sprintf("rgb(%d, %d, %d)  pop=%-6d  x=%.1f y=%.1f", rgb.R, rgb.G, rgb.B, s.Population, s.Coordinate.X, s.Coordinate.Y)
}

func formatJSON(swatches []palettecore.Swatch) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(swatches); err != nil {
		return "", fmt.Errorf("failed to marshal palette: %w", err)
	}
	return buf.String(), nil
}

// previewEnabled reports whether the current stdout is a terminal. Its
// support for 24-bit ANSI color is not probed.
func previewEnabled() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func colorBlock(c palettecore.Color) string {
	rgb := palettecore.LabToRGB(c)
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, rgb.R, rgb.G, rgb.B, ansiSuffix)
	return bg + strings.Repeat(" ", previewWidth) + ansiReset
}

func hexString(rgb palettecore.RGB) string {
	return "#" + hexByte(rgb.R) + hexByte(rgb.G) + hexByte(rgb.B)
}

func hexByte(b uint8) string {
	s := strconv.FormatUint(uint64(b), 16)
	if len(s) == 1 {
		s = "0" + s
	}
	return s
}
