package extract

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/palettecore/internal/cluster"
	"github.com/jmylchreest/palettecore/internal/colorspace"
	"github.com/jmylchreest/palettecore/internal/palette"
	"github.com/jmylchreest/palettecore/internal/theme"
)

// Extract runs the full pipeline: pixel walk, filtering, feature-vector
// construction, clustering, and swatch emission, returning a Palette
// built with the requested theme strategy. A nil logger defaults to a
// no-op logger.
func Extract(ctx context.Context, img ImageData, opts Options, logger hclog.Logger) (*palette.Palette, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if len(img.Data) == 0 || img.Width <= 0 || img.Height <= 0 {
		return nil, ErrEmptyImage
	}

	opts, err := opts.Normalize()
	if err != nil {
		return nil, err
	}

	filters, err := buildFilters(opts.Filters)
	if err != nil {
		return nil, err
	}

	logger.Debug("extract: walking pixel buffer", "pixels", img.pixelCount(), "width", img.Width, "height", img.Height)

	vectors := buildFeatureVectors(img, filters)
	if len(vectors) == 0 {
		logger.Debug("extract: no pixels survived filtering")
		strategy, err := theme.New(opts.Theme)
		if err != nil {
			return nil, err
		}
		return palette.New(nil, strategy), nil
	}

	clusters, err := runClusterer(ctx, vectors, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("extract: clustering complete", "clusters", len(clusters))

	swatches := swatchesFromClusters(clusters, img)

	strategy, err := theme.New(opts.Theme)
	if err != nil {
		return nil, err
	}
	return palette.New(swatches, strategy), nil
}

// buildFeatureVectors walks the pixel buffer in row-major order, applying
// filters, and returns one feature vector per surviving pixel.
func buildFeatureVectors(img ImageData, filters []PixelFilter) []cluster.Vector {
	n := img.pixelCount()
	vectors := make([]cluster.Vector, 0, n)

	for i := 0; i < n; i++ {
		r, g, b, a := img.pixelAt(i)
		packed := colorspace.Pack(colorspace.RGB{R: r, G: g, B: b}, a)
		rgb, alpha := colorspace.Unpack(packed)
		rgba := colorspace.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: float64(alpha) / 255}
		if !admitAll(filters, rgba) {
			continue
		}

		lab := colorspace.RGBToLab(rgb)
		x, y := img.coordinateOf(i)

		vectors = append(vectors, cluster.Vector{
			normalize(lab.L(), 0, 100),
			normalize(lab.A(), -128, 128),
			normalize(lab.B(), -128, 128),
			normalize(float64(x), 0, float64(img.Width)),
			normalize(float64(y), 0, float64(img.Height)),
		})
	}

	return vectors
}

func normalize(v, min, max float64) float64 {
	if max == min {
		return 0
	}
	return (v - min) / (max - min)
}

func denormalize(v, min, max float64) float64 {
	return v*(max-min) + min
}

func runClusterer(ctx context.Context, vectors []cluster.Vector, opts Options) ([]cluster.Cluster, error) {
	switch opts.Algorithm {
	case AlgorithmDBSCAN:
		return cluster.DBSCAN(ctx, vectors, opts.DBSCAN)
	case AlgorithmKMeans:
		return cluster.KMeans(ctx, vectors, opts.MaxColors, opts.KMeans)
	default:
		return nil, fmt.Errorf("extract: unreachable algorithm %q", opts.Algorithm)
	}
}

// swatchesFromClusters de-normalizes each cluster's centroid back into a
// Lab Color and image coordinate, and counts population as the number of
// surviving pixels assigned to the cluster. Clusters whose colors are
// Equal (e.g. spatial splits of one solid color) are merged into a single
// swatch with summed population and population-weighted coordinate.
func swatchesFromClusters(clusters []cluster.Cluster, img ImageData) []palette.Swatch {
	swatches := make([]palette.Swatch, 0, len(clusters))
	for _, c := range clusters {
		l := denormalize(c.Centroid[0], 0, 100)
		a := denormalize(c.Centroid[1], -128, 128)
		b := denormalize(c.Centroid[2], -128, 128)
		x := denormalize(c.Centroid[3], 0, float64(img.Width))
		y := denormalize(c.Centroid[4], 0, float64(img.Height))
		color, pop := colorspace.NewLab(l, a, b), len(c.Members)

		merged := false
		for i := range swatches {
			if s := &swatches[i]; s.Color.Equal(color) {
				total := float64(s.Population + pop)
				s.Coordinate.X = (s.Coordinate.X*float64(s.Population) + x*float64(pop)) / total
				s.Coordinate.Y = (s.Coordinate.Y*float64(s.Population) + y*float64(pop)) / total
				s.Population += pop
				merged = true
				break
			}
		}
		if merged {
			continue
		}

		swatches = append(swatches, palette.Swatch{
			Color:      color,
			Population: pop,
			Coordinate: palette.Coordinate{X: x, Y: y},
		})
	}
	return swatches
}
