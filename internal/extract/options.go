package extract

import (
	"math/rand/v2"

	"github.com/jmylchreest/palettecore/internal/cluster"
	"github.com/jmylchreest/palettecore/internal/colorspace"
	"github.com/jmylchreest/palettecore/internal/theme"
)

// Algorithm selects the clustering algorithm Extract uses.
type Algorithm string

const (
	AlgorithmKMeans Algorithm = "kmeans"
	AlgorithmDBSCAN Algorithm = "dbscan"
)

// Options configures a call to Extract.
type Options struct {
	MaxColors int
	Algorithm Algorithm
	Theme     theme.Name
	Filters   []FilterName
	Seed      *uint64

	KMeans cluster.KMeansOptions
	DBSCAN cluster.DBSCANOptions
}

// DefaultOptions returns the options Extract uses when none are given.
func DefaultOptions() Options {
	return Options{
		MaxColors: 8,
		Algorithm: AlgorithmKMeans,
		Theme:     theme.NameBasic,
	}
}

// Normalize fills unset fields with defaults, builds a seeded RNG from
// Seed when one is supplied, and validates the rest, returning a
// RangeError naming the first out-of-range field, or a ParseError for an
// unknown algorithm.
func (o Options) Normalize() (Options, error) {
	defaults := DefaultOptions()

	if o.MaxColors == 0 {
		o.MaxColors = defaults.MaxColors
	}
	if o.MaxColors < 1 {
		return o, &colorspace.RangeError{Param: "max_colors", Value: float64(o.MaxColors), Min: 1, Max: 1e300}
	}

	if o.Algorithm == "" {
		o.Algorithm = defaults.Algorithm
	}
	if o.Algorithm != AlgorithmKMeans && o.Algorithm != AlgorithmDBSCAN {
		return o, &colorspace.ParseError{Input: string(o.Algorithm), Reason: "unknown algorithm"}
	}

	if o.Theme == "" {
		o.Theme = defaults.Theme
	}

	if o.Seed != nil {
		var seed [32]byte
		writeSeed(seed[:8], *o.Seed)
		o.KMeans.RNG = rand.New(rand.NewChaCha8(seed))
	}

	kmeansOpts, err := o.KMeans.Normalize()
	if err != nil {
		return o, err
	}
	o.KMeans = kmeansOpts

	dbscanOpts, err := o.DBSCAN.Normalize()
	if err != nil {
		return o, err
	}
	o.DBSCAN = dbscanOpts

	return o, nil
}

func writeSeed(dst []byte, seed uint64) {
	for i := 0; i < 8; i++ {
		dst[i] = byte(seed >> (8 * i))
	}
}
