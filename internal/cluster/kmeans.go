package cluster

import (
	"context"
	"math/rand/v2"

	"github.com/jmylchreest/palettecore/internal/colorspace"
	"github.com/jmylchreest/palettecore/internal/kdtree"
)

// KMeansOptions configures KMeans. Callers that want determinism supply a
// seeded *rand.Rand; a nil RNG is replaced by one seeded from a system
// source.
type KMeansOptions struct {
	MaxIterations int
	Tolerance     float64
	RNG           *rand.Rand
}

// Normalize fills unset fields with defaults and returns a RangeError if
// any explicitly-set field is out of range.
func (o KMeansOptions) Normalize() (KMeansOptions, error) {
	if o.MaxIterations == 0 {
		o.MaxIterations = 10
	}
	if o.MaxIterations < 1 {
		return o, &colorspace.RangeError{Param: "max_iterations", Value: float64(o.MaxIterations), Min: 1, Max: math64Max}
	}
	if o.Tolerance < 0 {
		return o, &colorspace.RangeError{Param: "tolerance", Value: o.Tolerance, Min: 0, Max: math64Max}
	}
	if o.RNG == nil {
		o.RNG = rand.New(rand.NewChaCha8(systemSeed()))
	}
	return o, nil
}

// math64Max is used as the upper bound placeholder in RangeErrors that are
// only lower-bounded.
const math64Max = 1e300

// KMeans partitions points into up to k clusters using Lloyd's algorithm
// seeded by k-means++. When n <= k, each point becomes its own singleton
// cluster with no iteration. Returns a RangeError if k <= 0, or
// ErrCancelled if ctx is cancelled between iterations.
func KMeans(ctx context.Context, points []Vector, k int, opts KMeansOptions) ([]Cluster, error) {
	if k <= 0 {
		return nil, &colorspace.RangeError{Param: "k", Value: float64(k), Min: 1, Max: math64Max}
	}
	opts, err := opts.Normalize()
	if err != nil {
		return nil, err
	}

	if len(points) <= k {
		return singletonClusters(points), nil
	}

	centers := seedCentersPlusPlus(points, k, opts.RNG)
	k = len(centers)

	assignments := make([]int, len(points))
	for i := range assignments {
		assignments[i] = -1
	}

	for iter := 0; iter < opts.MaxIterations; iter++ {
		if ctx.Err() != nil {
			return nil, ErrCancelled
		}

		tree := buildCenterTree(centers)
		for i, p := range points {
			nearest, _ := tree.Nearest(p.Slice())
			assignments[i] = nearest.Index
		}

		newCenters, deltas := recompute(points, assignments, centers)

		maxDelta := 0.0
		for _, d := range deltas {
			if d > maxDelta {
				maxDelta = d
			}
		}

		centers = newCenters
		if maxDelta < opts.Tolerance {
			break
		}
	}

	return buildClusters(points, assignments, centers), nil
}

// buildCenterTree indexes the current centers so each point's nearest
// center can be found via the same KD-tree machinery used for DBSCAN's
// neighbor queries.
func buildCenterTree(centers []Vector) *kdtree.Tree {
	pts := make([]kdtree.Point, len(centers))
	for i, c := range centers {
		pts[i] = kdtree.Point{Vec: c.Slice(), Index: i}
	}
	return kdtree.Build(pts)
}

// recompute returns the new centroid for each cluster (mean of its
// members, or the previous centroid if the cluster is empty) along with
// the per-cluster movement distance.
func recompute(points []Vector, assignments []int, oldCenters []Vector) ([]Vector, []float64) {
	k := len(oldCenters)
	sums := make([]Vector, k)
	counts := make([]int, k)

	for i, p := range points {
		c := assignments[i]
		for d := 0; d < Dims; d++ {
			sums[c][d] += p[d]
		}
		counts[c]++
	}

	newCenters := make([]Vector, k)
	deltas := make([]float64, k)
	for i := 0; i < k; i++ {
		if counts[i] == 0 {
			newCenters[i] = oldCenters[i]
			deltas[i] = 0
			continue
		}
		var mean Vector
		for d := 0; d < Dims; d++ {
			mean[d] = sums[i][d] / float64(counts[i])
		}
		newCenters[i] = mean
		deltas[i] = mean.Distance(oldCenters[i])
	}

	return newCenters, deltas
}

func buildClusters(points []Vector, assignments []int, centers []Vector) []Cluster {
	clusters := make([]Cluster, len(centers))
	for i, c := range centers {
		clusters[i] = Cluster{ID: i, Centroid: c}
	}
	for i, c := range assignments {
		clusters[c].Members = append(clusters[c].Members, i)
	}
	return dropEmpty(clusters)
}

func singletonClusters(points []Vector) []Cluster {
	clusters := make([]Cluster, len(points))
	for i, p := range points {
		clusters[i] = Cluster{ID: i, Centroid: p, Members: []int{i}}
	}
	return clusters
}
