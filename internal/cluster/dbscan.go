package cluster

import (
	"context"

	"github.com/jmylchreest/palettecore/internal/colorspace"
	"github.com/jmylchreest/palettecore/internal/kdtree"
)

// label tracks a point's DBSCAN state during the scan.
type label int

const (
	labelUnknown label = -1
	labelNoise   label = -2
	labelMarked  label = -3
	// Non-negative label values are cluster ids.
)

// DBSCANOptions configures DBSCAN.
type DBSCANOptions struct {
	MinPoints int
	Radius    float64
}

// Normalize fills unset fields with defaults and validates the rest.
func (o DBSCANOptions) Normalize() (DBSCANOptions, error) {
	if o.MinPoints == 0 {
		o.MinPoints = 9
	}
	if o.MinPoints < 1 {
		return o, &colorspace.RangeError{Param: "min_points", Value: float64(o.MinPoints), Min: 1, Max: math64Max}
	}
	if o.Radius == 0 {
		o.Radius = 0.016
	}
	if o.Radius < 0 {
		return o, &colorspace.RangeError{Param: "radius", Value: o.Radius, Min: 0, Max: math64Max}
	}
	return o, nil
}

// DBSCAN partitions points into density-connected clusters, discarding
// noise. Cluster ids are assigned in the sequential scan order of the
// input, making output deterministic for a given input order. Returns
// ErrCancelled if ctx is cancelled between points in the outer scan.
func DBSCAN(ctx context.Context, points []Vector, opts DBSCANOptions) ([]Cluster, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, nil
	}

	tree := buildPointTree(points)
	labels := make([]label, len(points))
	for i := range labels {
		labels[i] = labelUnknown
	}

	var clusters []Cluster
	for i := range points {
		if ctx.Err() != nil {
			return nil, ErrCancelled
		}
		if labels[i] != labelUnknown {
			continue
		}

		neighbors := neighborsWithin(tree, points[i], opts.Radius)
		if len(neighbors) < opts.MinPoints {
			labels[i] = labelNoise
			continue
		}

		clusterID := len(clusters)
		clusters = append(clusters, Cluster{ID: clusterID})
		labels[i] = label(clusterID)
		clusters[clusterID].Members = append(clusters[clusterID].Members, i)

		queue := make([]int, 0, len(neighbors))
		for _, n := range neighbors {
			if n != i {
				labels[n] = labelMarked
				queue = append(queue, n)
			}
		}

		for len(queue) > 0 {
			q := queue[0]
			queue = queue[1:]

			if labels[q] >= 0 {
				continue
			}
			if labels[q] == labelNoise {
				labels[q] = label(clusterID)
				clusters[clusterID].Members = append(clusters[clusterID].Members, q)
				continue
			}

			labels[q] = label(clusterID)
			clusters[clusterID].Members = append(clusters[clusterID].Members, q)

			qNeighbors := neighborsWithin(tree, points[q], opts.Radius)
			if len(qNeighbors) >= opts.MinPoints {
				for _, n := range qNeighbors {
					if labels[n] == labelUnknown || labels[n] == labelNoise {
						if labels[n] == labelUnknown {
							labels[n] = labelMarked
						}
						queue = append(queue, n)
					}
				}
			}
		}
	}

	for i := range clusters {
		clusters[i].Centroid = Mean(vectorsAt(points, clusters[i].Members))
	}

	return dropEmpty(clusters), nil
}

func buildPointTree(points []Vector) *kdtree.Tree {
	pts := make([]kdtree.Point, len(points))
	for i, p := range points {
		pts[i] = kdtree.Point{Vec: p.Slice(), Index: i}
	}
	return kdtree.Build(pts)
}

func neighborsWithin(tree *kdtree.Tree, p Vector, radius float64) []int {
	results := tree.SearchRadius(p.Slice(), radius)
	out := make([]int, len(results))
	for i, r := range results {
		out[i] = r.Index
	}
	return out
}

func vectorsAt(points []Vector, indices []int) []Vector {
	out := make([]Vector, len(indices))
	for i, idx := range indices {
		out[i] = points[idx]
	}
	return out
}
