package cluster

import "math/rand/v2"

// seedCentersPlusPlus chooses k initial centers from points using the
// k-means++ distribution: the first center uniform at random, each
// subsequent center drawn with probability proportional to its squared
// distance from the nearest already-chosen center. Stops early, returning
// fewer than k centers, if the point set's distinct values run out first.
func seedCentersPlusPlus(points []Vector, k int, rng *rand.Rand) []Vector {
	if len(points) == 0 || k <= 0 {
		return nil
	}

	unique := distinctVectors(points)
	if k > len(unique) {
		k = len(unique)
	}

	centers := make([]Vector, 0, k)
	centers = append(centers, unique[rng.IntN(len(unique))])

	nearestSq := make([]float64, len(unique))
	for len(centers) < k {
		total := 0.0
		for i, p := range unique {
			d := p.SquaredDistance(centers[len(centers)-1])
			if len(centers) == 1 || d < nearestSq[i] {
				nearestSq[i] = d
			}
			total += nearestSq[i]
		}

		if total == 0 {
			// All remaining unique points coincide with chosen centers;
			// the caller already capped k at len(unique), so this should
			// not happen, but guard against float noise.
			break
		}

		target := rng.Float64() * total
		cumulative := 0.0
		chosen := len(unique) - 1
		for i, d := range nearestSq {
			cumulative += d
			if cumulative >= target {
				chosen = i
				break
			}
		}
		centers = append(centers, unique[chosen])
	}

	return centers
}

// distinctVectors returns points with exact duplicates removed, preserving
// first-occurrence order.
func distinctVectors(points []Vector) []Vector {
	seen := make(map[Vector]bool, len(points))
	out := make([]Vector, 0, len(points))
	for _, p := range points {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
