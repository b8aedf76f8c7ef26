package palette

import (
	"fmt"
	"math"
	"sort"

	"github.com/jmylchreest/palettecore/internal/colorspace"
)

// Palette is an ordered, immutable sequence of swatches: the swatches
// that survived a strategy's filter, sorted by descending population.
type Palette struct {
	swatches []Swatch
	scores   []float64
}

// New filters swatches through strategy and sorts the survivors by
// descending population, with ties broken by first appearance in the
// input.
func New(swatches []Swatch, strategy Strategy) *Palette {
	type indexed struct {
		swatch Swatch
		index  int
	}

	kept := make([]indexed, 0, len(swatches))
	for i, s := range swatches {
		if strategy.Filter(s) {
			kept = append(kept, indexed{swatch: s, index: i})
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].swatch.Population > kept[j].swatch.Population
	})

	p := &Palette{
		swatches: make([]Swatch, len(kept)),
		scores:   make([]float64, len(kept)),
	}
	for i, k := range kept {
		p.swatches[i] = k.swatch
		p.scores[i] = strategy.Score(k.swatch)
	}
	return p
}

// Size returns the number of swatches remaining after filtering.
func (p *Palette) Size() int {
	return len(p.swatches)
}

// Swatches returns the palette's swatches in stored (population-descending)
// order. The returned slice must not be mutated.
func (p *Palette) Swatches() []Swatch {
	return p.swatches
}

// DominantSwatch returns the highest-population swatch, failing with
// ErrEmptyPalette if the palette has no swatches.
func (p *Palette) DominantSwatch() (Swatch, error) {
	if len(p.swatches) == 0 {
		return Swatch{}, ErrEmptyPalette
	}
	return p.swatches[0], nil
}

// FindSwatches selects n swatches that are maximally distinct from one
// another under CIEDE2000, via greedy farthest-point selection seeded
// with the swatch of maximum population*score. If n >= Size(), all
// swatches are returned; n == 1 returns the dominant swatch. n <= 0 fails
// with a RangeError.
func (p *Palette) FindSwatches(n int) ([]Swatch, error) {
	if n <= 0 {
		return nil, &colorspace.RangeError{Param: "n", Value: float64(n), Min: 1, Max: float64(len(p.swatches))}
	}
	if n >= len(p.swatches) {
		out := make([]Swatch, len(p.swatches))
		copy(out, p.swatches)
		return out, nil
	}
	if n == 1 {
		return []Swatch{p.swatches[0]}, nil
	}

	seed := p.seedIndex()
	selected := []int{seed}
	selectedSet := map[int]bool{seed: true}

	minDist := make([]float64, len(p.swatches))
	for i, s := range p.swatches {
		minDist[i] = colorspace.CIEDE2000(s.Color, p.swatches[seed].Color)
	}

	for len(selected) < n {
		next := p.farthestCandidate(selectedSet, minDist)
		selected = append(selected, next)
		selectedSet[next] = true

		for i, s := range p.swatches {
			if selectedSet[i] {
				continue
			}
			d := colorspace.CIEDE2000(s.Color, p.swatches[next].Color)
			if d < minDist[i] {
				minDist[i] = d
			}
		}
	}

	out := make([]Swatch, len(selected))
	for i, idx := range selected {
		out[i] = p.swatches[idx]
	}
	return out, nil
}

// DistinctnessReport summarizes how visually separated a palette's
// swatches are.
type DistinctnessReport struct {
	Count               int
	MinPairwiseDistance float64
}

// String renders the report as a single debug line.
func (r DistinctnessReport) String() string {
	if r.Count < 2 {
		return fmt.Sprintf("swatches=%d min_pairwise_distance=n/a", r.Count)
	}
	return fmt.Sprintf("swatches=%d min_pairwise_distance=%.2f", r.Count, r.MinPairwiseDistance)
}

// Report computes the minimum pairwise CIEDE2000 distance among the
// palette's current swatches, a rough measure of how distinct the
// selection is. A palette with fewer than two swatches reports an
// infinite minimum distance.
func (p *Palette) Report() DistinctnessReport {
	n := len(p.swatches)
	if n < 2 {
		return DistinctnessReport{Count: n, MinPairwiseDistance: math.Inf(1)}
	}

	min := math.Inf(1)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := colorspace.CIEDE2000(p.swatches[i].Color, p.swatches[j].Color)
			if d < min {
				min = d
			}
		}
	}
	return DistinctnessReport{Count: n, MinPairwiseDistance: min}
}

// seedIndex returns the index of the swatch maximizing population*score.
func (p *Palette) seedIndex() int {
	best := 0
	bestValue := float64(p.swatches[0].Population) * p.scores[0]
	for i := 1; i < len(p.swatches); i++ {
		v := float64(p.swatches[i].Population) * p.scores[i]
		if v > bestValue {
			bestValue = v
			best = i
		}
	}
	return best
}

// farthestCandidate returns the index, among swatches not yet selected,
// that maximizes minDist, breaking ties by higher score, then higher
// population, then lower index.
func (p *Palette) farthestCandidate(selected map[int]bool, minDist []float64) int {
	best := -1
	for i := range p.swatches {
		if selected[i] {
			continue
		}
		if best == -1 || betterCandidate(p, i, best, minDist) {
			best = i
		}
	}
	return best
}

func betterCandidate(p *Palette, a, b int, minDist []float64) bool {
	if minDist[a] != minDist[b] {
		return minDist[a] > minDist[b]
	}
	if p.scores[a] != p.scores[b] {
		return p.scores[a] > p.scores[b]
	}
	if p.swatches[a].Population != p.swatches[b].Population {
		return p.swatches[a].Population > p.swatches[b].Population
	}
	return a < b
}
