package palette

import (
	"testing"

	"github.com/jmylchreest/palettecore/internal/colorspace"
)

type allPass struct{}

func (allPass) Filter(Swatch) bool    { return true }
func (allPass) Score(s Swatch) float64 { return float64(s.Population) }

func swatch(l, a, b float64, population int) Swatch {
	return Swatch{Color: colorspace.NewLab(l, a, b), Population: population}
}

func TestNewSortsByDescendingPopulation(t *testing.T) {
	swatches := []Swatch{
		swatch(50, 0, 0, 3),
		swatch(20, 0, 0, 9),
		swatch(80, 0, 0, 1),
	}
	p := New(swatches, allPass{})

	got := p.Swatches()
	for i := 1; i < len(got); i++ {
		if got[i].Population > got[i-1].Population {
			t.Errorf("palette not sorted: %+v", got)
		}
	}
	if got[0].Population != 9 {
		t.Errorf("first swatch population = %d, want 9", got[0].Population)
	}
}

func TestDominantSwatchOnEmptyPaletteFails(t *testing.T) {
	p := New(nil, allPass{})
	if _, err := p.DominantSwatch(); err != ErrEmptyPalette {
		t.Errorf("DominantSwatch() error = %v, want ErrEmptyPalette", err)
	}
}

func TestDominantSwatchIsHighestPopulation(t *testing.T) {
	swatches := []Swatch{
		swatch(50, 0, 0, 3),
		swatch(20, 0, 0, 9),
	}
	p := New(swatches, allPass{})
	dom, err := p.DominantSwatch()
	if err != nil {
		t.Fatalf("DominantSwatch() returned error: %v", err)
	}
	if dom.Population != 9 {
		t.Errorf("DominantSwatch().Population = %d, want 9", dom.Population)
	}
}

func TestFindSwatchesAtLeastSizeReturnsAll(t *testing.T) {
	swatches := []Swatch{
		swatch(50, 0, 0, 3),
		swatch(20, 0, 0, 9),
	}
	p := New(swatches, allPass{})
	got, err := p.FindSwatches(5)
	if err != nil {
		t.Fatalf("FindSwatches(5) returned error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("FindSwatches(5) returned %d swatches, want 2", len(got))
	}
}

func TestFindSwatchesOneReturnsDominant(t *testing.T) {
	swatches := []Swatch{
		swatch(50, 0, 0, 3),
		swatch(20, 0, 0, 9),
		swatch(80, 40, -40, 1),
	}
	p := New(swatches, allPass{})
	got, err := p.FindSwatches(1)
	if err != nil {
		t.Fatalf("FindSwatches(1) returned error: %v", err)
	}
	dom, _ := p.DominantSwatch()
	if len(got) != 1 || got[0] != dom {
		t.Errorf("FindSwatches(1) = %+v, want [%+v]", got, dom)
	}
}

func TestFindSwatchesRejectsNonPositiveN(t *testing.T) {
	p := New([]Swatch{swatch(50, 0, 0, 1)}, allPass{})
	if _, err := p.FindSwatches(0); err == nil {
		t.Errorf("FindSwatches(0) returned nil error")
	}
}

func TestFindSwatchesMaximizesDistinctness(t *testing.T) {
	// Three clusters of near-identical swatches; FindSwatches(3) should
	// pick one representative from each rather than three near-duplicates
	// from the same cluster.
	swatches := []Swatch{
		swatch(20, 0, 0, 10),
		swatch(20, 1, 0, 9),
		swatch(50, 50, 50, 8),
		swatch(50, 51, 49, 7),
		swatch(80, -50, -50, 6),
		swatch(80, -49, -51, 5),
	}
	p := New(swatches, allPass{})
	got, err := p.FindSwatches(3)
	if err != nil {
		t.Fatalf("FindSwatches(3) returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("FindSwatches(3) returned %d swatches, want 3", len(got))
	}

	lightnessBuckets := map[int]bool{}
	for _, s := range got {
		bucket := int(s.Color.Lightness() / 30)
		lightnessBuckets[bucket] = true
	}
	if len(lightnessBuckets) != 3 {
		t.Errorf("FindSwatches(3) picked swatches from %d lightness buckets, want 3: %+v", len(lightnessBuckets), got)
	}
}
