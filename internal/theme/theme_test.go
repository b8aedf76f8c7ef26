package theme

import (
	"testing"

	"github.com/jmylchreest/palettecore/internal/colorspace"
	"github.com/jmylchreest/palettecore/internal/palette"
)

func swatchWithLab(l, a, b float64) palette.Swatch {
	return palette.Swatch{Color: colorspace.NewLab(l, a, b), Population: 1}
}

func TestVividFiltersByChromaThreshold(t *testing.T) {
	s := Vivid()
	vividSwatch := swatchWithLab(50, 80, 80) // chroma ~113, normalized ~0.63
	mutedSwatch := swatchWithLab(50, 5, 5)    // chroma ~7, normalized ~0.04

	if !s.Filter(vividSwatch) {
		t.Errorf("Vivid().Filter rejected a high-chroma swatch")
	}
	if s.Filter(mutedSwatch) {
		t.Errorf("Vivid().Filter admitted a low-chroma swatch")
	}
}

func TestMutedIsComplementOfVivid(t *testing.T) {
	vivid := Vivid()
	muted := Muted()

	samples := []palette.Swatch{
		swatchWithLab(50, 80, 80),
		swatchWithLab(50, 5, 5),
		swatchWithLab(30, 40, -40),
	}

	for _, s := range samples {
		if vivid.Filter(s) == muted.Filter(s) {
			t.Errorf("Vivid and Muted both %v for swatch %+v, want complementary", vivid.Filter(s), s)
		}
	}
}

func TestLightAndDarkPartitionByLightness(t *testing.T) {
	light := Light()
	dark := Dark()

	bright := swatchWithLab(80, 0, 0)
	dim := swatchWithLab(20, 0, 0)

	if !light.Filter(bright) || dark.Filter(bright) {
		t.Errorf("bright swatch misclassified: light=%v dark=%v", light.Filter(bright), dark.Filter(bright))
	}
	if light.Filter(dim) || !dark.Filter(dim) {
		t.Errorf("dim swatch misclassified: light=%v dark=%v", light.Filter(dim), dark.Filter(dim))
	}
}

func TestBasicAdmitsEverythingWithEqualScore(t *testing.T) {
	b := Basic()
	samples := []palette.Swatch{
		swatchWithLab(0, 0, 0),
		swatchWithLab(100, 128, -128),
		swatchWithLab(50, -40, 40),
	}
	for _, s := range samples {
		if !b.Filter(s) {
			t.Errorf("Basic().Filter rejected %+v", s)
		}
		if b.Score(s) != 1.0 {
			t.Errorf("Basic().Score(%+v) = %v, want 1.0", s, b.Score(s))
		}
	}
}

func TestScoresAreWithinUnitRange(t *testing.T) {
	strategies := []palette.Strategy{Basic(), Vivid(), Muted(), Light(), Dark()}
	samples := []palette.Swatch{
		swatchWithLab(0, 0, 0),
		swatchWithLab(100, 0, 0),
		swatchWithLab(50, 128, 128),
		swatchWithLab(50, -128, -128),
	}

	for _, strat := range strategies {
		for _, s := range samples {
			score := strat.Score(s)
			if score < 0 || score > 1 {
				t.Errorf("score %v out of [0,1] for %+v", score, s)
			}
		}
	}
}

func TestNewRejectsUnknownName(t *testing.T) {
	if _, err := New(Name("nonexistent")); err == nil {
		t.Errorf("New(nonexistent) returned nil error")
	}
}

func TestNewDefaultsEmptyNameToBasic(t *testing.T) {
	strat, err := New("")
	if err != nil {
		t.Fatalf("New(\"\") returned error: %v", err)
	}
	if !strat.Filter(swatchWithLab(0, 0, 0)) {
		t.Errorf("New(\"\") did not behave like Basic")
	}
}
