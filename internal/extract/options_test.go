package extract

import "testing"

func TestOptionsNormalizeFillsDefaults(t *testing.T) {
	got, err := Options{}.Normalize()
	if err != nil {
		t.Fatalf("Normalize() returned error: %v", err)
	}
	if got.MaxColors != 8 {
		t.Errorf("MaxColors = %d, want 8", got.MaxColors)
	}
	if got.Algorithm != AlgorithmKMeans {
		t.Errorf("Algorithm = %q, want %q", got.Algorithm, AlgorithmKMeans)
	}
}

func TestOptionsNormalizeRejectsNonPositiveMaxColors(t *testing.T) {
	_, err := Options{MaxColors: -1}.Normalize()
	if err == nil {
		t.Fatalf("Normalize() with MaxColors=-1 returned nil error")
	}
}

func TestOptionsNormalizeRejectsUnknownAlgorithm(t *testing.T) {
	_, err := Options{Algorithm: "not-an-algorithm"}.Normalize()
	if err == nil {
		t.Fatalf("Normalize() with unknown algorithm returned nil error")
	}
}

func TestOptionsNormalizeSeedProducesDeterministicRNG(t *testing.T) {
	seed := uint64(42)
	a, err := Options{Seed: &seed}.Normalize()
	if err != nil {
		t.Fatalf("Normalize() returned error: %v", err)
	}
	b, err := Options{Seed: &seed}.Normalize()
	if err != nil {
		t.Fatalf("Normalize() returned error: %v", err)
	}
	if a.KMeans.RNG.Uint64() != b.KMeans.RNG.Uint64() {
		t.Errorf("same seed produced different RNG streams")
	}
}
