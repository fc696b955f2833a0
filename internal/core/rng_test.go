package core

import "testing"

func TestNewRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 100; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestSeedOrNowKeepsExplicitSeed(t *testing.T) {
	if got := SeedOrNow(7); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	if got := SeedOrNow(0); got == 0 {
		t.Fatal("zero seed should be replaced")
	}
}
