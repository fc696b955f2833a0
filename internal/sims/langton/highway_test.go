package langton

import "testing"

func TestDetectHighwayOnLargeGrid(t *testing.T) {
	e := New(400, 400)
	e.Place(200, 200, Up)
	res := DetectHighway(e, 14000, 5)
	if !res.Found {
		t.Fatalf("no highway within %d steps", res.Steps)
	}
	if res.Onset < 9000 || res.Onset > 10400 {
		t.Fatalf("highway onset %d outside the expected range", res.Onset)
	}
	if res.Steps != res.Onset+HighwayPeriod+5*HighwayPeriod-1 {
		t.Fatalf("detection should stop once confirmed, ran %d steps for onset %d", res.Steps, res.Onset)
	}
	if res.Black == 0 {
		t.Fatal("black cell count not recorded")
	}
}

func TestDetectHighwayNotFoundEarly(t *testing.T) {
	e := New(400, 400)
	e.Place(200, 200, Up)
	res := DetectHighway(e, 5000, 3)
	if res.Found {
		t.Fatalf("highway reported at %d before the chaotic phase ends", res.Onset)
	}
	if res.Steps != 5000 || e.Iteration() != 5000 {
		t.Fatalf("expected 5000 steps, got %d", res.Steps)
	}
}

func TestDetectHighwayNegativeSteps(t *testing.T) {
	e := New(32, 32)
	res := DetectHighway(e, -1, 5)
	if res.Found || res.Steps != 0 {
		t.Fatalf("negative step budget must not run: %+v", res)
	}
	if e.Iteration() != 0 {
		t.Fatalf("engine advanced %d steps", e.Iteration())
	}
}
