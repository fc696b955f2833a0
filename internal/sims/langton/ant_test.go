package langton

import "testing"

func TestTurnRightCycle(t *testing.T) {
	want := map[Direction]Direction{Up: Right, Right: Down, Down: Left, Left: Up}
	for from, to := range want {
		a := Ant{Dir: from}
		a.TurnRight()
		if a.Dir != to {
			t.Fatalf("right from %v: got %v, want %v", from, a.Dir, to)
		}
	}
}

func TestTurnLeftCycle(t *testing.T) {
	want := map[Direction]Direction{Up: Left, Left: Down, Down: Right, Right: Up}
	for from, to := range want {
		a := Ant{Dir: from}
		a.TurnLeft()
		if a.Dir != to {
			t.Fatalf("left from %v: got %v, want %v", from, a.Dir, to)
		}
	}
}

func TestFourTurnsReturnHome(t *testing.T) {
	for d := Up; d <= Left; d++ {
		r, l := Ant{Dir: d}, Ant{Dir: d}
		for i := 0; i < 4; i++ {
			r.TurnRight()
			l.TurnLeft()
		}
		if r.Dir != d || l.Dir != d {
			t.Fatalf("four turns from %v ended at right=%v left=%v", d, r.Dir, l.Dir)
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	cases := []struct {
		d      Direction
		dx, dy int
	}{
		{Up, 0, -1},
		{Right, 1, 0},
		{Down, 0, 1},
		{Left, -1, 0},
	}
	for _, c := range cases {
		dx, dy := c.d.Delta()
		if dx != c.dx || dy != c.dy {
			t.Fatalf("%v delta = (%d,%d), want (%d,%d)", c.d, dx, dy, c.dx, c.dy)
		}
	}
}
