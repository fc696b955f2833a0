package render

import (
	"image/color"
	"testing"

	"langton-ant/internal/core"
	"langton-ant/internal/view"
)

type rect struct {
	x, y, w, h int
	c          color.RGBA
}

type recordingSurface struct {
	cleared  int
	rects    []rect
	presents int
}

func (s *recordingSurface) Clear() { s.cleared++; s.rects = s.rects[:0] }
func (s *recordingSurface) Present() { s.presents++ }
func (s *recordingSurface) FillRect(x, y, w, h int, c color.RGBA) {
	s.rects = append(s.rects, rect{x, y, w, h, c})
}

func TestFrameDrawsWholeSmallGrid(t *testing.T) {
	grid := core.NewGrid(4, 3)
	grid.Set(1, 2, core.Black)
	vp := view.New(core.Size{W: 40, H: 30}, grid.Size())
	if vp.SquareSize != 10 {
		t.Fatalf("expected square size 10, got %d", vp.SquareSize)
	}

	surf := &recordingSurface{}
	NewRenderer().Frame(surf, vp, grid, core.Point{X: 3, Y: 0})

	if surf.cleared != 1 || surf.presents != 1 {
		t.Fatalf("expected one clear and one present, got %d/%d", surf.cleared, surf.presents)
	}
	if len(surf.rects) != 12 {
		t.Fatalf("expected 12 cells drawn, got %d", len(surf.rects))
	}
	for _, r := range surf.rects {
		if r.w != 10 || r.h != 10 || r.x%10 != 0 || r.y%10 != 0 {
			t.Fatalf("unexpected rect %+v", r)
		}
		gx, gy := r.x/10, r.y/10
		want := DefaultPalette.White
		switch {
		case gx == 3 && gy == 0:
			want = DefaultPalette.Ant
		case gx == 1 && gy == 2:
			want = DefaultPalette.Black
		}
		if r.c != want {
			t.Fatalf("cell (%d,%d) color %v, want %v", gx, gy, r.c, want)
		}
	}
}

func TestFrameAntOverridesBlackCell(t *testing.T) {
	grid := core.NewGrid(2, 2)
	grid.Set(0, 0, core.Black)
	vp := view.New(core.Size{W: 2, H: 2}, grid.Size())
	surf := &recordingSurface{}
	NewRenderer().Frame(surf, vp, grid, core.Point{X: 0, Y: 0})
	if surf.rects[0].c != DefaultPalette.Ant {
		t.Fatalf("ant cell must use highlight color, got %v", surf.rects[0].c)
	}
}

func TestFrameSkipsOutOfGridCells(t *testing.T) {
	grid := core.NewGrid(10, 10)
	vp := view.New(core.Size{W: 40, H: 40}, grid.Size())
	vp.SquareSize = 10
	vp.UpdateScale() // 4x4 visible
	// Push the view center off the grid without re-clamping.
	vp.X, vp.Y = 0, 9

	surf := &recordingSurface{}
	NewRenderer().Frame(surf, vp, grid, core.Point{X: -1, Y: -1})
	// x slots map to grid -2..1 (two skipped), y slots map to 7..10 (one past the edge).
	if len(surf.rects) != 2*3 {
		t.Fatalf("expected 6 cells, got %d", len(surf.rects))
	}
	for _, r := range surf.rects {
		if r.x < 20 || r.y > 20 {
			t.Fatalf("drew out-of-grid slot %+v", r)
		}
	}
}

func TestFrameCentersPartialWindow(t *testing.T) {
	grid := core.NewGrid(100, 100)
	vp := view.New(core.Size{W: 105, H: 52}, grid.Size())
	vp.SquareSize = 10
	vp.UpdateScale() // 10x5 visible, 5px slack horizontally, 2px vertically
	surf := &recordingSurface{}
	NewRenderer().Frame(surf, vp, grid, core.Point{X: -1, Y: -1})
	if len(surf.rects) != 50 {
		t.Fatalf("expected 50 cells, got %d", len(surf.rects))
	}
	first := surf.rects[0]
	if first.x != 52-50 || first.y != 26-25 {
		t.Fatalf("unexpected origin (%d,%d)", first.x, first.y)
	}
}

func TestFrameOnPixelSurface(t *testing.T) {
	grid := core.NewGrid(3, 3)
	grid.Set(2, 2, core.Black)
	vp := view.New(core.Size{W: 6, H: 6}, grid.Size())
	ps := NewPixelSurface(6, 6, Background)

	NewRenderer().Frame(ps, vp, grid, core.Point{X: 0, Y: 0})

	if ps.Frames() != 1 {
		t.Fatalf("expected one presented frame, got %d", ps.Frames())
	}
	checks := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, DefaultPalette.Ant},
		{1, 1, DefaultPalette.Ant},
		{2, 0, DefaultPalette.White},
		{5, 5, DefaultPalette.Black},
		{4, 4, DefaultPalette.Black},
		{3, 5, DefaultPalette.White},
	}
	for _, c := range checks {
		if got := ps.At(c.x, c.y); got != c.want {
			t.Fatalf("pixel (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}
