// Package view maps a window of grid coordinates onto screen pixels.
package view

import "langton-ant/internal/core"

const (
	// PanStep is the number of cells a single pan moves the view.
	PanStep = 5
	// ZoomIn and ZoomOut are the factors applied by the zoom keys.
	ZoomIn  = 1.1
	ZoomOut = 0.9
)

// Direction identifies a pan direction.
type Direction uint8

const (
	PanUp Direction = iota
	PanRight
	PanDown
	PanLeft
)

// Viewport holds the camera state: zoom level, visible cell counts and the
// grid coordinate at the center of the window.
type Viewport struct {
	Screen core.Size
	Grid   core.Size

	SquareSize       int
	SquaresPerLine   int
	SquaresPerColumn int

	X, Y      int
	FollowAnt bool
}

// New builds a viewport centered on the grid with follow mode enabled and
// the zoom level chosen by Fit, capped at the zoom-in bound.
func New(screen, grid core.Size) *Viewport {
	v := &Viewport{
		Screen:    screen,
		Grid:      grid,
		X:         grid.W / 2,
		Y:         grid.H / 2,
		FollowAnt: true,
	}
	v.SquareSize = min(Fit(screen, grid), v.maxSquare())
	v.UpdateScale()
	return v
}

// Fit returns the initial square size: the larger of the per-axis ratios,
// floored, never below 1.
func Fit(screen, grid core.Size) int {
	if grid.Empty() {
		return 1
	}
	size := max(screen.W/grid.W, screen.H/grid.H)
	if size < 1 {
		size = 1
	}
	return size
}

// UpdateScale recomputes the visible cell counts for the current square size
// and re-clamps the view position.
func (v *Viewport) UpdateScale() {
	if v.SquareSize < 1 {
		v.SquareSize = 1
	}
	v.SquaresPerLine = min(v.Screen.W/v.SquareSize, v.Grid.W)
	v.SquaresPerColumn = min(v.Screen.H/v.SquareSize, v.Grid.H)
	v.AdjustViewPosition()
}

// AdjustViewPosition clamps the view center so the visible window stays on
// the grid.
func (v *Viewport) AdjustViewPosition() {
	halfW, halfH := v.SquaresPerLine/2, v.SquaresPerColumn/2
	if v.X < halfW {
		v.X = halfW
	}
	if v.X > v.Grid.W-halfW {
		v.X = v.Grid.W - halfW
	}
	if v.Y < halfH {
		v.Y = halfH
	}
	if v.Y > v.Grid.H-halfH {
		v.Y = v.Grid.H - halfH
	}
}

// maxSquare is the zoom-in bound.
func (v *Viewport) maxSquare() int {
	return max(1, min(v.Screen.W, v.Screen.H))
}

// Zoom scales the square size by factor (>1 zooms in, <1 zooms out). It
// reports whether the square size changed; the caller redraws when it did.
func (v *Viewport) Zoom(factor float64) bool {
	if factor <= 0 || factor == 1 {
		return false
	}
	limit := v.maxSquare()
	if factor > 1 && v.SquareSize >= limit {
		return false
	}
	if factor < 1 && v.SquareSize <= 1 {
		return false
	}

	next := int(float64(v.SquareSize) * factor)
	if next == v.SquareSize {
		if factor > 1 {
			next++
		} else {
			next--
		}
	}
	next = min(max(next, 1), limit)
	if next == v.SquareSize {
		return false
	}
	v.SquareSize = next
	v.UpdateScale()
	return true
}

// Pan moves the view center by step cells towards dir. Panning is disabled
// while following the ant. It reports whether the position changed.
func (v *Viewport) Pan(dir Direction, step int) bool {
	if v.FollowAnt {
		return false
	}
	x, y := v.X, v.Y
	switch dir {
	case PanUp:
		v.Y = max(v.SquaresPerColumn/2, v.Y-step)
	case PanDown:
		v.Y = min(v.Grid.H-v.SquaresPerColumn/2, v.Y+step)
	case PanLeft:
		v.X = max(v.SquaresPerLine/2, v.X-step)
	case PanRight:
		v.X = min(v.Grid.W-v.SquaresPerLine/2, v.X+step)
	}
	return x != v.X || y != v.Y
}

// CenterOnAnt recenters the view on the ant once it leaves the inner half of
// the visible window. It reports whether the view moved.
func (v *Viewport) CenterOnAnt(ant core.Point) bool {
	qx, qy := v.SquaresPerLine/4, v.SquaresPerColumn/4
	if ant.X >= v.X-qx && ant.X <= v.X+qx && ant.Y >= v.Y-qy && ant.Y <= v.Y+qy {
		return false
	}
	x, y := v.X, v.Y
	v.X, v.Y = ant.X, ant.Y
	v.AdjustViewPosition()
	return x != v.X || y != v.Y
}

// ToggleFollow flips follow-ant mode and returns the new value.
func (v *Viewport) ToggleFollow() bool {
	v.FollowAnt = !v.FollowAnt
	return v.FollowAnt
}

// Resize adopts a new window resolution, keeping the square size within the
// zoom bounds.
func (v *Viewport) Resize(screen core.Size) {
	if screen == v.Screen || screen.Empty() {
		return
	}
	v.Screen = screen
	v.SquareSize = min(v.SquareSize, v.maxSquare())
	v.UpdateScale()
}

// FirstVisible returns the grid coordinate drawn in the top-left slot of the
// visible window. It may be negative or past the grid edge.
func (v *Viewport) FirstVisible() core.Point {
	return core.Point{X: v.X - v.SquaresPerLine/2, Y: v.Y - v.SquaresPerColumn/2}
}

// ScreenOrigin returns the pixel offset that centers the visible window on
// the screen.
func (v *Viewport) ScreenOrigin() core.Point {
	return core.Point{
		X: v.Screen.W/2 - (v.SquaresPerLine*v.SquareSize)/2,
		Y: v.Screen.H/2 - (v.SquaresPerColumn*v.SquareSize)/2,
	}
}
