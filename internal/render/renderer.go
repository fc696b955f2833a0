// Package render draws the visible part of the grid onto a Surface.
package render

import (
	"image/color"

	"langton-ant/internal/core"
	"langton-ant/internal/view"
)

// Surface receives fill-rectangle draw calls and shows them on Present.
type Surface interface {
	Clear()
	FillRect(x, y, w, h int, c color.RGBA)
	Present()
}

// Palette holds the three colors used to draw a frame.
type Palette struct {
	White color.RGBA
	Black color.RGBA
	Ant   color.RGBA
}

// DefaultPalette is a dark background with green trails and a red ant.
var DefaultPalette = Palette{
	White: color.RGBA{R: 20, G: 20, B: 20, A: 255},
	Black: color.RGBA{R: 0, G: 150, B: 50, A: 255},
	Ant:   color.RGBA{R: 255, G: 0, B: 0, A: 255},
}

// Background is the color of screen area not covered by grid cells.
var Background = color.RGBA{A: 255}

// Renderer turns a viewport, grid and ant position into draw calls.
type Renderer struct {
	Palette Palette
}

// NewRenderer returns a renderer using DefaultPalette.
func NewRenderer() *Renderer {
	return &Renderer{Palette: DefaultPalette}
}

// Frame draws every visible cell and presents the result. Cells of the
// visible window that fall outside the grid are skipped rather than wrapped.
func (r *Renderer) Frame(dst Surface, vp *view.Viewport, grid *core.Grid, ant core.Point) {
	dst.Clear()

	first := vp.FirstVisible()
	origin := vp.ScreenOrigin()
	size := vp.SquareSize

	for x := 0; x < vp.SquaresPerLine; x++ {
		gx := first.X + x
		if gx >= grid.W {
			break
		}
		if gx < 0 {
			continue
		}
		for y := 0; y < vp.SquaresPerColumn; y++ {
			gy := first.Y + y
			if gy >= grid.H {
				break
			}
			if gy < 0 {
				continue
			}
			c := r.cellColor(grid, gx, gy, ant)
			dst.FillRect(origin.X+x*size, origin.Y+y*size, size, size, c)
		}
	}

	dst.Present()
}

func (r *Renderer) cellColor(grid *core.Grid, x, y int, ant core.Point) color.RGBA {
	if x == ant.X && y == ant.Y {
		return r.Palette.Ant
	}
	switch grid.Get(x, y) {
	case core.White:
		return r.Palette.White
	case core.Black:
		return r.Palette.Black
	}
	panic("impossible cell state")
}
