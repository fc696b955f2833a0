package core

// Color is the state of a single grid cell.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Grid stores a toroidal 2D grid of cell colors in row-major order.
type Grid struct {
	W, H int
	data []Color
}

// NewGrid allocates an all-white grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]Color, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice in row-major order.
func (g *Grid) Cells() []Color { return g.data }

// Index returns the linear slice index for coordinates (x, y) after wrapping.
func (g *Grid) Index(x, y int) int {
	x, y = g.Wrap(x, y)
	return y*g.W + x
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Get returns the color at (x, y). Any integer coordinates are valid.
func (g *Grid) Get(x, y int) Color { return g.data[g.Index(x, y)] }

// Set writes c at (x, y).
func (g *Grid) Set(x, y int, c Color) { g.data[g.Index(x, y)] = c }

// Toggle flips the cell at (x, y) between White and Black.
func (g *Grid) Toggle(x, y int) {
	i := g.Index(x, y)
	g.data[i] ^= 1
}

// Clear fills the grid with White.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = White
	}
}

// Count returns the number of cells holding c.
func (g *Grid) Count(c Color) int {
	n := 0
	for _, v := range g.data {
		if v == c {
			n++
		}
	}
	return n
}
