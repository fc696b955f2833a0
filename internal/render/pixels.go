package render

import "image/color"

// PixelSurface is a double-buffered RGBA byte surface. Draw calls land in
// the back buffer; Present swaps it to the front in one step so readers never
// observe a partial frame.
type PixelSurface struct {
	w, h       int
	back       []byte
	front      []byte
	background color.RGBA
	frames     uint64
}

// NewPixelSurface allocates a surface of w*h pixels cleared to background.
func NewPixelSurface(w, h int, background color.RGBA) *PixelSurface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	ps := &PixelSurface{
		w:          w,
		h:          h,
		back:       make([]byte, 4*w*h),
		front:      make([]byte, 4*w*h),
		background: background,
	}
	fillRGBA(ps.back, background)
	fillRGBA(ps.front, background)
	return ps
}

// Size returns the surface dimensions in pixels.
func (ps *PixelSurface) Size() (int, int) { return ps.w, ps.h }

// Clear fills the back buffer with the background color.
func (ps *PixelSurface) Clear() { fillRGBA(ps.back, ps.background) }

// FillRect paints the rectangle clipped to the surface bounds.
func (ps *PixelSurface) FillRect(x, y, w, h int, c color.RGBA) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, ps.w), min(y+h, ps.h)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	row := ps.back[4*(y0*ps.w+x0) : 4*(y0*ps.w+x1)]
	fillRGBA(row, c)
	for yy := y0 + 1; yy < y1; yy++ {
		start := 4 * (yy*ps.w + x0)
		copy(ps.back[start:start+len(row)], row)
	}
}

// Present publishes the back buffer as the current frame.
func (ps *PixelSurface) Present() {
	ps.back, ps.front = ps.front, ps.back
	ps.frames++
}

// Frame returns the most recently presented RGBA pixels. The slice is owned
// by the surface and is valid until the next Present.
func (ps *PixelSurface) Frame() []byte { return ps.front }

// Frames counts the calls to Present.
func (ps *PixelSurface) Frames() uint64 { return ps.frames }

// At returns the presented color at (x, y).
func (ps *PixelSurface) At(x, y int) color.RGBA {
	i := 4 * (y*ps.w + x)
	return color.RGBA{R: ps.front[i], G: ps.front[i+1], B: ps.front[i+2], A: ps.front[i+3]}
}

// fillRGBA writes c into every pixel of buf.
func fillRGBA(buf []byte, c color.RGBA) {
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}
