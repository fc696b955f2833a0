//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// FrameImage mirrors the presented frame of a PixelSurface into an ebiten
// image and draws it.
type FrameImage struct {
	w, h   int
	img    *ebiten.Image
	synced uint64
}

// NewFrameImage returns an empty FrameImage; the backing image is allocated
// on first draw.
func NewFrameImage() *FrameImage { return &FrameImage{} }

// Draw uploads the surface's front buffer if a new frame was presented and
// blits it to dst.
func (fi *FrameImage) Draw(dst *ebiten.Image, ps *PixelSurface) {
	w, h := ps.Size()
	if w == 0 || h == 0 {
		return
	}
	if fi.img == nil || fi.w != w || fi.h != h {
		if fi.img != nil {
			fi.img.Dispose()
		}
		fi.img = ebiten.NewImage(w, h)
		fi.w, fi.h = w, h
		fi.synced = ^uint64(0)
	}
	if fi.synced != ps.Frames() {
		fi.img.WritePixels(ps.Frame())
		fi.synced = ps.Frames()
	}
	dst.DrawImage(fi.img, nil)
}
