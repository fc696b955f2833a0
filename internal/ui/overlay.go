//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws an optional info panel in the top-left corner of the window.
type Overlay struct {
	visible bool
	panel   *ebiten.Image
}

// NewOverlay constructs a hidden overlay.
func NewOverlay() *Overlay {
	o := &Overlay{}
	o.panel = ebiten.NewImage(1, 1)
	o.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	return o
}

// Toggle shows or hides the overlay.
func (o *Overlay) Toggle() { o.visible = !o.visible }

// Draw renders s onto screen when the overlay is visible.
func (o *Overlay) Draw(screen *ebiten.Image, s Status) {
	if !o.visible {
		return
	}
	follow := "off"
	if s.Follow {
		follow = "on"
	}
	lines := []string{
		fmt.Sprintf("iteration %d", s.Iteration),
		fmt.Sprintf("ant      (%d,%d)", s.Ant.X, s.Ant.Y),
		fmt.Sprintf("camera   (%d,%d)", s.Camera.X, s.Camera.Y),
		fmt.Sprintf("zoom     %dpx", s.SquareSize),
		fmt.Sprintf("follow   %s", follow),
	}

	const lineHeight, pad = 16, 6
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(170), float64(len(lines)*lineHeight+pad))
	screen.DrawImage(o.panel, op)

	for i, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, pad, pad+10+i*lineHeight, color.White)
	}
}
