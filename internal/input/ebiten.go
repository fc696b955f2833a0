//go:build ebiten

package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keymap = []struct {
	key     ebiten.Key
	logical Key
}{
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyEqual, KeyZoomIn},
	{ebiten.KeyKPAdd, KeyZoomIn},
	{ebiten.KeyMinus, KeyZoomOut},
	{ebiten.KeyKPSubtract, KeyZoomOut},
	{ebiten.KeyF, KeyFollow},
	{ebiten.KeyI, KeyOverlay},
	{ebiten.KeyArrowUp, KeyArrowUp},
	{ebiten.KeyArrowRight, KeyArrowRight},
	{ebiten.KeyArrowDown, KeyArrowDown},
	{ebiten.KeyArrowLeft, KeyArrowLeft},
}

// EbitenSource polls ebiten's keyboard and window state for events.
type EbitenSource struct {
	buf []Event
}

// NewEbitenSource returns an event source reading ebiten input state.
func NewEbitenSource() *EbitenSource { return &EbitenSource{} }

// Poll returns the events observed since the previous tick. The returned
// slice is reused by the next call.
func (s *EbitenSource) Poll() []Event {
	s.buf = s.buf[:0]
	if ebiten.IsWindowBeingClosed() {
		s.buf = append(s.buf, Event{Kind: Quit})
	}
	for _, m := range keymap {
		if inpututil.IsKeyJustPressed(m.key) {
			s.buf = append(s.buf, Event{Kind: KeyDown, Key: m.logical})
		}
		if inpututil.IsKeyJustReleased(m.key) {
			s.buf = append(s.buf, Event{Kind: KeyUp, Key: m.logical})
		}
	}
	return s.buf
}
