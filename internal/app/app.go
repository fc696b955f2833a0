//go:build ebiten

package app

import (
	"langton-ant/internal/core"
	"langton-ant/internal/input"
	"langton-ant/internal/render"
	"langton-ant/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts the control loop to the ebiten.Game interface.
type Game struct {
	world   *World
	loop    *Loop
	source  *input.EbitenSource
	surface *render.PixelSurface
	frame   *render.FrameImage
	overlay *ui.Overlay
	clock   *core.TickClock

	screen  core.Size
	pending core.Size
}

// New builds the world from cfg and draws the first frame.
func New(cfg *Config, status *ui.StatusLine) (*Game, error) {
	w, err := NewWorld(cfg, core.NewRNG(core.SeedOrNow(cfg.Seed)))
	if err != nil {
		return nil, err
	}
	g := &Game{
		world:   w,
		source:  input.NewEbitenSource(),
		surface: render.NewPixelSurface(cfg.Window.W, cfg.Window.H, render.Background),
		frame:   render.NewFrameImage(),
		overlay: ui.NewOverlay(),
		clock:   core.NewTickClockTPS(cfg.LoopTPS()),
		screen:  cfg.Window,
		pending: cfg.Window,
	}
	g.loop = NewLoop(w, g.surface, g.clock, status, g.overlay)
	g.loop.Start()
	return g, nil
}

// Update runs one iteration of the control loop. The loop clock advances by
// one tick per Update, matching the TPS set on ebiten.
func (g *Game) Update() error {
	g.clock.Tick()
	if g.pending != g.screen && !g.pending.Empty() {
		g.screen = g.pending
		g.surface = render.NewPixelSurface(g.screen.W, g.screen.H, render.Background)
		g.loop.Resize(g.screen, g.surface)
	}
	if !ebiten.IsFocused() {
		g.loop.ReleaseKeys()
	}
	if !g.loop.Iterate(g.source.Poll()) {
		return ebiten.Termination
	}
	return nil
}

// Draw shows the last presented frame and the info overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.frame.Draw(screen, g.surface)
	g.overlay.Draw(screen, g.world.Status())
}

// Layout tracks the window size so the viewport follows resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.pending = core.Size{W: outsideWidth, H: outsideHeight}
		return outsideWidth, outsideHeight
	}
	return g.screen.W, g.screen.H
}
