package app

import (
	"langton-ant/internal/core"
	"langton-ant/internal/input"
	"langton-ant/internal/render"
	"langton-ant/internal/ui"
	"langton-ant/internal/view"
)

// Loop runs one iteration of the control loop at a time. Three independent
// cadences gate its work: pan-key polling, simulation steps and rendering.
// Each is checked once per iteration against the clock.
type Loop struct {
	world    *World
	input    *input.Controller
	renderer *render.Renderer
	surface  render.Surface
	status   *ui.StatusLine
	overlay  *ui.Overlay
	clock    core.Clock

	pan     *core.Cadence
	cycle   *core.Cadence
	refresh *core.Cadence
}

// NewLoop wires a loop around w. status and overlay may be nil.
func NewLoop(w *World, surface render.Surface, clock core.Clock, status *ui.StatusLine, overlay *ui.Overlay) *Loop {
	if clock == nil {
		clock = core.SystemClock{}
	}
	return &Loop{
		world:    w,
		input:    input.NewController(),
		renderer: render.NewRenderer(),
		surface:  surface,
		status:   status,
		overlay:  overlay,
		clock:    clock,
		pan:      core.NewCadence(w.Config.Pan),
		cycle:    core.NewCadence(w.Config.Cycle),
		refresh:  core.NewCadence(w.Config.Refresh),
	}
}

// Start draws the first frame, re-centering on the ant if following.
func (l *Loop) Start() {
	if l.world.View.FollowAnt {
		l.world.View.CenterOnAnt(l.world.AntPos())
	}
	l.draw()
}

// Iterate consumes the events polled this iteration and services every due
// cadence. It returns false once a quit was requested.
func (l *Loop) Iterate(events []input.Event) bool {
	now := l.clock.Now()
	snap := l.input.Apply(events)
	if snap.Quit {
		return false
	}

	vp := l.world.View
	redraw := false
	for i := 0; i < snap.ZoomIn; i++ {
		redraw = vp.Zoom(view.ZoomIn) || redraw
	}
	for i := 0; i < snap.ZoomOut; i++ {
		redraw = vp.Zoom(view.ZoomOut) || redraw
	}
	if snap.ToggleFollow {
		vp.ToggleFollow()
	}
	if snap.ToggleOverlay && l.overlay != nil {
		l.overlay.Toggle()
	}

	if !vp.FollowAnt && l.pan.Due(now) {
		for d := view.PanUp; d <= view.PanLeft; d++ {
			if snap.Held[d] && vp.Pan(d, view.PanStep) {
				redraw = true
			}
		}
	}
	if redraw {
		l.draw()
	}

	if l.cycle.Due(now) {
		l.world.Engine.Step()
	}

	if l.refresh.Due(now) {
		if vp.FollowAnt {
			vp.CenterOnAnt(l.world.AntPos())
		}
		l.draw()
		if l.status != nil {
			l.status.Print(l.world.Status())
		}
	}
	return true
}

// Resize adopts a new window resolution and drawing surface and redraws.
func (l *Loop) Resize(screen core.Size, surface render.Surface) {
	l.world.View.Resize(screen)
	l.surface = surface
	l.draw()
}

// ReleaseKeys forgets held pan keys, e.g. when the window loses focus.
func (l *Loop) ReleaseKeys() { l.input.Release() }

func (l *Loop) draw() {
	l.renderer.Frame(l.surface, l.world.View, l.world.Engine.Grid(), l.world.AntPos())
}
