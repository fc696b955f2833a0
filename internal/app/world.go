package app

import (
	"fmt"

	"langton-ant/internal/core"
	"langton-ant/internal/sims/langton"
	"langton-ant/internal/ui"
	"langton-ant/internal/view"
)

// World is the single mutable aggregate of the running program: the
// automaton, the camera and the configured cadences.
type World struct {
	Engine *langton.Engine
	View   *view.Viewport
	Config Config
}

// NewWorld allocates the grid, places the ant from src and fits the camera
// to the configured window.
func NewWorld(cfg *Config, src core.Source) (*World, error) {
	if cfg.Map.Empty() {
		return nil, ErrEmptyMap
	}
	if err := checkMap(cfg.Map); err != nil {
		return nil, err
	}
	if cfg.Window.Empty() {
		return nil, fmt.Errorf("window %dx%d: %w", cfg.Window.W, cfg.Window.H, ErrEmptyWindow)
	}
	if err := checkWindow(cfg.Window); err != nil {
		return nil, err
	}
	engine := langton.New(cfg.Map.W, cfg.Map.H)
	engine.Reset(src)
	return &World{
		Engine: engine,
		View:   view.New(cfg.Window, cfg.Map),
		Config: *cfg,
	}, nil
}

// AntPos returns the ant's grid position.
func (w *World) AntPos() core.Point {
	a := w.Engine.Ant()
	return core.Point{X: a.X, Y: a.Y}
}

// Status snapshots the values reported on the status line.
func (w *World) Status() ui.Status {
	return ui.Status{
		Iteration:  w.Engine.Iteration(),
		Ant:        w.AntPos(),
		Camera:     core.Point{X: w.View.X, Y: w.View.Y},
		Refresh:    w.Config.Refresh,
		Cycle:      w.Config.Cycle,
		Follow:     w.View.FollowAnt,
		SquareSize: w.View.SquareSize,
	}
}
