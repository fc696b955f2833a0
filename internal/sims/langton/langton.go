package langton

import (
	"langton-ant/internal/core"
)

// Engine owns the grid and the ant and applies the automaton rule.
type Engine struct {
	grid *core.Grid
	ant  Ant
	it   uint64
}

// New returns an engine with an all-white grid of the given dimensions and
// the ant at the origin facing up. Call Reset to place it randomly.
func New(w, h int) *Engine {
	return &Engine{grid: core.NewGrid(w, h)}
}

// Grid exposes the cell storage.
func (e *Engine) Grid() *core.Grid { return e.grid }

// Ant returns a copy of the ant state.
func (e *Engine) Ant() Ant { return e.ant }

// Iteration returns the number of steps applied since the last reset.
func (e *Engine) Iteration() uint64 { return e.it }

// Reset clears the grid and places the ant at a position and facing drawn
// from src.
func (e *Engine) Reset(src core.Source) {
	e.grid.Clear()
	e.it = 0
	e.ant = Ant{
		X:   src.IntN(e.grid.W),
		Y:   src.IntN(e.grid.H),
		Dir: Direction(src.IntN(4)),
	}
}

// Place puts the ant at (x, y) facing dir without touching the grid.
func (e *Engine) Place(x, y int, dir Direction) {
	x, y = e.grid.Wrap(x, y)
	e.ant = Ant{X: x, Y: y, Dir: dir % 4}
}

// Step applies the rule once: turn on the pre-toggle color (right on white,
// left on black), flip the cell, then move one cell in the new direction.
func (e *Engine) Step() {
	a := &e.ant
	switch e.grid.Get(a.X, a.Y) {
	case core.White:
		a.TurnRight()
	case core.Black:
		a.TurnLeft()
	default:
		panic("impossible cell state")
	}
	e.grid.Toggle(a.X, a.Y)
	dx, dy := a.Dir.Delta()
	a.X, a.Y = e.grid.Wrap(a.X+dx, a.Y+dy)
	e.it++
}

// Run applies n steps.
func (e *Engine) Run(n int) {
	for i := 0; i < n; i++ {
		e.Step()
	}
}
