// Package input turns raw key events into a per-iteration command snapshot.
package input

import "langton-ant/internal/view"

// Key is a logical key understood by the controller.
type Key uint8

const (
	KeyNone Key = iota
	KeyEscape
	KeyZoomIn
	KeyZoomOut
	KeyFollow
	KeyOverlay
	KeyArrowUp
	KeyArrowRight
	KeyArrowDown
	KeyArrowLeft
)

// EventKind classifies an Event.
type EventKind uint8

const (
	Quit EventKind = iota + 1
	KeyDown
	KeyUp
)

// Event is a single polled input event.
type Event struct {
	Kind EventKind
	Key  Key
}

// Snapshot is the input state for one loop iteration: held pan directions
// plus one-shot commands. It is produced once per iteration and read only.
type Snapshot struct {
	Quit          bool
	ZoomIn        int
	ZoomOut       int
	ToggleFollow  bool
	ToggleOverlay bool
	Held          [4]bool
}

// Controller tracks which pan keys are held between iterations.
type Controller struct {
	held [4]bool
}

// NewController returns a controller with no keys held.
func NewController() *Controller { return &Controller{} }

// Apply folds the events polled this iteration into a Snapshot.
func (c *Controller) Apply(events []Event) Snapshot {
	var s Snapshot
	for _, ev := range events {
		switch ev.Kind {
		case Quit:
			s.Quit = true
		case KeyDown:
			switch ev.Key {
			case KeyEscape:
				s.Quit = true
			case KeyZoomIn:
				s.ZoomIn++
			case KeyZoomOut:
				s.ZoomOut++
			case KeyFollow:
				s.ToggleFollow = !s.ToggleFollow
			case KeyOverlay:
				s.ToggleOverlay = !s.ToggleOverlay
			default:
				if d, ok := panDirection(ev.Key); ok {
					c.held[d] = true
				}
			}
		case KeyUp:
			if d, ok := panDirection(ev.Key); ok {
				c.held[d] = false
			}
		}
	}
	s.Held = c.held
	return s
}

// Release clears all held keys, e.g. when the window loses focus.
func (c *Controller) Release() { c.held = [4]bool{} }

func panDirection(k Key) (view.Direction, bool) {
	switch k {
	case KeyArrowUp:
		return view.PanUp, true
	case KeyArrowRight:
		return view.PanRight, true
	case KeyArrowDown:
		return view.PanDown, true
	case KeyArrowLeft:
		return view.PanLeft, true
	}
	return 0, false
}
