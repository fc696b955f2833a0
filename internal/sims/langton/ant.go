package langton

import "fmt"

// Direction is the ant's facing, in clockwise order.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

var directionNames = [...]string{"up", "right", "down", "left"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Delta returns the unit offset of one move in direction d.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	}
	panic(fmt.Sprintf("impossible direction %d", d))
}

// Ant is the automaton's single mobile agent.
type Ant struct {
	X, Y int
	Dir  Direction
}

// TurnRight rotates the ant a quarter turn clockwise.
func (a *Ant) TurnRight() { a.Dir = (a.Dir + 1) % 4 }

// TurnLeft rotates the ant a quarter turn counter-clockwise.
func (a *Ant) TurnLeft() { a.Dir = (a.Dir + 3) % 4 }
