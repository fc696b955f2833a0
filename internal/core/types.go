package core

// Size describes the dimensions of a grid or a screen.
type Size struct {
	W int
	H int
}

// Empty reports whether either dimension is zero or negative.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Point is an integer coordinate pair.
type Point struct {
	X int
	Y int
}
