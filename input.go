package quadgraph

// DefaultPanSpeed is the pan distance per tick in screen pixels.
const DefaultPanSpeed = 10.0

// InputState is a snapshot of the pan controls held during one tick.
type InputState struct {
	Up, Down, Left, Right bool
}

// Any reports whether any direction is held.
func (s InputState) Any() bool {
	return s.Up || s.Down || s.Left || s.Right
}

// Displacement returns how far the view center moves in world units for
// one tick of input. Each held direction moves speed screen pixels, so the
// world distance shrinks as zoom grows. Opposite directions cancel.
func Displacement(s InputState, speed, zoom float64) (dx, dy float64) {
	if !(zoom > 0) {
		return 0, 0
	}
	d := speed / zoom
	if s.Right {
		dx += d
	}
	if s.Left {
		dx -= d
	}
	if s.Up {
		dy += d
	}
	if s.Down {
		dy -= d
	}
	return dx, dy
}
