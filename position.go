package gridhash

// Position is a point in world space. Cell addressing truncates coordinates
// to unsigned integers, so positions must be non-negative.
type Position struct {
	X float32
	Y float32
}

// NewPosition returns the position (x, y).
func NewPosition(x, y float32) Position {
	return Position{X: x, Y: y}
}
