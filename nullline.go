package minkowskix

import (
	"errors"
	"fmt"
)

// ErrDirection reports a light direction other than -1 or +1.
var ErrDirection = errors.New("direction must be -1 or +1")

// Propagation directions for null lines.
const (
	Leftward  = -1
	Rightward = +1
)

// NullLineThrough returns the lightlike world line through ev: velocity
// direction·c, anchored at the event. direction is Rightward (+1) for
// right-moving light, Leftward (-1) for left-moving; anything else is
// ErrDirection. Default label "light", overridable with WithLabel.
func NullLineThrough(ev Event, direction int, opts ...Option) (WorldLine, error) {
	if direction != Leftward && direction != Rightward {
		return WorldLine{}, fmt.Errorf("null line through %q: %w (got %d)", ev.Label, ErrDirection, direction)
	}
	s := resolve(DefaultClassifyTol, "light", opts)
	return WorldLine{
		X0:    ev.X,
		V:     float64(direction) * s.c,
		T0:    ev.T,
		Label: s.label,
	}, nil
}
