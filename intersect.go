package minkowskix

import "math"

// IntersectionTime returns the coordinate time at which two inertial world
// lines cross, solving
//
//	a.X0 + a.V*(t - a.T0) = b.X0 + b.V*(t - b.T0)
//
// in closed form. When the velocities agree within the tolerance the lines
// are parallel — coincident ones included — and no unique crossing time
// exists: coincident lines cross everywhere, offset parallels nowhere, and
// both collapse to ok=false.
func IntersectionTime(a, b WorldLine, opts ...Option) (float64, bool) {
	s := resolve(DefaultIntersectTol, "", opts)
	denom := a.V - b.V
	if math.Abs(denom) <= s.tol {
		return 0, false
	}
	aConst := a.X0 - a.V*a.T0
	bConst := b.X0 - b.V*b.T0
	return (bConst - aConst) / denom, true
}

// IntersectionEvent returns the Event where two world lines cross,
// evaluated on line a, or ok=false when no unique crossing exists.
// Default label "interaction", overridable with WithLabel.
func IntersectionEvent(a, b WorldLine, opts ...Option) (Event, bool) {
	s := resolve(DefaultIntersectTol, "interaction", opts)
	t, ok := IntersectionTime(a, b, WithTol(s.tol))
	if !ok {
		return Event{}, false
	}
	return Event{T: t, X: a.PositionAt(t), Label: s.label}, true
}
