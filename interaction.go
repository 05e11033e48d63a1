package minkowskix

import "fmt"

// LightVsRest resolves the encounter between light emitted at start and an
// object at rest at position restX. It builds the null line through the
// emission event, a stationary line anchored at the emission time, and
// intersects them.
//
// A meeting strictly before start.T is the mathematically valid but
// physically backward solution — the object lies behind the direction of
// travel — and is rejected along with the no-intersection case: both return
// ok=false. An invalid direction returns ErrDirection.
func LightVsRest(start Event, restX float64, direction int, opts ...Option) (Event, bool, error) {
	s := resolve(DefaultIntersectTol, "light-rest interaction", opts)

	light, err := NullLineThrough(start, direction, WithC(s.c), WithLabel("photon"))
	if err != nil {
		return Event{}, false, fmt.Errorf("light vs rest: %w", err)
	}
	rest := WorldLine{X0: restX, V: 0, T0: start.T, Label: "rest-object"}

	meet, ok := IntersectionEvent(light, rest, WithTol(s.tol), WithLabel(s.label))
	if !ok || meet.T < start.T {
		return Event{}, false, nil
	}
	return meet, true, nil
}
