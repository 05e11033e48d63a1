package minkowskix

import "math"

// IntervalKind classifies the spacetime separation between two events.
type IntervalKind int

const (
	Timelike IntervalKind = iota
	Spacelike
	Null
)

// String returns the stable lowercase form: "timelike", "spacelike",
// "null". Downstream code may compare against these strings.
func (k IntervalKind) String() string {
	switch k {
	case Timelike:
		return "timelike"
	case Spacelike:
		return "spacelike"
	case Null:
		return "null"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler so the kind serializes as
// its string form in JSON and YAML reports.
func (k IntervalKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IntervalSquared computes the squared spacetime interval
//
//	s² = (c·Δt)² − (Δx)²
//
// between events a and b. Swapping a and b negates both deltas and leaves
// s² unchanged.
func IntervalSquared(a, b Event, opts ...Option) float64 {
	s := resolve(DefaultClassifyTol, "", opts)
	dt := s.c * (b.T - a.T)
	dx := b.X - a.X
	return dt*dt - dx*dx
}

// Classify reports whether the separation between a and b is timelike,
// spacelike or null. |s²| within the tolerance counts as null; s² above it
// is timelike, below its negation spacelike.
//
// For two events taken off one WorldLine of velocity v this yields timelike
// iff |v| < c, null iff |v| = c, spacelike iff |v| > c.
func Classify(a, b Event, opts ...Option) IntervalKind {
	s := resolve(DefaultClassifyTol, "", opts)
	s2 := IntervalSquared(a, b, WithC(s.c))
	switch {
	case math.Abs(s2) <= s.tol:
		return Null
	case s2 > 0:
		return Timelike
	default:
		return Spacelike
	}
}
