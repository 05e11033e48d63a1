// Package minkowskix models kinematics in 1+1-dimensional Minkowski
// spacetime: point events, inertial world lines, interval classification,
// and closed-form intersection of world lines.
//
// Everything in this package is a pure function over immutable value types.
// Nothing is cached, nothing is mutated, and no function touches global
// state. Optional results ("no unique intersection", "light never meets the
// object") are reported with an ok bool, never an error; errors are reserved
// for malformed arguments.
//
// Time-stepped sampling procedures over world lines live in the sim
// subpackage.
package minkowskix

// Event is a point in 1+1D spacetime.
//
// Events are immutable value types: construct one, then only read it.
// Equality is by value. Any pair of real coordinates is a valid event;
// there is no invariant to enforce at construction.
type Event struct {
	T     float64 `json:"t" yaml:"t"`
	X     float64 `json:"x" yaml:"x"`
	Label string  `json:"label,omitempty" yaml:"label,omitempty"`
}

// NewEvent creates and returns a new immutable Event.
//
// Returns Event by value for stack allocation and copy elision.
func NewEvent(t, x float64, label string) Event {
	return Event{T: t, X: x, Label: label}
}
