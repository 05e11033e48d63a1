package minkowskix

// WorldLine is an inertial trajectory in 1+1D spacetime:
//
//	x(t) = X0 + V*(t - T0)
//
// WorldLines are immutable value types with no lifecycle beyond
// construction and pure reads. V may equal or exceed the speed of light;
// the model classifies the resulting intervals rather than forbidding
// superluminal values.
//
// WorldLines and Events never reference each other by identity; all
// composition is by value.
type WorldLine struct {
	X0    float64 `json:"x0" yaml:"x0"`
	V     float64 `json:"v" yaml:"v"`
	T0    float64 `json:"t0,omitempty" yaml:"t0,omitempty"`
	Label string  `json:"label,omitempty" yaml:"label,omitempty"`
}

// PositionAt returns the line's position at coordinate time t.
func (w WorldLine) PositionAt(t float64) float64 {
	return w.X0 + w.V*(t-w.T0)
}

// EventAt returns the Event on the line at coordinate time t.
// An empty label falls back to the line's own label.
func (w WorldLine) EventAt(t float64, label string) Event {
	if label == "" {
		label = w.Label
	}
	return Event{T: t, X: w.PositionAt(t), Label: label}
}
