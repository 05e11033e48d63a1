// Options for the free functions: speed of light, tolerances, labels.
package minkowskix

// Defaults for the optional knobs. Tolerances are absolute, not
// scale-aware: at very large coordinate magnitudes a genuinely timelike or
// spacelike pair can land inside the null band. Known precision boundary.
const (
	// DefaultC is the speed of light in natural units.
	DefaultC = 1.0

	// DefaultClassifyTol is the null-band half-width used by Classify.
	DefaultClassifyTol = 1e-9

	// DefaultIntersectTol is the parallel-velocity threshold used by the
	// intersection solver.
	DefaultIntersectTol = 1e-12
)

// settings holds the resolved optional knobs. Each function seeds its own
// defaults before applying options.
type settings struct {
	c     float64
	tol   float64
	label string
}

// Option configures an optional knob on one of the free functions.
type Option func(*settings)

// WithC overrides the speed-of-light constant (default 1).
func WithC(c float64) Option {
	return func(s *settings) { s.c = c }
}

// WithTol overrides the tolerance of the calling function: the null band
// for Classify (default 1e-9), the parallel threshold for the intersection
// solver (default 1e-12).
func WithTol(tol float64) Option {
	return func(s *settings) { s.tol = tol }
}

// WithLabel overrides the label attached to a produced WorldLine or Event.
func WithLabel(label string) Option {
	return func(s *settings) { s.label = label }
}

func resolve(tolDefault float64, labelDefault string, opts []Option) settings {
	s := settings{c: DefaultC, tol: tolDefault, label: labelDefault}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
