package sim

import (
	"fmt"

	"github.com/comalice/minkowskix"
)

// Predicate gates the conditional sampler. It receives the current time and
// the events sampled from every world line at that time, in the caller's
// line order. It is a plain function value supplied by the caller; the
// sampler imposes no structure on it beyond the boolean answer.
type Predicate func(t float64, samples []minkowskix.Event) bool

// DefaultConditionalLabel labels aggregate events when no label is given.
const DefaultConditionalLabel = "conditional"

// Conditional walks the window, samples every world line at each step, and
// appends one aggregate event whenever pred reports true. The aggregate
// carries the centroid x — the arithmetic mean of the sampled positions,
// with the divisor floored at 1 so an empty line set yields x=0 rather
// than dividing by zero.
//
// Each per-line sample is labeled with its line's own label. pred must be
// non-nil.
func Conditional(lines []minkowskix.WorldLine, win Window, pred Predicate, label string) ([]minkowskix.Event, error) {
	if err := win.validate(); err != nil {
		return nil, fmt.Errorf("conditional simulation: %w", err)
	}
	if label == "" {
		label = DefaultConditionalLabel
	}

	var out []minkowskix.Event
	win.walk(func(t float64) {
		samples := make([]minkowskix.Event, len(lines))
		for i, line := range lines {
			samples[i] = line.EventAt(t, "")
		}
		if !pred(t, samples) {
			return
		}
		sum := 0.0
		for _, e := range samples {
			sum += e.X
		}
		n := max(len(samples), 1)
		out = append(out, minkowskix.Event{T: t, X: sum / float64(n), Label: label})
	})
	return out, nil
}
