package sim

import (
	"errors"
	"fmt"

	"github.com/comalice/minkowskix"
)

// ErrProbability reports a per-step probability outside [0, 1].
var ErrProbability = errors.New("probability per step must be in [0, 1]")

// DefaultPrefix labels spontaneous events when no prefix is given.
const DefaultPrefix = "spontaneous"

// SpontaneousEvents walks the window along line and draws one uniform
// sample from src at every step; a draw below probPerStep emits the line's
// event at that time, labeled "<prefix>-<index>". The index starts at 0 and
// counts emissions, not steps.
//
// Output is bit-identical for identical inputs and identical src state. A
// nil src is replaced with an auto-seeded one, forfeiting reproducibility.
func SpontaneousEvents(line minkowskix.WorldLine, win Window, probPerStep float64, src Source, labelPrefix string) ([]minkowskix.Event, error) {
	if err := win.validate(); err != nil {
		return nil, fmt.Errorf("spontaneous events: %w", err)
	}
	if probPerStep < 0 || probPerStep > 1 {
		return nil, fmt.Errorf("spontaneous events: %w (got %v)", ErrProbability, probPerStep)
	}
	if src == nil {
		src = newDefaultSource()
	}
	if labelPrefix == "" {
		labelPrefix = DefaultPrefix
	}

	var out []minkowskix.Event
	idx := 0
	win.walk(func(t float64) {
		if src.Float64() < probPerStep {
			out = append(out, line.EventAt(t, fmt.Sprintf("%s-%d", labelPrefix, idx)))
			idx++
		}
	})
	return out, nil
}
