package sim

import (
	"errors"
	"fmt"
)

// ErrStep reports a non-positive window step.
var ErrStep = errors.New("step must be > 0")

// endSlack absorbs floating-point rounding at the window boundary so that
// the end time itself is sampled.
const endSlack = 1e-12

// Window is a closed sampling interval walked in fixed increments.
// Both Start and End are sampled. Step must be positive.
type Window struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
	Step  float64 `json:"step" yaml:"step"`
}

func (w Window) validate() error {
	if w.Step <= 0 {
		return fmt.Errorf("window: %w (got %v)", ErrStep, w.Step)
	}
	return nil
}

// Steps returns the number of sample times the window produces, zero for
// an invalid window. The count is bounded by (End-Start)/Step + 1.
func (w Window) Steps() int {
	if w.Step <= 0 {
		return 0
	}
	n := 0
	for t := w.Start; t <= w.End+endSlack; t += w.Step {
		n++
	}
	return n
}

// walk invokes fn at each sample time, Start through End inclusive.
func (w Window) walk(fn func(t float64)) {
	for t := w.Start; t <= w.End+endSlack; t += w.Step {
		fn(t)
	}
}
