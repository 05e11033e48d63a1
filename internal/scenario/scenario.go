// Package scenario loads declarative simulation scenarios and runs them
// against the core API. A scenario names its world lines by label and
// describes which operations to perform over a shared sampling window.
package scenario

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/comalice/minkowskix"
	"github.com/comalice/minkowskix/sim"
)

var (
	ErrNoWorldLines = errors.New("scenario has no world lines")
	ErrUnknownLine  = errors.New("unknown world line label")
)

// Scenario is the declarative form of a simulation run.
type Scenario struct {
	// C is the speed of light; zero means the default of 1.
	C          float64                `json:"c,omitempty" yaml:"c,omitempty"`
	WorldLines []minkowskix.WorldLine `json:"worldlines" yaml:"worldlines"`
	Window     sim.Window             `json:"window" yaml:"window"`

	Intervals   []IntervalCheck `json:"intervals,omitempty" yaml:"intervals,omitempty"`
	Light       *LightRun       `json:"light,omitempty" yaml:"light,omitempty"`
	Spontaneous *SpontaneousRun `json:"spontaneous,omitempty" yaml:"spontaneous,omitempty"`
	Conditional *ConditionalRun `json:"conditional,omitempty" yaml:"conditional,omitempty"`
}

// IntervalCheck asks for the classification of one event pair.
type IntervalCheck struct {
	A minkowskix.Event `json:"a" yaml:"a"`
	B minkowskix.Event `json:"b" yaml:"b"`
}

// LightRun asks for a light-vs-rest encounter.
type LightRun struct {
	Start     minkowskix.Event `json:"start" yaml:"start"`
	RestX     float64          `json:"rest_x" yaml:"rest_x"`
	Direction int              `json:"direction" yaml:"direction"`
}

// SpontaneousRun asks for stochastic event injection along one named line.
type SpontaneousRun struct {
	Line        string  `json:"line" yaml:"line"`
	Probability float64 `json:"probability" yaml:"probability"`
	Seed        uint64  `json:"seed" yaml:"seed"`
	Prefix      string  `json:"prefix,omitempty" yaml:"prefix,omitempty"`
}

// ConditionalRun asks for predicate-gated aggregation over named lines,
// using the built-in proximity predicate: true when the spread of sampled
// positions (max minus min) is at most MaxGap.
type ConditionalRun struct {
	Lines  []string `json:"lines" yaml:"lines"`
	MaxGap float64  `json:"max_gap" yaml:"max_gap"`
	Label  string   `json:"label,omitempty" yaml:"label,omitempty"`
}

// Validate checks the scenario before it runs:
// - at least one world line, each with a unique non-empty label
// - a positive window step
// - every referenced line label resolves
// - light direction in {-1, +1}, spontaneous probability in [0, 1]
func (s *Scenario) Validate() error {
	if len(s.WorldLines) == 0 {
		return ErrNoWorldLines
	}
	seen := map[string]bool{}
	for i, w := range s.WorldLines {
		if w.Label == "" {
			return fmt.Errorf("world line %d has no label", i)
		}
		if seen[w.Label] {
			return fmt.Errorf("duplicate world line label %q", w.Label)
		}
		seen[w.Label] = true
	}
	if s.Window.Step <= 0 {
		return fmt.Errorf("window: %w (got %v)", sim.ErrStep, s.Window.Step)
	}
	if s.Light != nil {
		if d := s.Light.Direction; d != minkowskix.Leftward && d != minkowskix.Rightward {
			return fmt.Errorf("light run: %w (got %d)", minkowskix.ErrDirection, d)
		}
	}
	if s.Spontaneous != nil {
		if !seen[s.Spontaneous.Line] {
			return fmt.Errorf("spontaneous run: %w %q", ErrUnknownLine, s.Spontaneous.Line)
		}
		if p := s.Spontaneous.Probability; p < 0 || p > 1 {
			return fmt.Errorf("spontaneous run: %w (got %v)", sim.ErrProbability, p)
		}
	}
	if s.Conditional != nil {
		if len(s.Conditional.Lines) == 0 {
			return errors.New("conditional run names no world lines")
		}
		for _, label := range s.Conditional.Lines {
			if !seen[label] {
				return fmt.Errorf("conditional run: %w %q", ErrUnknownLine, label)
			}
		}
	}
	return nil
}

// Report is the structured outcome of one scenario run.
type Report struct {
	Intervals   []IntervalResult   `json:"intervals,omitempty"`
	Light       *minkowskix.Event  `json:"light,omitempty"`
	LightMissed bool               `json:"light_missed,omitempty"`
	Spontaneous []minkowskix.Event `json:"spontaneous,omitempty"`
	Conditional []minkowskix.Event `json:"conditional,omitempty"`
}

// IntervalResult records one classified event pair.
type IntervalResult struct {
	A    minkowskix.Event        `json:"a"`
	B    minkowskix.Event        `json:"b"`
	S2   float64                 `json:"s2"`
	Kind minkowskix.IntervalKind `json:"kind"`
}

// Run validates the scenario and executes every requested operation.
func Run(s *Scenario) (Report, error) {
	if err := s.Validate(); err != nil {
		return Report{}, fmt.Errorf("scenario: %w", err)
	}

	c := s.C
	if c == 0 {
		c = minkowskix.DefaultC
	}
	lines := map[string]minkowskix.WorldLine{}
	for _, w := range s.WorldLines {
		lines[w.Label] = w
	}

	var rep Report
	for _, chk := range s.Intervals {
		rep.Intervals = append(rep.Intervals, IntervalResult{
			A:    chk.A,
			B:    chk.B,
			S2:   minkowskix.IntervalSquared(chk.A, chk.B, minkowskix.WithC(c)),
			Kind: minkowskix.Classify(chk.A, chk.B, minkowskix.WithC(c)),
		})
	}

	if s.Light != nil {
		meet, ok, err := minkowskix.LightVsRest(s.Light.Start, s.Light.RestX, s.Light.Direction, minkowskix.WithC(c))
		if err != nil {
			return Report{}, fmt.Errorf("scenario light run: %w", err)
		}
		if ok {
			rep.Light = &meet
		} else {
			rep.LightMissed = true
		}
	}

	if s.Spontaneous != nil {
		src := rand.New(rand.NewPCG(s.Spontaneous.Seed, 0))
		events, err := sim.SpontaneousEvents(lines[s.Spontaneous.Line], s.Window, s.Spontaneous.Probability, src, s.Spontaneous.Prefix)
		if err != nil {
			return Report{}, fmt.Errorf("scenario spontaneous run: %w", err)
		}
		rep.Spontaneous = events
	}

	if s.Conditional != nil {
		tracked := make([]minkowskix.WorldLine, len(s.Conditional.Lines))
		for i, label := range s.Conditional.Lines {
			tracked[i] = lines[label]
		}
		maxGap := s.Conditional.MaxGap
		events, err := sim.Conditional(tracked, s.Window, func(_ float64, samples []minkowskix.Event) bool {
			return spread(samples) <= maxGap
		}, s.Conditional.Label)
		if err != nil {
			return Report{}, fmt.Errorf("scenario conditional run: %w", err)
		}
		rep.Conditional = events
	}

	return rep, nil
}

// spread is the width of the sampled positions: max x minus min x.
func spread(samples []minkowskix.Event) float64 {
	if len(samples) == 0 {
		return 0
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, e := range samples {
		lo = math.Min(lo, e.X)
		hi = math.Max(hi, e.X)
	}
	return hi - lo
}
