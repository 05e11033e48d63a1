package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/comalice/minkowskix"
	"github.com/comalice/minkowskix/internal/scenario"
	"github.com/comalice/minkowskix/sim"
)

// config is demo-only plumbing, read from the environment.
type config struct {
	// Scenario is an optional path to a YAML or JSON scenario file.
	// Empty runs the built-in scenario.
	Scenario string `env:"DEMO_SCENARIO"`
	// Report is an optional path for a JSON report of the run.
	Report string `env:"DEMO_REPORT"`
	// Seed overrides the built-in scenario's spontaneous seed.
	Seed uint64 `env:"DEMO_SEED" envDefault:"42"`
}

// builtin mirrors the classic demonstration: one classified event pair, a
// photon meeting an object at rest, random bursts on a moving ship, and a
// chaser closing on a target.
func builtin(seed uint64) *scenario.Scenario {
	return &scenario.Scenario{
		WorldLines: []minkowskix.WorldLine{
			{X0: 0, V: 0.4, Label: "ship"},
			{X0: -3, V: 0.8, Label: "chaser"},
			{X0: 3, V: 0, Label: "target"},
		},
		Window: sim.Window{Start: 0, End: 10, Step: 0.1},
		Intervals: []scenario.IntervalCheck{
			{A: minkowskix.NewEvent(0, 0, "A"), B: minkowskix.NewEvent(2, 1, "B")},
		},
		Light: &scenario.LightRun{
			Start:     minkowskix.NewEvent(0, 0, ""),
			RestX:     5,
			Direction: minkowskix.Rightward,
		},
		Spontaneous: &scenario.SpontaneousRun{
			Line:        "ship",
			Probability: 0.2,
			Seed:        seed,
			Prefix:      "burst",
		},
		Conditional: &scenario.ConditionalRun{
			Lines:  []string{"chaser", "target"},
			MaxGap: 0.5,
			Label:  "close-approach",
		},
	}
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	var sc *scenario.Scenario
	if cfg.Scenario != "" {
		loaded, err := scenario.Load(cfg.Scenario)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load scenario: %v\n", err)
			os.Exit(1)
		}
		sc = loaded
	} else {
		sc = builtin(cfg.Seed)
	}

	rep, err := scenario.Run(sc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "run scenario: %v\n", err)
		os.Exit(1)
	}

	for _, r := range rep.Intervals {
		fmt.Printf("Interval %s->%s: %s (s2=%.3f)\n", r.A.Label, r.B.Label, r.Kind, r.S2)
	}
	if rep.Light != nil {
		fmt.Printf("Photon/rest interaction: t=%.3f x=%.3f (%s)\n", rep.Light.T, rep.Light.X, rep.Light.Label)
	} else if rep.LightMissed {
		fmt.Println("Photon/rest interaction: none (light never reaches the object)")
	}
	if sc.Spontaneous != nil {
		fmt.Printf("Spontaneous events on %q: %d\n", sc.Spontaneous.Line, len(rep.Spontaneous))
		for _, e := range rep.Spontaneous {
			fmt.Printf("  %s: t=%.2f x=%.3f\n", e.Label, e.T, e.X)
		}
	}
	if sc.Conditional != nil {
		fmt.Printf("Conditional samples (%v): %d\n", sc.Conditional.Lines, len(rep.Conditional))
	}

	if cfg.Report != "" {
		if err := scenario.WriteReport(cfg.Report, rep); err != nil {
			fmt.Fprintf(os.Stderr, "write report: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Report written to", cfg.Report)
	}
}
