package sim

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/comalice/minkowskix"
)

// seqSource replays a fixed list of draws.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i]
	s.i++
	return v
}

func TestSpontaneousEvents_Validation(t *testing.T) {
	line := minkowskix.WorldLine{X0: 0, V: 0.1}

	_, err := SpontaneousEvents(line, Window{Start: 0, End: 1, Step: 0}, 0.5, nil, "")
	if !errors.Is(err, ErrStep) {
		t.Errorf("zero step: err = %v, want ErrStep", err)
	}
	_, err = SpontaneousEvents(line, Window{Start: 0, End: 1, Step: -0.1}, 0.5, nil, "")
	if !errors.Is(err, ErrStep) {
		t.Errorf("negative step: err = %v, want ErrStep", err)
	}

	for _, p := range []float64{-0.1, 1.1, 2} {
		_, err := SpontaneousEvents(line, Window{Start: 0, End: 1, Step: 0.2}, p, nil, "")
		if !errors.Is(err, ErrProbability) {
			t.Errorf("p=%v: err = %v, want ErrProbability", p, err)
		}
	}
}

func TestSpontaneousEvents_EmitsOnLowDraws(t *testing.T) {
	line := minkowskix.WorldLine{X0: 0, V: 0.1}
	win := Window{Start: 0, End: 1, Step: 0.2}
	src := &seqSource{vals: []float64{0.9, 0.2, 0.3, 0.8, 0.1, 0.7}}

	events, err := SpontaneousEvents(line, win, 0.5, src, "burst")
	if err != nil {
		t.Fatal(err)
	}

	wantTimes := []float64{0.2, 0.4, 0.8}
	wantLabels := []string{"burst-0", "burst-1", "burst-2"}
	if len(events) != len(wantTimes) {
		t.Fatalf("got %d events, want %d: %v", len(events), len(wantTimes), events)
	}
	for i, e := range events {
		if math.Round(e.T*10)/10 != wantTimes[i] {
			t.Errorf("event %d at t=%v, want %v", i, e.T, wantTimes[i])
		}
		if e.Label != wantLabels[i] {
			t.Errorf("event %d label = %q, want %q", i, e.Label, wantLabels[i])
		}
		if math.Abs(e.X-line.PositionAt(e.T)) > 1e-12 {
			t.Errorf("event %d off the world line: x=%v", i, e.X)
		}
	}
	if src.i != win.Steps() {
		t.Errorf("consumed %d draws, want one per step (%d)", src.i, win.Steps())
	}
}

func TestSpontaneousEvents_ProbabilityExtremes(t *testing.T) {
	line := minkowskix.WorldLine{X0: 2, V: -0.5, Label: "probe"}
	win := Window{Start: 0, End: 2, Step: 0.5}

	// p=1 emits at every step even with a nil (auto-seeded) source.
	all, err := SpontaneousEvents(line, win, 1, nil, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != win.Steps() {
		t.Errorf("p=1 emitted %d events, want %d", len(all), win.Steps())
	}
	if all[0].Label != "spontaneous-0" {
		t.Errorf("default prefix label = %q, want %q", all[0].Label, "spontaneous-0")
	}

	// p=0 emits nothing but still consumes one draw per step.
	src := &seqSource{vals: make([]float64, win.Steps())}
	none, err := SpontaneousEvents(line, win, 0, src, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(none) != 0 {
		t.Errorf("p=0 emitted %d events, want 0", len(none))
	}
	if src.i != win.Steps() {
		t.Errorf("p=0 consumed %d draws, want %d", src.i, win.Steps())
	}
}

func TestSpontaneousEvents_ReproducibleUnderSeed(t *testing.T) {
	line := minkowskix.WorldLine{X0: 0, V: 0.4, Label: "ship"}
	win := Window{Start: 0, End: 10, Step: 0.5}

	run := func(seed uint64) []minkowskix.Event {
		events, err := SpontaneousEvents(line, win, 0.2, rand.New(rand.NewPCG(seed, 0)), "")
		if err != nil {
			t.Fatal(err)
		}
		return events
	}

	first := run(42)
	second := run(42)
	if len(first) != len(second) {
		t.Fatalf("same seed produced %d then %d events", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("event %d differs across identical seeds: %v vs %v", i, first[i], second[i])
		}
	}
}
