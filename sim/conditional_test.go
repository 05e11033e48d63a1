package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/comalice/minkowskix"
)

func TestConditional_Validation(t *testing.T) {
	_, err := Conditional(nil, Window{Start: 0, End: 1, Step: 0}, func(float64, []minkowskix.Event) bool { return true }, "")
	if !errors.Is(err, ErrStep) {
		t.Errorf("zero step: err = %v, want ErrStep", err)
	}
}

func TestConditional_CloseApproach(t *testing.T) {
	a := minkowskix.WorldLine{X0: -1, V: 1, Label: "a"}
	b := minkowskix.WorldLine{X0: 1, V: -1, Label: "b"}

	near, err := Conditional([]minkowskix.WorldLine{a, b}, Window{Start: 0, End: 2, Step: 0.5},
		func(_ float64, evs []minkowskix.Event) bool {
			return math.Abs(evs[0].X-evs[1].X) <= 0.5
		}, "")
	if err != nil {
		t.Fatal(err)
	}

	if len(near) != 1 {
		t.Fatalf("got %d aggregate events, want 1: %v", len(near), near)
	}
	got := near[0]
	if got.T != 1 {
		t.Errorf("aggregate at t=%v, want 1", got.T)
	}
	if !(math.Abs(got.X) <= 1e-12) {
		t.Errorf("centroid x = %v, want 0", got.X)
	}
	if got.Label != DefaultConditionalLabel {
		t.Errorf("default label = %q, want %q", got.Label, DefaultConditionalLabel)
	}
}

func TestConditional_SamplesOrderAndLabels(t *testing.T) {
	lines := []minkowskix.WorldLine{
		{X0: 0, V: 0, Label: "first"},
		{X0: 10, V: 0, Label: "second"},
		{X0: 20, V: 0, Label: "third"},
	}

	var seen [][]minkowskix.Event
	_, err := Conditional(lines, Window{Start: 0, End: 0, Step: 1},
		func(_ float64, samples []minkowskix.Event) bool {
			cp := make([]minkowskix.Event, len(samples))
			copy(cp, samples)
			seen = append(seen, cp)
			return false
		}, "")
	if err != nil {
		t.Fatal(err)
	}

	if len(seen) != 1 {
		t.Fatalf("predicate invoked %d times, want 1", len(seen))
	}
	for i, want := range []string{"first", "second", "third"} {
		if got := seen[0][i].Label; got != want {
			t.Errorf("sample %d label = %q, want %q (order must follow the caller)", i, got, want)
		}
	}
	if seen[0][1].X != 10 {
		t.Errorf("sample 1 x = %v, want 10", seen[0][1].X)
	}
}

func TestConditional_CentroidAndLabel(t *testing.T) {
	lines := []minkowskix.WorldLine{
		{X0: 0, V: 1, Label: "a"},
		{X0: 4, V: -1, Label: "b"},
	}

	out, err := Conditional(lines, Window{Start: 0, End: 1, Step: 1},
		func(float64, []minkowskix.Event) bool { return true }, "meetup")
	if err != nil {
		t.Fatal(err)
	}

	if len(out) != 2 {
		t.Fatalf("got %d events, want 2", len(out))
	}
	// Centroid stays at 2 as the lines converge symmetrically.
	for _, e := range out {
		if e.X != 2 {
			t.Errorf("centroid at t=%v is %v, want 2", e.T, e.X)
		}
		if e.Label != "meetup" {
			t.Errorf("label = %q, want %q", e.Label, "meetup")
		}
	}
}

func TestConditional_EmptyLineSet(t *testing.T) {
	out, err := Conditional(nil, Window{Start: 0, End: 1, Step: 0.5},
		func(float64, []minkowskix.Event) bool { return true }, "")
	if err != nil {
		t.Fatal(err)
	}

	// Divisor floors at 1: aggregates land at x=0 instead of dividing by
	// zero.
	if len(out) != 3 {
		t.Fatalf("got %d events, want 3", len(out))
	}
	for _, e := range out {
		if e.X != 0 {
			t.Errorf("aggregate x = %v, want 0", e.X)
		}
	}
}
