package sim

import "math/rand/v2"

// Source supplies uniform samples in [0, 1). *rand.Rand satisfies it.
//
// A Source is the one piece of mutable state in this package: each draw
// advances its cursor. It is owned by a single caller and is not safe for
// concurrent use.
type Source interface {
	Float64() float64
}

// newDefaultSource returns an auto-seeded source for callers that pass
// nil. Output is then not reproducible; inject a seeded source to get the
// determinism contract.
func newDefaultSource() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
