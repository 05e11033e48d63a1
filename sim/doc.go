// Package sim provides the time-stepped sampling procedures over world
// lines: stochastic event injection and predicate-gated aggregation.
//
// Both procedures walk one shared Window — a closed interval sampled at a
// fixed step, both ends included — so iteration is bounded and identical
// inputs always visit identical times.
//
// # Determinism
//
// Every function here is deterministic given its inputs. The only source of
// nondeterminism is the random Source injected into SpontaneousEvents, and
// it is fully replaceable by the caller: a seeded source reproduces the
// exact output sequence bit for bit.
//
// # Concurrency
//
// A Source advances an internal cursor on every draw. It is single-owner:
// not safe for concurrent use by multiple callers. The procedures
// themselves hold no state and are safe to call from any goroutine as long
// as each call owns its Source.
package sim
