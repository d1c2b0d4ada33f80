// Package bench drives the filter-design routines through the host reference
// implementation and the accelerated backend, measures both, and asserts
// numeric equivalence.
//
// A benchmark case pairs one reference callable with one accelerated
// callable for a fixed parameter tuple. Cases are collected from a
// declarative parameter matrix (Suite), carry no shared mutable state, and
// run independently of each other. A backend rejection aborts only the case
// it occurred in; an equivalence mismatch flags the case as failed and the
// remaining cases continue.
package bench
