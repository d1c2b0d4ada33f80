// Package design provides host-memory reference implementations of the
// filter-design routines covered by the benchmark suite: window-method FIR
// coefficient synthesis, Kaiser window parameter helpers, and magnitude
// ordering of complex arrays.
//
// The routines follow the classic scipy.signal semantics so that results can
// be checked against well-known reference values. Accelerated counterparts
// live in the gpu package; the bench package drives both and asserts
// numeric equivalence.
package design
