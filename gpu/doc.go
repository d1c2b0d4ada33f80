// Package gpu provides the accelerated counterpart of the design package.
//
// The package defines a backend abstraction for device-resident execution of
// the filter-design kernels (FIR window synthesis, Kaiser parameter helpers,
// complex magnitude sort). A backend must be registered at runtime; the
// CPU-backed mock backend serves development, tests, and hosts without a
// device. Kernels are compiled once through Engine.Precompile before any
// measurement starts.
package gpu
