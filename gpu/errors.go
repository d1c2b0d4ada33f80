package gpu

import "errors"

var (
	// ErrNoBackend is returned when no backend is registered.
	ErrNoBackend = errors.New("filterbench/gpu: no backend registered")

	// ErrBackendUnavailable is returned when the backend is registered but not
	// usable on the current system (no device, driver missing).
	ErrBackendUnavailable = errors.New("filterbench/gpu: backend unavailable")

	// ErrNotImplemented is returned by stubbed operations and for foreign
	// buffer types handed to a backend.
	ErrNotImplemented = errors.New("filterbench/gpu: not implemented")

	// ErrUnknownKernel is returned for kernel kinds a context cannot compile.
	ErrUnknownKernel = errors.New("filterbench/gpu: unknown kernel kind")

	// ErrInvalidLength is returned for invalid buffer or problem sizes.
	ErrInvalidLength = errors.New("filterbench/gpu: invalid length")

	// ErrNilSlice is returned when a host slice argument is nil.
	ErrNilSlice = errors.New("filterbench/gpu: nil slice")

	// ErrLengthMismatch is returned when buffer and slice lengths disagree.
	ErrLengthMismatch = errors.New("filterbench/gpu: length mismatch")

	// ErrEngineClosed is returned when an engine is used after Close.
	ErrEngineClosed = errors.New("filterbench/gpu: engine closed")
)
