package gpu

import "sync"

// Backend is implemented by device backends (CUDA, OpenCL, mock).
// It is responsible for device discovery and context creation.
type Backend interface {
	Info() BackendInfo
	Available() bool
	Devices() ([]DeviceInfo, error)
	NewContext(deviceIndex int) (Context, error)
}

// Context represents a backend-specific execution context tied to a device.
type Context interface {
	Device() DeviceInfo
	// NewBuffer allocates a device buffer.
	NewBuffer(elemCount int, precision PrecisionKind) (Buffer, error)
	// NewStream creates an execution stream/queue.
	NewStream() (Stream, error)
	// NewKernel compiles a filter-design kernel.
	NewKernel(kind KernelKind) (KernelImpl, error)
	Close() error
}

// Buffer is a device buffer.
type Buffer interface {
	Len() int
	Precision() PrecisionKind
	// Upload copies from host to device.
	Upload(src any) error
	// Download copies from device to host.
	Download(dst any) error
	Close() error
}

// Stream represents an execution queue/stream.
type Stream interface {
	Synchronize() error
	Close() error
}

// KernelImpl is a compiled backend-specific kernel.
type KernelImpl interface {
	Kind() KernelKind
	// Run launches the kernel on the given stream. Completion is only
	// guaranteed after the stream synchronizes.
	Run(stream Stream, args KernelArgs) error
	Close() error
}

var (
	backendMu sync.RWMutex
	backend   Backend
)

// RegisterBackend registers a device backend. Passing nil clears the backend.
func RegisterBackend(b Backend) {
	backendMu.Lock()
	backend = b
	backendMu.Unlock()
}

// CurrentBackendInfo reports the currently registered backend, if any.
func CurrentBackendInfo() (BackendInfo, bool) {
	backendMu.RLock()
	b := backend
	backendMu.RUnlock()
	if b == nil {
		return BackendInfo{}, false
	}
	return b.Info(), true
}

func getBackend() Backend {
	backendMu.RLock()
	b := backend
	backendMu.RUnlock()
	return b
}
