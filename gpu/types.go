package gpu

// PrecisionKind describes the element type of a device buffer.
type PrecisionKind uint8

const (
	PrecisionFloat64 PrecisionKind = iota
	PrecisionComplex128
)

// KernelKind identifies one of the filter-design kernels.
type KernelKind uint8

const (
	KernelFirWin KernelKind = iota
	KernelKaiserBeta
	KernelKaiserAtten
	KernelCmplxSort
)

// Kinds lists every kernel a backend must be able to compile.
func Kinds() []KernelKind {
	return []KernelKind{KernelFirWin, KernelKaiserBeta, KernelKaiserAtten, KernelCmplxSort}
}

// String returns a human-readable kernel name.
func (k KernelKind) String() string {
	switch k {
	case KernelFirWin:
		return "firwin"
	case KernelKaiserBeta:
		return "kaiser_beta"
	case KernelKaiserAtten:
		return "kaiser_atten"
	case KernelCmplxSort:
		return "cmplx_sort"
	default:
		return "unknown"
	}
}

// DeviceInfo describes a device.
type DeviceInfo struct {
	Name       string
	Vendor     string
	Driver     string
	MemoryMB   int
	ComputeCap string
}

// BackendInfo describes a backend implementation.
type BackendInfo struct {
	Name        string
	Version     string
	Description string
}

// KernelArgs carries scalar parameters and device buffers for one kernel
// launch. Fields irrelevant to a kernel kind are ignored by it.
type KernelArgs struct {
	// FirWin parameters.
	NumTaps  int
	Cutoffs  []float64
	PassZero bool

	// KaiserAtten parameters.
	WidthNorm float64

	// In holds the input array for kaiser_beta and cmplx_sort.
	In Buffer

	// Out receives the kernel result.
	Out Buffer
}

// EngineOptions controls engine creation.
type EngineOptions struct {
	// DeviceIndex selects which device to use (0 = default).
	DeviceIndex int
}
