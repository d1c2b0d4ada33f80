package gpu

import (
	"fmt"

	"github.com/cwbudde/algo-filterbench/design"
)

// MockBackend is a CPU-backed backend for development and tests. It satisfies
// the backend interfaces but executes every kernel on the host through the
// design package.
type MockBackend struct {
	device DeviceInfo
}

// NewMockBackend returns a mock backend with a single fake device.
func NewMockBackend() *MockBackend {
	return &MockBackend{
		device: DeviceInfo{
			Name:       "MockGPU",
			Vendor:     "filterbench",
			Driver:     "mock",
			MemoryMB:   0,
			ComputeCap: "cpu",
		},
	}
}

// RegisterMockBackend registers the mock backend as the active backend.
func RegisterMockBackend() {
	RegisterBackend(NewMockBackend())
}

func (b *MockBackend) Info() BackendInfo {
	return BackendInfo{
		Name:        "mock",
		Version:     "0.1",
		Description: "CPU-backed mock device backend",
	}
}

func (b *MockBackend) Available() bool {
	return true
}

func (b *MockBackend) Devices() ([]DeviceInfo, error) {
	return []DeviceInfo{b.device}, nil
}

func (b *MockBackend) NewContext(deviceIndex int) (Context, error) {
	if deviceIndex != 0 {
		return nil, fmt.Errorf("mock backend: device index %d out of range", deviceIndex)
	}
	return &mockContext{device: b.device}, nil
}

type mockContext struct {
	device DeviceInfo
}

func (c *mockContext) Device() DeviceInfo {
	return c.device
}

func (c *mockContext) NewBuffer(elemCount int, precision PrecisionKind) (Buffer, error) {
	if elemCount < 0 {
		return nil, ErrInvalidLength
	}
	switch precision {
	case PrecisionFloat64:
		return &mockBuffer{
			precision: precision,
			len:       elemCount,
			dataF:     make([]float64, elemCount),
		}, nil
	case PrecisionComplex128:
		return &mockBuffer{
			precision: precision,
			len:       elemCount,
			dataC:     make([]complex128, elemCount),
		}, nil
	default:
		return nil, ErrNotImplemented
	}
}

func (c *mockContext) NewStream() (Stream, error) {
	return &mockStream{}, nil
}

func (c *mockContext) NewKernel(kind KernelKind) (KernelImpl, error) {
	switch kind {
	case KernelFirWin, KernelKaiserBeta, KernelKaiserAtten, KernelCmplxSort:
		return &mockKernel{kind: kind}, nil
	default:
		return nil, ErrUnknownKernel
	}
}

func (c *mockContext) Close() error {
	return nil
}

type mockBuffer struct {
	precision PrecisionKind
	len       int
	dataF     []float64
	dataC     []complex128
}

func (b *mockBuffer) Len() int {
	return b.len
}

func (b *mockBuffer) Precision() PrecisionKind {
	return b.precision
}

func (b *mockBuffer) Upload(src any) error {
	switch b.precision {
	case PrecisionFloat64:
		data, ok := src.([]float64)
		if !ok {
			return ErrNotImplemented
		}
		if len(data) < b.len {
			return ErrLengthMismatch
		}
		copy(b.dataF, data[:b.len])
		return nil
	case PrecisionComplex128:
		data, ok := src.([]complex128)
		if !ok {
			return ErrNotImplemented
		}
		if len(data) < b.len {
			return ErrLengthMismatch
		}
		copy(b.dataC, data[:b.len])
		return nil
	default:
		return ErrNotImplemented
	}
}

func (b *mockBuffer) Download(dst any) error {
	switch b.precision {
	case PrecisionFloat64:
		data, ok := dst.([]float64)
		if !ok {
			return ErrNotImplemented
		}
		if len(data) < b.len {
			return ErrLengthMismatch
		}
		copy(data[:b.len], b.dataF)
		return nil
	case PrecisionComplex128:
		data, ok := dst.([]complex128)
		if !ok {
			return ErrNotImplemented
		}
		if len(data) < b.len {
			return ErrLengthMismatch
		}
		copy(data[:b.len], b.dataC)
		return nil
	default:
		return ErrNotImplemented
	}
}

func (b *mockBuffer) Close() error {
	b.dataF = nil
	b.dataC = nil
	b.len = 0
	return nil
}

type mockStream struct{}

func (s *mockStream) Synchronize() error { return nil }
func (s *mockStream) Close() error       { return nil }

type mockKernel struct {
	kind KernelKind
}

func (k *mockKernel) Kind() KernelKind {
	return k.kind
}

func (k *mockKernel) Run(_ Stream, args KernelArgs) error {
	switch k.kind {
	case KernelFirWin:
		return k.runFirWin(args)
	case KernelKaiserBeta:
		return k.runKaiserBeta(args)
	case KernelKaiserAtten:
		return k.runKaiserAtten(args)
	case KernelCmplxSort:
		return k.runCmplxSort(args)
	default:
		return ErrUnknownKernel
	}
}

func (k *mockKernel) Close() error {
	return nil
}

func (k *mockKernel) runFirWin(args KernelArgs) error {
	out, err := hostFloatBuffer(args.Out, args.NumTaps)
	if err != nil {
		return err
	}

	h, err := design.FirWin(args.NumTaps, args.Cutoffs, design.WithPassZero(args.PassZero))
	if err != nil {
		return err
	}
	copy(out, h)
	return nil
}

func (k *mockKernel) runKaiserBeta(args KernelArgs) error {
	in, err := hostFloatBuffer(args.In, -1)
	if err != nil {
		return err
	}
	out, err := hostFloatBuffer(args.Out, len(in))
	if err != nil {
		return err
	}

	copy(out, design.KaiserBetaSlice(in))
	return nil
}

func (k *mockKernel) runKaiserAtten(args KernelArgs) error {
	out, err := hostFloatBuffer(args.Out, 1)
	if err != nil {
		return err
	}

	out[0] = design.KaiserAtten(args.NumTaps, args.WidthNorm)
	return nil
}

func (k *mockKernel) runCmplxSort(args KernelArgs) error {
	inBuf, ok := args.In.(*mockBuffer)
	if !ok || inBuf.precision != PrecisionComplex128 {
		return ErrNotImplemented
	}
	outBuf, ok := args.Out.(*mockBuffer)
	if !ok || outBuf.precision != PrecisionComplex128 {
		return ErrNotImplemented
	}
	if outBuf.len < inBuf.len {
		return ErrLengthMismatch
	}

	sorted, _ := design.CmplxSort(inBuf.dataC)
	copy(outBuf.dataC, sorted)
	return nil
}

// hostFloatBuffer unwraps a mock float64 buffer and checks its length when
// wantLen is non-negative.
func hostFloatBuffer(b Buffer, wantLen int) ([]float64, error) {
	mb, ok := b.(*mockBuffer)
	if !ok {
		return nil, ErrNotImplemented
	}
	if mb.precision != PrecisionFloat64 {
		return nil, ErrNotImplemented
	}
	if wantLen >= 0 && mb.len < wantLen {
		return nil, ErrLengthMismatch
	}
	return mb.dataF, nil
}
