package gpu

// Engine owns a device context, one stream, and the compiled kernels. It is
// the explicit "backend ready" handle handed to benchmark cases: create it,
// call Precompile once, then invoke the typed entry points.
//
// An Engine is not safe for concurrent use unless the underlying backend is.
type Engine struct {
	ctx     Context
	stream  Stream
	kernels map[KernelKind]KernelImpl
	device  DeviceInfo
	closed  bool
}

// NewEngine creates an engine on the registered backend.
func NewEngine(opts EngineOptions) (*Engine, error) {
	b := getBackend()
	if b == nil {
		return nil, ErrNoBackend
	}
	if !b.Available() {
		return nil, ErrBackendUnavailable
	}

	ctx, err := b.NewContext(opts.DeviceIndex)
	if err != nil {
		return nil, err
	}

	stream, err := ctx.NewStream()
	if err != nil {
		_ = ctx.Close()
		return nil, err
	}

	return &Engine{
		ctx:     ctx,
		stream:  stream,
		kernels: make(map[KernelKind]KernelImpl),
		device:  ctx.Device(),
	}, nil
}

// Precompile compiles every kernel once so that no measurement pays the
// compilation cost. Replaces ad-hoc warm-up at call time.
func (e *Engine) Precompile() error {
	if e == nil || e.closed {
		return ErrEngineClosed
	}
	for _, kind := range Kinds() {
		if _, err := e.kernel(kind); err != nil {
			return err
		}
	}
	return nil
}

// Device reports the device this engine executes on.
func (e *Engine) Device() DeviceInfo {
	if e == nil {
		return DeviceInfo{}
	}
	return e.device
}

// Close releases kernels, the stream, and the context.
func (e *Engine) Close() error {
	if e == nil || e.closed {
		return nil
	}
	e.closed = true

	var firstErr error
	for _, k := range e.kernels {
		if err := k.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	e.kernels = nil

	if e.stream != nil {
		if err := e.stream.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		e.stream = nil
	}
	if e.ctx != nil {
		if err := e.ctx.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		e.ctx = nil
	}
	return firstErr
}

// FirWin designs a band filter on the device and returns host coefficients.
// Semantics match design.FirWin with the default Hamming window.
func (e *Engine) FirWin(numTaps int, cutoffs []float64, passZero bool) ([]float64, error) {
	if e == nil || e.closed {
		return nil, ErrEngineClosed
	}
	if numTaps < 1 {
		return nil, ErrInvalidLength
	}
	if cutoffs == nil {
		return nil, ErrNilSlice
	}

	k, err := e.kernel(KernelFirWin)
	if err != nil {
		return nil, err
	}

	out, err := e.ctx.NewBuffer(numTaps, PrecisionFloat64)
	if err != nil {
		return nil, err
	}
	defer out.Close()

	args := KernelArgs{
		NumTaps:  numTaps,
		Cutoffs:  append([]float64(nil), cutoffs...),
		PassZero: passZero,
		Out:      out,
	}
	if err := k.Run(e.stream, args); err != nil {
		return nil, err
	}
	if err := e.stream.Synchronize(); err != nil {
		return nil, err
	}

	host := make([]float64, numTaps)
	if err := out.Download(host); err != nil {
		return nil, err
	}
	return host, nil
}

// KaiserBetaSlice evaluates the Kaiser beta formula element-wise on the device.
func (e *Engine) KaiserBetaSlice(attensDB []float64) ([]float64, error) {
	if e == nil || e.closed {
		return nil, ErrEngineClosed
	}
	if attensDB == nil {
		return nil, ErrNilSlice
	}

	k, err := e.kernel(KernelKaiserBeta)
	if err != nil {
		return nil, err
	}

	in, err := e.ctx.NewBuffer(len(attensDB), PrecisionFloat64)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	if err := in.Upload(attensDB); err != nil {
		return nil, err
	}

	out, err := e.ctx.NewBuffer(len(attensDB), PrecisionFloat64)
	if err != nil {
		return nil, err
	}
	defer out.Close()

	if err := k.Run(e.stream, KernelArgs{In: in, Out: out}); err != nil {
		return nil, err
	}
	if err := e.stream.Synchronize(); err != nil {
		return nil, err
	}

	host := make([]float64, len(attensDB))
	if err := out.Download(host); err != nil {
		return nil, err
	}
	return host, nil
}

// KaiserAtten computes the reachable attenuation for a tap count and
// transition width on the device.
func (e *Engine) KaiserAtten(numTaps int, widthNorm float64) (float64, error) {
	if e == nil || e.closed {
		return 0, ErrEngineClosed
	}

	k, err := e.kernel(KernelKaiserAtten)
	if err != nil {
		return 0, err
	}

	out, err := e.ctx.NewBuffer(1, PrecisionFloat64)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	args := KernelArgs{NumTaps: numTaps, WidthNorm: widthNorm, Out: out}
	if err := k.Run(e.stream, args); err != nil {
		return 0, err
	}
	if err := e.stream.Synchronize(); err != nil {
		return 0, err
	}

	host := make([]float64, 1)
	if err := out.Download(host); err != nil {
		return 0, err
	}
	return host[0], nil
}

// CmplxSort orders a complex array by ascending magnitude on the device.
func (e *Engine) CmplxSort(p []complex128) ([]complex128, error) {
	if e == nil || e.closed {
		return nil, ErrEngineClosed
	}
	if p == nil {
		return nil, ErrNilSlice
	}

	k, err := e.kernel(KernelCmplxSort)
	if err != nil {
		return nil, err
	}

	in, err := e.ctx.NewBuffer(len(p), PrecisionComplex128)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	if err := in.Upload(p); err != nil {
		return nil, err
	}

	out, err := e.ctx.NewBuffer(len(p), PrecisionComplex128)
	if err != nil {
		return nil, err
	}
	defer out.Close()

	if err := k.Run(e.stream, KernelArgs{In: in, Out: out}); err != nil {
		return nil, err
	}
	if err := e.stream.Synchronize(); err != nil {
		return nil, err
	}

	host := make([]complex128, len(p))
	if err := out.Download(host); err != nil {
		return nil, err
	}
	return host, nil
}

func (e *Engine) kernel(kind KernelKind) (KernelImpl, error) {
	if k, ok := e.kernels[kind]; ok {
		return k, nil
	}
	k, err := e.ctx.NewKernel(kind)
	if err != nil {
		return nil, err
	}
	e.kernels[kind] = k
	return k, nil
}
