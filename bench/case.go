package bench

// Case pairs the reference and accelerated callables for one parameter
// tuple. Both callables own their parameters and input fixtures; a case
// holds no state that outlives a run and shares nothing with other cases.
type Case[T Sample] struct {
	Group string
	Name  string
	Tol   Tolerance

	// Reference invokes the host implementation.
	Reference func() ([]T, error)

	// Accelerated invokes the device implementation.
	Accelerated func() ([]T, error)
}

// Runner executes one collected benchmark case.
type Runner interface {
	Group() string
	Name() string
	Run(opts MeasureOptions) Result
}

// Runner wraps the case for the generic execution loop.
func (c Case[T]) Runner() Runner {
	return caseRunner[T]{c: c}
}

// Result is the outcome of running one case: both measurements, the worst
// element-wise deviation, and the pass/fail verdict.
type Result struct {
	Group        string
	Name         string
	Reference    Measurement
	Accelerated  Measurement
	MaxDeviation float64
	Pass         bool
	Err          error
}
