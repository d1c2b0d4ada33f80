package bench

type caseRunner[T Sample] struct {
	c Case[T]
}

func (r caseRunner[T]) Group() string { return r.c.Group }
func (r caseRunner[T]) Name() string  { return r.c.Name }

// Run measures the reference and the accelerated callables, then verifies
// the outputs element-wise. A backend failure aborts the case with a
// ComputationError; a tolerance violation flags it with an EquivalenceError.
func (r caseRunner[T]) Run(opts MeasureOptions) Result {
	res := Result{Group: r.c.Group, Name: r.c.Name}

	refOut, refMeas, err := measure(r.c.Reference, opts)
	if err != nil {
		res.Err = &ComputationError{Backend: "reference", Case: r.c.Name, Err: err}
		return res
	}
	res.Reference = refMeas

	accOut, accMeas, err := measure(r.c.Accelerated, opts)
	if err != nil {
		res.Err = &ComputationError{Backend: "accelerated", Case: r.c.Name, Err: err}
		return res
	}
	res.Accelerated = accMeas

	if dev, err := MaxDeviation(refOut, accOut); err == nil {
		res.MaxDeviation = dev
	}

	if err := Verify(r.c.Name, refOut, accOut, r.c.Tol); err != nil {
		res.Err = err
		return res
	}

	res.Pass = true
	return res
}

// RunAll executes every runner in order and collects the results. Failures
// never stop the remaining cases.
func RunAll(runners []Runner, opts MeasureOptions) *Report {
	report := NewReport()
	for _, r := range runners {
		report.Add(r.Run(opts))
	}
	return report
}
