package bench

import "time"

// MeasureOptions controls the timing wrapper. The runner owns the policy;
// cases never see it.
type MeasureOptions struct {
	// WarmupRounds are executed and discarded before timing starts.
	WarmupRounds int

	// Rounds is the number of timed invocations.
	Rounds int
}

func (o MeasureOptions) normalized() MeasureOptions {
	if o.WarmupRounds < 0 {
		o.WarmupRounds = 0
	}
	if o.Rounds < 1 {
		o.Rounds = 1
	}
	return o
}

// DefaultMeasureOptions runs one warm-up and five timed rounds.
func DefaultMeasureOptions() MeasureOptions {
	return MeasureOptions{WarmupRounds: 1, Rounds: 5}
}

// Measurement summarizes the timed rounds of one callable.
type Measurement struct {
	Rounds int
	Total  time.Duration
	Min    time.Duration
	Mean   time.Duration
}

// measure times fn and returns the output of its last timed round. The
// first error aborts the measurement immediately.
func measure[T Sample](fn func() ([]T, error), opts MeasureOptions) ([]T, Measurement, error) {
	opts = opts.normalized()

	for i := 0; i < opts.WarmupRounds; i++ {
		if _, err := fn(); err != nil {
			return nil, Measurement{}, err
		}
	}

	var (
		out   []T
		total time.Duration
		min   time.Duration
	)
	for i := 0; i < opts.Rounds; i++ {
		start := time.Now()
		res, err := fn()
		elapsed := time.Since(start)
		if err != nil {
			return nil, Measurement{}, err
		}
		out = res
		total += elapsed
		if i == 0 || elapsed < min {
			min = elapsed
		}
	}

	return out, Measurement{
		Rounds: opts.Rounds,
		Total:  total,
		Min:    min,
		Mean:   total / time.Duration(opts.Rounds),
	}, nil
}
