package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Report is an ordered collection of case results.
type Report struct {
	results []Result
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{}
}

// Add appends one result.
func (r *Report) Add(res Result) {
	r.results = append(r.results, res)
}

// Results returns the collected results in run order.
func (r *Report) Results() []Result {
	return r.results
}

// Failed counts the cases that did not pass.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.results {
		if !res.Pass {
			n++
		}
	}
	return n
}

// WriteTable renders the report as an aligned text table.
func (r *Report) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GROUP\tCASE\tREF MEAN\tACC MEAN\tSPEEDUP\tMAX DEV\tSTATUS")

	for _, res := range r.results {
		status := "ok"
		if !res.Pass {
			status = "FAIL"
			if res.Err != nil {
				status = "FAIL: " + res.Err.Error()
			}
		}

		speedup := "-"
		if res.Accelerated.Mean > 0 && res.Reference.Mean > 0 {
			speedup = fmt.Sprintf("%.2fx", float64(res.Reference.Mean)/float64(res.Accelerated.Mean))
		}

		fmt.Fprintf(tw, "%s\t%s\t%v\t%v\t%s\t%.3g\t%s\n",
			res.Group, res.Name, res.Reference.Mean, res.Accelerated.Mean,
			speedup, res.MaxDeviation, status)
	}

	return tw.Flush()
}
