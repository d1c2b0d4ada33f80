package bench_test

import (
	"fmt"

	"github.com/cwbudde/algo-filterbench/bench"
	"github.com/cwbudde/algo-filterbench/gpu"
)

func ExampleRunAll() {
	gpu.RegisterMockBackend()
	defer gpu.RegisterBackend(nil)

	eng, err := gpu.NewEngine(gpu.EngineOptions{})
	if err != nil {
		fmt.Println(err)
		return
	}
	defer eng.Close()

	if err := eng.Precompile(); err != nil {
		fmt.Println(err)
		return
	}

	runner := bench.FirWinCase(eng, 64, 0.1, 0.2, bench.DefaultTolerance())
	report := bench.RunAll([]bench.Runner{runner}, bench.MeasureOptions{Rounds: 1})

	res := report.Results()[0]
	fmt.Printf("%s %s pass=%v\n", res.Group, res.Name, res.Pass)
	// Output:
	// FirWin taps=64 f1=0.1 f2=0.2 pass=true
}
