package design_test

import (
	"fmt"

	"github.com/cwbudde/algo-filterbench/design"
)

func ExampleKaiserBeta() {
	fmt.Printf("%.5f\n", design.KaiserBeta(65))
	fmt.Printf("%.5f\n", design.KaiserBeta(10))
	// Output:
	// 6.20426
	// 0.00000
}

func ExampleFirWin() {
	h, err := design.FirWin(11, []float64{0.4})
	if err != nil {
		fmt.Println(err)
		return
	}

	sum := 0.0
	for _, c := range h {
		sum += c
	}
	fmt.Printf("taps=%d dc=%.3f\n", len(h), sum)
	// Output:
	// taps=11 dc=1.000
}

func ExampleCmplxSort() {
	sorted, idx := design.CmplxSort([]complex128{3 + 0i, 1 + 0i, 2 + 0i})
	fmt.Println(sorted)
	fmt.Println(idx)
	// Output:
	// [(1+0i) (2+0i) (3+0i)]
	// [1 2 0]
}
