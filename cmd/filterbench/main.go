// Command filterbench runs the filter-design benchmark suite: every case is
// executed on the CPU reference implementation and on the registered
// accelerated backend, timed, and checked for numeric equivalence.
//
// Usage:
//
//	filterbench [flags] [group-name ...]
//
// Without arguments every group runs. When no accelerated backend is
// registered the CPU-backed mock backend is used.
//
// Examples:
//
//	filterbench
//	filterbench -taps 8192 firwin
//	filterbench -rounds 10 -warmup 2 kaiser_beta cmplx_sort
//	filterbench -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-filterbench/bench"
	"github.com/cwbudde/algo-filterbench/gpu"
)

var groupRegistry = []struct {
	arg   string
	group string
}{
	{"firwin", "FirWin"},
	{"kaiser_beta", "KaiserBeta"},
	{"kaiser_atten", "KaiserAtten"},
	{"cmplx_sort", "CmplxSort"},
}

func main() {
	taps := flag.Int("taps", 0, "override the FirWin tap count (0 = default matrix)")
	rounds := flag.Int("rounds", 5, "timed rounds per case")
	warmup := flag.Int("warmup", 1, "warm-up rounds per case")
	absTol := flag.Float64("abs", 0, "absolute tolerance override (0 = default)")
	relTol := flag.Float64("rel", 0, "relative tolerance override (0 = default)")
	list := flag.Bool("list", false, "list available benchmark groups")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: filterbench [flags] [group-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Benchmarks filter-design routines on the reference and accelerated backends.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, runs every group.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  filterbench\n")
		fmt.Fprintf(os.Stderr, "  filterbench -taps 8192 firwin\n")
		fmt.Fprintf(os.Stderr, "  filterbench -list\n")
	}
	flag.Parse()

	if *list {
		for _, e := range groupRegistry {
			fmt.Println(e.arg)
		}
		return
	}

	selected, err := selectGroups(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if _, ok := gpu.CurrentBackendInfo(); !ok {
		gpu.RegisterMockBackend()
	}

	eng, err := gpu.NewEngine(gpu.EngineOptions{})
	if err != nil {
		fmt.Fprintln(os.Stderr, "engine:", err)
		os.Exit(1)
	}
	defer eng.Close()

	if err := eng.Precompile(); err != nil {
		fmt.Fprintln(os.Stderr, "precompile:", err)
		os.Exit(1)
	}

	params := bench.DefaultSuiteParams()
	if *taps > 0 {
		params.FirWinTaps = []int{*taps}
		params.KaiserAttenTaps = []int{*taps}
	}
	if *absTol > 0 {
		params.Tol.Abs = *absTol
	}
	if *relTol > 0 {
		params.Tol.Rel = *relTol
	}

	runners, err := bench.Suite(eng, params)
	if err != nil {
		fmt.Fprintln(os.Stderr, "suite:", err)
		os.Exit(1)
	}
	runners = filterRunners(runners, selected)

	printHeader(eng)

	report := bench.RunAll(runners, bench.MeasureOptions{
		WarmupRounds: *warmup,
		Rounds:       *rounds,
	})
	if err := report.WriteTable(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "report:", err)
		os.Exit(1)
	}

	if failed := report.Failed(); failed > 0 {
		fmt.Fprintf(os.Stderr, "\n%d of %d cases failed\n", failed, len(report.Results()))
		os.Exit(1)
	}
	fmt.Printf("\n%d cases passed\n", len(report.Results()))
}

func selectGroups(args []string) (map[string]bool, error) {
	if len(args) == 0 {
		return nil, nil
	}

	selected := make(map[string]bool, len(args))
	for _, arg := range args {
		name := strings.ToLower(arg)
		found := false
		for _, e := range groupRegistry {
			if e.arg == name {
				selected[e.group] = true
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown group %q (use -list)", arg)
		}
	}
	return selected, nil
}

func filterRunners(runners []bench.Runner, selected map[string]bool) []bench.Runner {
	if selected == nil {
		return runners
	}
	out := runners[:0]
	for _, r := range runners {
		if selected[r.Group()] {
			out = append(out, r)
		}
	}
	return out
}

func printHeader(eng *gpu.Engine) {
	feat := cpu.DetectFeatures()
	fmt.Printf("host: %s %s\n", feat.Architecture, simdName(feat))

	if info, ok := gpu.CurrentBackendInfo(); ok {
		dev := eng.Device()
		fmt.Printf("backend: %s %s (device %s, driver %s)\n\n",
			info.Name, info.Version, dev.Name, dev.Driver)
	}
}

func simdName(feat cpu.Features) string {
	switch {
	case feat.ForceGeneric:
		return "generic"
	case feat.HasAVX2:
		return "AVX2"
	case feat.HasSSE2:
		return "SSE2"
	case feat.HasNEON:
		return "NEON"
	default:
		return "generic"
	}
}
