// go run ./cmd/propbench <vars> [iters] [maxProcs]
package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/Han-16/boolext/internal/boolfn"
	"github.com/Han-16/boolext/internal/randutil"
	"github.com/Han-16/boolext/internal/ring"
	"github.com/Han-16/boolext/internal/word"
)

type bench struct {
	name string
	run  func(f word.U512)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./cmd/propbench <vars> [iters] [maxProcs]")
		return
	}
	vars, err := strconv.Atoi(os.Args[1])
	must(err)
	if vars < 1 || vars > 9 {
		panic("vars must be in [1, 9]")
	}

	iters := 5
	if len(os.Args) >= 3 {
		iters, err = strconv.Atoi(os.Args[2])
		must(err)
		if iters <= 0 {
			iters = 1
		}
	}

	maxProcs := -1
	if len(os.Args) >= 4 {
		maxProcs, err = strconv.Atoi(os.Args[3])
		must(err)
	}
	if maxProcs <= 0 {
		maxProcs = runtime.NumCPU()
	}
	runtime.GOMAXPROCS(maxProcs)

	t := boolfn.MustNew(vars, word.U512{})
	fs, err := randutil.RandomFunctionsPar(word.U512{}, vars, iters, maxProcs)
	must(err)

	benches := []bench{
		{"anf", func(f word.U512) { t.ANF(f) }},
		{"degree", func(f word.U512) { t.Degree(f) }},
		{"walsh-spectrum", func(f word.U512) { t.WalshSpectrum(f) }},
		{"autocorrelation-spectrum", func(f word.U512) { t.AutocorrelationSpectrum(f) }},
		{"propagation", func(f word.U512) { t.MaxPropagationDegree(f) }},
		{"linear", func(f word.U512) { t.IsLinear(f) }},
	}
	if vars == 5 {
		e := ring.NewExtend5to9()
		benches = append(benches, bench{"extend", func(f word.U512) { e.Extend(word.U32(f[0])) }})
	}

	// output file: vars_{vars}_procs_{maxProcs}.txt
	filename := fmt.Sprintf("vars_%d_procs_%d.txt", vars, maxProcs)
	out, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	must(err)
	defer out.Close()

	if fi, err := out.Stat(); err == nil && fi.Size() == 0 {
		fmt.Fprintf(out, "# Property Benchmark Results (vars=%d, procs=%d)\n", vars, maxProcs)
		fmt.Fprintln(out, "# test | iters | Best | Avg")
	}

	for _, b := range benches {
		// warmup
		b.run(fs[0])

		var best, total time.Duration
		for it := 0; it < iters; it++ {
			start := time.Now()
			b.run(fs[it])
			elapsed := time.Since(start)

			if it == 0 || elapsed < best {
				best = elapsed
			}
			total += elapsed
		}
		avg := time.Duration(int64(total) / int64(iters))
		fmt.Fprintf(out, "%s | %d | %s | %s\n", b.name, iters, best, avg)
	}
	fmt.Printf("Benchmarks appended: vars=%d, procs=%d, iters=%d\n", vars, maxProcs, iters)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
