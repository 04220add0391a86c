package randutil

import (
	"runtime"
	"sync"

	"github.com/Han-16/boolext/internal/word"
)

// RandomFunctionsPar generates n random truth tables in parallel.
// If workers <= 0, it defaults to runtime.NumCPU().
// It returns a slice of length n (possibly empty if n<=0).
func RandomFunctionsPar[W word.Word[W]](zero W, vars, n, workers int) ([]W, error) {
	if n <= 0 {
		return []W{}, nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	out := make([]W, n)
	jobs := make(chan int, workers*2)

	var wg sync.WaitGroup
	var firstErr error
	var errOnce sync.Once

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				// NOTE: crypto/rand.Reader is safe for concurrent use.
				f, err := RandomFunction(zero, vars)
				if err != nil {
					errOnce.Do(func() { firstErr = err })
					continue
				}
				out[i] = f
			}
		}()
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}
