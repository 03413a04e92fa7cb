package smooth

import (
	"runtime"
	"sync"
)

// Faster computes the same result as [Fast] by partitioning the output
// index range into contiguous blocks and smoothing each block on its own
// goroutine. Inputs and the window table are shared read-only; every worker
// writes a disjoint range of the output, so no synchronization is needed
// during computation and the reassembled order is the input order.
//
// workers < 1 selects one worker per CPU. More workers than output points
// are permitted but yield no extra benefit. Because every output index is
// computed with exactly the same arithmetic as in [Fast], the results are
// identical, not merely close.
func Faster(signal, freq []float64, b float64, workers int, opts ...Option) ([]float64, error) {
	if err := validateShape(signal, freq); err != nil {
		return nil, err
	}

	cfg := applyOptions(opts...)

	row := cfg.table.Row(b)
	cfg.notifyStrength(b, row.Strength)

	n := len(signal)
	out := make([]float64, n)

	if n == 0 {
		return out, nil
	}

	if workers < 1 {
		workers = runtime.NumCPU()
	}

	if workers > n {
		workers = n
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)

		wg.Add(1)

		go func(start, end int) {
			defer wg.Done()
			smoothBlock(out, signal, freq, row, start, end, nil)
		}(start, end)
	}
	wg.Wait()

	return out, nil
}
