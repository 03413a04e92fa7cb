package smooth

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-smooth/dsp/window"
)

// Fast smooths signal over the given frequency axis using precomputed
// window table lookups. The strength b is normalized to the nearest even
// integer in [2, 100]; out-of-range values are corrected, never rejected.
//
// The inner loop only visits frequencies within the window's effective
// support around each center, bounding the cost to O(n·k) for k in-support
// neighbors per point. The result matches [Slow] up to the table's
// documented quantization error.
func Fast(signal, freq []float64, b float64, opts ...Option) ([]float64, error) {
	if err := validateShape(signal, freq); err != nil {
		return nil, err
	}

	cfg := applyOptions(opts...)

	row := cfg.table.Row(b)
	cfg.notifyStrength(b, row.Strength)

	n := len(signal)
	out := make([]float64, n)
	smoothBlock(out, signal, freq, row, 0, n, func(i int) {
		cfg.reportProgress(i+1, n)
	})

	return out, nil
}

// smoothBlock fills dst[start:end] with smoothed values. It only reads
// signal, freq and row, and only writes dst[start:end], so disjoint blocks
// may run concurrently.
func smoothBlock(dst, signal, freq []float64, row *window.Row, start, end int, tick func(i int)) {
	loRatio, hiRatio := row.RatioBounds()

	for i := start; i < end; i++ {
		dst[i] = smoothPoint(signal, freq, row, i, loRatio, hiRatio)

		if tick != nil {
			tick(i)
		}
	}
}

func smoothPoint(signal, freq []float64, row *window.Row, i int, loRatio, hiRatio float64) float64 {
	fc := freq[i]
	if fc == 0 {
		return signal[i]
	}

	// freq is sorted, so the in-support band is a contiguous index range.
	// Zero-frequency bins sort below the band and are skipped with it.
	first := sort.SearchFloat64s(freq, fc*loRatio)
	upper := fc * hiRatio

	num := 0.0
	den := 0.0

	for j := first; j < len(freq) && freq[j] <= upper; j++ {
		w := 1.0
		if freq[j] != fc {
			w = row.Lookup(math.Log10(freq[j] / fc))
		}

		num += w * signal[j]
		den += w
	}

	// The self contribution has weight 1, so den >= 1.
	return num / den
}
