package smooth

import "github.com/cwbudde/algo-smooth/dsp/window"

// Slow smooths signal over the given frequency axis by evaluating the
// Konno-Ohmachi window directly for every point pair. Any strength b > 0 is
// accepted. The cost is O(n²) transcendental evaluations; this engine exists
// as the correctness reference for [Fast] and [Faster].
func Slow(signal, freq []float64, b float64, opts ...Option) ([]float64, error) {
	if err := validateShape(signal, freq); err != nil {
		return nil, err
	}

	if err := validateStrength(b); err != nil {
		return nil, err
	}

	cfg := applyOptions(opts...)

	n := len(signal)
	out := make([]float64, n)

	for i := range signal {
		fc := freq[i]
		if fc == 0 {
			// Zero-frequency bins are not smoothed across.
			out[i] = signal[i]
			cfg.reportProgress(i+1, n)

			continue
		}

		num := 0.0
		den := 0.0

		for j := range signal {
			w := window.WeightAt(freq[j], fc, b)
			num += w * signal[j]
			den += w
		}

		// The self contribution has weight 1, so den >= 1.
		out[i] = num / den
		cfg.reportProgress(i+1, n)
	}

	return out, nil
}
