package window

import "math"

const (
	// MinStrength and MaxStrength bound the discrete set of smoothing
	// strengths supported by the precomputed table. Only even integers in
	// this range have table rows.
	MinStrength = 2
	MaxStrength = 100
)

// Weight evaluates the Konno-Ohmachi window at the given frequency ratio
// x = f / fc:
//
//	w(x) = (sin(b·log10(x)) / (b·log10(x)))^4
//
// The removable singularity at x = 1 evaluates to 1. Ratios that have no
// representation in log space (x <= 0) carry no weight.
func Weight(ratio, b float64) float64 {
	if ratio <= 0 {
		return 0
	}
	if ratio == 1 {
		return 1
	}
	return weightLog(math.Abs(math.Log10(ratio)), b)
}

// WeightAt evaluates the window weight of a contributing frequency f against
// a center frequency fc. Zero-frequency bins are not smoothed across: a zero
// center weights only itself, and a zero contributor carries no weight for a
// non-zero center.
func WeightAt(f, fc, b float64) float64 {
	if fc == 0 || f == 0 {
		if f == fc {
			return 1
		}
		return 0
	}
	return Weight(f/fc, b)
}

// weightLog evaluates the window at u = |log10(ratio)| >= 0.
func weightLog(u, b float64) float64 {
	t := b * u
	if t == 0 {
		return 1
	}
	s := math.Sin(t) / t
	w := s * s
	w *= w
	if w < 0 {
		return 0
	}
	return w
}

// NormalizeStrength maps an arbitrary smoothing strength onto the discrete
// set supported by the table: non-integers are rounded, odd integers are
// decremented, and the result is clamped to [MinStrength, MaxStrength].
// Out-of-range strengths are corrected, never rejected.
func NormalizeStrength(b float64) int {
	n := int(math.Round(b))
	if n%2 != 0 {
		n--
	}
	if n < MinStrength {
		return MinStrength
	}
	if n > MaxStrength {
		return MaxStrength
	}
	return n
}
