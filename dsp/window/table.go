package window

import (
	"math"
	"sync"
)

const (
	// LogStep is the table resolution in |log10(ratio)| space. With linear
	// interpolation between grid points the lookup error stays below
	// b²·LogStep²/6, about 1.7e-3 at the maximum strength of 100.
	LogStep = 1e-3

	// maxLogRatio is the grid span. Ratios outside [0.1, 10] lie beyond the
	// effective support of every supported strength.
	maxLogRatio = 1.0

	// supportEpsilon is the negligibility threshold: grid points whose
	// weight falls below it are outside the effective support.
	supportEpsilon = 1e-5

	strengthCount = (MaxStrength-MinStrength)/2 + 1
	rowLength     = int(maxLogRatio/LogStep) + 1
)

// Table holds precomputed Konno-Ohmachi window rows, one per supported
// strength. Rows are built on first use and immutable afterwards, so a
// single Table may be shared by any number of concurrent readers without
// locking. The zero value is ready to use.
type Table struct {
	once [strengthCount]sync.Once
	rows [strengthCount]*Row
}

// Row is one precomputed window, sampled over u = |log10(ratio)| in
// [0, 1] at LogStep resolution. The window is even in log-ratio space, so
// only non-negative u is stored.
type Row struct {
	// Strength is the normalized even strength this row was built for.
	Strength int

	weights []float64
	support float64
}

var defaultTable Table

// Default returns the shared process-lifetime table.
func Default() *Table {
	return &defaultTable
}

// Row returns the precomputed row for the given strength. The strength is
// normalized via [NormalizeStrength] first; the row is built on first use
// and cached for the lifetime of the table.
func (t *Table) Row(b float64) *Row {
	n := NormalizeStrength(b)
	k := (n - MinStrength) / 2
	t.once[k].Do(func() {
		t.rows[k] = buildRow(n)
	})

	return t.rows[k]
}

func buildRow(strength int) *Row {
	weights := make([]float64, rowLength)
	support := 0.0

	for i := range weights {
		u := float64(i) * LogStep
		w := weightLog(u, float64(strength))
		weights[i] = w

		if w >= supportEpsilon {
			support = u
		}
	}

	return &Row{Strength: strength, weights: weights, support: support}
}

// Support returns the effective support radius in |log10(ratio)| space:
// beyond it every tabulated weight is below the negligibility threshold and
// the contribution may be skipped entirely.
func (r *Row) Support() float64 {
	return r.support
}

// RatioBounds returns the multiplicative band [lo, hi] around a center
// frequency within which contributions are non-negligible.
func (r *Row) RatioBounds() (lo, hi float64) {
	hi = math.Pow(10, r.support)
	return 1 / hi, hi
}

// Lookup returns the window weight at u = log10(ratio), linearly
// interpolated between grid points. The sign of u is ignored; values beyond
// the grid are zero.
func (r *Row) Lookup(u float64) float64 {
	if u < 0 {
		u = -u
	}

	pos := u / LogStep

	i := int(pos)
	if i+1 >= len(r.weights) {
		if pos <= float64(len(r.weights)-1) {
			return r.weights[len(r.weights)-1]
		}

		return 0
	}

	w0 := r.weights[i]

	return w0 + (pos-float64(i))*(r.weights[i+1]-w0)
}

// LookupRatio returns the window weight for a frequency ratio, applying the
// same degenerate-case rules as [Weight].
func (r *Row) LookupRatio(ratio float64) float64 {
	if ratio <= 0 {
		return 0
	}
	if ratio == 1 {
		return 1
	}

	return r.Lookup(math.Log10(ratio))
}
