package testutil

import (
	"math"
	"math/rand"
)

// LinearAxis returns n frequencies start, start+step, start+2*step, ...
func LinearAxis(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// PeakSpectrum returns a deterministic synthetic amplitude spectrum: a noisy
// floor with a few broad peaks, resembling a measured spectrum that is worth
// smoothing.
func PeakSpectrum(n int) []float64 {
	out := make([]float64, n)
	if n == 0 {
		return out
	}

	rng := rand.New(rand.NewSource(42))
	centers := []float64{0.15, 0.4, 0.75}
	widths := []float64{0.02, 0.04, 0.06}
	heights := []float64{2.0, 1.2, 0.8}

	for i := range out {
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1)
		}

		v := 0.2 + 0.1*rng.Float64()
		for k := range centers {
			d := (x - centers[k]) / widths[k]
			v += heights[k] * math.Exp(-0.5*d*d)
		}

		out[i] = v
	}

	return out
}
