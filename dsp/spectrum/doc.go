// Package spectrum provides the boundary between time-domain signals and
// the smoothing engines: complex-to-magnitude conversion, one-sided
// frequency axes, and FFT-backed spectrum analysis.
package spectrum
