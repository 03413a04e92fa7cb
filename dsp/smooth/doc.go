// Package smooth implements Konno-Ohmachi smoothing of amplitude spectra.
//
// Each output value is a normalized weighted average of the whole input
// signal, with Konno-Ohmachi window weights centered at that value's
// frequency. Because the window width scales with the center frequency,
// low frequencies keep their resolution while high-frequency noise is
// averaged away.
//
// Three engines compute the same result:
//
//   - [Slow] evaluates the window directly for every point pair, O(n²)
//     transcendental evaluations. It accepts any positive strength and
//     serves as the correctness reference.
//   - [Fast] replaces window evaluation with precomputed table lookups and
//     bounds the inner loop to the window's effective support, O(n·k). The
//     strength is normalized to the nearest even integer in [2, 100].
//   - [Faster] runs the Fast per-index computation on multiple goroutines
//     over contiguous index blocks. Results are identical to Fast; the
//     fixed startup cost only pays off past a few thousand points.
//
// Frequency axes must be non-negative and sorted in non-decreasing order.
package smooth
