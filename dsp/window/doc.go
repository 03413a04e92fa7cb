// Package window evaluates the Konno-Ohmachi smoothing window and maintains
// precomputed lookup tables for the supported smoothing strengths.
//
// The window has constant shape in log-frequency space, so its width in
// linear frequency scales with the center frequency. The smoothing strength
// b shrinks or widens the window: larger b means a narrower window and less
// smoothing.
package window
