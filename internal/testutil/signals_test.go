package testutil

import "testing"

func TestLinearAxis(t *testing.T) {
	axis := LinearAxis(0.5, 0.25, 3)
	RequireSliceNearlyEqual(t, axis, []float64{0.5, 0.75, 1.0}, 1e-12)
}

func TestImpulse(t *testing.T) {
	imp := Impulse(4, 2)
	RequireSliceNearlyEqual(t, imp, []float64{0, 0, 1, 0}, 0)

	if got := Impulse(4, 9); got[0] != 0 {
		t.Fatal("out-of-range impulse position should yield all zeros")
	}
}

func TestPeakSpectrumDeterministic(t *testing.T) {
	a := PeakSpectrum(256)
	b := PeakSpectrum(256)
	RequireSliceNearlyEqual(t, a, b, 0)
	RequireFinite(t, a)

	for i, v := range a {
		if v <= 0 {
			t.Fatalf("index %d: spectrum value %v not positive", i, v)
		}
	}
}
