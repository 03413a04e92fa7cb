package spectrum

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-smooth/internal/testutil"
)

func TestMagnitudeMatchesCmplxAbs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	in := make([]complex128, 257)
	for i := range in {
		in[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}

	got := Magnitude(in)
	if len(got) != len(in) {
		t.Fatalf("length %d, want %d", len(got), len(in))
	}

	for i, c := range in {
		want := cmplx.Abs(c)
		if math.Abs(got[i]-want) > 1e-12 {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want)
		}
	}
}

func TestMagnitudeEmpty(t *testing.T) {
	if got := Magnitude(nil); got != nil {
		t.Fatalf("Magnitude(nil) = %v, want nil", got)
	}
}

func TestBinFrequencies(t *testing.T) {
	got := BinFrequencies(5, 8)
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 1, 2, 3, 4}, 1e-12)

	if got := BinFrequencies(0, 48000); got != nil {
		t.Fatalf("BinFrequencies(0, ...) = %v, want nil", got)
	}

	if got := BinFrequencies(1, 48000); len(got) != 1 || got[0] != 0 {
		t.Fatalf("BinFrequencies(1, ...) = %v, want [0]", got)
	}
}

func TestAnalyzeSinePeak(t *testing.T) {
	const (
		sampleRate = 8192.0
		sineFreq   = 1000.0
		length     = 4096
	)

	signal := testutil.DeterministicSine(sineFreq, sampleRate, 1.0, length)

	freq, mag, err := Analyze(signal, sampleRate)
	if err != nil {
		t.Fatal(err)
	}

	wantBins := length/2 + 1
	if len(freq) != wantBins || len(mag) != wantBins {
		t.Fatalf("lengths freq=%d mag=%d, want %d", len(freq), len(mag), wantBins)
	}

	peak := 0
	for i := 1; i < len(mag); i++ {
		if mag[i] > mag[peak] {
			peak = i
		}
	}

	// 1000 Hz falls exactly on bin 500 for this size and rate.
	if freq[peak] != sineFreq {
		t.Fatalf("peak at %v Hz, want %v", freq[peak], sineFreq)
	}

	if math.Abs(mag[peak]-1) > 1e-9 {
		t.Fatalf("peak magnitude %v, want ~1", mag[peak])
	}
}

func TestAnalyzeInvalidInputs(t *testing.T) {
	if _, _, err := Analyze(nil, 48000); err == nil {
		t.Fatal("expected error for empty signal")
	}

	if _, _, err := Analyze(testutil.Ones(16), 0); err == nil {
		t.Fatal("expected error for non-positive sample rate")
	}
}

func TestAnalyzePadsToPowerOfTwo(t *testing.T) {
	freq, mag, err := Analyze(testutil.Ones(100), 1000)
	if err != nil {
		t.Fatal(err)
	}

	// 100 samples pad to 128; one-sided spectrum has 65 bins.
	if len(freq) != 65 || len(mag) != 65 {
		t.Fatalf("lengths freq=%d mag=%d, want 65", len(freq), len(mag))
	}
}

func TestSmoothedKeepsAxisAndLength(t *testing.T) {
	const sampleRate = 8192.0

	signal := testutil.DeterministicSine(500, sampleRate, 1.0, 2048)

	freq, mag, err := Smoothed(signal, sampleRate, 40)
	if err != nil {
		t.Fatal(err)
	}

	rawFreq, raw, err := Analyze(signal, sampleRate)
	if err != nil {
		t.Fatal(err)
	}

	if len(mag) != len(raw) {
		t.Fatalf("smoothed length %d, want %d", len(mag), len(raw))
	}

	testutil.RequireSliceNearlyEqual(t, freq, rawFreq, 0)
	testutil.RequireFinite(t, mag)

	// Smoothing spreads the peak: the maximum cannot grow.
	rawPeak, smoothPeak := 0.0, 0.0
	for i := range raw {
		if raw[i] > rawPeak {
			rawPeak = raw[i]
		}
		if mag[i] > smoothPeak {
			smoothPeak = mag[i]
		}
	}

	if smoothPeak > rawPeak+1e-12 {
		t.Fatalf("smoothed peak %v exceeds raw peak %v", smoothPeak, rawPeak)
	}
}

func TestSmoothedInvalidStrengthIsCorrected(t *testing.T) {
	signal := testutil.DeterministicSine(500, 8192, 1.0, 1024)

	if _, _, err := Smoothed(signal, 8192, 999); err != nil {
		t.Fatal(err)
	}
}
