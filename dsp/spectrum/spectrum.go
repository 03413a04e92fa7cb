package spectrum

import (
	"errors"
	"fmt"
	"sync"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-smooth/dsp/smooth"
)

var errEmptySignal = errors.New("signal must not be empty")

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// The conversion uses the SIMD kernels from algo-vecmath when available.
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// BinFrequencies returns the frequency axis of a one-sided spectrum:
//
//	f_i = i * sampleRate / (2 * (binCount - 1))
//
// The axis starts at DC and is strictly increasing, as required by the
// smoothing engines.
func BinFrequencies(binCount int, sampleRate float64) []float64 {
	if binCount <= 0 {
		return nil
	}

	out := make([]float64, binCount)
	if binCount == 1 {
		return out
	}

	step := sampleRate / float64(2*(binCount-1))
	for i := range out {
		out[i] = float64(i) * step
	}
	return out
}

// Analyze computes the one-sided amplitude spectrum of a time-domain signal
// together with its frequency axis. The signal is zero-padded to the next
// power of two; magnitudes are scaled so a full-scale sine at a bin center
// reads as its amplitude.
func Analyze(signal []float64, sampleRate float64) (freq, mag []float64, err error) {
	if len(signal) == 0 {
		return nil, nil, errEmptySignal
	}

	if sampleRate <= 0 {
		return nil, nil, fmt.Errorf("sample rate must be > 0: %g", sampleRate)
	}

	fftSize := nextPowerOf2(len(signal))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, nil, fmt.Errorf("init fft plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, nil, fmt.Errorf("forward FFT: %w", err)
	}

	binCount := fftSize/2 + 1
	mag = Magnitude(out[:binCount])

	vecmath.ScaleBlock(mag, mag, 2/float64(fftSize))
	mag[0] /= 2
	mag[binCount-1] /= 2

	return BinFrequencies(binCount, sampleRate), mag, nil
}

// Smoothed analyzes a time-domain signal and returns its Konno-Ohmachi
// smoothed one-sided amplitude spectrum. The strength b follows the
// normalization rules of [smooth.Fast].
func Smoothed(signal []float64, sampleRate, b float64) (freq, mag []float64, err error) {
	freq, mag, err = Analyze(signal, sampleRate)
	if err != nil {
		return nil, nil, err
	}

	mag, err = smooth.Fast(mag, freq, b)
	if err != nil {
		return nil, nil, err
	}

	return freq, mag, nil
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
