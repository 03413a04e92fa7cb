package smooth

import (
	"errors"
	"fmt"
)

var errLengthMismatch = errors.New("signal and frequency arrays must have the same length")

func validateShape(signal, freq []float64) error {
	if len(signal) != len(freq) {
		return fmt.Errorf("%w: %d vs %d", errLengthMismatch, len(signal), len(freq))
	}
	return nil
}

func validateStrength(b float64) error {
	if b <= 0 {
		return fmt.Errorf("smoothing strength must be > 0: %g", b)
	}
	return nil
}
