package regression

import (
	"fmt"
	"math"

	"github.com/arloliu/carbonviz/errs"
)

// Sample is one observation pair.
type Sample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SampleError reports the sample that made a fit fail.
type SampleError struct {
	Index int
	Err   error
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("sample %d: %v", e.Index, e.Err)
}

func (e *SampleError) Unwrap() error {
	return e.Err
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// checkSamples rejects an empty slice and the first non-finite sample.
func checkSamples(samples []Sample) error {
	if len(samples) == 0 {
		return errs.ErrInsufficientSamples
	}

	for i, s := range samples {
		if !isFinite(s.X) || !isFinite(s.Y) {
			return &SampleError{Index: i, Err: errs.ErrNonFiniteSample}
		}
	}

	return nil
}

// checkPositive fails fast on the first sample whose X (when xLog) or Y
// (when yLog) is not strictly positive.
func checkPositive(samples []Sample, xLog, yLog bool) error {
	for i, s := range samples {
		if xLog && s.X <= 0 {
			return &SampleError{Index: i, Err: fmt.Errorf("%w: x=%g", errs.ErrNonPositive, s.X)}
		}
		if yLog && s.Y <= 0 {
			return &SampleError{Index: i, Err: fmt.Errorf("%w: y=%g", errs.ErrNonPositive, s.Y)}
		}
	}

	return nil
}
