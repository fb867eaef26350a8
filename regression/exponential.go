package regression

import (
	"fmt"
	"math"

	"github.com/arloliu/carbonviz/format"
)

// ExponentialFit is a fitted curve y = A * e^(B*x).
//
// R is the correlation of (x, ln y). RSquared and RMSE are measured against
// the original y values.
type ExponentialFit struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	Stats
}

var _ Fit = (*ExponentialFit)(nil)

// FitExponential fits y = A * e^(B*x) by linear regression on (x, ln y).
//
// Every y must be > 0; the first violation fails the fit with
// errs.ErrNonPositive wrapped in a *SampleError.
func FitExponential(samples []Sample) (*ExponentialFit, error) {
	if err := checkSamples(samples); err != nil {
		return nil, fmt.Errorf("exponential fit: %w", err)
	}
	if err := checkPositive(samples, false, true); err != nil {
		return nil, fmt.Errorf("exponential fit: %w", err)
	}

	res, err := olsTransformed(samples, identity, math.Log)
	if err != nil {
		return nil, fmt.Errorf("exponential fit: %w", err)
	}

	fit := &ExponentialFit{
		A:     math.Exp(res.intercept),
		B:     res.slope,
		Stats: Stats{R: res.r, N: len(samples)},
	}
	fit.RSquared, fit.RMSE = goodness(samples, fit.Predict)

	return fit, nil
}

// Predict returns A * e^(B*x).
func (f *ExponentialFit) Predict(x float64) float64 {
	return f.A * math.Exp(f.B*x)
}

// Kind implements Fit.
func (f *ExponentialFit) Kind() format.TrendlineKind {
	return format.TrendExponential
}

// Coefficients returns [A, B].
func (f *ExponentialFit) Coefficients() []float64 {
	return []float64{f.A, f.B}
}

// Correlation implements Fit.
func (f *ExponentialFit) Correlation() float64 {
	return f.R
}

// Goodness implements Fit.
func (f *ExponentialFit) Goodness() Stats {
	return f.Stats
}

// Formula implements Fit.
func (f *ExponentialFit) Formula() string {
	return fmt.Sprintf("y = %.4g * e^(%.4g*x)", f.A, f.B)
}

func (f *ExponentialFit) String() string {
	return describe(f)
}
