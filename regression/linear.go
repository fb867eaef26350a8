package regression

import (
	"fmt"

	"github.com/arloliu/carbonviz/format"
)

// LinearFit is a fitted line y = Slope*x + Intercept.
type LinearFit struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	Stats
}

var _ Fit = (*LinearFit)(nil)

// FitLinear fits a least-squares line through samples.
//
// Samples must already be in the space the line is drawn in (take ln of a
// log-scaled axis first, or use FitScaled).
func FitLinear(samples []Sample) (*LinearFit, error) {
	if err := checkSamples(samples); err != nil {
		return nil, fmt.Errorf("linear fit: %w", err)
	}

	res, err := olsTransformed(samples, identity, identity)
	if err != nil {
		return nil, fmt.Errorf("linear fit: %w", err)
	}

	fit := &LinearFit{
		Slope:     res.slope,
		Intercept: res.intercept,
		Stats:     Stats{R: res.r, N: len(samples)},
	}
	fit.RSquared, fit.RMSE = goodness(samples, fit.Predict)

	return fit, nil
}

// Predict returns Slope*x + Intercept.
func (f *LinearFit) Predict(x float64) float64 {
	return f.Slope*x + f.Intercept
}

// Kind implements Fit.
func (f *LinearFit) Kind() format.TrendlineKind {
	return format.TrendLinear
}

// Coefficients returns [Slope, Intercept].
func (f *LinearFit) Coefficients() []float64 {
	return []float64{f.Slope, f.Intercept}
}

// Correlation implements Fit.
func (f *LinearFit) Correlation() float64 {
	return f.R
}

// Goodness implements Fit.
func (f *LinearFit) Goodness() Stats {
	return f.Stats
}

// Formula implements Fit.
func (f *LinearFit) Formula() string {
	sign, b := signed(f.Intercept)
	return fmt.Sprintf("y = %.4g*x %s %.4g", f.Slope, sign, b)
}

func (f *LinearFit) String() string {
	return describe(f)
}
