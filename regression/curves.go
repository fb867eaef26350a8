package regression

import (
	"fmt"
	"math"

	"github.com/arloliu/carbonviz/format"
)

// LogarithmicFit is a fitted curve y = A + B*ln(x). It is the straight line a
// chart draws when only the x axis is log-scaled.
type LogarithmicFit struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	Stats
}

var _ Fit = (*LogarithmicFit)(nil)

// FitLogarithmic fits y = A + B*ln(x). Every x must be > 0.
func FitLogarithmic(samples []Sample) (*LogarithmicFit, error) {
	if err := checkSamples(samples); err != nil {
		return nil, fmt.Errorf("logarithmic fit: %w", err)
	}
	if err := checkPositive(samples, true, false); err != nil {
		return nil, fmt.Errorf("logarithmic fit: %w", err)
	}

	res, err := olsTransformed(samples, math.Log, identity)
	if err != nil {
		return nil, fmt.Errorf("logarithmic fit: %w", err)
	}

	fit := &LogarithmicFit{
		A:     res.intercept,
		B:     res.slope,
		Stats: Stats{R: res.r, N: len(samples)},
	}
	fit.RSquared, fit.RMSE = goodness(samples, fit.Predict)

	return fit, nil
}

// Predict returns A + B*ln(x), NaN for x <= 0.
func (f *LogarithmicFit) Predict(x float64) float64 {
	if x <= 0 {
		return math.NaN()
	}

	return f.A + f.B*math.Log(x)
}

// Kind implements Fit.
func (f *LogarithmicFit) Kind() format.TrendlineKind {
	return format.TrendLogarithmic
}

// Coefficients returns [A, B].
func (f *LogarithmicFit) Coefficients() []float64 {
	return []float64{f.A, f.B}
}

// Correlation implements Fit.
func (f *LogarithmicFit) Correlation() float64 {
	return f.R
}

// Goodness implements Fit.
func (f *LogarithmicFit) Goodness() Stats {
	return f.Stats
}

// Formula implements Fit.
func (f *LogarithmicFit) Formula() string {
	sign, b := signed(f.B)
	return fmt.Sprintf("y = %.4g %s %.4g*ln(x)", f.A, sign, b)
}

func (f *LogarithmicFit) String() string {
	return describe(f)
}

// PowerFit is a fitted curve y = A * x^B, the straight line of a log/log chart.
type PowerFit struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	Stats
}

var _ Fit = (*PowerFit)(nil)

// FitPower fits y = A * x^B by linear regression on (ln x, ln y).
// Every x and y must be > 0.
func FitPower(samples []Sample) (*PowerFit, error) {
	if err := checkSamples(samples); err != nil {
		return nil, fmt.Errorf("power fit: %w", err)
	}
	if err := checkPositive(samples, true, true); err != nil {
		return nil, fmt.Errorf("power fit: %w", err)
	}

	res, err := olsTransformed(samples, math.Log, math.Log)
	if err != nil {
		return nil, fmt.Errorf("power fit: %w", err)
	}

	fit := &PowerFit{
		A:     math.Exp(res.intercept),
		B:     res.slope,
		Stats: Stats{R: res.r, N: len(samples)},
	}
	fit.RSquared, fit.RMSE = goodness(samples, fit.Predict)

	return fit, nil
}

// Predict returns A * x^B, NaN for x <= 0.
func (f *PowerFit) Predict(x float64) float64 {
	if x <= 0 {
		return math.NaN()
	}

	return f.A * math.Pow(x, f.B)
}

// Kind implements Fit.
func (f *PowerFit) Kind() format.TrendlineKind {
	return format.TrendPower
}

// Coefficients returns [A, B].
func (f *PowerFit) Coefficients() []float64 {
	return []float64{f.A, f.B}
}

// Correlation implements Fit.
func (f *PowerFit) Correlation() float64 {
	return f.R
}

// Goodness implements Fit.
func (f *PowerFit) Goodness() Stats {
	return f.Stats
}

// Formula implements Fit.
func (f *PowerFit) Formula() string {
	return fmt.Sprintf("y = %.4g * x^%.4g", f.A, f.B)
}

func (f *PowerFit) String() string {
	return describe(f)
}
