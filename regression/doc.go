// Package regression computes trendline parameters and goodness-of-fit for
// the scatter charts.
//
// Every fit is a closed-form ordinary least squares over the running sums
// Sx, Sy, Sxy, Sx2 and Sy2, either on the raw samples or on a log
// linearisation of them:
//
//   - Linear: y = slope*x + intercept
//   - Exponential: y = A * e^(B*x), fitted as ln y = ln A + B*x
//   - Logarithmic: y = A + B*ln(x)
//   - Power: y = A * x^B, fitted as ln y = ln A + B*ln(x)
//
// # Usage
//
// Fit a line to samples that are already in the axis space:
//
//	fit, err := regression.FitLinear(samples)
//	if errors.Is(err, errs.ErrIndeterminate) {
//	    // all x equal: draw no trendline
//	}
//	y := fit.Predict(42)
//
// Let the axis scales choose the curve the way the charts do, then sample it
// for drawing:
//
//	samples, kept, _ := regression.SamplesFrom(records, "gdp", "internetUsers",
//	    regression.WithScales(format.ScaleLog, format.ScaleLinear))
//	fit, err := regression.FitScaled(samples, format.ScaleLog, format.ScaleLinear, format.TrendLinear)
//	line, err := regression.Trendline(fit, minX, maxX)
//
// Compare fits every applicable curve and ranks them by R².
//
// # Degenerate input
//
// No fit ever returns NaN coefficients. Zero samples yield
// errs.ErrInsufficientSamples; x values with zero variance (which includes a
// single sample) yield errs.ErrIndeterminate; NaN or infinite samples yield
// errs.ErrNonFiniteSample; log-linearised fits reject values <= 0 with
// errs.ErrNonPositive. Sample-specific errors are wrapped in *SampleError so
// the offending index is available through errors.As.
//
// When y has zero variance the line is still defined (slope 0) but the
// correlation is not: R is NaN and HasCorrelation reports false.
//
// All functions are pure; calling them twice on the same input returns the
// same result.
package regression
