package regression

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/carbonviz/errs"
	"github.com/arloliu/carbonviz/format"
)

// Fit is a fitted trendline of any kind.
type Fit interface {
	// Predict evaluates the curve at x in original (untransformed) units.
	// It returns NaN where the curve is undefined.
	Predict(x float64) float64
	// Kind returns the curve family.
	Kind() format.TrendlineKind
	// Coefficients returns the curve parameters in formula order.
	Coefficients() []float64
	// Correlation returns Pearson's r of the fitted data, NaN if undefined.
	Correlation() float64
	// Goodness returns the fit's correlation, R², RMSE and sample count.
	Goodness() Stats
	// Formula renders the curve for display, e.g. "y = 2*x + 0".
	Formula() string
}

// FitKind fits the given curve family to raw samples.
func FitKind(samples []Sample, kind format.TrendlineKind) (Fit, error) {
	switch kind {
	case format.TrendLinear:
		return FitLinear(samples)
	case format.TrendExponential:
		return FitExponential(samples)
	case format.TrendLogarithmic:
		return FitLogarithmic(samples)
	case format.TrendPower:
		return FitPower(samples)
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownTrendline, kind)
	}
}

// FitScaled fits raw samples the way a scatter chart draws its trendline.
//
// A linear trendline is straight in the chart's own coordinates, so the axis
// scales pick the curve: linear/linear gives a line, log x gives a
// logarithmic curve, log y an exponential one and log/log a power law. Every
// other kind is fitted directly on the raw values regardless of the scales.
func FitScaled(samples []Sample, xScale, yScale format.ScaleType, kind format.TrendlineKind) (Fit, error) {
	if kind != format.TrendLinear {
		return FitKind(samples, kind)
	}

	xLog := xScale == format.ScaleLog
	yLog := yScale == format.ScaleLog

	switch {
	case xLog && yLog:
		return FitPower(samples)
	case xLog:
		return FitLogarithmic(samples)
	case yLog:
		return FitExponential(samples)
	default:
		return FitLinear(samples)
	}
}

var compareOrder = []format.TrendlineKind{
	format.TrendLinear,
	format.TrendExponential,
	format.TrendLogarithmic,
	format.TrendPower,
}

// Compare fits every curve family the samples allow and returns them ranked
// by R², best first. Families whose domain the data violates (values <= 0
// for log-linearised fits) are skipped. Ties keep the order linear,
// exponential, logarithmic, power.
//
// Compare fails only when no family can be fitted, returning the linear
// fit's error.
func Compare(samples []Sample) ([]Fit, error) {
	fits := make([]Fit, 0, len(compareOrder))

	var firstErr error
	for _, kind := range compareOrder {
		fit, err := FitKind(samples, kind)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			if errors.Is(err, errs.ErrNonPositive) {
				continue
			}

			return nil, err
		}
		fits = append(fits, fit)
	}

	if len(fits) == 0 {
		return nil, firstErr
	}

	slices.SortStableFunc(fits, func(a, b Fit) int {
		return cmp.Compare(rankKey(b), rankKey(a))
	})

	return fits, nil
}

// rankKey maps NaN R² below every real value.
func rankKey(f Fit) float64 {
	r2 := f.Goodness().RSquared
	if math.IsNaN(r2) {
		return math.Inf(-1)
	}

	return r2
}

func signed(v float64) (string, float64) {
	if v < 0 {
		return "-", -v
	}

	return "+", v
}

func describe(f Fit) string {
	g := f.Goodness()
	return fmt.Sprintf("%s{R: %.4f, R²: %.4f, RMSE: %.4f, N: %d, Formula: %s}",
		f.Kind(), g.R, g.RSquared, g.RMSE, g.N, f.Formula())
}
