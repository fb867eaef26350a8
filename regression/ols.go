package regression

import (
	"math"

	"github.com/arloliu/carbonviz/errs"
	"github.com/arloliu/carbonviz/internal/pool"
)

// varianceTolerance is relative to n·Σv², so the zero-variance test does not
// depend on the units of the data.
const varianceTolerance = 1e-12

// Stats holds the goodness-of-fit metrics shared by every fit.
type Stats struct {
	// R is Pearson's correlation on the fitted (possibly linearised) data,
	// NaN when y has zero variance.
	R float64 `json:"r"`
	// RSquared is the coefficient of determination in original y units.
	RSquared float64 `json:"rSquared"`
	// RMSE is the root mean square error in original y units.
	RMSE float64 `json:"rmse"`
	// N is the number of samples fitted.
	N int `json:"n"`
}

// HasCorrelation reports whether R is defined.
func (s Stats) HasCorrelation() bool {
	return !math.IsNaN(s.R)
}

type olsResult struct {
	slope     float64
	intercept float64
	r         float64
}

// degenerate reports whether n·Σv² − (Σv)² is zero relative to scale. A zero
// scale (all values zero) is degenerate.
func degenerate(centered, scale float64) bool {
	return centered <= varianceTolerance*scale
}

// ols runs the normal-equation closed form over xs and ys.
func ols(xs, ys []float64) (olsResult, error) {
	n := float64(len(xs))
	if len(xs) == 0 {
		return olsResult{}, errs.ErrInsufficientSamples
	}

	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := range xs {
		x, y := xs[i], ys[i]
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
		sumY2 += y * y
	}

	denomX := n*sumX2 - sumX*sumX
	if degenerate(denomX, n*sumX2) {
		return olsResult{}, errs.ErrIndeterminate
	}

	num := n*sumXY - sumX*sumY
	slope := num / denomX
	intercept := (sumY - slope*sumX) / n

	r := math.NaN()
	denomY := n*sumY2 - sumY*sumY
	if !degenerate(denomY, n*sumY2) {
		r = num / math.Sqrt(denomX*denomY)
		r = math.Max(-1, math.Min(1, r))
	}

	return olsResult{slope: slope, intercept: intercept, r: r}, nil
}

// olsTransformed runs ols on fx(x), fy(y) using pooled scratch buffers.
func olsTransformed(samples []Sample, fx, fy func(float64) float64) (olsResult, error) {
	axes, release := pool.GetAxes(len(samples))
	defer release()

	for i, s := range samples {
		axes.X[i] = fx(s.X)
		axes.Y[i] = fy(s.Y)
	}

	return ols(axes.X, axes.Y)
}

func identity(v float64) float64 { return v }

// goodness computes R² and RMSE of predict against the samples in original
// y units. R² is 0 when y has no variance.
func goodness(samples []Sample, predict func(float64) float64) (rSquared, rmse float64) {
	n := float64(len(samples))
	if n == 0 {
		return 0, 0
	}

	var meanY float64
	for _, s := range samples {
		meanY += s.Y
	}
	meanY /= n

	var ssTot, ssRes float64
	for _, s := range samples {
		d := s.Y - meanY
		ssTot += d * d
		res := s.Y - predict(s.X)
		ssRes += res * res
	}

	rmse = math.Sqrt(ssRes / n)
	if ssTot == 0 {
		return 0, rmse
	}

	return 1.0 - ssRes/ssTot, rmse
}
