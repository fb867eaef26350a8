package regression

import "github.com/arloliu/carbonviz/internal/options"

// Trendline samples fit at Steps+1 evenly spaced x values from min to max
// inclusive, in original units, ready to be drawn as a polyline. Points where
// the curve is undefined or not finite are omitted. min and max may be given
// in either order; equal bounds yield a single point.
func Trendline(fit Fit, minX, maxX float64, opts ...TrendlineOption) ([]Sample, error) {
	cfg := &TrendlineConfig{Steps: DefaultTrendlineSteps}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if minX > maxX {
		minX, maxX = maxX, minX
	}

	if minX == maxX {
		y := fit.Predict(minX)
		if !isFinite(y) {
			return []Sample{}, nil
		}

		return []Sample{{X: minX, Y: y}}, nil
	}

	step := (maxX - minX) / float64(cfg.Steps)
	points := make([]Sample, 0, cfg.Steps+1)
	for i := 0; i <= cfg.Steps; i++ {
		x := minX + float64(i)*step
		if i == cfg.Steps {
			x = maxX
		}

		y := fit.Predict(x)
		if !isFinite(y) {
			continue
		}
		points = append(points, Sample{X: x, Y: y})
	}

	return points, nil
}
