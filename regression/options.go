package regression

import (
	"fmt"

	"github.com/arloliu/carbonviz/format"
	"github.com/arloliu/carbonviz/internal/options"
)

// DefaultTrendlineSteps is the number of intervals a trendline is sampled at.
const DefaultTrendlineSteps = 100

// TrendlineConfig controls Trendline sampling.
type TrendlineConfig struct {
	Steps int
}

// TrendlineOption is a functional option for TrendlineConfig.
type TrendlineOption = options.Option[*TrendlineConfig]

// WithSteps sets the number of intervals between min and max.
func WithSteps(steps int) TrendlineOption {
	return options.New(func(cfg *TrendlineConfig) error {
		if steps < 1 {
			return fmt.Errorf("trendline steps must be >= 1, got %d", steps)
		}
		cfg.Steps = steps

		return nil
	})
}

// SampleConfig controls SamplesFrom extraction.
type SampleConfig struct {
	XScale format.ScaleType
	YScale format.ScaleType
}

// SampleOption is a functional option for SampleConfig.
type SampleOption = options.Option[*SampleConfig]

// WithScales declares the chart's axis scales. Records with a value <= 0 on
// a log-scaled axis are dropped.
func WithScales(xScale, yScale format.ScaleType) SampleOption {
	return options.New(func(cfg *SampleConfig) error {
		for _, s := range []format.ScaleType{xScale, yScale} {
			if s != format.ScaleLinear && s != format.ScaleLog {
				return fmt.Errorf("unknown axis scale %d", s)
			}
		}
		cfg.XScale = xScale
		cfg.YScale = yScale

		return nil
	})
}
