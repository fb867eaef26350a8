package regression

import (
	"github.com/arloliu/carbonviz/dataset"
	"github.com/arloliu/carbonviz/format"
	"github.com/arloliu/carbonviz/internal/options"
)

// SamplesFrom pulls (xField, yField) pairs out of records.
//
// A record is skipped when either field is missing, not a number, NaN or
// infinite, or not strictly positive on a log-scaled axis (see WithScales).
// The second result holds the kept records in input order, parallel to the
// samples, so the chart can draw dots for exactly the fitted points.
func SamplesFrom(records []dataset.Record, xField, yField string, opts ...SampleOption) ([]Sample, []dataset.Record, error) {
	cfg := &SampleConfig{XScale: format.ScaleLinear, YScale: format.ScaleLinear}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, nil, err
	}

	samples := make([]Sample, 0, len(records))
	kept := make([]dataset.Record, 0, len(records))

	for _, rec := range records {
		x, ok := numericField(rec, xField)
		if !ok || (cfg.XScale == format.ScaleLog && x <= 0) {
			continue
		}

		y, ok := numericField(rec, yField)
		if !ok || (cfg.YScale == format.ScaleLog && y <= 0) {
			continue
		}

		samples = append(samples, Sample{X: x, Y: y})
		kept = append(kept, rec)
	}

	return samples, kept, nil
}

func numericField(rec dataset.Record, name string) (float64, bool) {
	v, ok := rec.Field(name)
	if !ok {
		return 0, false
	}

	f, ok := v.Num()
	if !ok || !isFinite(f) {
		return 0, false
	}

	return f, true
}
