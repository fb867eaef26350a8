// Package carbonviz is the data core behind charts about the carbon footprint
// of digital technology.
//
// It turns already-typed datasets into render-ready values: trendline fits
// for scatter plots, filtered record sets and grouping hierarchies for
// treemaps, and per-activity emission breakdowns. Rendering stays with the
// caller.
//
// # Core Features
//
//   - Closed-form least-squares fits (linear, exponential, logarithmic, power)
//   - Immutable filter specs with range, set, choice and search constraints
//   - Single-pass hierarchy building over a hashed composite-key index
//   - Weekly digital-activity footprints with everyday equivalents
//   - Compressed, checksummed export payloads (None, Zstd, S2, LZ4)
//
// # Basic Usage
//
// Fitting a trendline:
//
//	fit, err := carbonviz.FitLinear([]regression.Sample{{X: 1, Y: 2}, {X: 2, Y: 4}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(fit.Slope, fit.Intercept, fit.R)
//
// Building a treemap from filtered companies:
//
//	spec, _ := filter.New()
//	spec = spec.WithSet(dataset.FieldSector, "Technology")
//	tm, err := carbonviz.Treemap(companies, spec, []string{"sector", "industry"}, "totalEmissions")
//	fmt.Println(tm.Caption())
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the regression,
// filter and hierarchy packages. For fine-grained control, use those
// packages directly.
package carbonviz

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/arloliu/carbonviz/dataset"
	"github.com/arloliu/carbonviz/filter"
	"github.com/arloliu/carbonviz/hierarchy"
	"github.com/arloliu/carbonviz/regression"
)

// FitLinear fits y = slope*x + intercept by ordinary least squares.
//
// Parameters:
//   - samples: The (x, y) points to fit. All values must be finite.
//
// Returns:
//   - *regression.LinearFit: Slope, intercept, Pearson r and goodness stats.
//   - error: errs.ErrInsufficientSamples for no samples, errs.ErrIndeterminate
//     when every x is equal, errs.ErrNonFiniteSample for NaN or Inf input.
//
// When every y is equal the fit succeeds with a zero slope and R is NaN.
//
// Example:
//
//	fit, err := carbonviz.FitLinear(samples)
//	if errors.Is(err, errs.ErrIndeterminate) {
//	    // draw no trendline
//	}
func FitLinear(samples []regression.Sample) (*regression.LinearFit, error) {
	return regression.FitLinear(samples)
}

// FitExponential fits y = A * e^(B*x) by least squares on (x, ln y).
//
// Parameters:
//   - samples: The (x, y) points to fit. Every y must be positive.
//
// Returns:
//   - *regression.ExponentialFit: A, B, r of the linearised fit and goodness
//     stats in the original y units.
//   - error: errs.ErrNonPositive (wrapped in a *regression.SampleError naming
//     the first offending index) plus the errors of FitLinear.
func FitExponential(samples []regression.Sample) (*regression.ExponentialFit, error) {
	return regression.FitExponential(samples)
}

// ApplyFilters returns the records matching every active constraint of spec,
// in input order. The result never aliases records.
//
// Example:
//
//	spec, _ := filter.New()
//	spec = spec.WithRange("revenues", filter.AtLeast(1e9))
//	big := carbonviz.ApplyFilters(companies, spec)
func ApplyFilters[R dataset.Record](records []R, spec filter.Spec) []R {
	return filter.Apply(records, spec)
}

// BuildHierarchy groups records into a root -> group... -> leaf tree.
//
// Parameters:
//   - records: One leaf is created per record.
//   - groupKeys: Field names, one tree level per key. May be empty.
//   - leafValueField: Numeric field that becomes each leaf's value.
//   - opts: hierarchy.WithLogger, hierarchy.WithStrictValues, hierarchy.WithLeafName.
//
// Returns:
//   - *hierarchy.Node: The root. Group sizes are computed with hierarchy.Sum.
//   - error: errs.ErrInvalidLeafValue in strict mode, or an invalid option.
func BuildHierarchy[R dataset.Record](records []R, groupKeys []string, leafValueField string, opts ...hierarchy.Option) (*hierarchy.Node, error) {
	return hierarchy.Build(records, groupKeys, leafValueField, opts...)
}

// TreemapResult is a filtered, grouped and sorted hierarchy with the
// numbers a treemap caption needs.
type TreemapResult struct {
	// Root is the hierarchy, sorted by aggregate value at every level.
	Root *hierarchy.Node `json:"root"`
	// Count is the number of records that passed the filter.
	Count int `json:"count"`
	// Total is the sum of all leaf values.
	Total float64 `json:"total"`
	// Anomalies lists leaves whose value field was missing or not numeric.
	Anomalies []hierarchy.Anomaly `json:"anomalies,omitempty"`
}

// Caption renders the sentence shown under the treemap, with the total
// rounded to whole tonnes.
func (r *TreemapResult) Caption() string {
	return Caption(r.Count, r.Total)
}

// Caption formats the treemap caption for count companies emitting
// totalTonnes of CO₂ over a year.
func Caption(count int, totalTonnes float64) string {
	return fmt.Sprintf("Over a year, the websites of these %s companies emitted %s tonnes of CO₂.",
		humanize.Comma(int64(count)), humanize.Comma(int64(math.Round(totalTonnes))))
}

// Treemap applies spec to records, builds the hierarchy over the survivors
// and sorts it by value, largest first.
//
// Example:
//
//	tm, err := carbonviz.Treemap(companies, spec, []string{"sector"}, "totalEmissions")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(tm.Caption())
func Treemap[R dataset.Record](records []R, spec filter.Spec, groupKeys []string, valueField string, opts ...hierarchy.Option) (*TreemapResult, error) {
	filtered := filter.Apply(records, spec)

	res, err := hierarchy.BuildReport(filtered, groupKeys, valueField, opts...)
	if err != nil {
		return nil, err
	}

	return &TreemapResult{
		Root:      hierarchy.SortByValue(res.Root),
		Count:     len(filtered),
		Total:     hierarchy.Sum(res.Root),
		Anomalies: res.Anomalies,
	}, nil
}
