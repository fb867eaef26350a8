package main

import (
	"encoding/json"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/arloliu/carbonviz/filter"
	"github.com/arloliu/carbonviz/format"
	"github.com/arloliu/carbonviz/internal/cli"
	"github.com/arloliu/carbonviz/regression"
)

// Trend-specific flag values.
var (
	trendData    string
	trendSchema  string
	trendX       string
	trendY       string
	trendXScale  string
	trendYScale  string
	trendKind    string
	trendCompare bool
	trendPoints  int
)

// trendCmd fits a trendline through two numeric fields.
var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Fit a scatter-plot trendline through two numeric fields",
	Long: `Fit a trendline through (x, y) pairs taken from a dataset and print its
formula and goodness of fit.

With the default linear kind the axis scales choose the curve, so the line
is straight on the chart: log x fits a logarithmic curve, log y an
exponential one and log/log a power law. Records with a missing, non-numeric
or (on a log axis) non-positive value are skipped.

Examples:
  carbonviz trend --data countries.json --x gdpPerCapita --y co2PerCapita
  carbonviz trend --data countries.json --x gdpPerCapita --y co2PerCapita --x-scale log --points 50
  carbonviz trend --data countries.json --x internetUsers --y co2PerCapita --compare`,
	Args: cobra.NoArgs,
	RunE: runTrend,
}

func init() {
	trendCmd.Flags().StringVar(&trendData, "data", "", "JSON dataset to read (required)")
	trendCmd.Flags().StringVar(&trendSchema, "schema", schemaCountries, schemaUsage())
	trendCmd.Flags().StringVar(&trendX, "x", "", "x field (required)")
	trendCmd.Flags().StringVar(&trendY, "y", "", "y field (required)")
	trendCmd.Flags().StringVar(&trendXScale, "x-scale", "linear", "x axis scale: linear or log")
	trendCmd.Flags().StringVar(&trendYScale, "y-scale", "linear", "y axis scale: linear or log")
	trendCmd.Flags().StringVar(&trendKind, "kind", "linear", "trendline kind: linear, exponential, logarithmic or power")
	trendCmd.Flags().BoolVar(&trendCompare, "compare", false, "fit every curve family and rank them by R²")
	trendCmd.Flags().IntVar(&trendPoints, "points", 0, "also print the trendline sampled at this many intervals as JSON")
	_ = trendCmd.MarkFlagRequired("data")
	_ = trendCmd.MarkFlagRequired("x")
	_ = trendCmd.MarkFlagRequired("y")
}

func runTrend(cmd *cobra.Command, _ []string) error {
	xScale, ok := format.ParseScale(trendXScale)
	if !ok {
		return exitError(ExitInvalidArgs, "carbonviz: unknown x scale %q", trendXScale)
	}
	yScale, ok := format.ParseScale(trendYScale)
	if !ok {
		return exitError(ExitInvalidArgs, "carbonviz: unknown y scale %q", trendYScale)
	}
	kind, ok := format.ParseTrendline(trendKind)
	if !ok {
		return exitError(ExitInvalidArgs, "carbonviz: unknown trendline kind %q", trendKind)
	}

	records, err := loadRecords(trendData, trendSchema)
	if err != nil {
		return err
	}

	samples, kept, err := regression.SamplesFrom(records, trendX, trendY, regression.WithScales(xScale, yScale))
	if err != nil {
		return exitError(ExitInvalidArgs, "carbonviz: %v", err)
	}
	slog.Debug("trend samples", "records", len(records), "samples", len(samples), "skipped", len(records)-len(samples))

	w := cmd.OutOrStdout()

	if trendCompare {
		fits, err := regression.Compare(samples)
		if err != nil {
			return dataError(err, "carbonviz: fit %s against %s", trendY, trendX)
		}
		for _, fit := range fits {
			if err := cli.RenderFit(w, fit); err != nil {
				return err
			}
		}

		return nil
	}

	fit, err := regression.FitScaled(samples, xScale, yScale, kind)
	if err != nil {
		return dataError(err, "carbonviz: fit %s against %s", trendY, trendX)
	}
	if err := cli.RenderFit(w, fit); err != nil {
		return err
	}

	if trendPoints <= 0 {
		return nil
	}

	lo, hi, _ := filter.Extent(kept, trendX)
	points, err := regression.Trendline(fit, lo, hi, regression.WithSteps(trendPoints))
	if err != nil {
		return exitError(ExitInvalidArgs, "carbonviz: %v", err)
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(points); err != nil {
		return dataError(err, "carbonviz: write trendline")
	}

	return nil
}
