package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/arloliu/carbonviz/compress"
	"github.com/arloliu/carbonviz/footprint"
	"github.com/arloliu/carbonviz/hierarchy"
	"github.com/arloliu/carbonviz/regression"
)

// Shared color printers.
var (
	colorBold   = color.New(color.Bold)
	colorGreen  = color.New(color.FgGreen)
	colorYellow = color.New(color.FgYellow)
	colorRed    = color.New(color.FgRed)
	colorDim    = color.New(color.Faint)
)

// RenderTree prints n as an indented outline with each node's aggregate.
// Nodes deeper than maxDepth are collapsed; maxDepth <= 0 prints everything.
func RenderTree(w io.Writer, n *hierarchy.Node, maxDepth int) error {
	var err error
	hierarchy.Walk(n, func(node *hierarchy.Node, depth int) bool {
		if err != nil {
			return false
		}

		indent := strings.Repeat("  ", depth)
		sum := humanize.CommafWithDigits(hierarchy.Sum(node), 1)
		switch node.Kind {
		case hierarchy.KindLeaf:
			_, err = fmt.Fprintf(w, "%s%s %s\n", indent, node.Name, colorDim.Sprint(sum))
		default:
			_, err = fmt.Fprintf(w, "%s%s %s (%d)\n", indent, colorBold.Sprint(node.Name), sum, hierarchy.CountLeaves(node))
		}

		return maxDepth <= 0 || depth < maxDepth
	})
	if err != nil {
		return fmt.Errorf("render tree: %w", err)
	}

	return nil
}

// RenderFit prints a fit's formula and goodness.
func RenderFit(w io.Writer, fit regression.Fit) error {
	stats := fit.Goodness()

	r := "n/a (y has no variance)"
	if stats.HasCorrelation() {
		r = colorCorrelation(stats.R)
	}

	_, err := fmt.Fprintf(w, "%s %s\n  %s\n  r:    %s\n  R²:   %.4f\n  RMSE: %.4g\n  n:    %d\n",
		colorBold.Sprint(fit.Kind().String()), colorDim.Sprintf("(%d coefficients)", len(fit.Coefficients())),
		fit.Formula(), r, stats.RSquared, stats.RMSE, stats.N)
	if err != nil {
		return fmt.Errorf("render fit: %w", err)
	}

	return nil
}

// colorCorrelation colors |r| >= 0.7 green, >= 0.3 yellow, else red.
func colorCorrelation(r float64) string {
	s := fmt.Sprintf("%.4f", r)
	switch abs := max(r, -r); {
	case abs >= 0.7:
		return colorGreen.Sprint(s)
	case abs >= 0.3:
		return colorYellow.Sprint(s)
	default:
		return colorRed.Sprint(s)
	}
}

// RenderBreakdown prints a weekly breakdown as a table followed by the
// yearly equivalents. eq may be nil when no reference data was supplied.
func RenderBreakdown(w io.Writer, b footprint.Breakdown, eq *footprint.Equivalents) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, colorBold.Sprint("TASK")+"\t"+colorBold.Sprint("USAGE")+"\t"+colorBold.Sprint("gCO2e/WEEK")+"\t"+colorBold.Sprint("SHARE"))
	for i, te := range b.Tasks {
		_, _ = fmt.Fprintf(tw, "%s\t%s %s\t%s\t%.1f%%\n",
			te.Label, humanize.Ftoa(te.Usage), te.Unit, humanize.CommafWithDigits(te.Emissions, 1), b.Share(i)*100)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("render breakdown: %w", err)
	}

	_, err := fmt.Fprintf(w, "\n%s %s g/week, %s g/year\n", colorBold.Sprint("Total:"),
		humanize.CommafWithDigits(b.Total, 1), humanize.CommafWithDigits(b.Yearly(), 0))
	if err != nil {
		return fmt.Errorf("render breakdown: %w", err)
	}

	if eq == nil {
		return nil
	}

	_, err = fmt.Fprintf(w, "\nOver a year that is the same as:\n"+
		"  driving %s miles, about %s to %s and back\n"+
		"  eating %s servings of beef\n"+
		"  charging a smartphone every day for %.1f years, until %d\n",
		colorGreen.Sprint(humanize.CommafWithDigits(eq.MilesDriven, 0)),
		eq.ClosestTrip.Departure, eq.ClosestTrip.Destination,
		colorGreen.Sprint(humanize.CommafWithDigits(eq.BeefServings, 0)),
		eq.ChargingYears, eq.ChargingUntilYear)
	if err != nil {
		return fmt.Errorf("render breakdown: %w", err)
	}

	return nil
}

// RenderMeasurements prints codec comparison rows.
func RenderMeasurements(w io.Writer, stats []compress.CompressionStats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, colorBold.Sprint("CODEC")+"\t"+colorBold.Sprint("SIZE")+"\t"+colorBold.Sprint("SAVED")+"\t"+colorBold.Sprint("COMPRESS")+"\t"+colorBold.Sprint("DECOMPRESS"))
	for _, s := range stats {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%.1f%%\t%s\t%s\n",
			s.Algorithm, humanize.Bytes(uint64(s.CompressedSize)), s.SpaceSavings(),
			time.Duration(s.CompressionTimeNs), time.Duration(s.DecompressionTimeNs))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("render measurements: %w", err)
	}

	return nil
}
