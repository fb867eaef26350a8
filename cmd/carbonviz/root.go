package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arloliu/carbonviz/internal/cli"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for carbonviz.
var rootCmd = &cobra.Command{
	Use:   "carbonviz",
	Short: "Prepare chart data about the carbon footprint of digital technology",
	Long: `carbonviz turns JSON datasets into chart-ready results: filtered and
grouped treemaps of company website emissions, scatter-plot trendlines,
weekly digital-activity footprints, and compressed export payloads for the
rendering side.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		cli.SetupLogging(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(treemapCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(footprintCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)
}
