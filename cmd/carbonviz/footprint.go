package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/arloliu/carbonviz/footprint"
	"github.com/arloliu/carbonviz/internal/cli"
)

// Footprint-specific flag values.
var (
	footprintTasks  string
	footprintPreset string
)

// footprintCmd prices a week of digital activity.
var footprintCmd = &cobra.Command{
	Use:   "footprint",
	Short: "Estimate the emissions of a week of digital activity",
	Long: `Read emission factors and weekly usage from a YAML or TOML tasks file,
print the weekly breakdown largest first, and, when the file lists reference
factors and trips, what the yearly total is equivalent to.

Examples:
  carbonviz footprint --tasks tasks.yaml
  carbonviz footprint --tasks tasks.yaml --preset average`,
	Args: cobra.NoArgs,
	RunE: runFootprint,
}

func init() {
	footprintCmd.Flags().StringVar(&footprintTasks, "tasks", "", "YAML or TOML tasks file (required)")
	footprintCmd.Flags().StringVar(&footprintPreset, "preset", "", "override the file's usage preset: author, average or none")
	_ = footprintCmd.MarkFlagRequired("tasks")
}

func runFootprint(cmd *cobra.Command, _ []string) error {
	tf, err := cli.LoadTasks(footprintTasks)
	if err != nil {
		return exitError(ExitInvalidArgs, "carbonviz: %v", err)
	}
	if footprintPreset != "" {
		tf.Preset = footprintPreset
	}

	usage, err := tf.WeeklyUsage()
	if err != nil {
		return exitError(ExitInvalidArgs, "carbonviz: %v", err)
	}

	b := footprint.Calculate(tf.Tasks, usage)
	slog.Debug("footprint", "tasks", len(b.Tasks), "weekly_grams", b.Total)

	var eq *footprint.Equivalents
	if len(tf.Factors) > 0 || len(tf.Trips) > 0 {
		e, err := footprint.ComputeEquivalents(b.Yearly(), tf.Factors, tf.Trips, time.Now())
		if err != nil {
			return dataError(err, "carbonviz: %s", footprintTasks)
		}
		eq = &e
	}

	return cli.RenderBreakdown(cmd.OutOrStdout(), b, eq)
}
