package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/carbonviz"
	"github.com/arloliu/carbonviz/dataset"
	"github.com/arloliu/carbonviz/filter"
	"github.com/arloliu/carbonviz/hierarchy"
	"github.com/arloliu/carbonviz/internal/cli"
)

// treemapFlags are shared by treemap and export.
type treemapFlags struct {
	data     string
	schema   string
	filter   string
	groups   string
	value    string
	leafName string
	strict   bool
}

func (f *treemapFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.data, "data", "", "JSON dataset to read (required)")
	cmd.Flags().StringVar(&f.schema, "schema", schemaCompanies, schemaUsage())
	cmd.Flags().StringVar(&f.filter, "filter", "", "YAML or TOML filter file")
	cmd.Flags().StringVar(&f.groups, "group", dataset.FieldSector+","+dataset.FieldIndustry, "comma-separated grouping fields, outermost first; empty for none")
	cmd.Flags().StringVar(&f.value, "value", dataset.FieldTotalEmissions, "numeric leaf value field")
	cmd.Flags().StringVar(&f.leafName, "leaf-name", dataset.FieldCompany, "field naming each leaf")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "fail on missing or non-numeric leaf values instead of using 0")
	_ = cmd.MarkFlagRequired("data")
}

// groupKeys splits --group, dropping empty entries.
func (f *treemapFlags) groupKeys() []string {
	var keys []string
	for _, k := range strings.Split(f.groups, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}

	return keys
}

// build loads the dataset and filter and returns the sorted treemap.
func (f *treemapFlags) build() (*carbonviz.TreemapResult, error) {
	records, err := loadRecords(f.data, f.schema)
	if err != nil {
		return nil, err
	}

	spec, err := filter.New()
	if f.filter != "" {
		spec, err = cli.LoadFilter(f.filter)
	}
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "carbonviz: %v", err)
	}

	slog.Debug("treemap input",
		"records", len(records),
		"active_filters", spec.Active(),
		"filter_fingerprint", fmt.Sprintf("%016x", spec.Fingerprint()),
	)

	opts := []hierarchy.Option{
		hierarchy.WithLogger(slog.Default()),
		hierarchy.WithLeafName(f.leafName),
	}
	if f.strict {
		opts = append(opts, hierarchy.WithStrictValues())
	}

	tm, err := carbonviz.Treemap(records, spec, f.groupKeys(), f.value, opts...)
	if err != nil {
		return nil, dataError(err, "carbonviz: build treemap")
	}
	if len(tm.Anomalies) > 0 {
		slog.Info("leaf values defaulted to 0", "count", len(tm.Anomalies), "field", f.value)
	}

	return tm, nil
}

var (
	treemapOpts  treemapFlags
	treemapDepth int
)

// treemapCmd prints a filtered, grouped treemap as an outline.
var treemapCmd = &cobra.Command{
	Use:   "treemap",
	Short: "Filter and group records into a treemap outline",
	Long: `Filter a dataset, group it by one or more fields and print the resulting
tree with each group's total and leaf count, largest first, followed by the
chart caption.

Examples:
  carbonviz treemap --data companies.json
  carbonviz treemap --data companies.json --filter tech.yaml --group sector --depth 1`,
	Args: cobra.NoArgs,
	RunE: runTreemap,
}

func init() {
	treemapOpts.register(treemapCmd)
	treemapCmd.Flags().IntVar(&treemapDepth, "depth", 0, "collapse nodes deeper than this level (0 prints all)")
}

func runTreemap(cmd *cobra.Command, _ []string) error {
	tm, err := treemapOpts.build()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if err := cli.RenderTree(w, tm.Root, treemapDepth); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "\n%s\n", tm.Caption())

	return nil
}
