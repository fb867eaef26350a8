package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/arloliu/carbonviz"
	"github.com/arloliu/carbonviz/export"
	"github.com/arloliu/carbonviz/format"
	"github.com/arloliu/carbonviz/hierarchy"
	"github.com/arloliu/carbonviz/internal/cli"
)

// Export-specific flag values.
var (
	exportOpts        treemapFlags
	exportOut         string
	exportCompression string
	exportMeasure     bool
)

// exportCmd writes a treemap as a compressed payload.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a treemap as a compressed, checksummed payload",
	Long: `Build the same treemap as the treemap command and write it as a CVZ1
payload: JSON compressed with zstd, s2, lz4 or nothing, behind a header that
carries the codec and an xxHash64 checksum.

Examples:
  carbonviz export --data companies.json --out tree.cvz
  carbonviz export --data companies.json --out tree.cvz --compression s2 --measure`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportOpts.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "payload file to write (required)")
	exportCmd.Flags().StringVar(&exportCompression, "compression", "zstd", "body compression: none, zstd, s2 or lz4")
	exportCmd.Flags().BoolVar(&exportMeasure, "measure", false, "compare every codec on this payload")
	_ = exportCmd.MarkFlagRequired("out")
}

func runExport(cmd *cobra.Command, _ []string) error {
	ct, ok := format.ParseCompression(exportCompression)
	if !ok {
		return exitError(ExitInvalidArgs, "carbonviz: unknown compression %q", exportCompression)
	}

	tm, err := exportOpts.build()
	if err != nil {
		return err
	}

	payload, err := export.Encode(tm, export.WithCompression(ct))
	if err != nil {
		return dataError(err, "carbonviz: encode")
	}
	if err := os.WriteFile(exportOut, payload, 0o644); err != nil { //nolint:gosec // output is meant to be shared
		return exitError(ExitInvalidArgs, "carbonviz: cannot write %q (%v)", exportOut, err)
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "wrote %s (%s, %d leaves) to %s\n",
		humanize.Bytes(uint64(len(payload))), ct, hierarchy.CountLeaves(tm.Root), exportOut)

	if !exportMeasure {
		return nil
	}

	body, err := json.Marshal(tm)
	if err != nil {
		return dataError(err, "carbonviz: encode")
	}
	stats, err := cli.MeasureAll(cmd.Context(), body, cli.AllCompressions)
	if err != nil {
		return dataError(err, "carbonviz: measure")
	}
	slog.Debug("measured codecs", "body_bytes", len(body))

	_, _ = fmt.Fprintln(w)

	return cli.RenderMeasurements(w, stats)
}

// inspectCmd describes a payload written by export.
var inspectCmd = &cobra.Command{
	Use:   "inspect <payload>",
	Short: "Verify an export payload and print its header and caption",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return exitError(ExitInvalidArgs, "carbonviz: cannot open %q (%v)", args[0], err)
	}

	h, err := export.Inspect(data)
	if err != nil {
		return dataError(err, "carbonviz: %s", args[0])
	}

	var tm carbonviz.TreemapResult
	if err := export.Decode(data, &tm); err != nil {
		return dataError(err, "carbonviz: %s", args[0])
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "compression: %s\nchecksum:    %016x\nbody:        %s\nleaves:      %d\n%s\n",
		h.Compression, h.Checksum, humanize.Bytes(uint64(h.BodySize)), hierarchy.CountLeaves(tm.Root), tm.Caption())

	return nil
}
