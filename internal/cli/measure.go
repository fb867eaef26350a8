package cli

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/carbonviz/compress"
	"github.com/arloliu/carbonviz/format"
)

// AllCompressions lists every codec the export payload supports.
var AllCompressions = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// MeasureAll runs compress.Measure for each type concurrently. Results are
// in the order of types. The first failure cancels the rest.
func MeasureAll(ctx context.Context, data []byte, types []format.CompressionType) ([]compress.CompressionStats, error) {
	results := make([]compress.CompressionStats, len(types))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, ct := range types {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			stats, err := compress.Measure(ct, data)
			if err != nil {
				return err
			}
			results[i] = stats

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
