package compress

import (
	"fmt"
	"time"

	"github.com/arloliu/carbonviz/errs"
	"github.com/arloliu/carbonviz/format"
)

// Compressor compresses a complete payload.
//
// The returned slice is owned by the caller. The input slice is not modified,
// although the no-op codec returns it as-is.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
//
// It returns an error if the data is corrupted or was produced by a
// different algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one compression round trip.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64

	// CompressionTimeNs is the time taken to compress the data
	CompressionTimeNs int64

	// DecompressionTimeNs is the time taken to decompress the data
	DecompressionTimeNs int64
}

// CompressionRatio returns compressed size / original size, or 0 when the
// original size is zero. Values below 1.0 mean the codec saved space.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}

// Measure compresses and decompresses data with the given algorithm and
// reports sizes and timings. It fails if the round trip does not reproduce
// the input length.
func Measure(compressionType format.CompressionType, data []byte) (CompressionStats, error) {
	stats := CompressionStats{
		Algorithm:    compressionType,
		OriginalSize: int64(len(data)),
	}

	codec, err := GetCodec(compressionType)
	if err != nil {
		return stats, err
	}

	start := time.Now()
	packed, err := codec.Compress(data)
	if err != nil {
		return stats, fmt.Errorf("%s compress: %w", compressionType, err)
	}
	stats.CompressionTimeNs = time.Since(start).Nanoseconds()
	stats.CompressedSize = int64(len(packed))

	start = time.Now()
	unpacked, err := codec.Decompress(packed)
	if err != nil {
		return stats, fmt.Errorf("%s decompress: %w", compressionType, err)
	}
	stats.DecompressionTimeNs = time.Since(start).Nanoseconds()

	if len(unpacked) != len(data) {
		return stats, fmt.Errorf("%s round trip: got %d bytes, want %d", compressionType, len(unpacked), len(data))
	}

	return stats, nil
}
