// Package compress provides the compression codecs applied to carbonviz
// export payloads.
//
// A payload is JSON (a hierarchy, a filtered record set or a fitted
// trendline) and is compressed as a whole before it is framed by the export
// package. Four algorithms are available, selected by format.CompressionType:
//   - None: bytes pass through unchanged
//   - Zstd: best ratio, the export default
//   - S2: faster, slightly larger output
//   - LZ4: fastest decompression
//
// All codecs share one interface:
//
//	type Codec interface {
//	    Compress(data []byte) ([]byte, error)
//	    Decompress(data []byte) ([]byte, error)
//	}
//
// Built-in codecs are stateless values safe for concurrent use; the zstd and
// lz4 codecs keep pooled encoders internally.
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(body)
//
// Measure reports the ratio a codec achieves on a given payload, which the
// CLI prints after writing an export file.
package compress
