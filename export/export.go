// Package export serializes carbonviz results (trees, breakdowns, trendlines)
// into a compact, checksummed payload.
//
// A payload is a 13-byte header followed by the compressed JSON body:
//
//	offset  size  field
//	0       4     magic "CVZ1"
//	4       1     compression type (format.CompressionType)
//	5       8     xxHash64 of the uncompressed body, little-endian
//	13      n     compressed body
package export

import (
	"encoding/json"
	"fmt"

	"github.com/arloliu/carbonviz/compress"
	"github.com/arloliu/carbonviz/errs"
	"github.com/arloliu/carbonviz/format"
	"github.com/arloliu/carbonviz/internal/hash"
	"github.com/arloliu/carbonviz/internal/options"
	"github.com/arloliu/carbonviz/internal/pool"
)

// DefaultCompression is used when no WithCompression option is given.
const DefaultCompression = format.CompressionZstd

// Config holds encoder settings.
type Config struct {
	compression format.CompressionType
}

// Option configures Encode.
type Option = options.Option[*Config]

// WithCompression selects the body compression.
func WithCompression(ct format.CompressionType) Option {
	return options.New(func(c *Config) error {
		if _, err := compress.GetCodec(ct); err != nil {
			return err
		}
		c.compression = ct

		return nil
	})
}

// Encode marshals v as JSON and wraps it in a payload.
func Encode(v any, opts ...Option) ([]byte, error) {
	cfg := &Config{compression: DefaultCompression}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	buf := pool.GetPayload()
	defer pool.PutPayload(buf)

	if err := json.NewEncoder(buf).Encode(v); err != nil {
		return nil, fmt.Errorf("export: marshal: %w", err)
	}
	body := buf.Body()

	packed, err := codec.Compress(body)
	if err != nil {
		return nil, fmt.Errorf("export: %s compress: %w", cfg.compression, err)
	}

	h := Header{Compression: cfg.compression, Checksum: hash.Bytes(body)}
	out := h.AppendTo(make([]byte, 0, HeaderSize+len(packed)))

	return append(out, packed...), nil
}

// Inspect parses the payload header without decompressing the body.
func Inspect(data []byte) (Header, error) {
	var h Header
	if err := h.Parse(data); err != nil {
		return Header{}, err
	}

	return h, nil
}

// Decode verifies a payload and unmarshals its JSON body into v.
func Decode(data []byte, v any) error {
	h, err := Inspect(data)
	if err != nil {
		return err
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return err
	}

	body, err := codec.Decompress(data[HeaderSize:])
	if err != nil {
		return fmt.Errorf("%w: %s decompress: %w", errs.ErrInvalidPayload, h.Compression, err)
	}

	if sum := hash.Bytes(body); sum != h.Checksum {
		return fmt.Errorf("%w: got %016x, want %016x", errs.ErrChecksumMismatch, sum, h.Checksum)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}

	return nil
}
