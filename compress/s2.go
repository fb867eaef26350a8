package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// s2MaxBody bounds the decoded length an S2 block may claim.
const s2MaxBody = 64 * 1024 * 1024

// S2Compressor sits between LZ4 and Zstd: it encodes with s2.EncodeBetter,
// which suits the repetitive keys of JSON trees.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes data as one S2 block. Empty input yields nil.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.EncodeBetter(nil, data), nil
}

// Decompress decodes one S2 block, rejecting blocks that claim more than
// s2MaxBody bytes before allocating.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	size, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if size > s2MaxBody {
		return nil, fmt.Errorf("s2 decompression failed: block claims %d bytes", size)
	}

	out, err := s2.Decode(make([]byte, size), data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}
