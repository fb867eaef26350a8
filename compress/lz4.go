package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// LZ4 frames start with a mode byte. Blocks that do not shrink are stored
// raw; compressed blocks carry their decoded length as a uvarint so the
// decoder can allocate exactly once.
const (
	lz4ModeRaw   byte = 0
	lz4ModeBlock byte = 1

	// lz4MaxBody bounds the decoded length accepted from a frame.
	lz4MaxBody = 64 * 1024 * 1024
)

var errLZ4Frame = errors.New("lz4: malformed frame")

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor favors speed over ratio. Its output is a small frame around
// a raw LZ4 block.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress frames data as an LZ4 block, or raw when LZ4 cannot shrink it.
// Empty input yields nil.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	prefix := 1 + binary.MaxVarintLen64
	dst := make([]byte, prefix+lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	n, err := lc.CompressBlock(data, dst[prefix:])
	lz4CompressorPool.Put(lc)
	if err != nil {
		return nil, err
	}

	if n == 0 || n >= len(data) {
		out := make([]byte, 0, 1+len(data))
		out = append(out, lz4ModeRaw)

		return append(out, data...), nil
	}

	head := binary.AppendUvarint([]byte{lz4ModeBlock}, uint64(len(data)))
	start := prefix - len(head)
	copy(dst[start:], head)

	return dst[start : prefix+n], nil
}

// Decompress reverses Compress.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	switch data[0] {
	case lz4ModeRaw:
		out := make([]byte, len(data)-1)
		copy(out, data[1:])

		return out, nil
	case lz4ModeBlock:
		size, k := binary.Uvarint(data[1:])
		if k <= 0 || size == 0 || size > lz4MaxBody {
			return nil, errLZ4Frame
		}

		out := make([]byte, size)
		n, err := lz4.UncompressBlock(data[1+k:], out)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompression failed: %w", err)
		}
		if uint64(n) != size {
			return nil, fmt.Errorf("%w: decoded %d bytes, header says %d", errLZ4Frame, n, size)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: unknown mode %#x", errLZ4Frame, data[0])
	}
}
