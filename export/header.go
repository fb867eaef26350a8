package export

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/carbonviz/errs"
	"github.com/arloliu/carbonviz/format"
)

const (
	// Magic opens every payload.
	Magic = "CVZ1"
	// HeaderSize is the fixed payload header length in bytes.
	HeaderSize = len(Magic) + 1 + 8

	compressionOffset = len(Magic)
	checksumOffset    = compressionOffset + 1
)

// Header is the fixed-size section at the start of a payload.
type Header struct {
	// Compression is the codec of the body. byte offset 4
	Compression format.CompressionType
	// Checksum is the xxHash64 of the uncompressed body. byte offset 5-12
	Checksum uint64
	// BodySize is the length of the compressed body following the header.
	// It is derived from the payload length and not stored.
	BodySize int
}

// Parse parses the header from the start of a payload.
//
// Returns:
//   - error: errs.ErrInvalidPayload if data is shorter than HeaderSize or
//     does not start with Magic
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: %d bytes is shorter than the %d-byte header", errs.ErrInvalidPayload, len(data), HeaderSize)
	}
	if string(data[:compressionOffset]) != Magic {
		return fmt.Errorf("%w: bad magic %q", errs.ErrInvalidPayload, data[:compressionOffset])
	}

	h.Compression = format.CompressionType(data[compressionOffset])
	h.Checksum = binary.LittleEndian.Uint64(data[checksumOffset:HeaderSize])
	h.BodySize = len(data) - HeaderSize

	return nil
}

// AppendTo appends the serialized header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	dst = append(dst, Magic...)
	dst = append(dst, byte(h.Compression))

	return binary.LittleEndian.AppendUint64(dst, h.Checksum)
}
