// Package hash provides the xxHash64 helpers behind group indexes, filter
// fingerprints and payload checksums.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Root is the path key of a hierarchy root. Child keys are derived from it
// with Path.
const Root uint64 = 0

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Bytes computes the xxHash64 of the given bytes.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Path derives the key of a child named value under the node keyed parent.
//
// The parent key is mixed in as 8 little-endian bytes, so equal names at
// different positions in a tree map to different keys.
func Path(parent uint64, value string) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], parent)

	d := xxhash.New()
	_, _ = d.Write(buf[:])
	_, _ = d.WriteString(value)

	return d.Sum64()
}

// Digest accumulates a fingerprint over a sequence of string fields.
// Each field is length-prefixed so ("ab","c") and ("a","bc") differ.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest returns an empty Digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// WriteField adds one field to the digest.
func (g *Digest) WriteField(s string) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(s)))
	_, _ = g.d.Write(buf[:])
	_, _ = g.d.WriteString(s)
}

// Sum64 returns the current fingerprint.
func (g *Digest) Sum64() uint64 {
	return g.d.Sum64()
}
