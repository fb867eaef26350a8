package compress

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/arloliu/carbonviz/errs"
	"github.com/arloliu/carbonviz/format"
	"github.com/stretchr/testify/require"
)

// samplePayload builds a JSON-like body shaped like an exported hierarchy.
func samplePayload(leaves int) []byte {
	var buf bytes.Buffer
	buf.WriteString(`{"kind":"root","children":[`)
	for i := range leaves {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `{"kind":"leaf","name":"Company %d","value":%d.5}`, i, i*37)
	}
	buf.WriteString(`]}`)

	return buf.Bytes()
}

var allCompressions = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func TestCodec_RoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"small":  samplePayload(3),
		"medium": samplePayload(500),
		"single": []byte("x"),
	}

	for _, ct := range allCompressions {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		for name, data := range payloads {
			t.Run(ct.String()+"/"+name, func(t *testing.T) {
				packed, err := codec.Compress(data)
				require.NoError(t, err)

				unpacked, err := codec.Decompress(packed)
				require.NoError(t, err)
				require.Equal(t, data, unpacked)
			})
		}
	}
}

func TestCodec_EmptyInput(t *testing.T) {
	for _, ct := range []format.CompressionType{format.CompressionS2, format.CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		packed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Nil(t, packed, ct.String())

		unpacked, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Nil(t, unpacked, ct.String())
	}

	unpacked, err := NewZstdCompressor().Decompress(nil)
	require.NoError(t, err)
	require.Nil(t, unpacked)
}

func TestCodec_CompressesRepetitiveJSON(t *testing.T) {
	data := samplePayload(1000)

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		packed, err := codec.Compress(data)
		require.NoError(t, err)
		require.Less(t, len(packed), len(data)/2, ct.String())
	}
}

func TestCodec_CorruptInput(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01, 0x02}

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		_, err = codec.Decompress(garbage)
		require.Error(t, err, ct.String())
	}
}

func TestLZ4Compressor_Frames(t *testing.T) {
	codec := NewLZ4Compressor()

	t.Run("incompressible input is stored raw", func(t *testing.T) {
		data := []byte{0x9c, 0x01, 0x77}
		packed, err := codec.Compress(data)
		require.NoError(t, err)
		require.Equal(t, lz4ModeRaw, packed[0])

		unpacked, err := codec.Decompress(packed)
		require.NoError(t, err)
		require.Equal(t, data, unpacked)
	})

	t.Run("block carries its decoded length", func(t *testing.T) {
		data := samplePayload(200)
		packed, err := codec.Compress(data)
		require.NoError(t, err)
		require.Equal(t, lz4ModeBlock, packed[0])

		unpacked, err := codec.Decompress(packed)
		require.NoError(t, err)
		require.Equal(t, data, unpacked)
	})

	t.Run("oversized length is rejected", func(t *testing.T) {
		frame := []byte{lz4ModeBlock, 0xff, 0xff, 0xff, 0xff, 0x7f, 0x00}
		_, err := codec.Decompress(frame)
		require.ErrorIs(t, err, errLZ4Frame)
	})
}

func TestNoOpCompressor_SharesMemory(t *testing.T) {
	data := []byte("plain json")
	codec := NewNoOpCompressor()

	packed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &packed[0])
}

func TestGetCodec_Unsupported(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0x7f))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestMeasure(t *testing.T) {
	data := samplePayload(200)

	stats, err := Measure(format.CompressionZstd, data)
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, stats.Algorithm)
	require.Equal(t, int64(len(data)), stats.OriginalSize)
	require.Positive(t, stats.CompressedSize)
	require.Less(t, stats.CompressionRatio(), 1.0)
	require.Greater(t, stats.SpaceSavings(), 0.0)

	none, err := Measure(format.CompressionNone, data)
	require.NoError(t, err)
	require.InDelta(t, 1.0, none.CompressionRatio(), 1e-12)
	require.InDelta(t, 0.0, none.SpaceSavings(), 1e-9)

	_, err = Measure(format.CompressionType(0), data)
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestCompressionStats_ZeroSize(t *testing.T) {
	var stats CompressionStats
	require.Zero(t, stats.CompressionRatio())
	require.InDelta(t, 100.0, stats.SpaceSavings(), 1e-12)
}
