package export

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/carbonviz/dataset"
	"github.com/arloliu/carbonviz/errs"
	"github.com/arloliu/carbonviz/format"
	"github.com/arloliu/carbonviz/hierarchy"
	"github.com/arloliu/carbonviz/regression"
)

var allCompressions = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func sampleTree(t *testing.T) *hierarchy.Node {
	t.Helper()

	rows := []dataset.Record{
		dataset.Row{"company": dataset.String("A"), "sector": dataset.String("Tech"), "emissions": dataset.Number(10)},
		dataset.Row{"company": dataset.String("B"), "sector": dataset.String("Tech"), "emissions": dataset.Number(20)},
		dataset.Row{"company": dataset.String("C"), "sector": dataset.String("Retail"), "emissions": dataset.Number(5)},
	}

	root, err := hierarchy.Build(rows, []string{"sector"}, "emissions")
	require.NoError(t, err)

	return root
}

func TestEncodeDecode_Tree(t *testing.T) {
	tree := sampleTree(t)

	for _, ct := range allCompressions {
		t.Run(ct.String(), func(t *testing.T) {
			payload, err := Encode(tree, WithCompression(ct))
			require.NoError(t, err)

			h, err := Inspect(payload)
			require.NoError(t, err)
			require.Equal(t, ct, h.Compression)
			require.Equal(t, len(payload)-HeaderSize, h.BodySize)

			var got hierarchy.Node
			require.NoError(t, Decode(payload, &got))
			require.Equal(t, hierarchy.Sum(tree), hierarchy.Sum(&got))
			require.Equal(t, hierarchy.CountLeaves(tree), hierarchy.CountLeaves(&got))
			require.Len(t, got.Children, 2)
		})
	}
}

func TestEncode_DefaultCompression(t *testing.T) {
	payload, err := Encode([]regression.Sample{{X: 1, Y: 2}})
	require.NoError(t, err)
	require.Equal(t, Magic, string(payload[:4]))
	require.Equal(t, byte(DefaultCompression), payload[4])

	var got []regression.Sample
	require.NoError(t, Decode(payload, &got))
	require.Equal(t, []regression.Sample{{X: 1, Y: 2}}, got)
}

func TestEncode_Errors(t *testing.T) {
	_, err := Encode(1, WithCompression(format.CompressionType(0x7f)))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)

	_, err = Encode(make(chan int))
	require.Error(t, err)
}

func TestDecode_Errors(t *testing.T) {
	payload, err := Encode(map[string]int{"a": 1}, WithCompression(format.CompressionNone))
	require.NoError(t, err)

	var v map[string]int

	tests := []struct {
		name   string
		mutate func([]byte) []byte
		target error
	}{
		{"truncated", func(b []byte) []byte { return b[:HeaderSize-1] }, errs.ErrInvalidPayload},
		{"bad magic", func(b []byte) []byte { b[0] = 'X'; return b }, errs.ErrInvalidPayload},
		{"unknown compression", func(b []byte) []byte { b[4] = 0x7f; return b }, errs.ErrUnsupportedCompression},
		{"flipped body", func(b []byte) []byte { b[len(b)-2] ^= 0x01; return b }, errs.ErrChecksumMismatch},
		{"flipped checksum", func(b []byte) []byte { b[5] ^= 0xff; return b }, errs.ErrChecksumMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.mutate(append([]byte(nil), payload...))
			require.ErrorIs(t, Decode(data, &v), tt.target)
		})
	}
}

func TestDecode_CorruptCompressedBody(t *testing.T) {
	payload, err := Encode(map[string]int{"a": 1}, WithCompression(format.CompressionZstd))
	require.NoError(t, err)

	data := append([]byte(nil), payload[:HeaderSize]...)
	data = append(data, 0xde, 0xad, 0xbe, 0xef)

	var v map[string]int
	require.ErrorIs(t, Decode(data, &v), errs.ErrInvalidPayload)
}

func BenchmarkEncode(b *testing.B) {
	samples := make([]regression.Sample, 1000)
	for i := range samples {
		samples[i] = regression.Sample{X: float64(i), Y: float64(i) * 1.5}
	}

	for _, ct := range allCompressions {
		b.Run(ct.String(), func(b *testing.B) {
			for b.Loop() {
				_, _ = Encode(samples, WithCompression(ct))
			}
		})
	}
}

func TestHeader_ParseAppend(t *testing.T) {
	h := Header{Compression: format.CompressionLZ4, Checksum: 0x0102030405060708}

	buf := h.AppendTo(nil)
	require.Len(t, buf, HeaderSize)
	require.Equal(t, []byte{'C', 'V', 'Z', '1', 0x04, 0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, buf)

	var got Header
	require.NoError(t, got.Parse(append(buf, 0xaa, 0xbb)))
	require.Equal(t, format.CompressionLZ4, got.Compression)
	require.Equal(t, h.Checksum, got.Checksum)
	require.Equal(t, 2, got.BodySize)
}
