package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0xff).String())
}

func TestParseCompression(t *testing.T) {
	tests := []struct {
		in   string
		want CompressionType
		ok   bool
	}{
		{"", CompressionNone, true},
		{"none", CompressionNone, true},
		{"ZSTD", CompressionZstd, true},
		{"s2", CompressionS2, true},
		{"Lz4", CompressionLZ4, true},
		{"gzip", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseCompression(tt.in)
		require.Equal(t, tt.ok, ok, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseScale(t *testing.T) {
	s, ok := ParseScale("LOG")
	require.True(t, ok)
	require.Equal(t, ScaleLog, s)
	require.Equal(t, "log", s.String())

	s, ok = ParseScale("")
	require.True(t, ok)
	require.Equal(t, ScaleLinear, s)

	_, ok = ParseScale("sqrt")
	require.False(t, ok)
	require.Equal(t, "unknown", ScaleType(9).String())
}

func TestParseTrendline(t *testing.T) {
	for _, k := range []TrendlineKind{TrendLinear, TrendExponential, TrendLogarithmic, TrendPower} {
		got, ok := ParseTrendline(k.String())
		require.True(t, ok)
		require.Equal(t, k, got)
	}

	_, ok := ParseTrendline("polynomial")
	require.False(t, ok)
	require.Equal(t, "unknown", TrendlineKind(0).String())
}
