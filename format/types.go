package format

import "strings"

type (
	CompressionType uint8
	ScaleType       uint8
	TrendlineKind   uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	ScaleLinear ScaleType = 0x1 // ScaleLinear is a linear chart axis.
	ScaleLog    ScaleType = 0x2 // ScaleLog is a logarithmic chart axis.

	TrendLinear      TrendlineKind = 0x1 // TrendLinear is y = slope*x + intercept.
	TrendExponential TrendlineKind = 0x2 // TrendExponential is y = A * e^(B*x).
	TrendLogarithmic TrendlineKind = 0x3 // TrendLogarithmic is y = A + B*ln(x).
	TrendPower       TrendlineKind = 0x4 // TrendPower is y = A * x^B.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a case-insensitive name to a CompressionType.
// The second result is false for unknown names.
func ParseCompression(name string) (CompressionType, bool) {
	switch strings.ToLower(name) {
	case "none", "":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}

func (s ScaleType) String() string {
	switch s {
	case ScaleLinear:
		return "linear"
	case ScaleLog:
		return "log"
	default:
		return "unknown"
	}
}

// ParseScale maps "linear" or "log" to a ScaleType. Empty means linear.
func ParseScale(name string) (ScaleType, bool) {
	switch strings.ToLower(name) {
	case "linear", "":
		return ScaleLinear, true
	case "log":
		return ScaleLog, true
	default:
		return 0, false
	}
}

func (k TrendlineKind) String() string {
	switch k {
	case TrendLinear:
		return "linear"
	case TrendExponential:
		return "exponential"
	case TrendLogarithmic:
		return "logarithmic"
	case TrendPower:
		return "power"
	default:
		return "unknown"
	}
}

// ParseTrendline maps a case-insensitive trendline name to a TrendlineKind.
func ParseTrendline(name string) (TrendlineKind, bool) {
	switch strings.ToLower(name) {
	case "linear", "":
		return TrendLinear, true
	case "exponential":
		return TrendExponential, true
	case "logarithmic":
		return TrendLogarithmic, true
	case "power":
		return TrendPower, true
	default:
		return 0, false
	}
}
