// Package errs defines the sentinel errors shared by carbonviz packages.
//
// Callers match them with errors.Is; packages wrap them with context using
// fmt.Errorf("...: %w", err).
package errs

import "errors"

// Regression errors.
var (
	// ErrInsufficientSamples is returned when a fit receives no samples.
	ErrInsufficientSamples = errors.New("insufficient samples for regression")
	// ErrIndeterminate is returned when the x values have zero variance,
	// so no best-fit line exists.
	ErrIndeterminate = errors.New("indeterminate regression: x values have zero variance")
	// ErrNonPositive is returned when a log-linearised fit receives a value <= 0.
	ErrNonPositive = errors.New("value must be positive for a log-linearised fit")
	// ErrNonFiniteSample is returned when a sample holds NaN or an infinity.
	ErrNonFiniteSample = errors.New("sample is not finite")
	// ErrUnknownTrendline is returned for an unsupported trendline kind.
	ErrUnknownTrendline = errors.New("unknown trendline kind")
)

// Hierarchy errors.
var (
	// ErrInvalidLeafValue is returned in strict mode when a record's leaf value
	// field is missing or not numeric.
	ErrInvalidLeafValue = errors.New("leaf value field is missing or not numeric")
)

// Footprint errors.
var (
	// ErrUnknownTask is returned when a reference emission factor is missing.
	ErrUnknownTask = errors.New("unknown task")
	// ErrNoTrips is returned when no reference trip distances are available.
	ErrNoTrips = errors.New("no reference trips available")
)

// Codec and payload errors.
var (
	// ErrUnsupportedCompression is returned for an unknown compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
	// ErrInvalidPayload is returned when an export payload is truncated or has a bad header.
	ErrInvalidPayload = errors.New("invalid export payload")
	// ErrChecksumMismatch is returned when an export payload fails checksum verification.
	ErrChecksumMismatch = errors.New("export payload checksum mismatch")
)
