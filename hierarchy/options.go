package hierarchy

import (
	"errors"
	"log/slog"

	"github.com/arloliu/carbonviz/dataset"
	"github.com/arloliu/carbonviz/internal/options"
)

// Config controls Build.
type Config struct {
	Logger        *slog.Logger
	StrictValues  bool
	LeafNameField string
}

func defaultConfig() *Config {
	return &Config{
		Logger:        slog.New(slog.DiscardHandler),
		LeafNameField: dataset.FieldCompany,
	}
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithLogger sets the logger that receives leaf value anomalies at WARN and
// index collisions at DEBUG. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return options.New(func(cfg *Config) error {
		if logger == nil {
			return errors.New("hierarchy: logger must not be nil")
		}
		cfg.Logger = logger

		return nil
	})
}

// WithStrictValues makes a missing or non-numeric leaf value fail the build
// with errs.ErrInvalidLeafValue instead of becoming 0.
func WithStrictValues() Option {
	return options.NoError(func(cfg *Config) {
		cfg.StrictValues = true
	})
}

// WithLeafName selects the field leaves are named after. Records without it
// are named by their index in the input.
func WithLeafName(field string) Option {
	return options.New(func(cfg *Config) error {
		if field == "" {
			return errors.New("hierarchy: leaf name field must not be empty")
		}
		cfg.LeafNameField = field

		return nil
	})
}
