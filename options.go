package pinyin

import "log/slog"

// Option configures a Normalizer.
type Option func(*config)

type config struct {
	numericTones bool
	logger       *slog.Logger
}

func defaultConfig() config {
	return config{
		logger: slog.Default(),
	}
}

// WithNumericTones emits tones as trailing digits 1-4 instead of diacritics.
// The neutral tone stays unmarked in either notation.
func WithNumericTones() Option {
	return func(c *config) {
		c.numericTones = true
	}
}

// WithLogger sets the logger (default: slog.Default()). Spans that do not
// resolve are logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
