package messages

import (
	"log/slog"

	"github.com/rubenmartin/motech/pkg/locale"
	"github.com/rubenmartin/motech/pkg/logger"
)

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLocale sets the locale consulted after the requested one.
// A zero locale is ignored.
func WithDefaultLocale(l locale.Locale) Option {
	return func(c *Catalog) {
		if !l.IsZero() {
			c.defaultLocale = l.Canonical()
		}
	}
}

// WithFallbackToKey controls whether a missing message renders as its key.
// Default is true; when disabled a missing message renders as "".
func WithFallbackToKey(fallback bool) Option {
	return func(c *Catalog) {
		c.fallbackToKey = fallback
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(log *slog.Logger) Option {
	return func(c *Catalog) {
		if log != nil {
			c.logger = log
		}
	}
}

// WithMissingLogging logs a warning for every missing message.
func WithMissingLogging(enabled bool) Option {
	return func(c *Catalog) {
		c.logMissing = enabled
	}
}

// WithNoLogging disables all logging.
func WithNoLogging() Option {
	return func(c *Catalog) {
		c.logger = logger.Discard()
		c.logMissing = false
	}
}
