package locale

import (
	"context"
	"log/slog"

	"github.com/rubenmartin/motech/pkg/logger"
)

type contextKey struct{}

// WithContext stores l in ctx.
func WithContext(ctx context.Context, l Locale) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the locale stored in ctx, if any.
func FromContext(ctx context.Context) (Locale, bool) {
	if ctx == nil {
		return Locale{}, false
	}
	l, ok := ctx.Value(contextKey{}).(Locale)
	return l, ok
}

// LoggerExtractor tags log records with the locale found in their context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		l, ok := FromContext(ctx)
		if !ok || l.IsZero() {
			return slog.Attr{}, false
		}
		return logger.Locale(l.String()), true
	}
}
