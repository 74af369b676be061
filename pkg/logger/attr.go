package logger

import (
	"log/slog"
	"strconv"
)

// Errors groups non-nil errors under "errors". It returns an empty Attr when
// every error is nil.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error", or returns an empty Attr for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Locale records a locale identifier under "locale".
func Locale(id string) slog.Attr {
	return slog.String("locale", id)
}

// Key records a message key under "key".
func Key(key string) slog.Attr {
	return slog.String("key", key)
}

// Path records a file or bundle path under "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}
