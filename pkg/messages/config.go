package messages

import (
	"context"
	"log/slog"

	"github.com/rubenmartin/motech/pkg/config"
	"github.com/rubenmartin/motech/pkg/locale"
)

// Config describes a directory-backed catalog.
type Config struct {
	Dir           string `env:"MESSAGES_DIR,required"`
	BaseName      string `env:"MESSAGES_BASE_NAME" envDefault:"messages"`
	DefaultLocale string `env:"MESSAGES_DEFAULT_LOCALE" envDefault:"en"`
	FallbackToKey bool   `env:"MESSAGES_FALLBACK_TO_KEY" envDefault:"true"`
	LogMissing    bool   `env:"MESSAGES_LOG_MISSING" envDefault:"false"`
}

// LoadConfig reads Config from the environment. Options are passed to
// config.LoadWithOptions.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	if err := config.LoadWithOptions(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig builds a Catalog over the bundles in cfg.Dir.
func NewFromConfig(ctx context.Context, cfg Config, log *slog.Logger) (*Catalog, error) {
	adapter, err := NewDirectoryAdapter(cfg.Dir, cfg.BaseName)
	if err != nil {
		return nil, err
	}

	return New(ctx, adapter,
		WithDefaultLocale(locale.Parse(cfg.DefaultLocale)),
		WithFallbackToKey(cfg.FallbackToKey),
		WithLogger(log),
		WithMissingLogging(cfg.LogMissing),
	)
}
