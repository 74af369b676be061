// Package config loads configuration structs from environment variables.
//
// Parsing is delegated to github.com/caarlos0/env/v11 and optional .env files
// are read with github.com/joho/godotenv. Fields are described with env tags:
//
//	type Config struct {
//		Dir           string `env:"MESSAGES_DIR,required"`
//		DefaultLocale string `env:"MESSAGES_DEFAULT_LOCALE" envDefault:"en"`
//	}
//
// Load is meant for process-wide settings: it reads the default .env file
// once and caches each configuration type after the first successful parse.
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// LoadWithOptions skips the cache and accepts a prefix, extra .env files or
// an explicit environment map, which makes it suitable for loading several
// instances of the same struct and for tests:
//
//	err := config.LoadWithOptions(&cfg,
//		config.WithPrefix("ADMIN_"),
//		config.WithEnvFiles("admin.env"),
//	)
//
// Errors wrap ErrParsingConfig or ErrReadingEnvFile and can be checked with
// errors.Is.
package config
