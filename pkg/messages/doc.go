// Package messages serves localized message bundles and renders them with
// positional {N} or named {name} placeholders.
//
// Bundles follow resource bundle naming: "<base>.<ext>" holds the root
// messages used when no locale matches, and "<base>_<locale>.<ext>" holds one
// locale, for example:
//
//	messages.properties
//	messages_en.properties
//	messages_pl_PL.yaml
//	messages_de.toml
//
// Supported formats are Java .properties, YAML, TOML and JSON. Nested YAML,
// TOML and JSON objects are flattened into dot-separated keys.
//
// # Lookup
//
// Catalog.Get resolves a key through the requested locale's fallback chain
// (en_US_POSIX, en_US, en), then the default locale's chain, then the root
// bundle:
//
//	cat, err := messages.New(ctx, messages.NewFSAdapter(bundles, "i18n", "messages"),
//		messages.WithDefaultLocale(locale.Parse("en")),
//	)
//	cat.Get(ctx, locale.Parse("pl-PL"), "greeting", "Ann") // "Cześć Ann"
//
// Missing keys render as the key itself unless WithFallbackToKey(false) is
// set, and can be logged with WithMissingLogging.
//
// # Concurrency
//
// A Catalog is safe for concurrent use. Reload swaps the bundles atomically
// with respect to readers.
package messages
