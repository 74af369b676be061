// Package locale parses Java-style locale identifiers such as "en", "en_US" or
// "en_US_POSIX" and renders them back in the same underscore form used by
// resource bundle file names.
//
// Parse accepts hyphens and underscores interchangeably and never fails:
//
//	l := locale.Parse("en-US-POSIX")
//	l.Language        // "en"
//	l.Country         // "US"
//	l.Variant         // "POSIX"
//	l.String()        // "en_US_POSIX"
//	l.WithoutVariant() // "en_US"
//
// Malformed input simply yields empty Country or Variant fields. Callers that
// need BCP 47 validation can convert with Tag, which goes through
// golang.org/x/text/language.
//
// # Negotiation
//
// ParseAcceptLanguage and Negotiate pick a locale from an HTTP
// Accept-Language header, and Match does the same with the x/text matcher for
// callers that want its distance-based matching. Fallbacks returns the lookup
// chain used by message catalogs (en_US_POSIX, en_US, en).
//
// # Context
//
// WithContext and FromContext carry the active locale through a request, and
// LoggerExtractor exposes it to loggers built with pkg/logger.
package locale
