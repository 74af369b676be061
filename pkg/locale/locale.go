package locale

import "strings"

// Separator joins locale parts in rendered identifiers.
const Separator = "_"

// Locale is a language with optional country and variant, e.g. en_US_POSIX.
// Empty fields are absent.
type Locale struct {
	Language string
	Country  string
	Variant  string
}

// Parse replaces every "-" with "_" and splits the identifier into language,
// country and variant. Parts beyond the third are dropped, so "ja_JP_JP_x"
// parses as ja_JP_JP. The input is taken verbatim: no trimming and no
// validation.
func Parse(tag string) Locale {
	if tag == "" {
		return Locale{}
	}

	parts := strings.Split(strings.ReplaceAll(tag, "-", Separator), Separator)

	l := Locale{Language: parts[0]}
	if len(parts) > 1 {
		l.Country = parts[1]
	}
	if len(parts) > 2 {
		l.Variant = parts[2]
	}
	return l
}

// IsZero reports whether no part of the locale is set.
func (l Locale) IsZero() bool {
	return l.Language == "" && l.Country == "" && l.Variant == ""
}

// WithoutVariant renders language_country, or just the language when the
// country is absent.
func (l Locale) WithoutVariant() string {
	if l.Country == "" {
		return l.Language
	}
	return l.Language + Separator + l.Country
}

// FullName renders language_country_variant. Without a variant it is the
// same as WithoutVariant.
func (l Locale) FullName() string {
	if l.Variant == "" {
		return l.WithoutVariant()
	}
	return l.Language + Separator + l.Country + Separator + l.Variant
}

// String renders the most specific form whose parts are all present:
// language_country_variant, language_country, or the language alone.
func (l Locale) String() string {
	switch {
	case l.Language != "" && l.Country != "" && l.Variant != "":
		return l.FullName()
	case l.Language != "" && l.Country != "":
		return l.WithoutVariant()
	default:
		return l.Language
	}
}

// Canonical lower-cases the language and upper-cases the country.
// The variant is kept as is.
func (l Locale) Canonical() Locale {
	return Locale{
		Language: strings.ToLower(l.Language),
		Country:  strings.ToUpper(l.Country),
		Variant:  l.Variant,
	}
}

// Equal compares two locales after canonicalization.
func (l Locale) Equal(other Locale) bool {
	return l.Canonical() == other.Canonical()
}

// Fallbacks returns the lookup chain from the most to the least specific
// locale, e.g. [en_US_POSIX en_US en]. A locale without a language has no
// fallbacks.
func (l Locale) Fallbacks() []Locale {
	if l.Language == "" {
		return nil
	}

	chain := make([]Locale, 0, 3)
	if l.Country != "" && l.Variant != "" {
		chain = append(chain, l)
	}
	if l.Country != "" {
		chain = append(chain, Locale{Language: l.Language, Country: l.Country})
	}
	return append(chain, Locale{Language: l.Language})
}
