package locale

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength caps the header size we are willing to parse.
const maxAcceptLanguageLength = 4096

type weighted struct {
	locale Locale
	q      float64
}

// ParseAcceptLanguage returns the locales listed in an Accept-Language header
// ordered by quality, highest first. Entries with equal quality keep header
// order. Wildcards and entries with q=0 are dropped; invalid q values count
// as 1. Oversized headers are truncated.
func ParseAcceptLanguage(header string) []Locale {
	if header == "" {
		return nil
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var entries []weighted
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		tagAndQ := strings.Split(part, ";")
		tag := strings.TrimSpace(tagAndQ[0])
		if tag == "" || tag == "*" {
			continue
		}

		q := 1.0
		if len(tagAndQ) > 1 {
			qPart := strings.TrimSpace(tagAndQ[1])
			if strings.HasPrefix(qPart, "q=") {
				if v, err := strconv.ParseFloat(qPart[2:], 64); err == nil && v >= 0 && v <= 1 {
					q = v
				}
			}
		}
		if q == 0 {
			continue
		}

		entries = append(entries, weighted{locale: Parse(tag).Canonical(), q: q})
	}

	slices.SortStableFunc(entries, func(a, b weighted) int {
		return cmp.Compare(b.q, a.q)
	})

	locales := make([]Locale, len(entries))
	for i, e := range entries {
		locales[i] = e.locale
	}
	return locales
}

// Negotiate chooses a supported locale for an Accept-Language header.
// Exact matches are tried first across all preferences, then base-language
// matches (en_US falls back to a supported en). def is returned when nothing
// fits.
func Negotiate(header string, supported []Locale, def Locale) Locale {
	if header == "" || len(supported) == 0 {
		return def
	}

	preferred := ParseAcceptLanguage(header)

	for _, p := range preferred {
		if i := slices.IndexFunc(supported, p.Equal); i >= 0 {
			return supported[i]
		}
	}

	for _, p := range preferred {
		base := Locale{Language: p.Language}
		if i := slices.IndexFunc(supported, base.Equal); i >= 0 {
			return supported[i]
		}
	}

	return def
}
