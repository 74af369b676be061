package locale

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
)

// Tag converts the locale into a BCP 47 language tag.
// Variants that are not valid BCP 47 subtags, such as the JP in ja_JP_JP,
// produce ErrInvalidTag. x/text rewrites some registered variants into
// Unicode extensions, so en_US_POSIX becomes en-US-u-va-posix.
func (l Locale) Tag() (language.Tag, error) {
	if l.Language == "" {
		return language.Und, ErrEmptyLocale
	}

	parts := []string{l.Language}
	if l.Country != "" {
		parts = append(parts, l.Country)
	}
	if l.Variant != "" {
		parts = append(parts, strings.Split(l.Variant, Separator)...)
	}

	tag, err := language.Parse(strings.Join(parts, "-"))
	if err != nil {
		return language.Und, errors.Join(ErrInvalidTag, err)
	}
	return tag, nil
}

// FromTag builds a locale from a BCP 47 tag. Only explicitly stated regions
// are kept; x/text's guessed regions are ignored. Variants, including one
// carried in the "va" Unicode extension, are upper-cased the way Java
// locales spell them.
func FromTag(tag language.Tag) Locale {
	var l Locale

	if base, conf := tag.Base(); conf == language.Exact {
		l.Language = base.String()
	}
	if region, conf := tag.Region(); conf == language.Exact {
		l.Country = region.String()
	}

	var vs []string
	for _, v := range tag.Variants() {
		vs = append(vs, strings.ToUpper(v.String()))
	}
	if va := tag.TypeForKey("va"); va != "" {
		vs = append(vs, strings.ToUpper(va))
	}
	l.Variant = strings.Join(vs, Separator)

	return l
}

// Match picks the supported locale that best serves the preferred
// identifiers, using the x/text language matcher. Supported locales that are
// not valid tags are skipped, as are unparsable preferences. The second
// result is false when no supported locale shares a language with any
// preference; the matcher's default is never reported as a match.
func Match(supported []Locale, preferred ...string) (Locale, bool) {
	tags := make([]language.Tag, 0, len(supported))
	index := make([]int, 0, len(supported))
	for i, l := range supported {
		tag, err := l.Tag()
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		index = append(index, i)
	}
	if len(tags) == 0 {
		return Locale{}, false
	}

	want := make([]language.Tag, 0, len(preferred))
	bases := make(map[language.Base]struct{}, len(preferred))
	for _, p := range preferred {
		tag, err := Parse(p).Tag()
		if err != nil {
			continue
		}
		want = append(want, tag)
		base, _ := tag.Base()
		bases[base] = struct{}{}
	}
	if len(want) == 0 {
		return Locale{}, false
	}

	_, i, conf := language.NewMatcher(tags).Match(want...)
	if conf == language.No {
		return Locale{}, false
	}
	if base, _ := tags[i].Base(); !hasBase(bases, base) {
		return Locale{}, false
	}
	return supported[index[i]], true
}

func hasBase(bases map[language.Base]struct{}, base language.Base) bool {
	_, ok := bases[base]
	return ok
}
