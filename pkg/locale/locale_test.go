package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rubenmartin/motech/pkg/locale"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected locale.Locale
		str      string
	}{
		{
			name:     "language only",
			input:    "en",
			expected: locale.Locale{Language: "en"},
			str:      "en",
		},
		{
			name:     "language and country with hyphen",
			input:    "en-US",
			expected: locale.Locale{Language: "en", Country: "US"},
			str:      "en_US",
		},
		{
			name:     "all three parts with hyphens",
			input:    "en-US-POSIX",
			expected: locale.Locale{Language: "en", Country: "US", Variant: "POSIX"},
			str:      "en_US_POSIX",
		},
		{
			name:     "underscores",
			input:    "pl_PL",
			expected: locale.Locale{Language: "pl", Country: "PL"},
			str:      "pl_PL",
		},
		{
			name:     "mixed separators",
			input:    "en_US-POSIX",
			expected: locale.Locale{Language: "en", Country: "US", Variant: "POSIX"},
			str:      "en_US_POSIX",
		},
		{
			name:     "parts beyond the variant are dropped",
			input:    "ja_JP_JP_x",
			expected: locale.Locale{Language: "ja", Country: "JP", Variant: "JP"},
			str:      "ja_JP_JP",
		},
		{
			name:     "empty country drops to language",
			input:    "en__POSIX",
			expected: locale.Locale{Language: "en", Variant: "POSIX"},
			str:      "en",
		},
		{
			name:     "trailing separator",
			input:    "en-",
			expected: locale.Locale{Language: "en"},
			str:      "en",
		},
		{
			name:     "whitespace is kept verbatim",
			input:    " de-AT ",
			expected: locale.Locale{Language: " de", Country: "AT "},
			str:      " de_AT ",
		},
		{
			name:     "empty input",
			input:    "",
			expected: locale.Locale{},
			str:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := locale.Parse(tt.input)
			assert.Equal(t, tt.expected, l)
			assert.Equal(t, tt.str, l.String())
		})
	}
}

func TestRenderers(t *testing.T) {
	t.Parallel()

	full := locale.Parse("en-US-POSIX")
	assert.Equal(t, "en_US_POSIX", full.FullName())
	assert.Equal(t, "en_US", full.WithoutVariant())

	noVariant := locale.Parse("en-US")
	assert.Equal(t, "en_US", noVariant.FullName())
	assert.Equal(t, "en_US", noVariant.WithoutVariant())

	lang := locale.Parse("en")
	assert.Equal(t, "en", lang.FullName())
	assert.Equal(t, "en", lang.WithoutVariant())
}

func TestIsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, locale.Locale{}.IsZero())
	assert.True(t, locale.Parse("").IsZero())
	assert.False(t, locale.Parse(" ").IsZero())
	assert.False(t, locale.Parse("en").IsZero())
}

func TestCanonicalAndEqual(t *testing.T) {
	t.Parallel()

	l := locale.Parse("EN-us-POSIX")
	assert.Equal(t, locale.Locale{Language: "en", Country: "US", Variant: "POSIX"}, l.Canonical())
	assert.True(t, l.Equal(locale.Parse("en_US_POSIX")))
	assert.False(t, l.Equal(locale.Parse("en_US")))
}

func TestFallbacks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected []string
	}{
		{input: "en_US_POSIX", expected: []string{"en_US_POSIX", "en_US", "en"}},
		{input: "en_US", expected: []string{"en_US", "en"}},
		{input: "en", expected: []string{"en"}},
		{input: "en__POSIX", expected: []string{"en"}},
		{input: "", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			var got []string
			for _, l := range locale.Parse(tt.input).Fallbacks() {
				got = append(got, l.String())
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}
