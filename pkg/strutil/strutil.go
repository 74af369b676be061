package strutil

import (
	"strings"
	"unicode/utf8"
)

// StartsWith reports whether s begins with prefix.
func StartsWith(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

// EndsWith reports whether s ends with suffix.
func EndsWith(s, suffix string) bool {
	return strings.HasSuffix(s, suffix)
}

// Insert returns s with text inserted before the rune at index.
// An index <= 0 prepends and an index past the end appends.
func Insert(s string, index int, text string) string {
	if index <= 0 {
		return text + s
	}
	if index >= utf8.RuneCountInString(s) {
		return s + text
	}

	// Convert the rune index into a byte offset.
	offset := 0
	for i := 0; i < index; i++ {
		_, size := utf8.DecodeRuneInString(s[offset:])
		offset += size
	}

	var b strings.Builder
	b.Grow(len(s) + len(text))
	b.WriteString(s[:offset])
	b.WriteString(text)
	b.WriteString(s[offset:])
	return b.String()
}

// IsBlank reports whether s is empty or consists only of Unicode whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsBlankPtr is IsBlank for optional values; a nil pointer is blank.
func IsBlankPtr(s *string) bool {
	return s == nil || IsBlank(*s)
}
