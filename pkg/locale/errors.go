package locale

import "errors"

var (
	// ErrInvalidTag is returned when a locale cannot be expressed as a BCP 47 tag.
	ErrInvalidTag = errors.New("invalid language tag")

	// ErrEmptyLocale is returned when converting a locale without a language.
	ErrEmptyLocale = errors.New("locale has no language")
)
