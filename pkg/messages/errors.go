package messages

import "errors"

var (
	ErrNilAdapter       = errors.New("messages: adapter is nil")
	ErrNoBundles        = errors.New("messages: no bundles found")
	ErrNotDirectory     = errors.New("messages: path is not a directory")
	ErrLoadCancelled    = errors.New("messages: loading cancelled")
	ErrReadBundle       = errors.New("messages: failed to read bundle")
	ErrParseBundle      = errors.New("messages: failed to parse bundle")
	ErrDuplicateBundle  = errors.New("messages: duplicate bundle for locale")
	ErrUnsupportedValue = errors.New("messages: unsupported message value")
	ErrMarshalMessages  = errors.New("messages: failed to marshal messages")
)
