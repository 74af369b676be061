package clone

import "errors"

var (
	// ErrUnsupportedType is returned for values that cannot be deep-copied.
	ErrUnsupportedType = errors.New("clone: unsupported type")

	// ErrCycle is returned when the value graph references itself.
	ErrCycle = errors.New("clone: cyclic value")
)
