package clone

import (
	"fmt"
	"reflect"

	"github.com/mohae/deepcopy"
)

// Of returns a deep copy of v.
func Of[T any](v T) (T, error) {
	var zero T

	if err := check(reflect.ValueOf(v)); err != nil {
		return zero, err
	}

	copied := deepcopy.Copy(v)
	if copied == nil {
		return zero, nil
	}
	return copied.(T), nil
}

// MustOf is like Of but panics when v cannot be copied.
func MustOf[T any](v T) T {
	c, err := Of(v)
	if err != nil {
		panic(fmt.Sprintf("clone: %v", err))
	}
	return c
}

// Value returns a deep copy of an arbitrary value.
func Value(v any) (any, error) {
	return Of(v)
}

// Map returns a deep copy of a keyed structure. A nil map yields an empty,
// non-nil map.
func Map(m map[string]any) (map[string]any, error) {
	if m == nil {
		return map[string]any{}, nil
	}
	return Of(m)
}
