// Package clone makes deep, independent copies of plain data such as decoded
// JSON documents, configuration trees and request payloads.
//
// Maps, slices, pointers, interfaces and exported struct fields are copied
// recursively, so mutating any part of the clone never affects the original:
//
//	orig := map[string]any{"a": []any{1, map[string]any{"b": 2}}}
//	cp, err := clone.Map(orig)
//
// Values that cannot be copied meaningfully are rejected up front instead of
// being shared silently:
//
//   - non-nil functions, channels and unsafe pointers return ErrUnsupportedType;
//   - arrays whose elements hold references return ErrUnsupportedType;
//   - a pointer, map or slice reachable from itself returns ErrCycle.
//
// Unexported struct fields are not copied and stay zero in the clone.
// time.Time values are copied as values. Types implementing
// deepcopy.Interface from github.com/mohae/deepcopy control their own copy.
package clone
