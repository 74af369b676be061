package arrays

import "slices"

// normalize maps a possibly negative index onto [0, n) semantics.
// The result may still be out of range and must be checked by the caller.
func normalize(i, n int) int {
	if i < 0 {
		return n + i
	}
	return i
}

// Remove deletes the inclusive index range [from, to] from s and returns the
// shortened slice. When to is omitted only the element at from is removed.
// Negative indices count from the end of the slice. A to past the end
// truncates s at from. A from outside s or an inverted range leaves s
// unchanged.
func Remove[S ~[]E, E any](s S, from int, to ...int) S {
	n := len(s)
	start := normalize(from, n)
	end := start
	if len(to) > 0 {
		end = min(normalize(to[0], n), n-1)
	}

	if start < 0 || start >= n || start > end {
		return s
	}

	return slices.Delete(s, start, end+1)
}

// RemoveObject deletes the first element equal to v.
// The slice is returned unchanged when v is absent.
func RemoveObject[S ~[]E, E comparable](s S, v E) S {
	i := slices.Index(s, v)
	if i == -1 {
		return s
	}
	return slices.Delete(s, i, i+1)
}

// Insert places v before position index, shifting later elements right.
// Negative indices count from the end; indices past the end append.
func Insert[S ~[]E, E any](s S, index int, v E) S {
	n := len(s)
	index = normalize(index, n)
	index = max(0, min(index, n))
	return slices.Insert(s, index, v)
}

// Last returns the final element of s. The second result is false for an
// empty slice, in which case the zero value is returned.
func Last[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}
	return s[len(s)-1], true
}

// Equal reports whether a and b have the same length and equal elements at
// every index. Nil and empty slices are equal.
func Equal[S ~[]E, E comparable](a, b S) bool {
	return slices.Equal(a, b)
}

// EqualFunc is Equal for element types that are not comparable with ==.
func EqualFunc[S1 ~[]E1, S2 ~[]E2, E1, E2 any](a S1, b S2, eq func(E1, E2) bool) bool {
	return slices.EqualFunc(a, b, eq)
}

// SameLength reports whether a and b hold the same number of elements,
// regardless of their contents.
func SameLength[S ~[]E, E any](a, b S) bool {
	return len(a) == len(b)
}
