// Package arrays provides small generic helpers for editing and comparing
// slices by position or by value.
//
// Every helper is a free function over a native slice type. Functions that
// change the contents return the updated slice, in the same way as
// slices.Delete and slices.Insert, so the call site reassigns it:
//
//	ids = arrays.Remove(ids, 1, 3)   // drop ids[1], ids[2], ids[3]
//	ids = arrays.RemoveObject(ids, 42)
//	ids = arrays.Insert(ids, 0, 7)
//
//	last, ok := arrays.Last(ids)
//
// # Indices
//
// Negative indices count from the end of the slice, so -1 addresses the last
// element. Remove never panics: a range that falls outside the slice, or whose
// start lies after its end, leaves the slice unchanged. Insert clamps its index
// into [0, len(s)].
//
// # Equality
//
// Equal compares length and every element. SameLength only compares lengths
// and exists for callers that only need to know whether two selections have
// the same size.
//
// # Thread Safety
//
// The package holds no state. The mutating helpers write into the backing
// array of their argument, so concurrent callers must not share a slice.
package arrays
