package seek

import (
	"cmp"
	"slices"

	seekerrors "github.com/tamirms/seek/errors"
)

// BinarySearch returns the position of target in s, which must be sorted in
// ascending order, or NotFound. The sort order is not checked; on unsorted
// input the result is unspecified. Use BinarySearchChecked to validate.
//
// When target occurs more than once, any one of its positions may be returned.
// Elements are compared with cmp.Compare, so NaN sorts before all other floats.
func BinarySearch[T cmp.Ordered](s []T, target T) int {
	return BinarySearchFunc(s, target, cmp.Compare[T])
}

// BinarySearchFunc is BinarySearch with a caller-supplied comparison.
// cmp(e, target) must return a negative number when e sorts before target,
// zero when they are equal, and a positive number when e sorts after target,
// matching the convention of slices.BinarySearchFunc.
func BinarySearchFunc[S ~[]E, E, T any](s S, target T, cmp func(E, T) int) int {
	lo, hi := 0, len(s)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1) // avoid overflow
		switch c := cmp(s[mid], target); {
		case c == 0:
			return mid
		case c > 0:
			hi = mid - 1
		default:
			lo = mid + 1
		}
	}
	return NotFound
}

// BinarySearchChecked verifies that s is sorted in ascending order before
// searching it, returning errors.ErrUnsortedInput otherwise. The check is
// O(n), which defeats the point of binary search on hot paths.
func BinarySearchChecked[T cmp.Ordered](s []T, target T) (int, error) {
	if !slices.IsSorted(s) {
		return NotFound, seekerrors.ErrUnsortedInput
	}
	return BinarySearch(s, target), nil
}
