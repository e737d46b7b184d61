package seek

// NotFound is the position returned when the target is absent.
const NotFound = -1

// Match is a found element together with its position.
type Match[T any] struct {
	Index int
	Value T
}

// Contains reports whether target occurs in s.
func Contains[T comparable](s []T, target T) bool {
	return Index(s, target) != NotFound
}

// Index returns the position of the first occurrence of target in s,
// or NotFound.
func Index[T comparable](s []T, target T) int {
	for i, v := range s {
		if v == target {
			return i
		}
	}
	return NotFound
}

// Find returns the first element of s equal to target and its position.
// The second result is false when target is absent.
func Find[T comparable](s []T, target T) (Match[T], bool) {
	if i := Index(s, target); i != NotFound {
		return Match[T]{Index: i, Value: s[i]}, true
	}
	return Match[T]{}, false
}
