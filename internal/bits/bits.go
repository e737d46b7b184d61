// Package bits provides low-level bit manipulation primitives.
package bits

import "math/bits"

// Reduce maps a 64-bit hash uniformly to [0, n).
// Uses the "fastrange" technique: multiply and take the high word, which
// avoids both the modulo and its bias. n <= 0 yields 0.
func Reduce(hash uint64, n int) int {
	if n <= 0 {
		return 0
	}
	hi, _ := bits.Mul64(hash, uint64(n))
	return int(hi)
}

// NextPow2 returns the smallest power of two >= n, and 1 for n <= 1.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len64(uint64(n-1))
}
