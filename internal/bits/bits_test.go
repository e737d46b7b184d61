package bits

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"testing"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

// TestReduceMonotonicity verifies that for a fixed n, h1 < h2 implies
// Reduce(h1,n) <= Reduce(h2,n). Bucket order follows hash order.
func TestReduceMonotonicity(t *testing.T) {
	rng := newTestRNG(t)
	const iterations = 10000

	for i := 0; i < iterations; i++ {
		n := int(rng.Uint32N(math.MaxUint32)) + 1
		h1 := rng.Uint64()
		h2 := rng.Uint64()
		if h1 > h2 {
			h1, h2 = h2, h1
		}

		r1 := Reduce(h1, n)
		r2 := Reduce(h2, n)
		if r1 > r2 {
			t.Fatalf("iter %d: Reduce(0x%X, %d)=%d > Reduce(0x%X, %d)=%d",
				i, h1, n, r1, h2, n, r2)
		}
	}
}

func TestReduceRange(t *testing.T) {
	rng := newTestRNG(t)
	const iterations = 10000

	for i := 0; i < iterations; i++ {
		n := int(rng.Uint32N(1<<20)) + 1
		h := rng.Uint64()
		if got := Reduce(h, n); got < 0 || got >= n {
			t.Fatalf("iter %d: Reduce(0x%X, %d)=%d out of [0, %d)", i, h, n, got, n)
		}
	}
}

func TestReduceEdgeCases(t *testing.T) {
	for _, n := range []int{0, -1, math.MinInt} {
		if got := Reduce(math.MaxUint64, n); got != 0 {
			t.Errorf("Reduce(MaxUint64, %d) = %d, want 0", n, got)
		}
	}
	for _, h := range []uint64{0, 1, math.MaxUint64, 0xDEADBEEF} {
		if got := Reduce(h, 1); got != 0 {
			t.Errorf("Reduce(0x%X, 1) = %d, want 0", h, got)
		}
	}
	// h=0 maps to the first bucket, h=MaxUint64 to the last.
	for n := 2; n <= 100; n++ {
		if got := Reduce(0, n); got != 0 {
			t.Errorf("Reduce(0, %d) = %d, want 0", n, got)
		}
		if got := Reduce(math.MaxUint64, n); got != n-1 {
			t.Errorf("Reduce(MaxUint64, %d) = %d, want %d", n, got, n-1)
		}
	}
}

func TestNextPow2(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{-5, 1}, {0, 1}, {1, 1}, {2, 2}, {3, 4}, {4, 4}, {5, 8},
		{1000, 1024}, {1024, 1024}, {1025, 2048},
	}
	for _, tt := range tests {
		if got := NextPow2(tt.n); got != tt.want {
			t.Errorf("NextPow2(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
