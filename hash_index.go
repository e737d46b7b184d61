package seek

import (
	"fmt"
	"math"

	intbits "github.com/tamirms/seek/internal/bits"
	"github.com/tamirms/seek/internal/hashing"
)

// Integer is the set of element types NewHashIndex accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// HashIndex answers "where does target first occur in s" in O(1) expected
// time after an O(n) build. It is the right tool when the same slice is
// searched repeatedly.
//
// Layout: positions grouped by bucket, plus an offsets table of numBuckets+1
// entries where bucket b owns positions[offsets[b]:offsets[b+1]]. Each group
// is in ascending position order, so the first equal key met in a bucket is
// the lowest index, and Lookup agrees with Index.
//
// The index references s and does not copy it. s must not be modified while
// the index is in use. A HashIndex is safe for concurrent lookups.
type HashIndex[K comparable] struct {
	keys      []K
	offsets   []int
	positions []int

	hasher Hasher
	hash   hashing.Func
	encode func(buf []byte, k K) []byte
}

// NewHashIndex builds a hash index over a slice of integers.
func NewHashIndex[K Integer](s []K, opts ...HashOption) (*HashIndex[K], error) {
	return newHashIndex(s, hashing.EncodeInteger[K], opts)
}

// NewStringHashIndex builds a hash index over a slice of strings.
func NewStringHashIndex[K ~string](s []K, opts ...HashOption) (*HashIndex[K], error) {
	return newHashIndex(s, hashing.EncodeString[K], opts)
}

func newHashIndex[K comparable](s []K, encode func([]byte, K) []byte, opts []HashOption) (*HashIndex[K], error) {
	cfg := defaultHashConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	hash, err := hashing.New(hashing.ID(cfg.hasher))
	if err != nil {
		return nil, fmt.Errorf("hash index: %w", err)
	}

	numBuckets := intbits.NextPow2(int(math.Ceil(float64(len(s)) / cfg.loadFactor)))

	// Pass 1: bucket every key and count bucket sizes into offsets[b+1].
	var buf [8]byte
	buckets := make([]int, len(s))
	offsets := make([]int, numBuckets+1)
	for i, k := range s {
		b := intbits.Reduce(hash(encode(buf[:], k)), numBuckets)
		buckets[i] = b
		offsets[b+1]++
	}
	for b := 1; b <= numBuckets; b++ {
		offsets[b] += offsets[b-1]
	}

	// Pass 2: place positions. i ascends, so every group stays sorted.
	positions := make([]int, len(s))
	fill := make([]int, numBuckets)
	copy(fill, offsets[:numBuckets])
	for i, b := range buckets {
		positions[fill[b]] = i
		fill[b]++
	}

	return &HashIndex[K]{
		keys:      s,
		offsets:   offsets,
		positions: positions,
		hasher:    cfg.hasher,
		hash:      hash,
		encode:    encode,
	}, nil
}

// Lookup returns the lowest position of target, or NotFound.
func (h *HashIndex[K]) Lookup(target K) int {
	var buf [8]byte
	b := intbits.Reduce(h.hash(h.encode(buf[:], target)), h.Buckets())
	for _, p := range h.positions[h.offsets[b]:h.offsets[b+1]] {
		if h.keys[p] == target {
			return p
		}
	}
	return NotFound
}

// Contains reports whether target occurs in the indexed slice.
func (h *HashIndex[K]) Contains(target K) bool {
	return h.Lookup(target) != NotFound
}

// Len returns the number of indexed elements.
func (h *HashIndex[K]) Len() int { return len(h.keys) }

// Buckets returns the bucket count, always a power of two.
func (h *HashIndex[K]) Buckets() int { return len(h.offsets) - 1 }

// Hasher returns the hash function the index was built with.
func (h *HashIndex[K]) Hasher() Hasher { return h.hasher }

// MaxBucket returns the size of the largest bucket, the worst-case number of
// comparisons a Lookup performs.
func (h *HashIndex[K]) MaxBucket() int {
	maxSize := 0
	for b := range h.Buckets() {
		maxSize = max(maxSize, h.offsets[b+1]-h.offsets[b])
	}
	return maxSize
}
