package seek

import (
	"fmt"
	"math"

	seekerrors "github.com/tamirms/seek/errors"
	"github.com/tamirms/seek/internal/hashing"
)

// MinLoadFactor is the smallest load factor WithLoadFactor accepts. Below it
// the bucket table would be at least 64 times larger than the input.
const MinLoadFactor = 1.0 / 64

// Hasher selects the hash function of a HashIndex.
type Hasher uint8

const (
	// HasherXXH3 is XXH3-64. The default.
	HasherXXH3 = Hasher(hashing.XXH3)
	// HasherXXHash is xxHash64.
	HasherXXHash = Hasher(hashing.XXHash)
	// HasherMurmur3 is MurmurHash3 (x64, low 64 bits).
	HasherMurmur3 = Hasher(hashing.Murmur3)
)

func (h Hasher) String() string { return hashing.ID(h).String() }

// ParseHasher maps "xxh3", "xxhash" or "murmur3" to a Hasher.
func ParseHasher(s string) (Hasher, error) {
	id, err := hashing.Parse(s)
	return Hasher(id), err
}

// HashOption is a functional option for configuring a HashIndex.
type HashOption func(*hashConfig)

type hashConfig struct {
	hasher     Hasher
	loadFactor float64 // keys per bucket
}

func defaultHashConfig() *hashConfig {
	return &hashConfig{
		hasher:     HasherXXH3,
		loadFactor: 1.0,
	}
}

func (c *hashConfig) validate() error {
	if math.IsNaN(c.loadFactor) || math.IsInf(c.loadFactor, 0) || c.loadFactor < MinLoadFactor {
		return fmt.Errorf("%w: got %v, want a finite value >= %v", seekerrors.ErrInvalidLoadFactor, c.loadFactor, MinLoadFactor)
	}
	return nil
}

// WithHasher sets the hash function.
func WithHasher(h Hasher) HashOption {
	return func(c *hashConfig) {
		c.hasher = h
	}
}

// WithLoadFactor sets the target number of keys per bucket. Lower values use
// more memory for shorter bucket scans. Default 1.0, minimum MinLoadFactor.
func WithLoadFactor(f float64) HashOption {
	return func(c *hashConfig) {
		c.loadFactor = f
	}
}
