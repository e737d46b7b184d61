// Package hashing provides the 64-bit hash functions and key encoders used by
// the hash index.
//
// Keys are first encoded to bytes (fixed-width little-endian for integers, raw
// bytes for strings) and then hashed. All hashers are deterministic across
// runs and platforms.
package hashing

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"

	seekerrors "github.com/tamirms/seek/errors"
)

// ID identifies a hash function.
type ID uint8

const (
	// XXH3 is XXH3-64 (zeebo/xxh3). The fastest option for short keys.
	XXH3 ID = iota
	// XXHash is xxHash64 (cespare/xxhash).
	XXHash
	// Murmur3 is the 64-bit half of MurmurHash3 x64_128 (spaolacci/murmur3).
	Murmur3
)

// String returns the flag spelling of the hasher.
func (id ID) String() string {
	switch id {
	case XXH3:
		return "xxh3"
	case XXHash:
		return "xxhash"
	case Murmur3:
		return "murmur3"
	default:
		return fmt.Sprintf("hasher(%d)", uint8(id))
	}
}

// Parse maps a flag spelling back to an ID.
func Parse(name string) (ID, error) {
	switch name {
	case "xxh3":
		return XXH3, nil
	case "xxhash":
		return XXHash, nil
	case "murmur3":
		return Murmur3, nil
	default:
		return 0, fmt.Errorf("%w: hasher %q", seekerrors.ErrUnknownOption, name)
	}
}

// Func hashes an encoded key.
type Func func(b []byte) uint64

// New returns the hash function for id.
func New(id ID) (Func, error) {
	switch id {
	case XXH3:
		return xxh3.Hash, nil
	case XXHash:
		return xxhash.Sum64, nil
	case Murmur3:
		return murmur3.Sum64, nil
	default:
		return nil, fmt.Errorf("%w: hasher id %d", seekerrors.ErrUnknownOption, uint8(id))
	}
}

// Integer is the set of integer element types the fixed-width encoder handles.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// EncodeInteger writes k as 8 little-endian bytes into buf and returns them.
// Signed values are sign-extended first, so int8(-1) and int64(-1) encode
// identically. buf must be at least 8 bytes.
func EncodeInteger[K Integer](buf []byte, k K) []byte {
	binary.LittleEndian.PutUint64(buf[:8], uint64(k))
	return buf[:8]
}

// EncodeString returns the bytes of k without copying.
// The result must not be modified.
func EncodeString[K ~string](_ []byte, k K) []byte {
	s := string(k)
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
