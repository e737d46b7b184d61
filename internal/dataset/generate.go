package dataset

import (
	"fmt"
	"math/rand/v2"

	seekerrors "github.com/tamirms/seek/errors"
)

// Kind selects the shape of a generated dataset.
type Kind uint8

const (
	// Sequential is 0, 1, ..., n-1.
	Sequential Kind = iota
	// Shuffled is a deterministic permutation of 0..n-1.
	Shuffled
)

func (k Kind) String() string {
	switch k {
	case Sequential:
		return "sequential"
	case Shuffled:
		return "shuffled"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "sequential":
		return Sequential, nil
	case "shuffled":
		return Shuffled, nil
	default:
		return 0, fmt.Errorf("%w: dataset kind %q (want sequential or shuffled)", seekerrors.ErrUnknownOption, s)
	}
}

// Generate returns n values of the given kind. The same seed always yields
// the same permutation. Sequential ignores seed.
func Generate(kind Kind, n int, seed uint64) ([]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("dataset size must be non-negative, got %d", n)
	}

	values := make([]int64, n)
	for i := range values {
		values[i] = int64(i)
	}

	switch kind {
	case Sequential:
	case Shuffled:
		rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
		rng.Shuffle(n, func(i, j int) {
			values[i], values[j] = values[j], values[i]
		})
	default:
		return nil, fmt.Errorf("%w: dataset kind %v", seekerrors.ErrUnknownOption, kind)
	}
	return values, nil
}
