// Package errors defines all exported error sentinels for the seek module.
//
// This is the single source of truth for error values. The top-level seek
// package, the internal packages, and cmd/bench all import from here, so
// errors.Is checks work across package boundaries.
package errors

import "errors"

// Search errors
var (
	ErrUnsortedInput       = errors.New("seek: input is not sorted in ascending order")
	ErrInvalidThreshold    = errors.New("seek: inline threshold must not be negative")
	ErrInvalidInterval     = errors.New("seek: check interval must be positive")
	ErrIncompatibleOptions = errors.New("seek: outer-first scan order requires the first-report policy")
	ErrInvalidLoadFactor   = errors.New("seek: hash index load factor out of range")
	ErrUnknownOption       = errors.New("seek: unknown option value")
)

// Coordination errors
var (
	ErrTimeout     = errors.New("seek: search deadline exceeded")
	ErrWorkerPanic = errors.New("seek: worker panicked")
	ErrNoTasks     = errors.New("seek: no tasks to run")
)

// Dataset errors
var (
	ErrInvalidMagic     = errors.New("seek: invalid dataset magic number")
	ErrInvalidVersion   = errors.New("seek: unsupported dataset version")
	ErrTruncatedFile    = errors.New("seek: dataset file is truncated")
	ErrCorruptedDataset = errors.New("seek: dataset is corrupted")
	ErrChecksumFailed   = errors.New("seek: dataset checksum verification failed")
	ErrDatasetClosed    = errors.New("seek: dataset is closed")
)
