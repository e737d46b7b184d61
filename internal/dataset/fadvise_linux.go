//go:build linux

package dataset

import "golang.org/x/sys/unix"

// fadviseSequential hints that the values region is about to be read front
// to back. Errors are ignored.
func fadviseSequential(fd int, offset, length int64) {
	_ = unix.Fadvise(fd, offset, length, unix.FADV_SEQUENTIAL)
}
