//go:build linux

package dataset

import (
	"os"

	"golang.org/x/sys/unix"
)

// fallocateFile reserves size bytes for file and sets its length.
func fallocateFile(file *os.File, size int64) error {
	fd := int(file.Fd())
	if err := unix.Fallocate(fd, 0, 0, size); err != nil {
		// tmpfs and NFS may not support fallocate.
		return unix.Ftruncate(fd, size)
	}
	return unix.Ftruncate(fd, size)
}
