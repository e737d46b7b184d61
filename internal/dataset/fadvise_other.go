//go:build !linux

package dataset

func fadviseSequential(fd int, offset, length int64) {}
