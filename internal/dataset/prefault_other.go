//go:build !linux

package dataset

func prefaultRegion(data []byte) {}
