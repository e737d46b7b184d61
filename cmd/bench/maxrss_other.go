//go:build !unix

package main

func maxRSS() uint64 { return 0 }
