//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package main

// Colours are only enabled on platforms where terminals can be detected.
func isTerminal(fd uintptr) bool { return false }
