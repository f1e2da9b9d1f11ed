// Package bits implements the low level bit arithmetic used to position
// fields within a packed word.
package bits

import (
	"math/bits"
)

// WordSize is the number of bits in the words manipulated by this package.
const WordSize = 64

// Mask returns a mask of the width lowest bits of a word.
//
// A width of zero yields an empty mask and a width of WordSize (or more)
// yields a word with all bits set; neither case computes 1<<WordSize.
func Mask(width uint) uint64 {
	switch {
	case width == 0:
		return 0
	case width >= WordSize:
		return ^uint64(0)
	default:
		return (1 << width) - 1
	}
}

// FieldMask returns the mask of a field of the given width whose most
// significant bit sits just below free, where free is the number of bits of
// the word not yet consumed by preceding fields.
func FieldMask(free, width uint) uint64 {
	if width == 0 {
		return 0
	}
	return Mask(width) << (free - width)
}

// Fits reports whether v can be represented on width bits.
func Fits(v uint64, width uint) bool {
	return v&^Mask(width) == 0
}

// Len returns the minimum number of bits needed to represent v.
func Len(v uint64) uint {
	return uint(bits.Len64(v))
}

// Sum returns the sum of widths, and false if any width exceeds limit or the
// running total does. On failure the returned value is a lower bound of the
// sum.
func Sum(widths []uint, limit uint) (uint, bool) {
	sum := uint(0)
	for _, w := range widths {
		if w > limit {
			return w, false
		}
		if sum > limit-w {
			return sum + w, false
		}
		sum += w
	}
	return sum, true
}
