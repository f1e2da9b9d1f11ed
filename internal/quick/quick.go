package quick

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/segmentio/bitfield-go/internal/bits"
)

// Check is inspired by the standard quick.Check package, but generates
// inputs shaped like bitfield layouts: a word width, field widths that fit in
// it, and one value per field that fits its width.
//
// Every run uses the same seed so failures are reproducible. Each field count
// is tried with a full 64 bits word, with all-ones values, and with random
// words and values.
func Check(f func(width uint, fields []uint, values []uint64) bool) error {
	r := rand.New(rand.NewSource(0))

	for _, n := range [...]int{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9,
		10, 11, 12, 13, 14, 15, 16, 17, 18, 19,
		20, 21, 22, 23, 24, 25, 26, 27, 28, 29,
		30, 31, 32, 33, 47, 48, 63, 64, 65, 100,
	} {
		for i := 0; i < 4; i++ {
			width := uint(bits.WordSize)
			if i > 1 {
				width = 1 + uint(r.Intn(bits.WordSize))
			}

			fields := MakeFields(r, width, n, i%2 == 0)
			values := make([]uint64, n)
			for j, w := range fields {
				if i == 1 {
					values[j] = bits.Mask(w)
				} else {
					values[j] = r.Uint64() & bits.Mask(w)
				}
			}

			if !f(width, fields, values) {
				return fmt.Errorf("test #%d: failed on layout of %d fields: width=%d fields=%v values=%#v", i+1, n, width, fields, values)
			}
		}
	}

	return nil
}

// MakeFields returns n field widths adding up to at most width. When full is
// true the widths add up to exactly width. Fields of width zero are generated
// whenever n is large compared to width, and occasionally otherwise.
func MakeFields(r *rand.Rand, width uint, n int, full bool) []uint {
	fields := make([]uint, n)
	if n == 0 {
		return fields
	}

	used := width
	if !full {
		used = uint(r.Intn(int(width) + 1))
	}

	cuts := make([]int, n+1)
	cuts[n] = int(used)
	for i := 1; i < n; i++ {
		cuts[i] = r.Intn(int(used) + 1)
	}
	sort.Ints(cuts)

	for i := range fields {
		fields[i] = uint(cuts[i+1] - cuts[i])
	}
	return fields
}
