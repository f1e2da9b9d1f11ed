package bitfield

import (
	"fmt"

	"github.com/segmentio/bitfield-go/internal/bits"
)

// Field describes the position of a field within the words of a Codec.
type Field struct {
	// Index of the field in the codec, starting at zero for the most
	// significant field.
	Index int
	// Name of the field, empty unless the codec was built from a schema
	// naming it.
	Name string
	// Width of the field in bits, possibly zero.
	Width uint
	// Shift is the bit offset of the least significant bit of the field.
	Shift uint
	// Mask selects the bits of the field within a packed word.
	Mask uint64
}

// Bits returns the half-open range [lo, hi) of bit positions occupied by the
// field within a word.
func (f Field) Bits() (lo, hi uint) {
	return f.Shift, f.Shift + f.Width
}

// Field returns the description of the i-th field of c.
//
// The method panics if i is out of range.
func (c *Codec) Field(i int) Field {
	c.checkIndex(i)
	return Field{
		Index: i,
		Name:  c.names[i],
		Width: c.widths[i],
		Shift: c.shifts[i],
		Mask:  bits.FieldMask(c.shifts[i]+c.widths[i], c.widths[i]),
	}
}

// Fields returns the descriptions of all fields of c, in declaration order.
func (c *Codec) Fields() []Field {
	fields := make([]Field, len(c.widths))
	for i := range fields {
		fields[i] = c.Field(i)
	}
	return fields
}

// Lookup returns the field with the given name. The second return value is
// false if no field has this name.
func (c *Codec) Lookup(name string) (Field, bool) {
	if name == "" {
		return Field{}, false
	}
	for i, n := range c.names {
		if n == name {
			return c.Field(i), true
		}
	}
	return Field{}, false
}

// Get returns the value of the i-th field of packed.
//
// The method panics if i is out of range.
func (c *Codec) Get(packed uint64, i int) uint64 {
	c.checkIndex(i)
	w := c.widths[i]
	if w == 0 {
		return 0
	}
	return (packed >> c.shifts[i]) & bits.Mask(w)
}

// Set returns a copy of packed where the i-th field holds v, leaving all other
// bits unchanged.
//
// The method returns an error wrapping ErrOverflow if v does not fit in the
// field, and panics if i is out of range.
func (c *Codec) Set(packed uint64, i int, v uint64) (uint64, error) {
	c.checkIndex(i)
	w := c.widths[i]
	if !bits.Fits(v, w) {
		return packed, errOverflow(c.Field(i), v)
	}
	if w == 0 {
		return packed, nil
	}
	shift := c.shifts[i]
	return (packed &^ (bits.Mask(w) << shift)) | (v << shift), nil
}

func (c *Codec) checkIndex(i int) {
	if i < 0 || i >= len(c.widths) {
		panic(fmt.Sprintf("bitfield: field index %d out of range [0:%d]", i, len(c.widths)))
	}
}
