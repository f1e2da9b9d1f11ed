package bitfield

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/segmentio/bitfield-go/internal/bits"
)

// MaxWidth is the largest word width, in bits, that a Codec can describe.
const MaxWidth = bits.WordSize

// Codec packs sequences of unsigned integers into a single word of fixed
// width, and unpacks words back into their fields.
//
// Fields are laid out most significant first: the first field occupies the
// highest bits of the word. When the field widths do not add up to the word
// width, the lowest bits of the word are left unused and always zero.
//
// Codec values are immutable once constructed and safe to use concurrently
// from multiple goroutines.
type Codec struct {
	name   string
	width  uint
	used   uint
	widths []uint
	shifts []uint
	names  []string
}

// New constructs a codec for words of the given width, split into fields of
// the given widths.
//
// The function returns an error wrapping ErrInvalidSchema if width is zero or
// greater than MaxWidth, or if the fields do not fit in width bits.
func New(width uint, fields ...uint) (*Codec, error) {
	return newCodec("", width, fields, nil)
}

// MustNew is like New but panics if the field layout is invalid. It is
// intended to initialize package level codecs from literal layouts.
func MustNew(width uint, fields ...uint) *Codec {
	c, err := New(width, fields...)
	if err != nil {
		panic("bitfield: " + err.Error())
	}
	return c
}

func newCodec(name string, width uint, fields []uint, names []string) (*Codec, error) {
	if width == 0 || width > MaxWidth {
		return nil, errInvalidSchema("word width must be between 1 and %d bits, got %d", MaxWidth, width)
	}

	used, ok := bits.Sum(fields, width)
	if !ok {
		return nil, errInvalidSchema("fields need at least %d bits but the word is %d bits wide", used, width)
	}

	c := &Codec{
		name:   name,
		width:  width,
		used:   used,
		widths: make([]uint, len(fields)),
		shifts: make([]uint, len(fields)),
		names:  make([]string, len(fields)),
	}

	free := width
	for i, w := range fields {
		free -= w
		c.widths[i] = w
		c.shifts[i] = free
	}

	copy(c.names, names)
	return c, nil
}

// Name returns the name given to the codec by its schema, which may be empty.
func (c *Codec) Name() string { return c.name }

// Width returns the width of the words produced by c, in bits.
func (c *Codec) Width() uint { return c.width }

// UsedBits returns the number of bits of the word covered by fields.
func (c *Codec) UsedBits() uint { return c.used }

// NumFields returns the number of fields in c.
func (c *Codec) NumFields() int { return len(c.widths) }

// Pack packs values into a single word, values[i] being written to the i-th
// field of c.
//
// The method returns an error wrapping ErrOverflow if one of the values does
// not fit in the width of its field; a zero-width field only accepts zero.
//
// The method panics if the number of values differs from the number of
// fields.
func (c *Codec) Pack(values []uint64) (uint64, error) {
	if len(values) != len(c.widths) {
		panic(fmt.Sprintf("bitfield: cannot pack %d values into %d fields", len(values), len(c.widths)))
	}

	packed := uint64(0)
	used := uint(0)

	for i, v := range values {
		w := c.widths[i]
		if !bits.Fits(v, w) {
			return 0, errOverflow(c.Field(i), v)
		}
		packed |= v << (c.width - w - used)
		used += w
	}

	return packed, nil
}

// Unpack returns the values of each field of packed, in declaration order.
//
// Unpack never fails: bits of packed that are not covered by a field are
// ignored.
func (c *Codec) Unpack(packed uint64) []uint64 {
	return c.AppendUnpack(make([]uint64, 0, len(c.widths)), packed)
}

// AppendUnpack is like Unpack but appends the field values to dst, returning
// the extended slice.
func (c *Codec) AppendUnpack(dst []uint64, packed uint64) []uint64 {
	free := c.width

	for _, w := range c.widths {
		dst = append(dst, (packed&bits.FieldMask(free, w))>>(free-w))
		free -= w
	}

	return dst
}

// String returns a compact representation of the layout, for example
// "bitfield(32: 5,27)". Named fields are written as name:width.
func (c *Codec) String() string {
	s := new(strings.Builder)
	s.WriteString("bitfield(")
	if c.name != "" {
		s.WriteString(c.name)
		s.WriteString(" ")
	}
	s.WriteString(strconv.FormatUint(uint64(c.width), 10))
	s.WriteString(":")

	for i, w := range c.widths {
		if i == 0 {
			s.WriteString(" ")
		} else {
			s.WriteString(",")
		}
		if c.names[i] != "" {
			s.WriteString(c.names[i])
			s.WriteString(":")
		}
		s.WriteString(strconv.FormatUint(uint64(w), 10))
	}

	s.WriteString(")")
	return s.String()
}
