package bitfield

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// PrintLayout writes a table describing the fields of c to w.
func PrintLayout(w io.Writer, c *Codec) error {
	pw := &printWriter{writer: w}
	table := tablewriter.NewWriter(pw)
	table.SetHeader([]string{"Field", "Name", "Width", "Bits", "Mask"})

	for _, f := range c.Fields() {
		table.Append([]string{
			strconv.Itoa(f.Index),
			f.Name,
			strconv.FormatUint(uint64(f.Width), 10),
			formatBits(f),
			formatHex(f.Mask, c.width),
		})
	}

	table.Render()
	return pw.err
}

// PrintValues writes a table of the field values decoded from packed to w.
func PrintValues(w io.Writer, c *Codec, packed uint64) error {
	pw := &printWriter{writer: w}
	table := tablewriter.NewWriter(pw)
	table.SetHeader([]string{"Field", "Name", "Bits", "Value", "Hex"})

	for i, v := range c.Unpack(packed) {
		f := c.Field(i)
		table.Append([]string{
			strconv.Itoa(f.Index),
			f.Name,
			formatBits(f),
			strconv.FormatUint(v, 10),
			formatHex(v, f.Width),
		})
	}

	table.Render()
	return pw.err
}

// formatBits renders the bit range of a field as "msb:lsb", the way
// instruction set manuals do.
func formatBits(f Field) string {
	if f.Width == 0 {
		return "-"
	}
	lo, hi := f.Bits()
	if hi-lo == 1 {
		return strconv.FormatUint(uint64(lo), 10)
	}
	return fmt.Sprintf("%d:%d", hi-1, lo)
}

func formatHex(v uint64, width uint) string {
	digits := int(width+3) / 4
	if digits == 0 {
		digits = 1
	}
	return fmt.Sprintf("0x%0*x", digits, v)
}

type printWriter struct {
	writer io.Writer
	err    error
}

func (w *printWriter) Write(b []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.writer.Write(b)
	if err != nil {
		w.err = err
	}
	return n, err
}

var (
	_ io.Writer = (*printWriter)(nil)
)
