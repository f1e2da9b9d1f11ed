package bitfield_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/segmentio/bitfield-go"
)

func TestPrintLayout(t *testing.T) {
	buffer := new(bytes.Buffer)
	if err := bitfield.PrintLayout(buffer, bitfield.MustNew(32, 5, 0, 27)); err != nil {
		t.Fatal(err)
	}

	output := buffer.String()
	for _, s := range []string{"FIELD", "MASK", "31:27", "0xf8000000", "26:0", "0x07ffffff", " - "} {
		if !strings.Contains(output, s) {
			t.Errorf("output does not contain %q:\n%s", s, output)
		}
	}
}

func TestPrintValues(t *testing.T) {
	buffer := new(bytes.Buffer)
	if err := bitfield.PrintValues(buffer, bitfield.MustNew(32, 5, 27, 0), 134217763); err != nil {
		t.Fatal(err)
	}

	output := buffer.String()
	for _, s := range []string{"VALUE", "35", "0x01", "0x0000023"} {
		if !strings.Contains(output, s) {
			t.Errorf("output does not contain %q:\n%s", s, output)
		}
	}
}

func TestPrintSchemaRoundTrip(t *testing.T) {
	schema := &bitfield.Schema{
		Width: 16,
		Fields: []bitfield.FieldSchema{
			{Name: "cond", Width: 4},
			{Name: "flag", Width: 1},
			{Name: "offset", Width: 11},
		},
	}

	codec, err := schema.Codec()
	if err != nil {
		t.Fatal(err)
	}

	b, err := codec.Schema().MarshalIndent()
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := bitfield.ParseSchema(b)
	if err != nil {
		t.Fatal(err)
	}
	reparsed, err := parsed.Codec()
	if err != nil {
		t.Fatal(err)
	}

	want, got := new(bytes.Buffer), new(bytes.Buffer)
	if err := bitfield.PrintLayout(want, codec); err != nil {
		t.Fatal(err)
	}
	if err := bitfield.PrintLayout(got, reparsed); err != nil {
		t.Fatal(err)
	}

	if want.String() != got.String() {
		edits := myers.ComputeEdits(span.URIFromPath("want.txt"), want.String(), got.String())
		diff := fmt.Sprint(gotextdiff.ToUnified("want.txt", "got.txt", want.String(), edits))
		t.Errorf("layouts differ after a schema round trip:\n%s", diff)
	}
}

type errorWriter struct{ err error }

func (w errorWriter) Write([]byte) (int, error) { return 0, w.err }

func TestPrintWriteError(t *testing.T) {
	failure := errors.New("disk full")
	codec := bitfield.MustNew(8, 4, 4)

	if err := bitfield.PrintLayout(errorWriter{failure}, codec); !errors.Is(err, failure) {
		t.Errorf("PrintLayout: expected the write error, got %v", err)
	}
	if err := bitfield.PrintValues(errorWriter{failure}, codec, 0xFF); !errors.Is(err, failure) {
		t.Errorf("PrintValues: expected the write error, got %v", err)
	}
}
