package bitfield_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/segmentio/bitfield-go"
)

func Example() {
	codec := bitfield.MustNew(32, 5, 27)

	packed, err := codec.Pack([]uint64{1, 35})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(packed)
	fmt.Println(codec.Unpack(packed))
	// Output:
	// 134217763
	// [1 35]
}

func ExampleCodec_Pack_overflow() {
	codec := bitfield.MustNew(8, 4, 4)

	_, err := codec.Pack([]uint64{16, 1})
	fmt.Println(errors.Is(err, bitfield.ErrOverflow))
	fmt.Println(err)
	// Output:
	// true
	// field 0: value 16 does not fit in 4 bits: value overflows field width
}

func ExampleCodec_Set() {
	// opcode:5, register:8, immediate:16, and 3 unused bits.
	codec := bitfield.MustNew(32, 5, 8, 16)

	insn, _ := codec.Pack([]uint64{3, 7, 0x1234})
	fmt.Printf("%#x\n", insn)

	insn, _ = codec.Set(insn, 2, 0xFFFF)
	fmt.Printf("%#x\n", insn)
	fmt.Println(codec.Get(insn, 1))
	// Output:
	// 0x183891a0
	// 0x183ffff8
	// 7
}

func ExampleParseSchema() {
	schema, err := bitfield.ParseSchema([]byte(`{
		"name": "instruction",
		"width": 32,
		"fields": [
			{"name": "opcode", "width": 5},
			{"name": "operand", "width": 27}
		]
	}`))
	if err != nil {
		log.Fatal(err)
	}

	codec, err := schema.Codec()
	if err != nil {
		log.Fatal(err)
	}

	operand, _ := codec.Lookup("operand")
	fmt.Println(codec)
	fmt.Println(operand.Index, operand.Shift, operand.Width)
	fmt.Printf("%#x\n", operand.Mask)
	// Output:
	// bitfield(instruction 32: opcode:5,operand:27)
	// 1 0 27
	// 0x7ffffff
}
