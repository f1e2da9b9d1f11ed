package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/segmentio/bitfield-go"
)

// layoutFlags are the flags shared by all commands to select the layout of
// the words they operate on.
type layoutFlags struct {
	schema string
	width  uint
	fields string
}

func (f *layoutFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.schema, "schema", "", "Path to a JSON schema describing the word layout")
	fs.UintVar(&f.width, "width", bitfield.MaxWidth, "Width of the word in bits")
	fs.StringVar(&f.fields, "fields", "", "Comma separated field widths, optionally named (e.g. opcode:5,27)")
}

func (f *layoutFlags) codec() (*bitfield.Codec, error) {
	var schema *bitfield.Schema
	var err error

	switch {
	case f.schema != "" && f.fields != "":
		return nil, errors.New("--schema and --fields cannot be used together")
	case f.schema != "":
		schema, err = loadSchema(f.schema)
	case f.fields != "":
		schema, err = parseFields(f.width, f.fields)
	default:
		return nil, errors.New("one of --schema or --fields is required")
	}
	if err != nil {
		return nil, err
	}

	c, err := schema.Codec()
	if err != nil {
		return nil, err
	}
	pdebugf("using layout %s (%d bits used)", c, c.UsedBits())
	return c, nil
}

func loadSchema(path string) (*bitfield.Schema, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open schema: %w", err)
	}
	defer file.Close()

	schema, err := bitfield.ReadSchema(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	pdebugf("loaded schema %q from %s", schema.Name, path)
	return schema, nil
}

// parseFields parses field lists of the form "opcode:5,register:8,16".
func parseFields(width uint, list string) (*bitfield.Schema, error) {
	schema := &bitfield.Schema{Width: width}

	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		name, size := "", item
		if i := strings.LastIndexByte(item, ':'); i >= 0 {
			name, size = item[:i], item[i+1:]
		}

		w, err := strconv.ParseUint(size, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid field width %q: %w", item, err)
		}
		schema.Fields = append(schema.Fields, bitfield.FieldSchema{Name: name, Width: uint(w)})
	}

	return schema, nil
}

func newLayoutCommand() *cobra.Command {
	var flags layoutFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the layout of a word",
		Long: `Print the bit range and mask of each field of a word.

Example:
  bitfield layout --width 32 --fields opcode:5,operand:27`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.codec()
			if err != nil {
				return err
			}

			if !asJSON {
				return bitfield.PrintLayout(cmd.OutOrStdout(), c)
			}

			b, err := c.Schema().MarshalIndent()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", b)
			return err
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the layout as a JSON schema")
	return cmd
}
