package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/segmentio/bitfield-go"
)

func newUnpackCommand() *cobra.Command {
	var flags layoutFlags
	var table bool

	cmd := &cobra.Command{
		Use:   "unpack <word>",
		Short: "Unpack a word into its field values",
		Long: `Unpack a word and print its field values, comma separated in field order.

Example:
  bitfield unpack --width 32 --fields 5,27 134217763`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.codec()
			if err != nil {
				return err
			}

			packed, err := parseUint(args[0])
			if err != nil {
				return err
			}
			if w := c.Width(); w < bitfield.MaxWidth && packed>>w != 0 {
				pdebugf("ignoring bits above the word width in %#x", packed)
			}

			if table {
				return bitfield.PrintValues(cmd.OutOrStdout(), c, packed)
			}

			values := c.Unpack(packed)
			items := make([]string, len(values))
			for i, v := range values {
				items[i] = strconv.FormatUint(v, 10)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(items, ","))
			return err
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&table, "table", false, "Print the field values as a table")
	return cmd
}
