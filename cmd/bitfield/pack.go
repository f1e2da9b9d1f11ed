package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newPackCommand() *cobra.Command {
	var flags layoutFlags
	var hex bool

	cmd := &cobra.Command{
		Use:   "pack <values>...",
		Short: "Pack field values into a word",
		Long: `Pack field values into a word and print it.

Values are given in field order, as separate arguments or comma separated, in
decimal or with a 0x, 0o or 0b prefix.

Example:
  bitfield pack --width 32 --fields 5,27 1,35`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.codec()
			if err != nil {
				return err
			}

			values, err := parseValues(args)
			if err != nil {
				return err
			}
			if len(values) != c.NumFields() {
				return fmt.Errorf("%d values given for %d fields", len(values), c.NumFields())
			}

			packed, err := c.Pack(values)
			if err != nil {
				return err
			}
			pdebugf("packed %v into %0*b", values, int(c.Width()), packed)

			if hex {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "0x%0*x\n", int(c.Width()+3)/4, packed)
			} else {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d\n", packed)
			}
			return err
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&hex, "hex", false, "Print the packed word in hexadecimal")
	return cmd
}

func parseValues(args []string) ([]uint64, error) {
	values := make([]uint64, 0, len(args))

	for _, arg := range args {
		for _, s := range strings.Split(arg, ",") {
			v, err := parseUint(s)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
	}

	return values, nil
}

func parseUint(s string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return v, nil
}
