// Command bitfield packs and unpacks fixed-width bitfield words from the
// command line.
//
// The layout of words is given either inline with --width and --fields, or
// by a JSON schema file passed with --schema:
//
//	bitfield pack --width 32 --fields opcode:5,operand:27 1,35
//	bitfield unpack --width 32 --fields 5,27 0x8000023
//	bitfield layout --schema isa.json
package main

import (
	"fmt"
	"os"
	"strings"

	color "github.com/logrusorgru/aurora/v3"
	"github.com/spf13/cobra"

	"github.com/segmentio/bitfield-go/internal/debug"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		perrorf("error: %s", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var debugMode bool

	root := &cobra.Command{
		Use:   "bitfield",
		Short: "Pack and unpack fixed-width bitfield words",
		Long: `bitfield packs sequences of unsigned integers into a single word made of
fixed-width fields, most significant field first, and unpacks words back into
their fields.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			debug.SetOutput(cmd.ErrOrStderr())
			debug.Toggle(debugMode)
		},
	}

	root.PersistentFlags().BoolVar(&debugMode, "debug", false, "Display debugging logs")
	root.AddCommand(
		newPackCommand(),
		newUnpackCommand(),
		newLayoutCommand(),
	)
	return root
}

func perrorf(format string, args ...interface{}) {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	au := color.NewAurora(isTerminal(os.Stderr.Fd()))
	_, _ = fmt.Fprintf(os.Stderr, au.Red(format).String(), args...)
}

func pdebugf(format string, args ...interface{}) {
	au := color.NewAurora(isTerminal(os.Stderr.Fd()))
	debug.Format(au.Gray(12, format).String(), args...)
}
