// Package cli wires the relite command line.
package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/coregx/relite"
)

// ErrNoMatch is returned by the root command when the input line does not
// match the pattern. main maps it to exit status 1 without printing.
var ErrNoMatch = errors.New("no match")

// RootOptions holds the flags of the root command.
type RootOptions struct {
	// Extended selects extended pattern syntax. It is the only supported
	// mode and must be given, mirroring grep -E invocation.
	Extended bool
}

// NewRootCommand creates the relite command.
//
// relite reads a single line from standard input and exits 0 if the
// pattern matches it, 1 otherwise. Compile errors are reported on stderr
// and also exit 1.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "relite -E <pattern>",
		Short:         "relite matches one line of input against a pattern",
		Long:          "relite reads a single line from standard input and exits 0 if the\npattern matches it, 1 otherwise.\n\nUsage: echo <input_text> | relite -E <pattern>",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.Extended {
				return fmt.Errorf("expected the -E flag")
			}
			return runMatch(args[0], cmd.InOrStdin())
		},
	}

	cmd.Flags().BoolVarP(&opts.Extended, "extended-regexp", "E", false, "interpret the pattern as an extended expression")

	return cmd
}

// runMatch compiles the pattern and matches it against one line of input.
func runMatch(pattern string, in io.Reader) error {
	re, err := relite.Compile(pattern)
	if err != nil {
		return err
	}
	line, err := readLine(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if !re.Match(line) {
		return ErrNoMatch
	}
	return nil
}

// readLine reads one line, tolerating a missing trailing newline.
func readLine(in io.Reader) ([]byte, error) {
	line, err := bufio.NewReader(in).ReadBytes('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	return bytes.TrimRight(line, "\r\n"), nil
}
