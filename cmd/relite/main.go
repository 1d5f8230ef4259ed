// Command relite tests one line of standard input against a pattern,
// exit-code style.
//
// Usage: echo <input_text> | relite -E <pattern>
//
// Exit status is 0 when the line matches, 1 on no match or pattern error.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/coregx/relite/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, cli.ErrNoMatch) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
