// Command lucidc lexes and parses a single source file against lucidc's
// own default lex rules and grammar, printing the resulting AST. Both
// the rules and the grammar are embedded at build time and compiled
// in-process at startup, per the "offline or at program start" timing
// the compilation pipeline allows.
//
// Grounded on the teacher's cmd/vartan/main.go: Execute() wraps the
// cobra root command, printing any returned error to stderr and
// translating it into a process exit code.
package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, pterm.Error.Sprint(err))
		os.Exit(1)
	}
}
