// Command lexgen compiles a lex-rules file into a minimized DFA and
// emits it either as the tables.LexTable JSON interchange format or as
// Go source declaring the same data as package-level vars.
//
// Grounded on the teacher's cmd/vartan/main.go Execute() wrapper.
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
