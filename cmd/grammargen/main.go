// Command grammargen compiles a grammar file into FIRST/FOLLOW sets and
// an LL(1) predictive table and emits it either as the
// tables.ParseTable JSON interchange format or as Go source declaring
// the same data as package-level vars.
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
