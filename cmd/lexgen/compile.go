package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/lucidlang/lucidc/lexical"
	"github.com/lucidlang/lucidc/tables"
)

var compileFlags = struct {
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "compile <rules-file>",
		Short:   "Compile a lex-rules file into a LexTable JSON document",
		Example: `  lexgen compile rules.lex -o rules.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runCompile,
	}
	compileFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening %v: %w", args[0], err)
	}
	defer f.Close()

	rs, errs := lexical.LoadRules(f)
	if errs.HasFatal() {
		return errs
	}
	reportWarnings(errs)

	d, errs := lexical.Compile(rs)
	if errs.HasFatal() {
		return errs
	}
	reportWarnings(errs)

	lt := tables.FromDFA(d)
	b, err := json.MarshalIndent(lt, "", "  ")
	if err != nil {
		return err
	}

	return writeOutput(*compileFlags.output, b)
}

func reportWarnings(errs interface{ Error() string }) {
	if w, ok := errs.(interface{ Error() string }); ok && w.Error() != "" {
		fmt.Fprintln(os.Stderr, pterm.Warning.Sprint(w.Error()))
	}
}

func writeOutput(path string, b []byte) error {
	if path == "" {
		_, err := fmt.Fprintf(os.Stdout, "%s\n", b)
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0644)
}
