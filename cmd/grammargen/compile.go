package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/lucidlang/lucidc/grammar"
	"github.com/lucidlang/lucidc/tables"
)

var compileFlags = struct {
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "compile <grammar-file>",
		Short:   "Compile a grammar file into a ParseTable JSON document",
		Example: `  grammargen compile grammar.gr -o grammar.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runCompile,
	}
	compileFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	_, pt, err := buildTable(args[0])
	if err != nil {
		return err
	}

	b, err := json.MarshalIndent(pt, "", "  ")
	if err != nil {
		return err
	}

	return writeOutput(*compileFlags.output, b)
}

// buildTable loads the grammar file at path, runs FIRST/FOLLOW and
// LL(1)-table construction, reports any non-fatal conflict warnings to
// stderr, and returns the loaded grammar alongside its interchange-format
// ParseTable.
func buildTable(path string) (*grammar.Grammar, *tables.ParseTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %v: %w", path, err)
	}
	defer f.Close()

	g, errs := grammar.LoadGrammar(f)
	if errs.HasFatal() {
		return nil, nil, errs
	}
	reportWarnings(errs)

	table, errs := grammar.BuildLL1Table(g)
	if errs.HasFatal() {
		return nil, nil, errs
	}
	reportWarnings(errs)

	return g, tables.FromGrammar(g, table), nil
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
