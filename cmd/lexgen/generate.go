package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lucidlang/lucidc/lexical"
	"github.com/lucidlang/lucidc/tables"
)

var generateFlags = struct {
	output *string
	pkg    *string
	name   *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "generate <rules-file>",
		Short:   "Compile a lex-rules file and emit Go source declaring its LexTable",
		Example: `  lexgen generate rules.lex --pkg tables -o rules_table.go`,
		Args:    cobra.ExactArgs(1),
		RunE:    runGenerate,
	}
	generateFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	generateFlags.pkg = cmd.Flags().String("pkg", "main", "package name of the generated file")
	generateFlags.name = cmd.Flags().String("name", "Lex", "identifier prefix for the generated vars")
	rootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
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
	src, err := tables.EmitGoLexTable(lt, *generateFlags.pkg, *generateFlags.name)
	if err != nil {
		return fmt.Errorf("emitting Go source: %w", err)
	}

	return writeOutput(*generateFlags.output, src)
}
