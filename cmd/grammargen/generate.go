package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucidlang/lucidc/tables"
)

var generateFlags = struct {
	output *string
	pkg    *string
	name   *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "generate <grammar-file>",
		Short:   "Compile a grammar file and emit Go source declaring its ParseTable",
		Example: `  grammargen generate grammar.gr --pkg tables -o grammar_table.go`,
		Args:    cobra.ExactArgs(1),
		RunE:    runGenerate,
	}
	generateFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	generateFlags.pkg = cmd.Flags().String("pkg", "main", "package name of the generated file")
	generateFlags.name = cmd.Flags().String("name", "Parse", "identifier prefix for the generated vars")
	rootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	_, pt, err := buildTable(args[0])
	if err != nil {
		return err
	}

	src, err := tables.EmitGoParseTable(pt, *generateFlags.pkg, *generateFlags.name)
	if err != nil {
		return fmt.Errorf("emitting Go source: %w", err)
	}

	return writeOutput(*generateFlags.output, src)
}
