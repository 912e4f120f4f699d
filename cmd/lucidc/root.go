package main

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lucidlang/lucidc/ast"
	lerr "github.com/lucidlang/lucidc/error"
	"github.com/lucidlang/lucidc/grammar"
	"github.com/lucidlang/lucidc/lexer"
	"github.com/lucidlang/lucidc/lexical"
	"github.com/lucidlang/lucidc/parser"
)

//go:embed lex_rules.txt
var defaultLexRules string

//go:embed grammar.txt
var defaultGrammar string

var rootFlags = struct {
	color *bool
}{}

var rootCmd = &cobra.Command{
	Use:   "lucidc <source-file>",
	Short: "Lex and parse a source file, printing its AST",
	Long: `lucidc compiles its own bundled lex rules and grammar at startup,
then lexes and parses the given source file, printing the resulting AST.`,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runCompile,
}

func init() {
	rootFlags.color = rootCmd.Flags().Bool("color", false, "print the AST with colorized tree output")
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

// buildPipeline compiles the embedded default rules and grammar into a
// lexer spec and a parser table, per the pipeline's "offline or at
// program start" compilation timing. A fatal error here means lucidc's
// own bundled language definition is broken, not the user's source.
func buildPipeline() (lexer.Spec, *grammar.Grammar, *grammar.LL1Table, error) {
	rs, errs := lexical.LoadRules(strings.NewReader(defaultLexRules))
	if errs.HasFatal() {
		return nil, nil, nil, fmt.Errorf("loading default lex rules: %w", errs)
	}
	d, errs := lexical.Compile(rs)
	if errs.HasFatal() {
		return nil, nil, nil, fmt.Errorf("compiling default lex rules: %w", errs)
	}

	gram, errs := grammar.LoadGrammar(strings.NewReader(defaultGrammar))
	if errs.HasFatal() {
		return nil, nil, nil, fmt.Errorf("loading default grammar: %w", errs)
	}
	table, errs := grammar.BuildLL1Table(gram)
	if errs.HasFatal() {
		return nil, nil, nil, fmt.Errorf("building default parse table: %w", errs)
	}

	return d.AsLexSpec(), gram, table, nil
}

func runCompile(cmd *cobra.Command, args []string) error {
	spec, gram, table, err := buildPipeline()
	if err != nil {
		return err
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %v: %w", args[0], err)
	}

	lx := lexer.NewLexer(spec, src)
	p := parser.NewParser(gram, table, lx)
	root, err := p.Parse()
	if err != nil {
		if lerrErr, ok := err.(*lerr.Error); ok {
			lerrErr.SourcePath = args[0]
		}
		return err
	}

	if *rootFlags.color {
		ast.PrintColor(root)
	} else {
		ast.Print(os.Stdout, root)
	}
	return nil
}
