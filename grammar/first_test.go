package grammar

import (
	"strings"
	"testing"
)

func TestComputeFirst(t *testing.T) {
	tests := []struct {
		caption  string
		src      string
		nt       string
		symbols  []string
		nullable bool
	}{
		{
			caption: "left-recursive expression grammar",
			src: `
<expr> <expr> + <term> | <term>
<term> <term> * <factor> | <factor>
<factor> ( <expr> ) | id
`,
			nt:      "<expr>",
			symbols: []string{"(", "id"},
		},
		{
			caption: "start production is nullable",
			src: `
<s>
`,
			nt:       "<s>",
			symbols:  []string{},
			nullable: true,
		},
		{
			caption: "a non-terminal contains an epsilon alternative",
			src: `
<s> <foo> bar
<foo> ε
`,
			nt:      "<s>",
			symbols: []string{"bar"},
		},
		{
			caption: "FIRST(foo) is nullable and propagates the empty flag",
			src: `
<s> <foo>
<foo> ε
`,
			nt:       "<s>",
			symbols:  []string{},
			nullable: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g, errs := LoadGrammar(strings.NewReader(tt.src))
			if errs.HasFatal() {
				t.Fatalf("unexpected fatal errors: %v", errs)
			}

			symbols, nullable := g.First(NonTerminal(tt.nt))
			if nullable != tt.nullable {
				t.Errorf("nullable mismatch for %v\nwant: %v\ngot: %v", tt.nt, tt.nullable, nullable)
			}

			assertSameNames(t, tt.nt, symbols, tt.symbols)
		})
	}
}

func assertSameNames(t *testing.T, label string, actual []Symbol, want []string) {
	t.Helper()
	if len(actual) != len(want) {
		t.Fatalf("%v: symbol count mismatch\nwant: %v\ngot: %v", label, want, actual)
	}
	seen := map[string]bool{}
	for _, s := range actual {
		seen[s.Name()] = true
	}
	for _, w := range want {
		if !seen[w] {
			t.Errorf("%v: missing expected symbol %v\ngot: %v", label, w, actual)
		}
	}
}
