package grammar

import (
	"strings"
	"testing"
)

func TestBuildLL1Table(t *testing.T) {
	src := `
<expr> <term> <expr_prime>
<expr_prime> + <term> <expr_prime> | ε
<term> id
`
	g, errs := LoadGrammar(strings.NewReader(src))
	if errs.HasFatal() {
		t.Fatalf("unexpected fatal errors: %v", errs)
	}

	table, buildErrs := BuildLL1Table(g)
	if buildErrs.HasFatal() {
		t.Fatalf("unexpected fatal conflicts: %v", buildErrs)
	}

	if _, ok := table.LookupEntry(NonTerminal("<expr>"), Terminal("id")); !ok {
		t.Errorf("expected an entry for (<expr>, id)")
	}
	if _, ok := table.LookupEntry(NonTerminal("<expr_prime>"), Terminal("+")); !ok {
		t.Errorf("expected an entry for (<expr_prime>, +)")
	}
	if _, ok := table.LookupEntry(NonTerminal("<expr_prime>"), EndOfInput); !ok {
		t.Errorf("expected the epsilon production to be reachable via FOLLOW($)")
	}
}

func TestBuildLL1TableHardConflict(t *testing.T) {
	src := `
<s> <a> | <b>
<a> x
<b> x
`
	g, errs := LoadGrammar(strings.NewReader(src))
	if errs.HasFatal() {
		t.Fatalf("unexpected fatal errors loading grammar: %v", errs)
	}

	_, buildErrs := BuildLL1Table(g)
	if !buildErrs.HasFatal() {
		t.Fatalf("expected a hard LL(1) conflict, got none: %v", buildErrs)
	}
}

func TestElsePartLookupSpecialCase(t *testing.T) {
	src := `
<if_stat> if <expr> <else_part>
<else_part> else <if_stat> | ε
<expr> id
`
	g, errs := LoadGrammar(strings.NewReader(src))
	if errs.HasFatal() {
		t.Fatalf("unexpected fatal errors: %v", errs)
	}

	table, buildErrs := BuildLL1Table(g)
	_ = buildErrs

	idx, ok := table.LookupEntry(NonTerminal("<else_part>"), Terminal("else"))
	if !ok {
		t.Fatalf("expected an <else_part> entry for lookahead 'else'")
	}
	prod := findProductionByIndex(g, idx)
	if prod.IsEpsilon() {
		t.Errorf("expected the non-epsilon production for lookahead 'else', got the epsilon one")
	}

	idx, ok = table.LookupEntry(NonTerminal("<else_part>"), EndOfInput)
	if !ok {
		t.Fatalf("expected an <else_part> entry for lookahead $")
	}
	prod = findProductionByIndex(g, idx)
	if !prod.IsEpsilon() {
		t.Errorf("expected the epsilon production for any lookahead other than 'else'")
	}
}
