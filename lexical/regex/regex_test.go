package regex

import (
	"testing"

	"github.com/lucidlang/lucidc/lexical/nfa"
)

// simulate runs n over input by repeated ε-closure/move, reporting
// whether the final closure contains n's accept state — a plain NFA
// simulation, independent of the dfa package's subset construction.
func simulate(n *nfa.NFA, input string) bool {
	states := nfa.EpsilonClosure(n, nfa.NewStateSet(n.Start))
	for _, r := range input {
		states = nfa.EpsilonClosure(n, nfa.Move(n, states, r))
		if states.Empty() {
			return false
		}
	}
	return states.Has(n.Accept)
}

func TestProtectTwoCharOps(t *testing.T) {
	got := ProtectTwoCharOps("<=|>=")
	want := "<.=|>.="
	if got != want {
		t.Fatalf("ProtectTwoCharOps = %q, want %q", got, want)
	}
}

func TestExpandMacrosUndefined(t *testing.T) {
	_, errs := ExpandMacros("<rule>", "<missing>", map[string]string{})
	if len(errs) != 1 || errs[0].Message == "" {
		t.Fatalf("errs = %v, want one undefined-macro error", errs)
	}
}

func TestExpandMacrosSelfReferenceSkipped(t *testing.T) {
	out, errs := ExpandMacros("<digit>", "<digit>+", map[string]string{"<digit>": "0|1"})
	if errs.HasFatal() {
		t.Fatalf("errs = %v", errs)
	}
	if out != "<digit>+" {
		t.Fatalf("out = %q, want self-reference left unexpanded", out)
	}
}

func TestInsertConcatBasic(t *testing.T) {
	got := InsertConcat("ab")
	if got != "a.b" {
		t.Fatalf("InsertConcat(ab) = %q, want a.b", got)
	}
	got = InsertConcat("a*b")
	if got != "a*.b" {
		t.Fatalf("InsertConcat(a*b) = %q, want a*.b", got)
	}
	got = InsertConcat("a|b")
	if got != "a|b" {
		t.Fatalf("InsertConcat(a|b) = %q, want unchanged", got)
	}
}

func TestCompileLiteralConcat(t *testing.T) {
	n, err := Compile("a.b")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !simulate(n, "ab") {
		t.Fatalf("expected ab to match a.b")
	}
	if simulate(n, "a") || simulate(n, "abc") {
		t.Fatalf("expected only exact match ab for a.b")
	}
}

func TestCompileUnionAndStar(t *testing.T) {
	n, err := Compile(InsertConcat("(a|b)*"))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	for _, s := range []string{"", "a", "b", "ab", "aabbba"} {
		if !simulate(n, s) {
			t.Errorf("expected %q to match (a|b)*", s)
		}
	}
	if simulate(n, "c") {
		t.Fatalf("expected c not to match (a|b)*")
	}
}

func TestCompilePlusRequiresOne(t *testing.T) {
	n, err := Compile("a+")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if simulate(n, "") {
		t.Fatalf("expected empty string not to match a+")
	}
	if !simulate(n, "a") || !simulate(n, "aaa") {
		t.Fatalf("expected a/aaa to match a+")
	}
}

func TestCompileMalformedRegex(t *testing.T) {
	if _, err := Compile("*"); err == nil {
		t.Fatalf("expected error for operator with no operand")
	}
	if _, err := Compile("a.b)"); err == nil {
		t.Fatalf("expected error for unbalanced parens")
	}
}

func TestInsertConcatLeavesProtectedTwoCharOpAlone(t *testing.T) {
	protected := ProtectTwoCharOps("<=")
	got := InsertConcat(protected)
	if got != "<.=" {
		t.Fatalf("InsertConcat(%q) = %q, want <.= unchanged (no doubled dot)", protected, got)
	}
	n, err := Compile(got)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !simulate(n, "<=") {
		t.Fatalf("expected <= to match its own protected+concatted pattern")
	}
}

func TestCompileEscapedOperator(t *testing.T) {
	n, err := Compile(`\*`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !simulate(n, "*") {
		t.Fatalf("expected literal * to match \\*")
	}
}
