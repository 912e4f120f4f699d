package tables

import (
	"strings"
	"testing"

	"github.com/lucidlang/lucidc/grammar"
	"github.com/lucidlang/lucidc/lexical/dfa"
	"github.com/lucidlang/lucidc/lexical/nfa"
)

func TestFromDFA(t *testing.T) {
	frag := nfa.Literal('a')
	frag.TagAccept("a", 10)
	combined := nfa.Combine([]*nfa.NFA{frag})
	d, errs := dfa.Build(combined)
	if errs.HasFatal() {
		t.Fatalf("Build: %v", errs)
	}
	d = dfa.Minimize(d)

	lt := FromDFA(d)
	if lt.StateCount != len(d.States) {
		t.Fatalf("StateCount = %v, want %v", lt.StateCount, len(d.States))
	}
	if lt.Start != int(d.Start) {
		t.Fatalf("Start = %v, want %v", lt.Start, d.Start)
	}
	row, ok := lt.Trans[lt.Start]
	if !ok || row['a'] == 0 && len(row) == 0 {
		t.Fatalf("Trans[start] = %v, want an edge on 'a'", row)
	}
	foundAccept := false
	for _, name := range lt.Accept {
		if name == "a" {
			foundAccept = true
		}
	}
	if !foundAccept {
		t.Fatalf("Accept = %v, want a state tagged \"a\"", lt.Accept)
	}
}

func TestFromGrammar(t *testing.T) {
	g, errs := grammar.LoadGrammar(strings.NewReader(`
<s> a <s> | ε
`))
	if errs.HasFatal() {
		t.Fatalf("LoadGrammar: %v", errs)
	}
	tbl, errs := grammar.BuildLL1Table(g)
	if errs.HasFatal() {
		t.Fatalf("BuildLL1Table: %v", errs)
	}

	pt := FromGrammar(g, tbl)
	if pt.Start != "<s>" {
		t.Fatalf("Start = %v, want <s>", pt.Start)
	}
	if len(pt.Productions) != 2 {
		t.Fatalf("Productions = %v, want 2", pt.Productions)
	}
	if len(pt.Cells) == 0 {
		t.Fatalf("Cells is empty, want at least one written table cell")
	}
}

func TestEmitGoLexTable(t *testing.T) {
	lt := &LexTable{
		Start:      0,
		StateCount: 2,
		Trans:      map[int]map[byte]int{0: {'a': 1}},
		Accept:     map[int]string{1: "a"},
	}
	src, err := EmitGoLexTable(lt, "tables_test", "demo")
	if err != nil {
		t.Fatalf("EmitGoLexTable: %v", err)
	}
	out := string(src)
	for _, want := range []string{"package tables_test", "demoStart = 0", "demoTrans", "demoAccept"} {
		if !strings.Contains(out, want) {
			t.Errorf("generated source missing %q:\n%v", want, out)
		}
	}
}

func TestEmitGoParseTable(t *testing.T) {
	pt := &ParseTable{
		Start:        "<s>",
		Terminals:    []string{"a"},
		NonTerminals: []string{"<s>"},
		Productions:  []ProductionEntry{{LHS: "<s>", RHS: []string{"a", "<s>"}}},
		Cells:        []TableCell{{NonTerminal: "<s>", Lookahead: "a", Production: 0}},
	}
	src, err := EmitGoParseTable(pt, "tables_test", "demo")
	if err != nil {
		t.Fatalf("EmitGoParseTable: %v", err)
	}
	out := string(src)
	for _, want := range []string{"package tables_test", `demoStart = "<s>"`, "demoProductions", "demoCells"} {
		if !strings.Contains(out, want) {
			t.Errorf("generated source missing %q:\n%v", want, out)
		}
	}
}
