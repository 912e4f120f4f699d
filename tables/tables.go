// Package tables defines the JSON interchange format the offline
// generators (lexgen, grammargen) write, per spec.md §6's "Generated
// artifacts": a minimized DFA as a LexTable, and an LL(1) grammar plus
// its predictive table as a ParseTable. Nothing in this module reads
// these tables back; cmd/lucidc builds its tables at startup.
//
// Grounded on the teacher's top-level spec package (spec/lexer.go,
// spec/grammar.go), which plays the identical "plain data struct with
// JSON tags, shared between a generator CLI and a runtime driver" role;
// the teacher's Table there is keyed by a packed state/symbol pair,
// generalized here to lucidc's separate Lex/Parse artifacts.
package tables

import (
	"sort"

	"github.com/lucidlang/lucidc/grammar"
	"github.com/lucidlang/lucidc/lexical/dfa"
)

// LexTable is the JSON-serializable form of a minimized DFA.
type LexTable struct {
	Start      int                  `json:"start"`
	StateCount int                  `json:"stateCount"`
	Trans      map[int]map[byte]int `json:"trans"`
	Accept     map[int]string       `json:"accept"`
}

// FromDFA builds a LexTable from a compiled, minimized automaton.
func FromDFA(d *dfa.DFA) *LexTable {
	t := &LexTable{
		Start:      int(d.Start),
		StateCount: len(d.States),
		Trans:      map[int]map[byte]int{},
		Accept:     map[int]string{},
	}
	for i, s := range d.States {
		if len(s.Trans) > 0 {
			row := make(map[byte]int, len(s.Trans))
			for c, to := range s.Trans {
				row[byte(c)] = int(to)
			}
			t.Trans[i] = row
		}
		if s.Accept {
			t.Accept[i] = s.TokenName
		}
	}
	return t
}

// ProductionEntry is one grammar production, its RHS in file order.
type ProductionEntry struct {
	LHS string   `json:"lhs"`
	RHS []string `json:"rhs"`
}

// TableCell is one written (non-terminal, lookahead) -> production cell
// of the LL(1) predictive table, indexing into Terminals/NonTerminals by
// name rather than by Go struct value so the whole table round-trips
// through JSON.
type TableCell struct {
	NonTerminal string `json:"nt"`
	Lookahead   string `json:"la"`
	Production  int    `json:"prod"`
}

// ParseTable is the JSON-serializable form of a grammar's vocabulary,
// its productions, and its predictive table.
type ParseTable struct {
	Start        string            `json:"start"`
	Terminals    []string          `json:"terminals"`
	NonTerminals []string          `json:"nonTerminals"`
	Productions  []ProductionEntry `json:"productions"`
	Cells        []TableCell       `json:"cells"`
}

// FromGrammar builds a ParseTable from a loaded grammar and its built
// LL(1) table.
func FromGrammar(g *grammar.Grammar, t *grammar.LL1Table) *ParseTable {
	pt := &ParseTable{Start: g.Start.Name()}

	for _, sym := range g.Terminals {
		pt.Terminals = append(pt.Terminals, sym.Name())
	}
	for _, sym := range g.NonTerminals {
		pt.NonTerminals = append(pt.NonTerminals, sym.Name())
	}

	for _, prod := range g.Productions() {
		entry := ProductionEntry{LHS: prod.LHS.Name()}
		for _, sym := range prod.RHS {
			entry.RHS = append(entry.RHS, sym.Name())
		}
		pt.Productions = append(pt.Productions, entry)
	}

	for _, e := range t.Entries() {
		pt.Cells = append(pt.Cells, TableCell{
			NonTerminal: e.NonTerminal.Name(),
			Lookahead:   e.Lookahead.Name(),
			Production:  e.Production,
		})
	}
	sort.Slice(pt.Cells, func(i, j int) bool {
		if pt.Cells[i].NonTerminal != pt.Cells[j].NonTerminal {
			return pt.Cells[i].NonTerminal < pt.Cells[j].NonTerminal
		}
		return pt.Cells[i].Lookahead < pt.Cells[j].Lookahead
	})

	return pt
}
