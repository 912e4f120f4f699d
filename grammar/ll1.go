package grammar

import (
	lerr "github.com/lucidlang/lucidc/error"
)

// elsePartNonTerminal is the non-terminal carrying the dangling-else
// ambiguity, resolved at lookup time per spec.md §4.5's runtime
// special-case rather than baked into the built table.
var elsePartNonTerminal = NonTerminal("<else_part>")

// elseTerminal is the lookahead that should steer <else_part> towards its
// non-ε production regardless of what the table holds.
var elseTerminal = Terminal("else")

type cellKey struct {
	nt Symbol
	la Symbol
}

// LL1Table is the predictive parsing table of spec.md §3/§4.5: for a
// (non-terminal, lookahead) pair, the index of the production to expand.
type LL1Table struct {
	entries map[cellKey]int
	// elseProd and elseEpsilonProd cache the two <else_part> productions
	// so LookupEntry can apply the dangling-else special case without
	// re-scanning the grammar on every lookup.
	elseProd        int
	elseEpsilonProd int
	haveElse        bool
}

func newLL1Table() *LL1Table {
	return &LL1Table{entries: map[cellKey]int{}}
}

func (t *LL1Table) set(nt, la Symbol, prodIndex int) {
	t.entries[cellKey{nt, la}] = prodIndex
}

func (t *LL1Table) get(nt, la Symbol) (int, bool) {
	i, ok := t.entries[cellKey{nt, la}]
	return i, ok
}

// Entry is a single written cell of the table, exposed for callers (the
// tables package's interchange-format builder) that need to serialize
// the whole table rather than look up one cell at a time.
type Entry struct {
	NonTerminal Symbol
	Lookahead   Symbol
	Production  int
}

// Entries returns every cell written into the table during construction.
func (t *LL1Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for k, v := range t.entries {
		out = append(out, Entry{NonTerminal: k.nt, Lookahead: k.la, Production: v})
	}
	return out
}

// LookupEntry resolves T[nt, lookahead], baking in the dangling-else
// special case of spec.md §4.5: for <else_part>, prefer the else-starting
// production when the lookahead is "else", and prefer the ε production
// otherwise, regardless of what was written into the table during
// construction.
func (t *LL1Table) LookupEntry(nt, lookahead Symbol) (int, bool) {
	if t.haveElse && nt == elsePartNonTerminal {
		if lookahead == elseTerminal {
			return t.elseProd, true
		}
		return t.elseEpsilonProd, true
	}
	return t.get(nt, lookahead)
}

// BuildLL1Table constructs the LL(1) predictive parsing table for g, per
// spec.md §4.5: for each production A → α with index i, compute
// FIRST(α); for each terminal in that set, try to write T[A, a] = i; if α
// is nullable, also try to write T[A, b] = i for every b in FOLLOW(A).
//
// Conflicts are resolved by the shift-over-reduce-style policy: if exactly
// one of the two competing productions has an ε-only RHS, the non-ε one
// wins and a warning is recorded; a conflict between two non-ε productions
// is fatal. Grounded structurally on the teacher's lrTableBuilder.build
// (try-to-write-a-cell, detect-and-resolve-conflict loop over LALR1
// actions), generalized from shift/reduce conflicts to the ε-vs-non-ε
// policy spec.md §4.5 defines for LL(1).
func BuildLL1Table(g *Grammar) (*LL1Table, lerr.Errors) {
	t := newLL1Table()
	var errs lerr.Errors

	for _, prod := range g.Productions() {
		fst, nullable := g.FirstOfSequence(prod.RHS)
		for _, a := range fst {
			if a.IsEpsilon() {
				continue
			}
			if err := writeCell(t, g, prod, prod.LHS, a); err != nil {
				errs = append(errs, err)
			}
		}
		if nullable {
			follow, eof := g.Follow(prod.LHS)
			for _, b := range follow {
				if err := writeCell(t, g, prod, prod.LHS, b); err != nil {
					errs = append(errs, err)
				}
			}
			if eof {
				if err := writeCell(t, g, prod, prod.LHS, EndOfInput); err != nil {
					errs = append(errs, err)
				}
			}
		}
	}

	for _, prod := range g.ProductionsFor(elsePartNonTerminal) {
		if prod.IsEpsilon() {
			t.elseEpsilonProd = prod.Index
			t.haveElse = true
		} else if len(prod.RHS) > 0 && prod.RHS[0] == elseTerminal {
			t.elseProd = prod.Index
			t.haveElse = true
		}
	}

	return t, errs
}

// writeCell attempts to set T[nt, la] = prod.Index, applying spec.md
// §4.5's conflict policy when the cell is already occupied.
func writeCell(t *LL1Table, g *Grammar, prod *Production, nt, la Symbol) *lerr.Error {
	existingIdx, ok := t.get(nt, la)
	if !ok {
		t.set(nt, la, prod.Index)
		return nil
	}
	if existingIdx == prod.Index {
		return nil
	}

	existing := findProductionByIndex(g, existingIdx)
	switch {
	case existing.IsEpsilon() && !prod.IsEpsilon():
		t.set(nt, la, prod.Index)
		return lerr.Warningf(lerr.LL1Conflict, lerr.Location{},
			"LL(1) conflict at (%v, %v): preferring non-ε production %v over ε production %v",
			nt, la, prod, existing)
	case !existing.IsEpsilon() && prod.IsEpsilon():
		return lerr.Warningf(lerr.LL1Conflict, lerr.Location{},
			"LL(1) conflict at (%v, %v): keeping non-ε production %v over ε production %v",
			nt, la, existing, prod)
	default:
		return lerr.Newf(lerr.LL1Conflict, lerr.Location{},
			"hard LL(1) conflict at (%v, %v) between productions %v and %v",
			nt, la, existing, prod)
	}
}

func findProductionByIndex(g *Grammar, idx int) *Production {
	prods := g.Productions()
	if idx < 0 || idx >= len(prods) {
		return nil
	}
	return prods[idx]
}
