package grammar

import (
	"bufio"
	"io"
	"strings"

	lerr "github.com/lucidlang/lucidc/error"
)

// Grammar is a context-free grammar loaded from a rule file, together with
// its computed FIRST and FOLLOW sets, per spec.md §4.4. Grounded on
// grammar.go's Grammar struct, stripped of everything LALR/lexical-spec
// specific (precedence, associativity, AST action directives, maleeni
// wiring) since this project's grammar is a plain LL(1) one.
type Grammar struct {
	Start         Symbol
	Terminals     []Symbol
	NonTerminals  []Symbol
	productionSet *productionSet
	first         *firstSet
	follow        *followSet
}

// Productions returns every production of the grammar, in file order.
func (g *Grammar) Productions() []*Production {
	return g.productionSet.getAll()
}

// ProductionsFor returns the productions whose LHS is lhs, in file order.
func (g *Grammar) ProductionsFor(lhs Symbol) []*Production {
	return g.productionSet.findByLHS(lhs)
}

// First returns FIRST(sym): the terminals that can begin a string derived
// from sym, and whether sym is nullable.
func (g *Grammar) First(sym Symbol) (symbols []Symbol, nullable bool) {
	e := g.first.entry(sym)
	if e == nil {
		return nil, false
	}
	return e.symbols.sorted(), e.nullable
}

// FirstOfSequence returns FIRST(syms), per spec.md §4.4's definition of
// FIRST of a sequence.
func (g *Grammar) FirstOfSequence(syms []Symbol) (symbols []Symbol, nullable bool) {
	e := g.first.sequence(syms, 0)
	return e.symbols.sorted(), e.nullable
}

// Follow returns FOLLOW(nt): the terminals that can immediately follow nt,
// and whether $ ∈ FOLLOW(nt).
func (g *Grammar) Follow(nt Symbol) (symbols []Symbol, eof bool) {
	e := g.follow.entry(nt)
	if e == nil {
		return nil, false
	}
	return e.symbols.sorted(), e.eof
}

// LoadGrammar reads a rule file in the format of spec.md §4.4: each line is
// `<NT> rhs1 rhs2 ...`, where a RHS token is `<NT>` (non-terminal), `ε`
// (epsilon), `|` (alternative separator), or anything else (terminal). The
// first line's LHS is the start symbol. Multiple `|`-separated alternatives
// on one line become separate productions, and every production is
// assigned a sequential, stable index in file order.
//
// Grounded on grammar.go's GrammarBuilder.Build for the overall "parse
// lines, build a productionSet, then run the FIRST/FOLLOW fixpoints"
// shape, generalized from the teacher's AST-node-driven spec format to
// spec.md's flat line format.
func LoadGrammar(r io.Reader) (*Grammar, lerr.Errors) {
	prods := newProductionSet()
	var errs lerr.Errors
	var start Symbol
	haveStart := false

	terminals := newSymbolSet()
	nonTerminals := newSymbolSet()

	s := bufio.NewScanner(r)
	lineNo := 0
	for s.Scan() {
		lineNo++
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 1 {
			continue
		}

		lhs := parseSymbol(fields[0], nonTerminals, terminals, true)
		if !lhs.IsNonTerminal() {
			errs = append(errs, lerr.Newf(lerr.GrammarSyntax, lerr.Location{Line: lineNo},
				"left-hand side must be a non-terminal: %v", fields[0]))
			continue
		}
		if !haveStart {
			start = lhs
			haveStart = true
		}

		for _, altFields := range splitAlternatives(fields[1:]) {
			rhs := make([]Symbol, 0, len(altFields))
			if len(altFields) == 0 {
				rhs = append(rhs, Epsilon)
			}
			for _, f := range altFields {
				if f == "ε" || f == "epsilon" {
					rhs = append(rhs, Epsilon)
					continue
				}
				rhs = append(rhs, parseSymbol(f, nonTerminals, terminals, false))
			}
			prod := newProduction(lhs, rhs)
			if !prods.append(prod) {
				errs = append(errs, lerr.Warningf(lerr.GrammarSyntax, lerr.Location{Line: lineNo},
					"duplicate production ignored: %v", prod))
			}
		}
	}
	if err := s.Err(); err != nil {
		errs = append(errs, lerr.Newf(lerr.IO, lerr.Location{}, "reading grammar: %v", err))
		return nil, errs
	}
	if !haveStart {
		errs = append(errs, lerr.New(lerr.GrammarSyntax, lerr.Location{}, "grammar file has no productions"))
		return nil, errs
	}

	for sym := range nonTerminals {
		delete(terminals, sym)
	}

	fst := computeFirst(prods)
	flw := computeFollow(prods, start, fst)

	return &Grammar{
		Start:         start,
		Terminals:     terminals.sorted(),
		NonTerminals:  nonTerminals.sorted(),
		productionSet: prods,
		first:         fst,
		follow:        flw,
	}, errs
}

// parseSymbol classifies a raw rule-file token as a non-terminal (wrapped
// in <...>) or a terminal (anything else), per spec.md §4.4, recording it
// in the appropriate running set so the caller can report the grammar's
// full terminal/non-terminal vocabularies once loading completes.
func parseSymbol(raw string, nonTerminals, terminals symbolSet, isLHS bool) Symbol {
	if strings.HasPrefix(raw, "<") && strings.HasSuffix(raw, ">") {
		sym := NonTerminal(raw)
		nonTerminals.add(sym)
		return sym
	}
	sym := Terminal(raw)
	if !isLHS {
		terminals.add(sym)
	}
	return sym
}

// splitAlternatives splits a RHS token list on "|" into separate
// alternatives, per spec.md §4.4's "tolerates multiple alternatives
// separated by | on one line" rule.
func splitAlternatives(fields []string) [][]string {
	var alts [][]string
	cur := []string{}
	for _, f := range fields {
		if f == "|" {
			alts = append(alts, cur)
			cur = []string{}
			continue
		}
		cur = append(cur, f)
	}
	alts = append(alts, cur)
	return alts
}
