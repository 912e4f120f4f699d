package grammar

// firstEntry is FIRST(X) for a single symbol X: the set of terminals that
// can begin a string derived from X, plus a flag for whether X is nullable
// (ε ∈ FIRST(X)). Grounded on first.go's firstEntry/firstSet, carrying the
// teacher's "empty flag alongside a symbol set" shape over verbatim.
type firstEntry struct {
	symbols  symbolSet
	nullable bool
}

func newFirstEntry() *firstEntry {
	return &firstEntry{symbols: newSymbolSet()}
}

func (e *firstEntry) add(sym Symbol) bool {
	return e.symbols.add(sym)
}

func (e *firstEntry) addEpsilon() bool {
	if e.nullable {
		return false
	}
	e.nullable = true
	return true
}

func (e *firstEntry) mergeExceptEpsilon(other *firstEntry) bool {
	if other == nil {
		return false
	}
	changed := false
	for sym := range other.symbols {
		if e.add(sym) {
			changed = true
		}
	}
	return changed
}

// firstSet is FIRST(A) for every non-terminal A of a grammar.
type firstSet struct {
	set map[Symbol]*firstEntry
}

func newFirstSetFor(prods *productionSet) *firstSet {
	fst := &firstSet{set: map[Symbol]*firstEntry{}}
	for _, prod := range prods.getAll() {
		if _, ok := fst.set[prod.LHS]; !ok {
			fst.set[prod.LHS] = newFirstEntry()
		}
	}
	return fst
}

func (fst *firstSet) entry(sym Symbol) *firstEntry {
	return fst.set[sym]
}

// sequence computes FIRST(X_head ... X_n) for a production's RHS starting
// at position head, per spec.md §4.4's definition of FIRST of a sequence.
func (fst *firstSet) sequence(rhs []Symbol, head int) *firstEntry {
	entry := newFirstEntry()
	if head >= len(rhs) {
		entry.addEpsilon()
		return entry
	}
	for _, sym := range rhs[head:] {
		if sym.IsEpsilon() {
			entry.addEpsilon()
			return entry
		}
		if sym.IsTerminal() {
			entry.add(sym)
			return entry
		}
		e := fst.entry(sym)
		if e == nil {
			// Unknown non-terminal; a GrammarSyntax error should
			// already have been raised by the loader.
			return entry
		}
		for s := range e.symbols {
			entry.add(s)
		}
		if !e.nullable {
			return entry
		}
	}
	entry.addEpsilon()
	return entry
}

// computeFirst runs the FIRST fixpoint of spec.md §4.4: iterate over every
// production, adding FIRST(RHS) to FIRST(LHS), until nothing changes.
// Grounded on first.go's genFirstSet/genProdFirstEntry outer/inner loop
// shape.
func computeFirst(prods *productionSet) *firstSet {
	fst := newFirstSetFor(prods)
	for {
		changed := false
		for _, prod := range prods.getAll() {
			acc := fst.entry(prod.LHS)
			if genProdFirstEntry(fst, acc, prod) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return fst
}

func genProdFirstEntry(fst *firstSet, acc *firstEntry, prod *Production) bool {
	if prod.IsEpsilon() {
		return acc.addEpsilon()
	}
	changed := false
	for _, sym := range prod.RHS {
		if sym.IsTerminal() {
			if acc.add(sym) {
				changed = true
			}
			return changed
		}
		e := fst.entry(sym)
		if e == nil {
			return changed
		}
		if acc.mergeExceptEpsilon(e) {
			changed = true
		}
		if !e.nullable {
			return changed
		}
	}
	if acc.addEpsilon() {
		changed = true
	}
	return changed
}
