package grammar

// followEntry is FOLLOW(A): the terminals that can immediately follow A in
// some sentential form, plus a flag for whether $ ∈ FOLLOW(A). Grounded on
// follow.go's followEntry (merge/addEOF), adapted to Symbol/firstEntry.
type followEntry struct {
	symbols symbolSet
	eof     bool
}

func newFollowEntry() *followEntry {
	return &followEntry{symbols: newSymbolSet()}
}

func (e *followEntry) add(sym Symbol) bool {
	return e.symbols.add(sym)
}

func (e *followEntry) addEOF() bool {
	if e.eof {
		return false
	}
	e.eof = true
	return true
}

func (e *followEntry) merge(fst *firstEntry, flw *followEntry) bool {
	changed := false
	if fst != nil {
		for sym := range fst.symbols {
			if e.add(sym) {
				changed = true
			}
		}
	}
	if flw != nil {
		for sym := range flw.symbols {
			if e.add(sym) {
				changed = true
			}
		}
		if flw.eof && e.addEOF() {
			changed = true
		}
	}
	return changed
}

type followSet struct {
	set map[Symbol]*followEntry
}

func newFollowSetFor(prods *productionSet) *followSet {
	flw := &followSet{set: map[Symbol]*followEntry{}}
	for _, prod := range prods.getAll() {
		if _, ok := flw.set[prod.LHS]; !ok {
			flw.set[prod.LHS] = newFollowEntry()
		}
	}
	return flw
}

func (flw *followSet) entry(sym Symbol) *followEntry {
	return flw.set[sym]
}

// computeFollow runs the FOLLOW fixpoint of spec.md §4.4: seed
// FOLLOW(start) with $, then for every production A -> αBβ, add
// FIRST(β)-{ε} to FOLLOW(B), and FOLLOW(A) to FOLLOW(B) when β is nullable,
// until nothing changes. Grounded on follow.go's genFollowSet, adapted to
// Symbol/firstSet.sequence.
func computeFollow(prods *productionSet, start Symbol, fst *firstSet) *followSet {
	flw := newFollowSetFor(prods)
	for {
		changed := false
		for ntsym := range flw.set {
			e := flw.entry(ntsym)
			if ntsym == start {
				if e.addEOF() {
					changed = true
				}
			}
			for _, prod := range prods.getAll() {
				for i, sym := range prod.RHS {
					if sym != ntsym {
						continue
					}
					beta := fst.sequence(prod.RHS, i+1)
					if e.merge(beta, nil) {
						changed = true
					}
					if beta.nullable {
						if e.merge(nil, flw.entry(prod.LHS)) {
							changed = true
						}
					}
				}
			}
		}
		if !changed {
			break
		}
	}
	return flw
}
