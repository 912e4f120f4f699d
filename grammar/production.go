package grammar

import (
	"fmt"

	"github.com/cnf/structhash"
)

// productionID is a stable identity for a production's (LHS, RHS) pair,
// used to detect duplicate productions and as a map key. The teacher hashes
// this with sha256 over a hand-built byte sequence (production.go,
// genProductionID); we use structhash, already part of this project's
// dependency surface (DESIGN.md), over a plain struct instead.
type productionID string

func genProductionID(lhs Symbol, rhs []Symbol) productionID {
	key := struct {
		LHS string
		RHS []string
	}{
		LHS: lhs.String(),
	}
	for _, sym := range rhs {
		key.RHS = append(key.RHS, sym.String())
	}
	h, err := structhash.Hash(key, 1)
	if err != nil {
		// structhash only fails on unhashable types; key is a plain
		// struct of strings, so this cannot happen.
		panic(fmt.Sprintf("hashing production key: %v", err))
	}
	return productionID(h)
}

// Production is a single grammar rule A → X1...Xn, per spec.md §3. RHS may
// be a single Epsilon symbol, representing the empty right-hand side.
type Production struct {
	id  productionID
	LHS Symbol
	RHS []Symbol

	// Index is the production's position in the grammar's ordered
	// production list, assigned in file order, and is its identity in
	// the LL(1) table.
	Index int
}

func newProduction(lhs Symbol, rhs []Symbol) *Production {
	return &Production{
		id:  genProductionID(lhs, rhs),
		LHS: lhs,
		RHS: rhs,
	}
}

// IsEpsilon reports whether the production's RHS is the empty string.
func (p *Production) IsEpsilon() bool {
	return len(p.RHS) == 1 && p.RHS[0].IsEpsilon()
}

func (p *Production) String() string {
	return fmt.Sprintf("%v -> %v", p.LHS, p.RHS)
}

// productionSet holds every production of a grammar, indexed by LHS and by
// identity, and assigns sequential indices in file order — grounded on
// production.go's productionSet (append/findByLHS/findByID), generalized
// from the teacher's start-symbol-gets-index-1 numbering (which mattered
// for its LALR augmented grammar) to spec.md §3's plain "productions[0] has
// the start symbol as LHS" invariant.
type productionSet struct {
	byLHS map[Symbol][]*Production
	byID  map[productionID]*Production
	all   []*Production
}

func newProductionSet() *productionSet {
	return &productionSet{
		byLHS: map[Symbol][]*Production{},
		byID:  map[productionID]*Production{},
	}
}

// append adds prod to the set, assigning it the next sequential index.
// Returns false if an identical (LHS, RHS) production already exists.
func (ps *productionSet) append(prod *Production) bool {
	if _, ok := ps.byID[prod.id]; ok {
		return false
	}
	prod.Index = len(ps.all)
	ps.all = append(ps.all, prod)
	ps.byLHS[prod.LHS] = append(ps.byLHS[prod.LHS], prod)
	ps.byID[prod.id] = prod
	return true
}

func (ps *productionSet) findByLHS(lhs Symbol) []*Production {
	return ps.byLHS[lhs]
}

func (ps *productionSet) getAll() []*Production {
	return ps.all
}
