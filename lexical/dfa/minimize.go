package dfa

import (
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

func stateIDComparator(a, b interface{}) int {
	return utils.IntComparator(int(a.(StateID)), int(b.(StateID)))
}

// block is a partition block during minimization, held as a treeset so
// membership is ordered and deduplicated, grounded on
// npillmayer-gorgo/lr/tables.go's treeset.NewWith(stateComparator) usage
// for the same "set of automaton state ids" role lexical/nfa's StateSet
// fills during closure computation.
type block struct {
	set *treeset.Set
}

func newBlock(ids []StateID) *block {
	set := treeset.NewWith(stateIDComparator)
	for _, id := range ids {
		set.Add(id)
	}
	return &block{set: set}
}

func (b *block) members() []StateID {
	vals := b.set.Values()
	out := make([]StateID, len(vals))
	for i, v := range vals {
		out[i] = v.(StateID)
	}
	return out
}

func (b *block) representative(preferred StateID) StateID {
	if b.set.Contains(preferred) {
		return preferred
	}
	return b.members()[0]
}

// Minimize runs Hopcroft-style partition refinement over d, per spec.md
// §4.3: start from one block of all non-accepting states plus one block
// per distinct accepting token_name, then repeatedly split blocks by
// the signature of their members' transition targets (as block
// indices) until no block splits further.
func Minimize(d *DFA) *DFA {
	blocks := initialPartition(d)

	for {
		blockOf := indexBlocks(blocks)
		var next []*block
		changed := false
		for _, b := range blocks {
			groups := splitBySignature(d, b, blockOf)
			if len(groups) > 1 {
				changed = true
			}
			next = append(next, groups...)
		}
		blocks = next
		if !changed {
			break
		}
	}

	return rebuild(d, blocks)
}

// initialPartition builds spec.md §4.3 step 1's starting blocks.
func initialPartition(d *DFA) []*block {
	var nonAccepting []StateID
	byToken := map[string][]StateID{}
	for i, s := range d.States {
		id := StateID(i)
		if !s.Accept {
			nonAccepting = append(nonAccepting, id)
			continue
		}
		byToken[s.TokenName] = append(byToken[s.TokenName], id)
	}

	var blocks []*block
	if len(nonAccepting) > 0 {
		blocks = append(blocks, newBlock(nonAccepting))
	}
	tokens := make([]string, 0, len(byToken))
	for tok := range byToken {
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)
	for _, tok := range tokens {
		blocks = append(blocks, newBlock(byToken[tok]))
	}
	return blocks
}

// indexBlocks maps each state to the index of the block containing it.
func indexBlocks(blocks []*block) map[StateID]int {
	idx := map[StateID]int{}
	for i, b := range blocks {
		for _, s := range b.members() {
			idx[s] = i
		}
	}
	return idx
}

// splitBySignature partitions b by each member's signature: the vector,
// over the DFA's alphabet, of the block index reached by each character
// (or -1 if no transition), per spec.md §4.3 step 2.
func splitBySignature(d *DFA, b *block, blockOf map[StateID]int) []*block {
	chars := alphabetOf(d)
	sigOf := func(s StateID) string {
		sig := make([]int, len(chars))
		for i, c := range chars {
			if to, ok := d.States[s].Trans[c]; ok {
				sig[i] = blockOf[to] + 1
			} else {
				sig[i] = 0
			}
		}
		return intsKey(sig)
	}

	groups := map[string][]StateID{}
	var order []string
	for _, s := range b.members() {
		key := sigOf(s)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], s)
	}

	out := make([]*block, 0, len(order))
	for _, key := range order {
		out = append(out, newBlock(groups[key]))
	}
	return out
}

func intsKey(xs []int) string {
	b := make([]byte, 0, len(xs)*5)
	for _, x := range xs {
		b = append(b, byte(x>>24), byte(x>>16), byte(x>>8), byte(x), ',')
	}
	return string(b)
}

// alphabetOf collects every character with at least one transition
// anywhere in d, used as the fixed axis for signature vectors.
func alphabetOf(d *DFA) []rune {
	seen := map[rune]struct{}{}
	for _, s := range d.States {
		for c := range s.Trans {
			seen[c] = struct{}{}
		}
	}
	out := make([]rune, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// rebuild constructs the minimized DFA of spec.md §4.3 step 3: one new
// state per block, preferring the original start state as a block's
// representative when present, with transitions rewired through the
// block-representative mapping.
func rebuild(d *DFA, blocks []*block) *DFA {
	reps := make([]StateID, len(blocks))
	newID := map[StateID]StateID{}
	for i, b := range blocks {
		reps[i] = b.representative(d.Start)
		for _, s := range b.members() {
			newID[s] = StateID(i)
		}
	}

	out := &DFA{}
	for _, rep := range reps {
		src := d.States[rep]
		out.States = append(out.States, &State{
			Trans:     map[rune]StateID{},
			Accept:    src.Accept,
			TokenName: src.TokenName,
			Priority:  src.Priority,
		})
	}
	for i, rep := range reps {
		for c, to := range d.States[rep].Trans {
			out.States[i].Trans[c] = newID[to]
		}
	}

	out.Start = newID[d.Start]
	return out
}
