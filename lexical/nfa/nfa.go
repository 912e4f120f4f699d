// Package nfa builds Thompson-construction NFA fragments over an
// arena of dense integer state ids, per spec.md §9's explicit redesign
// note: no pointer-linked state graph, so fragments can be copied by
// simply copying an id range instead of walking and rewriting pointers.
package nfa

import (
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// StateID indexes into an NFA's state arena.
type StateID int

// Epsilon is the reserved rune value for an ε-transition.
const Epsilon rune = 0

// State is one arena slot: an accepting flag and the token this state
// finishes when it is a per-rule accept (empty otherwise), plus its
// out-edges, keyed by rune (Epsilon for ε-edges).
type State struct {
	Accept    bool
	TokenName string
	Priority  int
	edges     map[rune][]StateID
}

// NFA is an arena of States plus a start/accept pair, per spec.md §4.1.
// Grounded on other_examples/CyberCzar01-LABS_4__nfa.go's nfaFrag
// (start + dangling outs) for the fragment shape, translated from
// pointer-linked *nfaState values to StateID indices into states.
type NFA struct {
	states []*State
	Start  StateID
	Accept StateID
}

func newArena() *NFA {
	return &NFA{}
}

func (n *NFA) newState() StateID {
	id := StateID(len(n.states))
	n.states = append(n.states, &State{edges: map[rune][]StateID{}})
	return id
}

func (n *NFA) State(id StateID) *State {
	return n.states[id]
}

func (n *NFA) NumStates() int {
	return len(n.states)
}

func (n *NFA) addEdge(from StateID, on rune, to StateID) {
	s := n.states[from]
	s.edges[on] = append(s.edges[on], to)
}

// Alphabet returns every non-epsilon rune mentioned by a transition,
// per spec.md §4.2 step 1.
func (n *NFA) Alphabet() []rune {
	seen := map[rune]struct{}{}
	for _, s := range n.states {
		for r := range s.edges {
			if r == Epsilon {
				continue
			}
			seen[r] = struct{}{}
		}
	}
	out := make([]rune, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Literal builds the two-state, one-transition fragment for a single
// character, per spec.md §4.1.
func Literal(c rune) *NFA {
	n := newArena()
	s1 := n.newState()
	s2 := n.newState()
	n.addEdge(s1, c, s2)
	n.Start, n.Accept = s1, s2
	return n
}

// Concat builds Concat(A, B): copies of A and B are ε-connected,
// A's copied accept to B's copied start.
func Concat(a, b *NFA) *NFA {
	n := newArena()
	aStart, aAccept, _ := copyInto(n, a)
	bStart, bAccept, _ := copyInto(n, b)
	n.addEdge(aAccept, Epsilon, bStart)
	n.Start, n.Accept = aStart, bAccept
	return n
}

// Union builds Union(A, B): a fresh start ε-branches to copies of A and
// B's starts, both of whose copied accepts ε-converge on a fresh accept.
func Union(a, b *NFA) *NFA {
	n := newArena()
	start := n.newState()
	aStart, aAccept, _ := copyInto(n, a)
	bStart, bAccept, _ := copyInto(n, b)
	accept := n.newState()
	n.addEdge(start, Epsilon, aStart)
	n.addEdge(start, Epsilon, bStart)
	n.addEdge(aAccept, Epsilon, accept)
	n.addEdge(bAccept, Epsilon, accept)
	n.Start, n.Accept = start, accept
	return n
}

// Star builds Star(A): a fresh start ε-branches to a copy of A's start
// and to a fresh accept; A's copied accept ε-branches back to A's start
// and forward to the fresh accept, per spec.md §4.1.
func Star(a *NFA) *NFA {
	n := newArena()
	start := n.newState()
	aStart, aAccept, _ := copyInto(n, a)
	accept := n.newState()
	n.addEdge(start, Epsilon, aStart)
	n.addEdge(start, Epsilon, accept)
	n.addEdge(aAccept, Epsilon, aStart)
	n.addEdge(aAccept, Epsilon, accept)
	n.Start, n.Accept = start, accept
	return n
}

// Plus builds Plus(A): a fresh start ε→A's copied start; A's copied
// accept ε-branches back to A's start and forward to a fresh accept.
func Plus(a *NFA) *NFA {
	n := newArena()
	start := n.newState()
	aStart, aAccept, _ := copyInto(n, a)
	accept := n.newState()
	n.addEdge(start, Epsilon, aStart)
	n.addEdge(aAccept, Epsilon, aStart)
	n.addEdge(aAccept, Epsilon, accept)
	n.Start, n.Accept = start, accept
	return n
}

// copyInto deep-copies src's entire arena into dst, appending fresh
// states so no id or edge is shared between src and dst afterward — the
// "constructors must copy argument NFAs" rule of spec.md §4.1. It
// returns the copied start, the copied accept, and the id-remapping
// used, in case a caller needs to translate additional ids (no caller
// in this package uses it, including Combine below).
func copyInto(dst *NFA, src *NFA) (start, accept StateID, remap map[StateID]StateID) {
	remap = make(map[StateID]StateID, len(src.states))
	for i := range src.states {
		remap[StateID(i)] = dst.newState()
	}
	for i, s := range src.states {
		newID := remap[StateID(i)]
		ns := dst.states[newID]
		ns.Accept = s.Accept
		ns.TokenName = s.TokenName
		ns.Priority = s.Priority
		for r, tos := range s.edges {
			for _, to := range tos {
				dst.addEdge(newID, r, remap[to])
			}
		}
	}
	return remap[src.Start], remap[src.Accept], remap
}

// TagAccept marks n's accept state as a per-rule accept carrying the
// given token name and priority, per spec.md §4.1's "tag its accept
// state with (token_name, priority)".
func (n *NFA) TagAccept(tokenName string, priority int) {
	s := n.states[n.Accept]
	s.Accept = true
	s.TokenName = tokenName
	s.Priority = priority
}

// Combine builds the union-of-all-rules NFA of spec.md §4.1's final
// step: a fresh start and fresh accept, with every rule NFA deep-copied
// in and ε-linked, its per-rule accept tagging preserved on the
// (now-intermediate) copied accept states.
func Combine(rules []*NFA) *NFA {
	n := newArena()
	start := n.newState()
	accept := n.newState()
	n.Start, n.Accept = start, accept
	for _, rule := range rules {
		rStart, rAccept, _ := copyInto(n, rule)
		n.addEdge(start, Epsilon, rStart)
		n.addEdge(rAccept, Epsilon, accept)
	}
	return n
}

// StateSet is a deduplicated, orderable set of StateIDs, used by
// EpsilonClosure/Move and by DFA subset construction. Grounded on
// npillmayer-gorgo/lr/tables.go's treeset.NewWith(stateComparator)
// usage for the identical role: a comparably-ordered set of automaton
// state identifiers accumulated during a closure computation.
type StateSet struct {
	set *treeset.Set
}

func stateIDComparator(a, b interface{}) int {
	return utils.IntComparator(int(a.(StateID)), int(b.(StateID)))
}

func NewStateSet(ids ...StateID) *StateSet {
	s := &StateSet{set: treeset.NewWith(stateIDComparator)}
	for _, id := range ids {
		s.set.Add(id)
	}
	return s
}

func (s *StateSet) Add(id StateID) {
	s.set.Add(id)
}

func (s *StateSet) Has(id StateID) bool {
	return s.set.Contains(id)
}

func (s *StateSet) Empty() bool {
	return s.set.Empty()
}

func (s *StateSet) Sorted() []StateID {
	vals := s.set.Values()
	out := make([]StateID, len(vals))
	for i, v := range vals {
		out[i] = v.(StateID)
	}
	return out
}

// EpsilonClosure computes the DFS ε-closure of a set of states, per
// spec.md §4.2: the set plus every state reachable by ε-transitions
// alone.
func EpsilonClosure(n *NFA, states *StateSet) *StateSet {
	closure := NewStateSet(states.Sorted()...)
	stack := states.Sorted()
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, to := range n.states[id].edges[Epsilon] {
			if !closure.Has(to) {
				closure.Add(to)
				stack = append(stack, to)
			}
		}
	}
	return closure
}

// Move computes the union of c-successors from each state in states,
// per spec.md §4.2.
func Move(n *NFA, states *StateSet, c rune) *StateSet {
	out := NewStateSet()
	for _, id := range states.Sorted() {
		for _, to := range n.states[id].edges[c] {
			out.Add(to)
		}
	}
	return out
}
