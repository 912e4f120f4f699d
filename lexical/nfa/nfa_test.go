package nfa

import "testing"

func accepts(n *NFA, input string) bool {
	states := EpsilonClosure(n, NewStateSet(n.Start))
	for _, r := range input {
		states = EpsilonClosure(n, Move(n, states, r))
		if states.Empty() {
			return false
		}
	}
	return states.Has(n.Accept)
}

func TestLiteral(t *testing.T) {
	n := Literal('a')
	if n.NumStates() != 2 {
		t.Fatalf("NumStates = %v, want 2", n.NumStates())
	}
	if !accepts(n, "a") || accepts(n, "") || accepts(n, "b") {
		t.Fatalf("Literal(a) accepted the wrong strings")
	}
}

func TestConcatCopiesArguments(t *testing.T) {
	a := Literal('a')
	b := Literal('b')
	c := Concat(a, b)
	if a.NumStates() != 2 || b.NumStates() != 2 {
		t.Fatalf("Concat mutated its arguments: a=%v b=%v states", a.NumStates(), b.NumStates())
	}
	if !accepts(c, "ab") || accepts(c, "a") || accepts(c, "ba") {
		t.Fatalf("Concat(a,b) accepted the wrong strings")
	}
}

func TestUnion(t *testing.T) {
	u := Union(Literal('a'), Literal('b'))
	if !accepts(u, "a") || !accepts(u, "b") || accepts(u, "ab") || accepts(u, "") {
		t.Fatalf("Union(a,b) accepted the wrong strings")
	}
}

func TestStarAcceptsEmpty(t *testing.T) {
	s := Star(Literal('a'))
	for _, in := range []string{"", "a", "aaaa"} {
		if !accepts(s, in) {
			t.Errorf("Star(a) should accept %q", in)
		}
	}
	if accepts(s, "b") {
		t.Fatalf("Star(a) should not accept b")
	}
}

func TestPlusRequiresOne(t *testing.T) {
	p := Plus(Literal('a'))
	if accepts(p, "") {
		t.Fatalf("Plus(a) should not accept empty string")
	}
	if !accepts(p, "a") || !accepts(p, "aaa") {
		t.Fatalf("Plus(a) should accept a/aaa")
	}
}

func TestTagAcceptAndCombine(t *testing.T) {
	ifKw := Literal('i')
	ifKw.TagAccept("if", 30)
	idLit := Literal('x')
	idLit.TagAccept("identifier", 10)

	combined := Combine([]*NFA{ifKw, idLit})

	start := EpsilonClosure(combined, NewStateSet(combined.Start))
	onI := EpsilonClosure(combined, Move(combined, start, 'i'))
	var sawIf bool
	for _, id := range onI.Sorted() {
		if combined.State(id).TokenName == "if" && combined.State(id).Priority == 30 {
			sawIf = true
		}
	}
	if !sawIf {
		t.Fatalf("expected the combined NFA to retain the 'if' rule's accept tag")
	}

	onX := EpsilonClosure(combined, Move(combined, start, 'x'))
	var sawIdent bool
	for _, id := range onX.Sorted() {
		if combined.State(id).TokenName == "identifier" {
			sawIdent = true
		}
	}
	if !sawIdent {
		t.Fatalf("expected the combined NFA to retain the 'identifier' rule's accept tag")
	}
}

func TestAlphabet(t *testing.T) {
	n := Concat(Literal('a'), Literal('b'))
	alpha := n.Alphabet()
	if len(alpha) != 2 || alpha[0] != 'a' || alpha[1] != 'b' {
		t.Fatalf("Alphabet = %v, want [a b]", alpha)
	}
}
