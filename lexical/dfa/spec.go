package dfa

// LexSpec adapts a minimized DFA to the interface the runtime lexer
// package drives, per spec.md §5's separation of "the automata ... are
// read-only from the lexer" from the driving loop itself — grounded on
// the teacher's driver/lexer/spec.go lexSpec/LexSpec split, which keeps
// the driver ignorant of how the table is actually stored.
type LexSpec struct {
	d *DFA
}

// AsLexSpec wraps d for consumption by lexer.NewLexer.
func (d *DFA) AsLexSpec() *LexSpec {
	return &LexSpec{d: d}
}

func (s *LexSpec) InitialState() StateID {
	return s.d.Start
}

func (s *LexSpec) NextState(id StateID, c byte) (StateID, bool) {
	to, ok := s.d.States[id].Trans[rune(c)]
	return to, ok
}

func (s *LexSpec) Accept(id StateID) (string, bool) {
	st := s.d.States[id]
	if !st.Accept {
		return "", false
	}
	return st.TokenName, true
}
