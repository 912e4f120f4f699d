package token

import "testing"

func TestIsKeyword(t *testing.T) {
	if !IsKeyword("while") {
		t.Fatalf("expected while to be a keyword")
	}
	if IsKeyword("counter") {
		t.Fatalf("expected counter not to be a keyword")
	}
}

func TestFromRulePromotesIdentifierToKeyword(t *testing.T) {
	tok := FromRule("identifier", "while", 1, 1, 0)
	if tok.Kind != Keyword {
		t.Fatalf("Kind = %v, want Keyword", tok.Kind)
	}
	tok = FromRule("identifier", "counter", 1, 1, 0)
	if tok.Kind != Identifier {
		t.Fatalf("Kind = %v, want Identifier", tok.Kind)
	}
}

func TestFromRuleClassifiesOperators(t *testing.T) {
	cases := []struct {
		rule, lexeme string
		want         Kind
	}{
		{"le", "<=", DoubleOp},
		{"plus", "+", SingleOp},
		{"div", "/", Division},
		{"commentopen", "/*", CommentOpen},
		{"semicolon", ";", Singleword},
		{"number", "42", Number},
	}
	for _, c := range cases {
		tok := FromRule(c.rule, c.lexeme, 1, 1, 0)
		if tok.Kind != c.want {
			t.Errorf("FromRule(%v,%v).Kind = %v, want %v", c.rule, c.lexeme, tok.Kind, c.want)
		}
	}
}

func TestTerminalNameGrammarRelevantSubset(t *testing.T) {
	name, ok := TerminalName(Token{Kind: Identifier, Lexeme: "x"})
	if !ok || name != "IDENTIFIER" {
		t.Fatalf("TerminalName(identifier) = (%v,%v), want (IDENTIFIER,true)", name, ok)
	}
	name, ok = TerminalName(Token{Kind: Eof})
	if !ok || name != "$" {
		t.Fatalf("TerminalName(eof) = (%v,%v), want ($,true)", name, ok)
	}
	name, ok = TerminalName(Token{Kind: Keyword, Lexeme: "int"})
	if !ok || name != "int" {
		t.Fatalf("TerminalName(int) = (%v,%v), want (int,true)", name, ok)
	}
	_, ok = TerminalName(Token{Kind: Keyword, Lexeme: "return"})
	if ok {
		t.Fatalf("TerminalName(return) should not map: it's a keyword outside the grammar's vocabulary")
	}
	_, ok = TerminalName(Token{Kind: Unknown, Lexeme: "@"})
	if ok {
		t.Fatalf("TerminalName(Unknown) should never map")
	}
}
