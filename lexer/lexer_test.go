package lexer

import (
	"strings"
	"testing"

	"github.com/lucidlang/lucidc/lexical"
	"github.com/lucidlang/lucidc/token"
)

const testRules = `
<digit> 0|1|2|3|4|5|6|7|8|9 0
<number> <digit>+ 10
<if> if 30
<write> write 30
<identifier> i(f|d|r|t|e|w|a|c|n)* 5
<semicolon> ; 20
<assign> = 20
<plus> \+ 20
<commentopen> /\* 25
<commentclose> \*/ 25
`

func buildSpec(t *testing.T) Spec {
	t.Helper()
	rs, errs := lexical.LoadRules(strings.NewReader(testRules))
	if errs.HasFatal() {
		t.Fatalf("LoadRules: %v", errs)
	}
	d, errs := lexical.Compile(rs)
	if errs.HasFatal() {
		t.Fatalf("Compile: %v", errs)
	}
	return d.AsLexSpec()
}

func TestTokenizeMaximalMunchAndWhitespace(t *testing.T) {
	spec := buildSpec(t)
	toks, err := Tokenize(spec, []byte("write i = i + 1 ;"))
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	var kinds []token.Kind
	var lexemes []string
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
		lexemes = append(lexemes, tok.Lexeme)
	}
	wantLexemes := []string{"write", "i", "=", "i", "+", "1", ";", ""}
	if len(lexemes) != len(wantLexemes) {
		t.Fatalf("got %v tokens %v, want %v", len(lexemes), lexemes, wantLexemes)
	}
	for i, w := range wantLexemes {
		if lexemes[i] != w {
			t.Errorf("token %d lexeme = %q, want %q", i, lexemes[i], w)
		}
	}
	if kinds[0] != token.Keyword {
		t.Errorf("first token kind = %v, want Keyword", kinds[0])
	}
	if kinds[len(kinds)-1] != token.Eof {
		t.Errorf("last token kind = %v, want Eof", kinds[len(kinds)-1])
	}
}

func TestTokenizeSkipsComments(t *testing.T) {
	spec := buildSpec(t)
	toks, err := Tokenize(spec, []byte("i /* a comment with ; inside */ write"))
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(toks) != 3 {
		t.Fatalf("got %v tokens, want 3 (i, write, eof)", len(toks))
	}
	if toks[0].Lexeme != "i" || toks[1].Lexeme != "write" {
		t.Fatalf("toks = %v", toks)
	}
}

func TestUnterminatedCommentErrors(t *testing.T) {
	spec := buildSpec(t)
	_, err := Tokenize(spec, []byte("i /* never closed"))
	if err == nil {
		t.Fatalf("expected an unterminated comment error")
	}
}

func TestStrayCommentCloseErrors(t *testing.T) {
	spec := buildSpec(t)
	_, err := Tokenize(spec, []byte("i */"))
	if err == nil {
		t.Fatalf("expected an error for a stray */")
	}
}

func TestUnknownCharacterAdvancesOneByte(t *testing.T) {
	spec := buildSpec(t)
	toks, err := Tokenize(spec, []byte("i @ write"))
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(toks) != 4 {
		t.Fatalf("got %v tokens, want 4 (i, @, write, eof)", len(toks))
	}
	if toks[1].Kind != token.Unknown || toks[1].Lexeme != "@" {
		t.Fatalf("toks[1] = %v, want Unknown(@)", toks[1])
	}
}

func TestNewlinesTrackLineNumberWithoutEmittingTokens(t *testing.T) {
	spec := buildSpec(t)
	toks, err := Tokenize(spec, []byte("i\n\ni"))
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(toks) != 3 {
		t.Fatalf("got %v tokens, want 3 (i, i, eof)", len(toks))
	}
	if toks[0].Line != 1 {
		t.Fatalf("toks[0].Line = %v, want 1", toks[0].Line)
	}
	if toks[1].Line != 3 {
		t.Fatalf("toks[1].Line = %v, want 3", toks[1].Line)
	}
}
