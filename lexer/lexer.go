// Package lexer drives a compiled DFA over source text with the
// maximal-munch policy of spec.md §4.6, producing token.Token values.
//
// Grounded on the teacher's driver/lexer/lexer.go (lexerState,
// accept/revert, the next()/Next() split), simplified because lucidc's
// language has a single lex mode: comments are handled as a
// special-cased token kind (spec.md §4.6 steps 4-5), not as a pushed
// lex mode the way the teacher's multi-mode lexSpec supports.
package lexer

import (
	"github.com/lucidlang/lucidc/lexical/dfa"
	lerr "github.com/lucidlang/lucidc/error"
	"github.com/lucidlang/lucidc/token"
)

// Spec is the read-only interface a compiled automaton must satisfy to
// drive Lexer, decoupling the driver from the table's storage format —
// a (*dfa.DFA).AsLexSpec() satisfies it directly.
type Spec interface {
	InitialState() dfa.StateID
	NextState(dfa.StateID, byte) (dfa.StateID, bool)
	Accept(dfa.StateID) (string, bool)
}

// lexerState is the lexer's cursor: a byte offset into src plus the
// 1-based line/column it corresponds to.
type lexerState struct {
	offset int
	line   int
	column int
}

// Lexer scans src against spec one token at a time. It owns its cursor
// exclusively (spec.md §5): nothing else may advance it.
type Lexer struct {
	spec Spec
	src  []byte
	pos  lexerState
}

// NewLexer returns a lexer positioned at the start of src.
func NewLexer(spec Spec, src []byte) *Lexer {
	return &Lexer{spec: spec, src: src, pos: lexerState{line: 1, column: 1}}
}

func (l *Lexer) atEOF() bool {
	return l.pos.offset >= len(l.src)
}

func (l *Lexer) peek() byte {
	return l.src[l.pos.offset]
}

// advance consumes one byte, tracking line/column; a newline resets
// column to 1 and does not itself produce a token (spec.md §4.6 step 1).
func (l *Lexer) advance() byte {
	c := l.src[l.pos.offset]
	l.pos.offset++
	if c == '\n' {
		l.pos.line++
		l.pos.column = 1
	} else {
		l.pos.column++
	}
	return c
}

func isSpaceNotNewline(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

func (l *Lexer) skipSpace() {
	for !l.atEOF() && (isSpaceNotNewline(l.peek()) || l.peek() == '\n') {
		l.advance()
	}
}

// checkpoint is a recorded accepting state during a maximal-munch scan:
// the token name of that accepting state, how far the cursor had
// advanced, and the lexeme matched up to that point.
type checkpoint struct {
	tokenName string
	pos       lexerState
	lexeme    string
}

// Next scans and returns the next token, per spec.md §4.6. Whitespace
// (other than newlines, which still advance the line counter) is
// skipped first; comments are consumed and elided by recursing; an
// unrecognized character is reported and returned as Unknown.
func (l *Lexer) Next() (token.Token, error) {
	l.skipSpace()
	if l.atEOF() {
		return token.Token{Kind: token.Eof, Line: l.pos.line, Column: l.pos.column, Offset: l.pos.offset}, nil
	}

	startPos := l.pos
	state := l.spec.InitialState()
	var buf []byte
	var last *checkpoint

	for !l.atEOF() {
		c := l.peek()
		next, ok := l.spec.NextState(state, c)
		if !ok {
			break
		}
		buf = append(buf, l.advance())
		state = next
		if name, ok := l.spec.Accept(state); ok {
			last = &checkpoint{tokenName: name, pos: l.pos, lexeme: string(buf)}
		}
	}

	if last == nil {
		// No accepting state was ever reached: spec.md §4.6 step 3's
		// "otherwise" branch — report the single offending character
		// and advance past it so the caller can keep going.
		bad := l.advance()
		return token.Token{
			Kind:   token.Unknown,
			Lexeme: string(bad),
			Line:   startPos.line,
			Column: startPos.column,
			Offset: startPos.offset,
		}, nil
	}

	l.pos = last.pos
	tok := token.FromRule(last.tokenName, last.lexeme, startPos.line, startPos.column, startPos.offset)

	if tok.Kind == token.CommentOpen {
		if err := l.skipComment(startPos); err != nil {
			return token.Token{}, err
		}
		return l.Next()
	}
	if tok.Kind == token.CommentClose {
		return token.Token{}, lerr.Newf(lerr.LexError, lerr.Location{Line: startPos.line, Col: startPos.column},
			"unexpected */ outside a comment")
	}

	return tok, nil
}

// skipComment consumes input until a closing */ is found, per spec.md
// §4.6 step 4. openPos is the location of the opening /*, used to
// report an unterminated comment at the point it started rather than
// where EOF was hit.
func (l *Lexer) skipComment(openPos lexerState) error {
	for {
		if l.atEOF() {
			return lerr.Newf(lerr.LexError, lerr.Location{Line: openPos.line, Col: openPos.column},
				"unterminated comment")
		}
		if l.peek() == '*' && l.pos.offset+1 < len(l.src) && l.src[l.pos.offset+1] == '/' {
			l.advance()
			l.advance()
			return nil
		}
		l.advance()
	}
}

// Tokenize scans src to completion, eliding the synthesized newline
// skip (there is none to elide; newlines never produce a token) and
// stopping after the Eof token, per spec.md §4.6's "tokenize is
// nextToken to Eof".
func Tokenize(spec Spec, src []byte) ([]token.Token, error) {
	l := NewLexer(spec, src)
	var toks []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.Eof {
			return toks, nil
		}
	}
}
