// Package token defines the lexeme kinds spec.md §3 names and the two
// lookup tables the lexer and parser use to talk about them: the fixed
// keyword set (§4.6) and the source-text-to-grammar-terminal mapping
// (§6's "Terminal-name mapping").
package token

import "fmt"

// Kind is one of the eleven token kinds of spec.md §3.
type Kind int

const (
	Identifier Kind = iota
	Number
	Keyword
	DoubleOp
	SingleOp
	Division
	CommentOpen
	CommentClose
	Singleword
	Eof
	Unknown
)

func (k Kind) String() string {
	switch k {
	case Identifier:
		return "Identifier"
	case Number:
		return "Number"
	case Keyword:
		return "Keyword"
	case DoubleOp:
		return "DoubleOp"
	case SingleOp:
		return "SingleOp"
	case Division:
		return "Division"
	case CommentOpen:
		return "CommentOpen"
	case CommentClose:
		return "CommentClose"
	case Singleword:
		return "Singleword"
	case Eof:
		return "Eof"
	default:
		return "Unknown"
	}
}

// Token is a single lexeme, per spec.md §3.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
	Column int
	Offset int
}

func (t Token) String() string {
	return fmt.Sprintf("%v(%q)@%d:%d", t.Kind, t.Lexeme, t.Line, t.Column)
}

// keywords is the lexer's full keyword set, per spec.md §4.6. It is
// deliberately wider than the grammar's own vocabulary (spec.md §9's
// open question #2): every word here is promoted from Identifier to
// Keyword by the lexer regardless of whether the grammar has any
// production mentioning it.
var keywords = map[string]struct{}{
	"if": {}, "else": {}, "while": {}, "for": {}, "return": {},
	"int": {}, "float": {}, "char": {}, "string": {}, "bool": {},
	"true": {}, "false": {}, "read": {}, "write": {},
	"void": {}, "const": {}, "struct": {}, "class": {},
}

// IsKeyword reports whether lexeme is one of the fixed keywords of
// spec.md §4.6.
func IsKeyword(lexeme string) bool {
	_, ok := keywords[lexeme]
	return ok
}

// grammarKeywords is the subset of the lexer's keyword set that the
// parser's grammar actually has productions for (spec.md §9's open
// question #2: "map only grammar-relevant ones to terminals"). A
// keyword outside this set still lexes as a Keyword token, but
// TerminalName below refuses to map it, so the parser reports it as a
// ParseError (no table entry) rather than silently accepting it.
var grammarKeywords = map[string]struct{}{
	"int": {}, "if": {}, "else": {}, "while": {}, "for": {},
	"read": {}, "write": {},
}

// punctuation is the grammar-relevant operator/punctuation vocabulary
// of spec.md §6: every literal the grammar file may use as a bare
// terminal.
var punctuation = map[string]struct{}{
	";": {}, "{": {}, "}": {}, "(": {}, ")": {},
	"+": {}, "-": {}, "*": {}, "/": {}, "=": {},
	"<": {}, ">": {}, "<=": {}, ">=": {}, "==": {}, "!=": {},
}

// TerminalName maps a scanned token to the grammar terminal name it
// stands for, per spec.md §6: IDENTIFIER/NUMBER for the lexeme-less
// kinds, $ for Eof, and literal text for keywords and punctuation — but
// only the grammar-relevant subset of each (spec.md §9's open question
// #2 and #3). A token with no mapping (an out-of-grammar keyword, or
// any Unknown/Comment token that reached the parser) returns ok=false,
// which the parser surfaces as "no entry in the LL(1) table".
func TerminalName(t Token) (string, bool) {
	switch t.Kind {
	case Identifier:
		return "IDENTIFIER", true
	case Number:
		return "NUMBER", true
	case Eof:
		return "$", true
	case Keyword:
		if _, ok := grammarKeywords[t.Lexeme]; ok {
			return t.Lexeme, true
		}
		return "", false
	case DoubleOp, SingleOp, Division, Singleword:
		if _, ok := punctuation[t.Lexeme]; ok {
			return t.Lexeme, true
		}
		return "", false
	default:
		return "", false
	}
}

// ruleKind classifies a DFA rule name (the token_name the lexer's table
// carries, per spec.md §3/§4.1) into the Kind taxonomy of spec.md §3.
// Rule names are author-chosen identifiers from the lex-rules file
// (spec.md §6); lucidc's own default rules (cmd/lucidc's embedded
// lex_rules.txt) name them exactly as the keys matched below.
func ruleKind(name string) Kind {
	switch name {
	case "identifier":
		return Identifier
	case "number":
		return Number
	case "le", "ge", "eqeq", "noteq":
		return DoubleOp
	case "plus", "minus", "star", "assign", "lt", "gt":
		return SingleOp
	case "div":
		return Division
	case "commentopen":
		return CommentOpen
	case "commentclose":
		return CommentClose
	case "semicolon", "lbrace", "rbrace", "lparen", "rparen":
		return Singleword
	default:
		if IsKeyword(name) {
			return Keyword
		}
		return Unknown
	}
}

// FromRule builds the Token a lexer checkpoint represents: ruleName is
// the DFA's token_name at the accepting state, lexeme is the matched
// text. Per spec.md §4.6 step 3, an Identifier-kind rule match is
// promoted to Keyword when its lexeme is in the fixed keyword set.
func FromRule(ruleName, lexeme string, line, col, offset int) Token {
	kind := ruleKind(ruleName)
	if kind == Identifier && IsKeyword(lexeme) {
		kind = Keyword
	}
	return Token{Kind: kind, Lexeme: lexeme, Line: line, Column: col, Offset: offset}
}
