// Package parser implements the stack-driven LL(1) parser: given a
// grammar's predictive table and a stream of tokens, it builds the AST
// spec.md §3 describes by the reduction rules of the package's build.go.
//
// Grounded on the teacher's driver/parser.go for the overall shape of a
// hand-rolled parser owning its own token cursor and error reporting
// (Parser struct, ParserOption-style construction), restructured from
// its LALR shift-reduce engine to the two-stack LL(1) algorithm: a parse
// stack of grammar symbols and reduction markers, and a parallel AST-build
// stack of partially-built nodes. Both stacks use
// github.com/emirpasic/gods/stacks/arraystack, the same dependency this
// module's NFA/DFA state sets use (gods' sets/treeset) for a different
// container shape.
package parser

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/lucidlang/lucidc/ast"
	lerr "github.com/lucidlang/lucidc/error"
	"github.com/lucidlang/lucidc/grammar"
	"github.com/lucidlang/lucidc/token"
)

// TokenSource is the pull interface the parser consumes tokens through.
// *lexer.Lexer satisfies it directly.
type TokenSource interface {
	Next() (token.Token, error)
}

// reductionMarker is the parse stack's "@i" sentinel: when popped, it
// triggers the reduction for production i rather than a shift or expand.
type reductionMarker int

// Parser drives a single pass over lex, per the grammar and predictive
// table it was built with. It owns the parse stack, the AST-build stack,
// and the current lookahead exclusively; nothing external may advance
// its token cursor mid-parse.
type Parser struct {
	gram  *grammar.Grammar
	table *grammar.LL1Table
	lex   TokenSource

	stack    *arraystack.Stack
	astStack *arraystack.Stack
}

// NewParser returns a parser for gram/table reading tokens from lex.
func NewParser(gram *grammar.Grammar, table *grammar.LL1Table, lex TokenSource) *Parser {
	return &Parser{
		gram:     gram,
		table:    table,
		lex:      lex,
		stack:    arraystack.New(),
		astStack: arraystack.New(),
	}
}

// Parse runs the parser to completion: push $ and the start symbol,
// then repeatedly inspect the stack top against the current lookahead —
// shift on a terminal match, expand a non-terminal via the predictive
// table, or run a reduction when a marker surfaces — until $ meets $, at
// which point the single node left on the AST stack is the result.
func (p *Parser) Parse() (ast.Node, error) {
	p.stack.Push(grammar.EndOfInput)
	p.stack.Push(p.gram.Start)

	tok, sym, err := p.advance()
	if err != nil {
		return nil, err
	}

	for {
		topVal, ok := p.stack.Peek()
		if !ok {
			return nil, lerr.New(lerr.ParseError, tokLoc(tok), "parse stack exhausted before reaching end of input")
		}

		if marker, isMarker := topVal.(reductionMarker); isMarker {
			p.stack.Pop()
			p.astStack.Push(p.reduce(int(marker)))
			continue
		}

		top := topVal.(grammar.Symbol)

		if top.IsTerminal() {
			if top.IsEndOfInput() && sym.IsEndOfInput() {
				p.stack.Pop()
				root, _ := p.astStack.Peek()
				n, _ := root.(ast.Node)
				return n, nil
			}
			if top == sym {
				p.stack.Pop()
				p.astStack.Push(ast.LeafFromToken(tok))
				tok, sym, err = p.advance()
				if err != nil {
					return nil, err
				}
				continue
			}
			return nil, lerr.Newf(lerr.ParseError, tokLoc(tok),
				"unexpected token %q, expected %v", tok.Lexeme, top.Name())
		}

		idx, ok := p.table.LookupEntry(top, sym)
		if !ok {
			return nil, lerr.Newf(lerr.ParseError, tokLoc(tok),
				"no production for %v with lookahead %v", top.Name(), sym.Name())
		}
		p.stack.Pop()
		prod := p.gram.Productions()[idx]
		p.stack.Push(reductionMarker(idx))
		if !prod.IsEpsilon() {
			for i := len(prod.RHS) - 1; i >= 0; i-- {
				p.stack.Push(prod.RHS[i])
			}
		}
	}
}

// reduce pops a production's right-hand side off the AST stack (none,
// for an epsilon production) and dispatches construction to build.go.
func (p *Parser) reduce(idx int) interface{} {
	prods := p.gram.Productions()
	if idx < 0 || idx >= len(prods) {
		return &ast.Empty{}
	}
	prod := prods[idx]
	if prod.IsEpsilon() {
		return p.build(prod, nil)
	}
	k := len(prod.RHS)
	children := make([]interface{}, k)
	for i := k - 1; i >= 0; i-- {
		v, _ := p.astStack.Pop()
		children[i] = v
	}
	return p.build(prod, children)
}

// advance pulls the next token from the lexer and maps it to the
// terminal symbol the LL(1) table indexes by. A token with no terminal
// mapping (an out-of-grammar keyword, a stray comment token) is reported
// as a parse error rather than silently accepted.
func (p *Parser) advance() (token.Token, grammar.Symbol, error) {
	tok, err := p.lex.Next()
	if err != nil {
		return token.Token{}, grammar.Symbol{}, err
	}
	name, ok := token.TerminalName(tok)
	if !ok {
		return token.Token{}, grammar.Symbol{}, lerr.Newf(lerr.ParseError, tokLoc(tok),
			"token %q has no grammar terminal", tok.Lexeme)
	}
	return tok, grammar.Terminal(name), nil
}

func tokLoc(tok token.Token) lerr.Location {
	return lerr.Location{Line: tok.Line, Col: tok.Column}
}
