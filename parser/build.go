package parser

import (
	"github.com/lucidlang/lucidc/ast"
	"github.com/lucidlang/lucidc/grammar"
)

// chain is an internal-only accumulator, never surfaced as an ast.Node.
// The right-factored left-associative productions (<additive_expr_prime>,
// <term_prime>) build up their operator/operand pairs bottom-up as the
// right recursion reduces; chain carries them back up to the owning
// non-terminal (<additive_expr>, <term>), which folds them left into
// nested ast.Binary nodes. <expression_prime>'s single right-associative
// "=" production needs no such accumulator: it composes directly by
// leaving a hole for <expression> to fill in.
type chain struct {
	links []chainLink
}

type chainLink struct {
	op      string
	operand ast.Node
}

// foldChain applies c's operator/operand pairs to base left to right,
// producing the same left-leaning tree a direct left-recursive grammar
// would: "1 + 2 + 3" folds to Binary(+, Binary(+, 1, 2), 3).
func foldChain(base ast.Node, c *chain) ast.Node {
	result := base
	for _, link := range c.links {
		result = &ast.Binary{Op: link.op, Left: result, Right: link.operand}
	}
	return result
}

// build dispatches a reduced production to its AST shape, per the
// reduction table a parser's grammar productions are expected to follow:
// each non-terminal's children are indexed by position in its RHS, with
// epsilon productions supplying zero children. A non-terminal this
// dispatch does not recognize (or a production shape it wasn't written
// for) falls back to the default: pass the first child through unchanged,
// or Empty if there is none.
func (p *Parser) build(prod *grammar.Production, children []interface{}) interface{} {
	switch prod.LHS {
	case ntProgram:
		return &ast.Program{
			Decls: children[1].(*ast.DeclList),
			Stmts: children[2].(*ast.StmtList),
		}

	case ntDeclList:
		if prod.IsEpsilon() {
			return &ast.DeclList{}
		}
		head := children[0].(*ast.Decl)
		rest := children[1].(*ast.DeclList)
		return &ast.DeclList{Items: append([]*ast.Decl{head}, rest.Items...)}

	case ntDeclStat:
		id := children[1].(*ast.Ident)
		return &ast.Decl{Type: "int", Name: id.Name, Location: id.Location}

	case ntStmtList:
		if prod.IsEpsilon() {
			return &ast.StmtList{}
		}
		head := children[0].(ast.Node)
		rest := children[1].(*ast.StmtList)
		return &ast.StmtList{Items: append([]ast.Node{head}, rest.Items...)}

	case ntIfStat:
		n := &ast.If{Cond: children[2].(ast.Node), Then: children[4].(ast.Node)}
		if els, ok := children[5].(ast.Node); ok {
			if _, isEmpty := els.(*ast.Empty); !isEmpty {
				n.Else = els
			}
		}
		return n

	case ntElsePart:
		if prod.IsEpsilon() {
			return &ast.Empty{}
		}
		return children[1]

	case ntWhileStat:
		return &ast.While{Cond: children[2].(ast.Node), Body: children[4].(ast.Node)}

	case ntForStat:
		return &ast.For{
			Init:   children[2].(ast.Node),
			Cond:   children[4].(ast.Node),
			Update: children[6].(ast.Node),
			Body:   children[8].(ast.Node),
		}

	case ntReadStat:
		id := children[1].(*ast.Ident)
		return &ast.Read{Name: id.Name, Location: id.Location}

	case ntWriteStat:
		return &ast.Write{Expr: children[1].(ast.Node)}

	case ntCompoundStat:
		return &ast.Compound{Stmts: children[1].(*ast.StmtList)}

	case ntExpressionStat:
		if _, isEmpty := children[0].(*ast.Empty); isEmpty {
			return &ast.ExprStmt{}
		}
		return &ast.ExprStmt{Expr: children[0].(ast.Node)}

	case ntExpression:
		base := children[0].(ast.Node)
		if skeleton, ok := children[1].(*ast.Binary); ok {
			skeleton.Left = base
			return skeleton
		}
		return base

	case ntExpressionPrime:
		if prod.IsEpsilon() {
			return &ast.Empty{}
		}
		return &ast.Binary{Op: "=", Right: children[1].(ast.Node)}

	case ntAdditiveExpr:
		return foldChain(children[0].(ast.Node), children[1].(*chain))

	case ntAdditiveExprPrime:
		return reduceChainLink(prod, children)

	case ntTerm:
		return foldChain(children[0].(ast.Node), children[1].(*chain))

	case ntTermPrime:
		return reduceChainLink(prod, children)

	case ntFactor:
		if len(children) == 3 {
			return children[1]
		}
		return children[0]

	default:
		if len(children) == 0 {
			return &ast.Empty{}
		}
		return children[0]
	}
}

// reduceChainLink implements the shared shape of <additive_expr_prime>
// and <term_prime>: op operand <...prime> | ε. The operator is the Ident
// leaf of whichever literal or pass-through <rel_op> production matched.
func reduceChainLink(prod *grammar.Production, children []interface{}) *chain {
	if prod.IsEpsilon() {
		return &chain{}
	}
	op := children[0].(*ast.Ident).Name
	operand := children[1].(ast.Node)
	down := children[2].(*chain)
	return &chain{links: append([]chainLink{{op: op, operand: operand}}, down.links...)}
}
