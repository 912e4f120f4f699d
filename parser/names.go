package parser

import "github.com/lucidlang/lucidc/grammar"

// Non-terminal names the §4.7.1 reduction dispatch below matches on by
// identity. These are exactly the non-terminals lucidc's own default
// grammar (cmd/lucidc's embedded grammar.txt) defines; a caller supplying
// a different grammar to NewParser must use the same non-terminal
// vocabulary for the dispatch to recognize its productions — anything
// else falls through to the spec.md §4.7.1 "Default" rule.
var (
	ntProgram           = grammar.NonTerminal("<program>")
	ntDeclList          = grammar.NonTerminal("<declaration_list>")
	ntDeclStat          = grammar.NonTerminal("<declaration_stat>")
	ntStmtList          = grammar.NonTerminal("<statement_list>")
	ntIfStat            = grammar.NonTerminal("<if_stat>")
	ntElsePart          = grammar.NonTerminal("<else_part>")
	ntWhileStat         = grammar.NonTerminal("<while_stat>")
	ntForStat           = grammar.NonTerminal("<for_stat>")
	ntReadStat          = grammar.NonTerminal("<read_stat>")
	ntWriteStat         = grammar.NonTerminal("<write_stat>")
	ntCompoundStat      = grammar.NonTerminal("<compound_stat>")
	ntExpressionStat    = grammar.NonTerminal("<expression_stat>")
	ntExpression        = grammar.NonTerminal("<expression>")
	ntExpressionPrime   = grammar.NonTerminal("<expression_prime>")
	ntAdditiveExpr      = grammar.NonTerminal("<additive_expr>")
	ntAdditiveExprPrime = grammar.NonTerminal("<additive_expr_prime>")
	ntTerm              = grammar.NonTerminal("<term>")
	ntTermPrime         = grammar.NonTerminal("<term_prime>")
	ntFactor            = grammar.NonTerminal("<factor>")
)
