// Package regex turns a single rule's regex text into an NFA fragment,
// per spec.md §4.1: protect two-character operator literals, expand
// macro references, insert explicit concatenation, convert infix to
// postfix by the shunting-yard algorithm, then interpret the postfix
// stream with Thompson constructors.
//
// Grounded on grammar/lexical/parser/lexer.go's tokenizer style
// (character-by-character scan with an escape lookahead) for Tokenize;
// the shunting-yard/postfix machinery has no teacher analog (the
// teacher parses straight to an AST with a recursive-descent parser),
// so it is built directly from spec.md §4.1's pseudocode, with the
// Thompson interpretation grounded on
// other_examples/CyberCzar01-LABS_4__nfa.go's buildNFA switch, adapted
// from a tree-walk to a postfix-token interpreter.
package regex

import (
	"fmt"
	"strings"

	lerr "github.com/lucidlang/lucidc/error"
	"github.com/lucidlang/lucidc/lexical/nfa"
)

// maxMacroPasses bounds macro expansion, per spec.md §4.1 step 2.
const maxMacroPasses = 10

// twoCharOps are the two-character operator literals spec.md §4.1 step 1
// protects from being misread by the postfix converter.
var twoCharOps = []string{"<=", ">=", "==", "!="}

// ProtectTwoCharOps inserts the explicit concatenation symbol between
// the two characters of any two-character operator literal found in
// pattern, per spec.md §4.1 step 1.
func ProtectTwoCharOps(pattern string) string {
	for _, op := range twoCharOps {
		protected := op[0:1] + "." + op[1:2]
		pattern = strings.ReplaceAll(pattern, op, protected)
	}
	return pattern
}

// ExpandMacros substitutes every `<name>` reference in pattern with its
// macro definition, parenthesized, iterating until no reference remains
// or maxMacroPasses is hit (cycle detection), per spec.md §4.1 step 2. A
// macro referencing itself is left unexpanded rather than looping
// forever; an unknown macro name is reported and left unexpanded.
func ExpandMacros(name, pattern string, macros map[string]string) (string, lerr.Errors) {
	var errs lerr.Errors
	seen := map[string]bool{}
	for pass := 0; pass < maxMacroPasses; pass++ {
		expanded, passErrs, found := expandOnePass(pattern, macros, name)
		for _, e := range passErrs {
			if !seen[e.Message] {
				seen[e.Message] = true
				errs = append(errs, e)
			}
		}
		if !found {
			return expanded, errs
		}
		pattern = expanded
	}
	errs = append(errs, lerr.Newf(lerr.MacroCycle, lerr.Location{},
		"macro expansion for %v did not converge within %v passes", name, maxMacroPasses))
	return pattern, errs
}

// expandOnePass substitutes every resolvable `<name>` reference exactly
// once, reporting undefined macros as it goes, and reports whether any
// defined macro was substituted so the caller knows whether another
// pass is needed. Self-references and undefined macros are left in
// place and do not count as a substitution.
func expandOnePass(pattern string, macros map[string]string, self string) (string, lerr.Errors, bool) {
	var b strings.Builder
	var errs lerr.Errors
	found := false
	i := 0
	for i < len(pattern) {
		if pattern[i] != '<' {
			b.WriteByte(pattern[i])
			i++
			continue
		}
		end := strings.IndexByte(pattern[i:], '>')
		if end < 0 {
			b.WriteString(pattern[i:])
			break
		}
		ref := pattern[i : i+end+1]
		i += end + 1

		if ref == self {
			// Self-reference: skip expansion, keep the literal text.
			b.WriteString(ref)
			continue
		}

		def, ok := macros[ref]
		if !ok {
			errs = append(errs, lerr.Newf(lerr.MacroUndefined, lerr.Location{}, "undefined macro: %v", ref))
			b.WriteString(ref)
			continue
		}

		found = true
		fmt.Fprintf(&b, "(%v)", def)
	}
	return b.String(), errs, found
}

// InsertConcat inserts the explicit concatenation operator '.' between
// adjacent atoms, per spec.md §4.1 step 3: between any two atoms where
// the left is an atom/closure/close-paren and the right is an
// atom/open-paren/escape.
func InsertConcat(pattern string) string {
	var b strings.Builder
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c == '\\' && i+1 < len(runes) {
			if i > 0 && needsConcatBefore(runes, i) {
				b.WriteRune('.')
			}
			b.WriteRune(c)
			b.WriteRune(runes[i+1])
			i++
			continue
		}
		if i > 0 && needsConcatBefore(runes, i) {
			b.WriteRune('.')
		}
		b.WriteRune(c)
	}
	return b.String()
}

func needsConcatBefore(runes []rune, i int) bool {
	left := runes[i-1]
	right := runes[i]
	leftIsAtomEnd := !isBinaryOp(left) && left != '(' && left != '|'
	rightStartsAtom := right != '|' && right != ')' && !isBinaryOp(right) && !isPostfixOp(right)
	return leftIsAtomEnd && rightStartsAtom
}

// isBinaryOp reports whether c is an infix binary operator: alternation,
// or the explicit concatenation dot ProtectTwoCharOps and InsertConcat
// itself emit. A '.' already present in the pattern is always one of
// these two preprocessing steps' own insertions, never raw user text, so
// it must never trigger a second concat insertion around itself.
func isBinaryOp(c rune) bool {
	return c == '|' || c == '.'
}

// isPostfixOp reports whether c is a postfix closure operator (* or +):
// it continues the atom to its left rather than starting a new one, so
// it must never trigger a concat insertion on its own right-hand side.
func isPostfixOp(c rune) bool {
	return c == '*' || c == '+'
}

// token is a single shunting-yard / postfix-interpreter element: either
// a literal character or one of the operators |, ., *, +, (, ).
type token struct {
	op  rune
	lit rune
	isOp bool
}

// tokenize scans pattern into a token stream, treating a backslash as
// an escape that forces the following character to be a literal atom
// rather than an operator.
func tokenize(pattern string) []token {
	var toks []token
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c == '\\' && i+1 < len(runes) {
			toks = append(toks, token{lit: runes[i+1]})
			i++
			continue
		}
		switch c {
		case '|', '.', '*', '+', '(', ')':
			toks = append(toks, token{op: c, isOp: true})
		default:
			toks = append(toks, token{lit: c})
		}
	}
	return toks
}

func precedence(op rune) int {
	switch op {
	case '|':
		return 1
	case '.':
		return 2
	case '*', '+':
		return 3
	}
	return 0
}

func leftAssoc(op rune) bool {
	return op == '|' || op == '.'
}

// ToPostfix converts an infix token stream to postfix via the
// shunting-yard algorithm, per spec.md §4.1's stated precedence table
// (`|` 1, `.` 2, `*`/`+` 3, parentheses override).
func ToPostfix(pattern string) ([]token, error) {
	toks := tokenize(pattern)
	var output []token
	var opStack []token

	popOp := func() token {
		top := opStack[len(opStack)-1]
		opStack = opStack[:len(opStack)-1]
		return top
	}

	for _, t := range toks {
		switch {
		case !t.isOp:
			output = append(output, t)
		case t.op == '(':
			opStack = append(opStack, t)
		case t.op == ')':
			found := false
			for len(opStack) > 0 {
				top := opStack[len(opStack)-1]
				if top.op == '(' {
					popOp()
					found = true
					break
				}
				output = append(output, popOp())
			}
			if !found {
				return nil, fmt.Errorf("unbalanced parentheses")
			}
		default:
			for len(opStack) > 0 {
				top := opStack[len(opStack)-1]
				if top.op == '(' {
					break
				}
				if precedence(top.op) > precedence(t.op) ||
					(precedence(top.op) == precedence(t.op) && leftAssoc(t.op)) {
					output = append(output, popOp())
					continue
				}
				break
			}
			opStack = append(opStack, t)
		}
	}
	for len(opStack) > 0 {
		top := popOp()
		if top.op == '(' {
			return nil, fmt.Errorf("unbalanced parentheses")
		}
		output = append(output, top)
	}
	return output, nil
}

// Compile converts pattern (already macro-expanded and concat-inserted)
// into a Thompson-constructed NFA fragment, per spec.md §4.1's
// postfix-stack interpretation. Malformed regexes — an operator with
// too few operands, or a final stack whose size isn't exactly 1 —
// produce an error so the caller can skip just this rule.
func Compile(pattern string) (*nfa.NFA, error) {
	postfix, err := ToPostfix(pattern)
	if err != nil {
		return nil, err
	}

	var stack []*nfa.NFA
	pop := func() (*nfa.NFA, error) {
		if len(stack) == 0 {
			return nil, fmt.Errorf("empty operand stack at operator application")
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top, nil
	}

	for _, t := range postfix {
		if !t.isOp {
			stack = append(stack, nfa.Literal(t.lit))
			continue
		}
		switch t.op {
		case '.':
			b, err := pop()
			if err != nil {
				return nil, err
			}
			a, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, nfa.Concat(a, b))
		case '|':
			b, err := pop()
			if err != nil {
				return nil, err
			}
			a, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, nfa.Union(a, b))
		case '*':
			a, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, nfa.Star(a))
		case '+':
			a, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, nfa.Plus(a))
		default:
			return nil, fmt.Errorf("unrecognized operator: %q", t.op)
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("malformed regex: final operand stack has %v entries, want 1", len(stack))
	}
	return stack[0], nil
}
