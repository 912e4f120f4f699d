// Package lexical loads lex-rule files and compiles them down to a
// minimized DFA, orchestrating the regex and nfa/dfa sub-packages per
// spec.md §4.1–§4.3.
package lexical

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	lerr "github.com/lucidlang/lucidc/error"
	"github.com/lucidlang/lucidc/lexical/dfa"
	"github.com/lucidlang/lucidc/lexical/nfa"
	"github.com/lucidlang/lucidc/lexical/regex"
)

// Rule is one line of a rule file: `<name> <regex> [priority]`, per
// spec.md §4.1/§6. A Rule with Priority 0 is a macro: referenced by
// name during preprocessing, never compiled into the combined NFA.
type Rule struct {
	Name     string
	Pattern  string
	Priority int
	Line     int
}

func (r *Rule) IsMacro() bool {
	return r.Priority == 0
}

// RuleSet is every rule parsed from a rule file, split into the macros
// addressable by name and the rules that get compiled.
type RuleSet struct {
	Macros map[string]*Rule
	Rules  []*Rule
}

// LoadRules parses a rule file in the format of spec.md §4.1/§6: each
// non-empty, non-`#` line is `<name> <regex> [priority]`; a trailing
// integer field is the priority (default 0).
func LoadRules(r io.Reader) (*RuleSet, lerr.Errors) {
	rs := &RuleSet{Macros: map[string]*Rule{}}
	var errs lerr.Errors

	s := bufio.NewScanner(r)
	lineNo := 0
	for s.Scan() {
		lineNo++
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			errs = append(errs, lerr.Newf(lerr.RegexSyntax, lerr.Location{Line: lineNo},
				"malformed rule line: %v", line))
			continue
		}

		name := fields[0]
		if !strings.HasPrefix(name, "<") || !strings.HasSuffix(name, ">") {
			errs = append(errs, lerr.Newf(lerr.RegexSyntax, lerr.Location{Line: lineNo},
				"rule name must be angle-bracket delimited: %v", name))
			continue
		}

		priority := 0
		patternFields := fields[1:]
		if len(patternFields) > 1 {
			if p, err := strconv.Atoi(patternFields[len(patternFields)-1]); err == nil {
				priority = p
				patternFields = patternFields[:len(patternFields)-1]
			}
		}
		pattern := strings.Join(patternFields, "")

		rule := &Rule{Name: name, Pattern: pattern, Priority: priority, Line: lineNo}
		if rule.IsMacro() {
			if _, dup := rs.Macros[name]; dup {
				errs = append(errs, lerr.Warningf(lerr.RegexSyntax, lerr.Location{Line: lineNo},
					"duplicate macro %v overrides earlier definition", name))
			}
			rs.Macros[name] = rule
		} else {
			rs.Rules = append(rs.Rules, rule)
		}
	}
	if err := s.Err(); err != nil {
		errs = append(errs, lerr.Newf(lerr.IO, lerr.Location{}, "reading rules: %v", err))
	}
	return rs, errs
}

// macroPatterns returns a plain name→pattern map for regex.ExpandMacros.
func (rs *RuleSet) macroPatterns() map[string]string {
	out := make(map[string]string, len(rs.Macros))
	for name, r := range rs.Macros {
		out[name] = r.Pattern
	}
	return out
}

// preprocess runs a single rule's pattern through spec.md §4.1's three
// preprocessing steps, in order: two-char-op protection, macro
// expansion, explicit concatenation insertion.
func (rs *RuleSet) preprocess(rule *Rule) (string, lerr.Errors) {
	pattern := regex.ProtectTwoCharOps(rule.Pattern)
	pattern, errs := regex.ExpandMacros(rule.Name, pattern, rs.macroPatterns())
	for _, e := range errs {
		e.Loc.Line = rule.Line
	}
	pattern = regex.InsertConcat(pattern)
	return pattern, errs
}

// Compile runs every non-macro rule through preprocessing and Thompson
// construction, then unions the results into a combined NFA and runs
// subset construction + minimization, per spec.md §4.1–§4.3. A rule
// whose regex fails to compile is reported and skipped; compilation
// continues with the rest (spec.md §4.1's "Failure modes").
func Compile(rs *RuleSet) (*dfa.DFA, lerr.Errors) {
	var errs lerr.Errors
	var fragments []*nfa.NFA

	for _, rule := range rs.Rules {
		pattern, preErrs := rs.preprocess(rule)
		errs = append(errs, preErrs...)

		frag, err := regex.Compile(pattern)
		if err != nil {
			errs = append(errs, lerr.Warningf(lerr.RegexSyntax, lerr.Location{Line: rule.Line},
				"skipping rule %v: %v", rule.Name, err))
			continue
		}

		frag.TagAccept(strings.Trim(rule.Name, "<>"), rule.Priority)
		fragments = append(fragments, frag)
	}

	if len(fragments) == 0 {
		errs = append(errs, lerr.New(lerr.RegexSyntax, lerr.Location{}, "no rule compiled successfully"))
		return nil, errs
	}

	combined := nfa.Combine(fragments)
	d, buildErrs := dfa.Build(combined)
	errs = append(errs, buildErrs...)
	return dfa.Minimize(d), errs
}
