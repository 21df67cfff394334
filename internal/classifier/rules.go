package classifier

import (
	"fmt"
	"regexp"
	"strings"
)

// RuleKind selects how a Rule's pattern is matched.
type RuleKind string

const (
	// KindKeyword matches when the pattern is a substring of the input.
	KindKeyword RuleKind = "keyword"
	// KindRegex matches when the regular expression finds a match anywhere in the input.
	KindRegex RuleKind = "regex"
)

// Rule is a single trigger. Patterns are written against lower-cased input.
// In regex patterns \w, \d and \s match Unicode letters, decimal digits and
// spaces, not just their ASCII subsets.
type Rule struct {
	Kind    RuleKind
	Pattern string
}

// Keyword returns a substring rule.
func Keyword(p string) Rule { return Rule{Kind: KindKeyword, Pattern: p} }

// Regex returns a regular-expression rule.
func Regex(p string) Rule { return Rule{Kind: KindRegex, Pattern: p} }

// RuleSet is an ordered, named list of rules.
type RuleSet struct {
	Name  string
	Rules []Rule
}

// Matcher evaluates one or more compiled rule sets as a single ordered OR.
type Matcher struct {
	names []string
	rules []compiledRule
}

type compiledRule struct {
	set  string
	rule Rule
	re   *regexp.Regexp
}

// Compile builds a Matcher from the given sets, preserving set and rule order.
func Compile(sets ...RuleSet) (*Matcher, error) {
	m := &Matcher{}
	for _, set := range sets {
		m.names = append(m.names, set.Name)
		for _, r := range set.Rules {
			cr := compiledRule{set: set.Name, rule: r}
			switch r.Kind {
			case KindKeyword:
			case KindRegex:
				re, err := compileUnicode(r.Pattern)
				if err != nil {
					return nil, fmt.Errorf("compiling %s rule %q: %w", set.Name, r.Pattern, err)
				}
				cr.re = re
			default:
				return nil, fmt.Errorf("unknown rule kind %q in set %s", r.Kind, set.Name)
			}
			m.rules = append(m.rules, cr)
		}
	}
	return m, nil
}

// MustCompile is like Compile but panics on error. Intended for package-level rule tables.
func MustCompile(sets ...RuleSet) *Matcher {
	m, err := Compile(sets...)
	if err != nil {
		panic(err)
	}
	return m
}

// Hit describes which rule matched.
type Hit struct {
	Set  string
	Rule Rule
}

// Match reports the first rule that matches lowered. The caller lower-cases the input.
func (m *Matcher) Match(lowered string) (Hit, bool) {
	for _, cr := range m.rules {
		if cr.matches(lowered) {
			return Hit{Set: cr.set, Rule: cr.rule}, true
		}
	}
	return Hit{}, false
}

// Len returns the number of compiled rules.
func (m *Matcher) Len() int { return len(m.rules) }

func (cr compiledRule) matches(s string) bool {
	if cr.re != nil {
		return cr.re.MatchString(s)
	}
	return strings.Contains(s, cr.rule.Pattern)
}

// unicodeClasses maps \w, \d and \s to their Unicode forms, as a bracketed
// class outside brackets and as bare members inside one.
var unicodeClasses = map[byte][2]string{
	'w': {`[\p{L}\p{N}_]`, `\p{L}\p{N}_`},
	'd': {`\p{Nd}`, `\p{Nd}`},
	's': {`[\x{9}-\x{d}\x{1c}-\x{1f}\x{85}\p{Z}]`, `\x{9}-\x{d}\x{1c}-\x{1f}\x{85}\p{Z}`},
}

// widenClasses rewrites the shorthand classes in pattern to their Unicode forms.
// Other escapes pass through untouched.
func widenClasses(pattern string) string {
	var sb strings.Builder
	inClass := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\' && i+1 < len(pattern):
			next := pattern[i+1]
			if repl, ok := unicodeClasses[next]; ok {
				if inClass {
					sb.WriteString(repl[1])
				} else {
					sb.WriteString(repl[0])
				}
			} else {
				sb.WriteByte(c)
				sb.WriteByte(next)
			}
			i++
			continue
		case c == '[' && !inClass:
			inClass = true
		case c == ']' && inClass:
			inClass = false
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

func compileUnicode(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(widenClasses(pattern))
}

func mustCompileUnicode(pattern string) *regexp.Regexp {
	return regexp.MustCompile(widenClasses(pattern))
}
