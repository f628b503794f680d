package expr

import (
	"fmt"
	"regexp"
	"strings"
)

// Constants are substituted as parenthesized literals so that adjacent
// digits or brackets become implicit multiplications instead of corrupting
// the number ("2pi" -> "2(3.14...)" -> "2*(3.14...)").
const (
	litPi = "(3.141592653589793)"
	litE  = "(2.718281828459045)"
)

var reSpace = regexp.MustCompile(`\s+`)

// implicitMul inserts the multiplication sign where users omit it. Order
// matters: the variable-before-paren rule runs last and only fires when x
// is not the tail of a longer identifier, so "sin(" stays a call.
var implicitMul = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(\d)([a-z])`), `$1*$2`},
	{regexp.MustCompile(`\)([a-z])`), `)*$1`},
	{regexp.MustCompile(`(\d)\(`), `$1*(`},
	{regexp.MustCompile(`\)(\d)`), `)*$1`},
	{regexp.MustCompile(`\)\(`), `)*(`},
	{regexp.MustCompile(`(^|[^a-z])x\(`), `${1}x*(`},
}

// Normalize rewrites raw user text into the canonical form consumed by the
// parser: lowercased, whitespace-free, constants substituted, reciprocal
// trig lowered to 1/sin, 1/cos, 1/tan, implicit multiplications explicit,
// and parentheses balanced. The step order is load-bearing: each rewrite
// assumes the earlier ones already ran.
func Normalize(raw string) (string, error) {
	s := strings.TrimSpace(strings.ToLower(raw))
	if s == "" {
		return "", ErrEmptyExpression
	}
	s = reSpace.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "**", "^")
	s = substituteConstant(s, "pi", litPi)
	s = substituteConstant(s, "e", litE)
	s, err := lowerReciprocals(s)
	if err != nil {
		return "", err
	}
	for _, r := range implicitMul {
		s = r.re.ReplaceAllString(s, r.repl)
	}
	if err := validateParens(s); err != nil {
		return "", err
	}
	return s, nil
}

// substituteConstant replaces whole-word occurrences of name. Adjacent
// digits do not suppress a match, only adjacent letters do, so "2pi"
// substitutes while "spin" and "exp" are left alone.
func substituteConstant(s, name, lit string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if strings.HasPrefix(s[i:], name) &&
			(i == 0 || !isLetter(s[i-1])) &&
			(i+len(name) == len(s) || !isLetter(s[i+len(name)])) {
			b.WriteString(lit)
			i += len(name)
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

var reciprocals = []struct{ name, base string }{
	{"csc", "sin"},
	{"sec", "cos"},
	{"cot", "tan"},
}

// lowerReciprocals rewrites csc(A), sec(A) and cot(A) as (1/sin(A)),
// (1/cos(A)) and (1/tan(A)) using the full parenthesized argument. A plain
// prefix substitution would leave the dangling call head behind.
func lowerReciprocals(s string) (string, error) {
	for _, r := range reciprocals {
		for {
			i := indexCall(s, r.name)
			if i < 0 {
				break
			}
			open := i + len(r.name)
			end, ok := matchParen(s, open)
			if !ok {
				return "", &SyntaxError{Pos: open, Msg: "unbalanced parenthesis in " + r.name + " argument"}
			}
			arg := s[open+1 : end]
			s = s[:i] + "(1/" + r.base + "(" + arg + "))" + s[end+1:]
		}
	}
	return s, nil
}

// indexCall finds name immediately followed by ( and not preceded by a
// letter, so "asec(" never matches "sec(".
func indexCall(s, name string) int {
	for from := 0; ; {
		i := strings.Index(s[from:], name+"(")
		if i < 0 {
			return -1
		}
		i += from
		if i == 0 || !isLetter(s[i-1]) {
			return i
		}
		from = i + 1
	}
}

// matchParen returns the index of the ) closing the ( at open.
func matchParen(s string, open int) (int, bool) {
	depth := 0
	for j := open; j < len(s); j++ {
		switch s[j] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return j, true
			}
		}
	}
	return 0, false
}

// validateParens scans left to right and fails the instant the balance goes
// negative, or if any ( is left unclosed at the end.
func validateParens(s string) error {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return &SyntaxError{Pos: i, Msg: "unbalanced parenthesis: unmatched )"}
			}
		}
	}
	if depth != 0 {
		return &SyntaxError{Pos: len(s), Msg: fmt.Sprintf("unbalanced parenthesis: %d unclosed (", depth)}
	}
	return nil
}

func isLetter(c byte) bool { return c >= 'a' && c <= 'z' }
