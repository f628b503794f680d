package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/funcscope/internal/expr"
)

// Domain describes where ev is defined. It first pattern-matches the
// canonical text for the restriction forms the normalizer can produce;
// reciprocal trig has already been lowered, so sec(x) arrives here as
// 1/cos(x) and csc(x) as 1/sin(x). When no pattern applies it falls back
// to a sweep that lists the sampled points where evaluation fails.
func Domain(ev *expr.Evaluator, p Params) string {
	c := ev.Canonical()

	if d, ok := textualDomain(c); ok {
		return d
	}
	return sweptDomain(ev, p)
}

func textualDomain(c string) (string, bool) {
	switch {
	case strings.Contains(c, "sqrt(x)"):
		return "x ≥ 0", true
	case compoundArg(c, "sqrt"):
		return "argument of √ must be ≥ 0", true
	case strings.Contains(c, "log(x)") || strings.Contains(c, "ln(x)"):
		return "x > 0", true
	case compoundArg(c, "log") || compoundArg(c, "ln"):
		return "argument of log must be > 0", true
	case strings.Contains(c, "tan(x)") || strings.Contains(c, "1/cos(x)"):
		// tan and its reciprocal share the pole grid; sec shifts onto it too.
		return "x ≠ π/2 + nπ", true
	case strings.Contains(c, "1/sin(x)"):
		return "x ≠ nπ", true
	case bareDenominator(c):
		return "x ≠ 0", true
	}
	return "", false
}

// compoundArg reports whether name is called with an argument that
// contains the variable but is not the bare variable.
func compoundArg(c, name string) bool {
	from := 0
	for {
		i := strings.Index(c[from:], name+"(")
		if i < 0 {
			return false
		}
		i += from
		if i > 0 && c[i-1] >= 'a' && c[i-1] <= 'z' {
			from = i + 1
			continue
		}
		open := i + len(name)
		end, ok := closeParen(c, open)
		if !ok {
			return false
		}
		arg := c[open+1 : end]
		if arg != "x" && strings.Contains(arg, "x") {
			return true
		}
		from = end
	}
}

// bareDenominator matches a 1/x-shaped denominator: /x not followed by
// more identifier text.
func bareDenominator(c string) bool {
	from := 0
	for {
		i := strings.Index(c[from:], "/x")
		if i < 0 {
			return false
		}
		j := i + 2
		if j >= len(c) || !(c[j] >= 'a' && c[j] <= 'z' || c[j] >= '0' && c[j] <= '9') {
			return true
		}
		from = i + 1
	}
}

func closeParen(s string, open int) (int, bool) {
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

func sweptDomain(ev *expr.Evaluator, p Params) string {
	var excluded []float64
	n := int(math.Round((p.DomainMax-p.DomainMin)/p.DomainStep)) + 1
	for i := 0; i < n; i++ {
		x := p.DomainMin + float64(i)*p.DomainStep
		if finite(ev.Eval(x)) {
			continue
		}
		// One decimal of precision is all the sweep step supports.
		r := math.Round(x*10) / 10
		if r == 0 {
			r = 0 // drop the sign of -0
		}
		dup := false
		for _, e := range excluded {
			if math.Abs(e-r) < p.DomainDedup {
				dup = true
				break
			}
		}
		if !dup {
			excluded = append(excluded, r)
		}
	}

	switch {
	case len(excluded) == 0:
		return "all real numbers"
	case len(excluded) > p.DomainMaxExclusions:
		return "multiple restrictions"
	default:
		parts := make([]string, len(excluded))
		for i, e := range excluded {
			parts[i] = fmt.Sprintf("x ≠ %g", e)
		}
		return strings.Join(parts, ", ")
	}
}
